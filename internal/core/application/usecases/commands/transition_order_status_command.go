package commands

import (
	"errors"

	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand asks to move one order to a new status.
// The target is parsed here; whether the move is allowed is decided by the
// order itself when the handler applies it.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand validates the id and parses the target
// status. An unknown status name is a validation error.
func NewTransitionOrderStatusCommand(orderID int64, target string) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	status, statusErr := order.ParseStatus(target)
	if err := errors.Join(validateID("orderID", orderID), statusErr); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.target = status
	return cmd, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}
