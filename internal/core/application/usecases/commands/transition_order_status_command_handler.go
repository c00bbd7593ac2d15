package commands

import (
	"context"
)

// TransitionOrderStatusCommandHandler applies a status change to one order.
//
// Business rules:
//   - unknown order: errs.ObjectNotFoundError, nothing written
//   - target not reachable from the current status: errs.InvalidTransitionError,
//     nothing written
//   - otherwise only the status column is updated; concurrent writers are
//     not detected and the last commit wins
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
