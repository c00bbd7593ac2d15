package commands

import (
	"errors"

	"orderpanel/internal/pkg/errs"
	"orderpanel/internal/pkg/guard"
)

const DefaultRelayBatchSize = 50

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand delivers up to BatchSize pending order events.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayOutboxCommand creates the command. A batch size of zero selects
// DefaultRelayBatchSize.
func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize < 0 {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 0, "unbounded")
	}
	if batchSize == 0 {
		batchSize = DefaultRelayBatchSize
	}
	return RelayOutboxCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}
