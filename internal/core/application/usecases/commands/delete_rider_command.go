package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteRiderCommandIsNotConstructed = errors.New(
	"DeleteRiderCommand must be created via NewDeleteRiderCommand constructor",
)

type DeleteRiderCommand struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRiderCommand(riderID kernel.UUID) (DeleteRiderCommand, error) {
	if err := riderID.Validate(); err != nil {
		return DeleteRiderCommand{}, err
	}
	return DeleteRiderCommand{riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRiderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRiderCommandIsNotConstructed)
}

func (c DeleteRiderCommand) RiderID() kernel.UUID { return c.riderID }
