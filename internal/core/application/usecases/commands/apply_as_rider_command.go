package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/guard"
)

var ErrApplyAsRiderCommandIsNotConstructed = errors.New(
	"ApplyAsRiderCommand must be created via NewApplyAsRiderCommand constructor",
)

// ApplyAsRiderCommand submits a rider application. The applicant email is
// the caller's own.
type ApplyAsRiderCommand struct {
	riderID     kernel.UUID
	application rider.Application

	guard guard.ConstructorGuard
}

func NewApplyAsRiderCommand(riderID kernel.UUID, application rider.Application) (ApplyAsRiderCommand, error) {
	if err := riderID.Validate(); err != nil {
		return ApplyAsRiderCommand{}, err
	}
	return ApplyAsRiderCommand{
		riderID:     riderID,
		application: application,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyAsRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyAsRiderCommandIsNotConstructed)
}

func (c ApplyAsRiderCommand) RiderID() kernel.UUID           { return c.riderID }
func (c ApplyAsRiderCommand) Application() rider.Application { return c.application }
