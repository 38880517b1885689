package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/guard"
)

var ErrSetRiderStatusCommandIsNotConstructed = errors.New(
	"SetRiderStatusCommand must be created via NewSetRiderStatusCommand constructor",
)

// SetRiderStatusCommand is an admin decision on a rider application.
type SetRiderStatusCommand struct {
	riderID kernel.UUID
	status  rider.Status

	guard guard.ConstructorGuard
}

func NewSetRiderStatusCommand(riderID kernel.UUID, status string) (SetRiderStatusCommand, error) {
	parsed, statusErr := rider.ParseStatus(status)
	if err := errors.Join(riderID.Validate(), statusErr); err != nil {
		return SetRiderStatusCommand{}, err
	}

	return SetRiderStatusCommand{
		riderID: riderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetRiderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderStatusCommandIsNotConstructed)
}

func (c SetRiderStatusCommand) RiderID() kernel.UUID { return c.riderID }
func (c SetRiderStatusCommand) Status() rider.Status { return c.status }
