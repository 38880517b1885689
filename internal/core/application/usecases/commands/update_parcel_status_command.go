package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand moves a parcel to any status of the closed set.
// An unknown status is rejected here with errs.InvalidStatusError, before a
// transaction is opened.
type UpdateParcelStatusCommand struct {
	parcelID kernel.UUID
	status   parcel.Status
	note     string

	guard guard.ConstructorGuard
}

func NewUpdateParcelStatusCommand(parcelID kernel.UUID, status, note string) (UpdateParcelStatusCommand, error) {
	parsed, statusErr := parcel.ParseStatus(status)
	if err := errors.Join(parcelID.Validate(), statusErr); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return UpdateParcelStatusCommand{
		parcelID: parcelID,
		status:   parsed,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c UpdateParcelStatusCommand) Status() parcel.Status { return c.status }
func (c UpdateParcelStatusCommand) Note() string          { return c.note }
