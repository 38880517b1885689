package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand registers a new parcel for an owner. Field-level
// validation of the parcel content happens in parcel.NewParcel; the command
// only checks what the handler itself relies on.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(kernel.NewUUID(), parcel.Details{
//	    Title:      "Documents",
//	    Sender:     parcel.Party{Name: "Ann", Region: "Dhaka"},
//	    Receiver:   parcel.Party{Name: "Bob", Region: "Khulna"},
//	    Cost:       15000,
//	    OwnerEmail: "ann@example.com",
//	})
//	res, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct {
	parcelID kernel.UUID
	details  parcel.Details

	guard guard.ConstructorGuard
}

func NewCreateParcelCommand(parcelID kernel.UUID, details parcel.Details) (CreateParcelCommand, error) {
	var emailErr error
	if strings.TrimSpace(details.OwnerEmail) == "" {
		emailErr = errs.NewValueIsRequiredError("userEmail")
	}

	if err := errors.Join(parcelID.Validate(), emailErr); err != nil {
		return CreateParcelCommand{}, err
	}

	return CreateParcelCommand{
		parcelID: parcelID,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) ParcelID() kernel.UUID   { return c.parcelID }
func (c CreateParcelCommand) Details() parcel.Details { return c.details }
