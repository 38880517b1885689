package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand attaches an active rider to a paid parcel. Rider id,
// name and email are required; phone and vehicle type fall back to the
// rider application.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(parcelID, riderID, "Rahim", "rahim@example.com", "", "bike")
//	res, err := handler.Handle(ctx, cmd)
type AssignRiderCommand struct {
	parcelID kernel.UUID
	request  services.AssignmentRequest

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(
	parcelID, riderID kernel.UUID,
	riderName, riderEmail, riderPhone, vehicleType string,
) (AssignRiderCommand, error) {
	var riderIDErr error
	if err := riderID.Validate(); err != nil {
		riderIDErr = errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}

	riderName = strings.TrimSpace(riderName)
	var nameErr error
	if riderName == "" {
		nameErr = errs.NewValueIsRequiredError("riderName")
	}

	var emailErr error
	if strings.TrimSpace(riderEmail) == "" {
		emailErr = errs.NewValueIsRequiredError("riderEmail")
	}

	if err := errors.Join(parcelID.Validate(), riderIDErr, nameErr, emailErr); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		parcelID: parcelID,
		request: services.AssignmentRequest{
			RiderID:     riderID,
			RiderName:   riderName,
			RiderEmail:  strings.TrimSpace(riderEmail),
			RiderPhone:  strings.TrimSpace(riderPhone),
			VehicleType: strings.TrimSpace(vehicleType),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) ParcelID() kernel.UUID               { return c.parcelID }
func (c AssignRiderCommand) Request() services.AssignmentRequest { return c.request }
