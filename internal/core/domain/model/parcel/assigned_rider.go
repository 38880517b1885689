package parcel

import (
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// AssignedRider is the rider snapshot embedded in a parcel at assignment
// time. Later changes to the rider record do not alter it.
type AssignedRider struct {
	RiderID     kernel.UUID
	Name        string
	Email       string
	Phone       string
	VehicleType string
	AssignedAt  time.Time
}

// NewAssignedRider validates the required identity fields: id, name, email.
func NewAssignedRider(riderID kernel.UUID, name, email, phone, vehicleType string, assignedAt time.Time) (AssignedRider, error) {
	r := AssignedRider{
		RiderID:     riderID,
		Name:        strings.TrimSpace(name),
		Phone:       strings.TrimSpace(phone),
		VehicleType: strings.TrimSpace(vehicleType),
		AssignedAt:  assignedAt,
	}

	var emailErr error
	if strings.TrimSpace(email) == "" {
		emailErr = errs.NewValueIsRequiredError("riderEmail")
	} else {
		r.Email, emailErr = kernel.NormalizeEmail("riderEmail", email)
	}

	var nameErr error
	if r.Name == "" {
		nameErr = errs.NewValueIsRequiredError("riderName")
	}

	var idErr error
	if riderID.Validate() != nil {
		idErr = errs.NewValueIsRequiredError("riderId")
	}

	if err := errors.Join(idErr, nameErr, emailErr); err != nil {
		return AssignedRider{}, err
	}
	return r, nil
}

func (r AssignedRider) Validate() error {
	if r.RiderID.Validate() != nil {
		return errs.NewValueIsRequiredError("riderId")
	}
	if r.Name == "" {
		return errs.NewValueIsRequiredError("riderName")
	}
	if r.Email == "" {
		return errs.NewValueIsRequiredError("riderEmail")
	}
	return nil
}
