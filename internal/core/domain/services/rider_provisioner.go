package services

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/domain/model/user"
)

// ProvisionResult tells the caller how to persist the account.
type ProvisionResult struct {
	User    *user.User
	Created bool
	Changed bool
}

// RiderProvisioner makes sure an active rider has a user account with rider
// access.
//
// Business rules:
//   - only active riders are provisioned
//   - a missing account is created with role rider
//   - an existing user is upgraded to rider and its vehicle fields merged
//   - an admin keeps the admin role
type RiderProvisioner struct{}

func NewRiderProvisioner() RiderProvisioner {
	return RiderProvisioner{}
}

// Provision returns the account to store for r. existing is the account
// found by the rider's email, or nil. newUserID is used only when a new
// account is created.
func (p RiderProvisioner) Provision(
	r *rider.Rider,
	existing *user.User,
	newUserID kernel.UUID,
	now time.Time,
) (ProvisionResult, error) {
	if err := r.Validate(); err != nil {
		return ProvisionResult{}, err
	}
	if err := r.EnsureActive(); err != nil {
		return ProvisionResult{}, err
	}

	profile := ProfileOf(r)

	if existing == nil {
		u, err := user.NewRiderUser(newUserID, r.Email(), profile, now)
		if err != nil {
			return ProvisionResult{}, err
		}
		return ProvisionResult{User: u, Created: true, Changed: true}, nil
	}

	if err := existing.Validate(); err != nil {
		return ProvisionResult{}, err
	}
	changed, err := existing.PromoteToRider(profile)
	if err != nil {
		return ProvisionResult{}, err
	}
	return ProvisionResult{User: existing, Changed: changed}, nil
}

// ProfileOf copies the rider fields a user account keeps.
func ProfileOf(r *rider.Rider) user.RiderProfile {
	a := r.Application()
	return user.RiderProfile{
		RiderID:      r.ID(),
		Name:         a.Name,
		Phone:        a.Phone,
		Region:       a.Region,
		District:     a.District,
		VehicleType:  a.VehicleType,
		VehicleRegNo: a.VehicleRegNo,
	}
}
