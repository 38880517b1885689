package services

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/errs"
)

// AssignmentRequest is the rider snapshot an admin supplies when assigning
// a parcel.
type AssignmentRequest struct {
	RiderID     kernel.UUID
	RiderName   string
	RiderEmail  string
	RiderPhone  string
	VehicleType string
}

// ParcelAssigner attaches a rider to a parcel.
//
// Checks run in this order:
//   - the parcel is paid in both status and payment status (PreconditionFailedError)
//   - the parcel has no rider yet (ConflictError)
//   - the rider exists and is active (ObjectNotFoundError)
//
// Phone and vehicle type fall back to the rider application when the request
// leaves them empty.
type ParcelAssigner struct{}

func NewParcelAssigner() ParcelAssigner {
	return ParcelAssigner{}
}

// Assign validates the pair and mutates p. r is nil when req.RiderID
// matched nothing.
func (a ParcelAssigner) Assign(p *parcel.Parcel, r *rider.Rider, req AssignmentRequest, now time.Time) (parcel.AssignedRider, error) {
	if err := p.Validate(); err != nil {
		return parcel.AssignedRider{}, err
	}
	if err := p.CanAssignRider(); err != nil {
		return parcel.AssignedRider{}, err
	}
	if r == nil || r.Validate() != nil {
		return parcel.AssignedRider{}, errs.NewObjectNotFoundError("riderId", req.RiderID.String())
	}
	if err := r.EnsureActive(); err != nil {
		return parcel.AssignedRider{}, errs.NewObjectNotFoundErrorWithCause("riderId", req.RiderID.String(), err)
	}

	phone := req.RiderPhone
	if phone == "" {
		phone = r.Phone()
	}
	vehicle := req.VehicleType
	if vehicle == "" {
		vehicle = r.VehicleType()
	}

	snapshot, err := parcel.NewAssignedRider(r.ID(), req.RiderName, req.RiderEmail, phone, vehicle, now)
	if err != nil {
		return parcel.AssignedRider{}, err
	}
	if err = p.AssignRider(snapshot); err != nil {
		return parcel.AssignedRider{}, err
	}
	return snapshot, nil
}
