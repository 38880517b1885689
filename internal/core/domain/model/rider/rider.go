package rider

import (
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	// ErrRiderIsNotConstructed is returned when using a Rider that bypassed its constructors.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderIsNotActive is returned when assigning parcels to a pending or rejected rider.
	ErrRiderIsNotActive = errs.NewPreconditionFailedError("rider is not active")
)

// Application is what an applicant submits.
type Application struct {
	Name         string
	Email        string
	Phone        string
	Region       string
	District     string
	NationalID   string
	VehicleType  string
	VehicleRegNo string
}

// Rider is a rider application together with its review status.
//
// Business rules:
//   - name and email are required, email is stored normalized
//   - a new application is always pending
//   - only an active rider may receive parcels
type Rider struct {
	id          kernel.UUID
	application Application
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewRider records a pending application.
func NewRider(id kernel.UUID, a Application, now time.Time) (*Rider, error) {
	r := &Rider{
		id:        id,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	var nameErr error
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	email, emailErr := kernel.NormalizeEmail("email", a.Email)
	a.Email = email
	a.Phone = strings.TrimSpace(a.Phone)
	a.Region = strings.TrimSpace(a.Region)
	a.District = strings.TrimSpace(a.District)
	a.NationalID = strings.TrimSpace(a.NationalID)
	a.VehicleType = strings.TrimSpace(a.VehicleType)
	a.VehicleRegNo = strings.TrimSpace(a.VehicleRegNo)

	if err := errors.Join(id.Validate(), nameErr, emailErr); err != nil {
		return nil, err
	}
	r.application = a

	return r, nil
}

// RestoreRider rebuilds a rider from storage.
func RestoreRider(id kernel.UUID, a Application, status Status, createdAt, updatedAt time.Time) (*Rider, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &Rider{
		id:          id,
		application: a,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

func (r *Rider) ID() kernel.UUID          { return r.id }
func (r *Rider) Application() Application { return r.application }
func (r *Rider) Name() string             { return r.application.Name }
func (r *Rider) Email() string            { return r.application.Email }
func (r *Rider) Phone() string            { return r.application.Phone }
func (r *Rider) VehicleType() string      { return r.application.VehicleType }
func (r *Rider) Status() Status           { return r.status }
func (r *Rider) IsActive() bool           { return r.status == StatusActive }
func (r *Rider) CreatedAt() time.Time     { return r.createdAt }
func (r *Rider) UpdatedAt() time.Time     { return r.updatedAt }

// ChangeStatus moves the application to status. It reports whether the
// rider became active with this call.
func (r *Rider) ChangeStatus(status Status, now time.Time) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	activated := status == StatusActive && r.status != StatusActive
	r.status = status
	r.updatedAt = now
	return activated, nil
}

// EnsureActive returns ErrRiderIsNotActive unless the rider is active.
func (r *Rider) EnsureActive() error {
	if !r.IsActive() {
		return ErrRiderIsNotActive
	}
	return nil
}

// IsOpen reports whether the application still blocks a new one for the
// same email.
func (r *Rider) IsOpen() bool {
	return r.status == StatusPending || r.status == StatusActive
}
