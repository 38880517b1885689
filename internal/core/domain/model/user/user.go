package user

import (
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when using a User that bypassed its constructors.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// RiderProfile is the contact and vehicle data copied from an active rider
// application.
type RiderProfile struct {
	RiderID      kernel.UUID
	Name         string
	Phone        string
	Region       string
	District     string
	VehicleType  string
	VehicleRegNo string
}

// User is an account. Email is the natural key.
type User struct {
	id          kernel.UUID
	email       string
	name        string
	role        Role
	rider       *RiderProfile
	createdAt   time.Time
	lastLoginAt time.Time
	guard       guard.ConstructorGuard
}

// NewUser creates an account with role user.
func NewUser(id kernel.UUID, email, name string, now time.Time) (*User, error) {
	normalized, emailErr := kernel.NormalizeEmail("email", email)
	if err := errors.Join(id.Validate(), emailErr); err != nil {
		return nil, err
	}
	return &User{
		id:          id,
		email:       normalized,
		name:        strings.TrimSpace(name),
		role:        RoleUser,
		createdAt:   now,
		lastLoginAt: now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewRiderUser creates an account with role rider for an activated rider
// who never signed in.
func NewRiderUser(id kernel.UUID, email string, profile RiderProfile, now time.Time) (*User, error) {
	u, err := NewUser(id, email, profile.Name, now)
	if err != nil {
		return nil, err
	}
	if err = profile.RiderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}
	u.role = RoleRider
	u.rider = &profile
	return u, nil
}

// RestoreUser rebuilds a user from storage. rider may be nil.
func RestoreUser(
	id kernel.UUID,
	email, name string,
	role Role,
	rider *RiderProfile,
	createdAt, lastLoginAt time.Time,
) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	return &User{
		id:          id,
		email:       email,
		name:        name,
		role:        role,
		rider:       rider,
		createdAt:   createdAt,
		lastLoginAt: lastLoginAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID        { return u.id }
func (u *User) Email() string          { return u.email }
func (u *User) Name() string           { return u.name }
func (u *User) Role() Role             { return u.role }
func (u *User) IsAdmin() bool          { return u.role == RoleAdmin }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) LastLoginAt() time.Time { return u.lastLoginAt }

// RiderProfile returns a copy of the rider fields, or nil.
func (u *User) RiderProfile() *RiderProfile {
	if u.rider == nil {
		return nil
	}
	p := *u.rider
	return &p
}

// TouchLogin records a sign-in.
func (u *User) TouchLogin(now time.Time) {
	u.lastLoginAt = now
}

// ChangeRole sets the role. Leaving the rider role keeps the rider profile
// so a later re-activation finds it.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// PromoteToRider links the account to an active rider application. Users
// become riders; admins keep their role. Non-empty profile fields replace
// stored ones. It reports whether anything changed.
func (u *User) PromoteToRider(profile RiderProfile) (bool, error) {
	if err := profile.RiderID.Validate(); err != nil {
		return false, errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}

	changed := false
	if u.role == RoleUser {
		u.role = RoleRider
		changed = true
	}

	merged := RiderProfile{}
	if u.rider != nil {
		merged = *u.rider
	}
	before := merged
	merged.RiderID = profile.RiderID
	mergeField(&merged.Name, profile.Name)
	mergeField(&merged.Phone, profile.Phone)
	mergeField(&merged.Region, profile.Region)
	mergeField(&merged.District, profile.District)
	mergeField(&merged.VehicleType, profile.VehicleType)
	mergeField(&merged.VehicleRegNo, profile.VehicleRegNo)

	if u.rider == nil || merged != before {
		u.rider = &merged
		changed = true
	}
	if u.name == "" && merged.Name != "" {
		u.name = merged.Name
		changed = true
	}
	return changed, nil
}

func mergeField(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
