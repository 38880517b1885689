package user

import "parceltrack/internal/pkg/errs"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleRider Role = "rider"
)

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleUser, RoleRider:
		return nil
	}
	return errs.NewInvalidRoleError(string(r), []string{"admin", "user", "rider"})
}

func (r Role) String() string {
	return string(r)
}
