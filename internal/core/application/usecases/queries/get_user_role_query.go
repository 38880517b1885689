package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetUserRoleQueryIsNotConstructed = errors.New(
		"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
	)
)

// GetUserRoleQuery resolves the role of the account registered under an
// email. The access policy uses it on every authorized request.
type GetUserRoleQuery struct {
	email string

	guard guard.ConstructorGuard
}

func NewGetUserRoleQuery(email string) (GetUserRoleQuery, error) {
	normalized, err := kernel.NormalizeEmail("email", email)
	if err != nil {
		return GetUserRoleQuery{}, err
	}

	return GetUserRoleQuery{
		email: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserRoleQuery) Email() string {
	return q.email
}

func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

type GetUserRoleQueryResponse struct {
	Email string
	Role  user.Role
}
