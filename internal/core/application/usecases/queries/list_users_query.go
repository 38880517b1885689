package queries

import (
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
)

// ListUsersQuery lists accounts ordered by email. A non-empty fragment
// keeps only emails that contain it, case-insensitively.
type ListUsersQuery struct {
	emailFragment string

	guard guard.ConstructorGuard
}

func NewListUsersQuery(emailFragment string) ListUsersQuery {
	return ListUsersQuery{
		emailFragment: strings.ToLower(strings.TrimSpace(emailFragment)),
		guard:         guard.NewConstructorGuard(),
	}
}

func (q ListUsersQuery) EmailFragment() string {
	return q.emailFragment
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

type UserView struct {
	ID          kernel.UUID
	Email       string
	Name        string
	Role        string
	RiderID     *kernel.UUID
	CreatedAt   time.Time
	LastLoginAt time.Time
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}
