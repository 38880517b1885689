package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. Email must be unique.
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail looks a user up by normalized email. A miss is reported as
	// errs.ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	Delete(ctx context.Context, id kernel.UUID) (int64, error)
}
