package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider applications.
type RiderRepository interface {
	Add(ctx context.Context, aggregate *rider.Rider) error
	Update(ctx context.Context, aggregate *rider.Rider) error
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// FindOpenByEmail returns the pending or active application for email,
	// or nil when there is none.
	FindOpenByEmail(ctx context.Context, email string) (*rider.Rider, error)

	// GetActiveWithoutRiderUser returns up to limit active riders that no
	// user account references. The provisioning job repairs these.
	GetActiveWithoutRiderUser(ctx context.Context, limit int) ([]*rider.Rider, error)

	Delete(ctx context.Context, id kernel.UUID) (int64, error)
}
