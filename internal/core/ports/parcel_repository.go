// Package ports defines the contracts between the lifecycle engine and its
// infrastructure: repositories, the unit of work, the payment gateway and
// the identity verifier.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel. The tracking number must be unique.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists every mutable field of an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by id without locking.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForUpdate retrieves a parcel and holds a row lock on it until the
	// surrounding transaction ends. Concurrent writers to the same parcel
	// serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Assign stores the rider snapshot and status of a freshly assigned
	// parcel, but only if the stored row has no rider yet. A lost race is
	// reported as errs.ConflictError.
	Assign(ctx context.Context, aggregate *parcel.Parcel) error

	// Delete removes a parcel and returns the number of rows removed.
	Delete(ctx context.Context, id kernel.UUID) (int64, error)
}
