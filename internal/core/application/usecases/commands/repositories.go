// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, loads the
// aggregates it needs under row locks and commits once.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it
// touches. The postgres unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	PaymentRecordRepoFactory interface {
		PaymentRecordRepository() ports.PaymentRecordRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ParcelUoW is used by commands that only touch parcels.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// PaymentUoW writes a parcel and its ledger row atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.ParcelRepository().GetForUpdate(ctx, id)
	//   inserted, err := uow.PaymentRecordRepository().AddIfAbsent(ctx, record)
	//   // ... mutate p, Update
	//
	//   err = uow.Commit(ctx)
	PaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRecordRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// AssignmentUoW reads the rider while holding the parcel lock.
	AssignmentUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
	}

	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	RiderUoWFactory interface {
		Create() RiderUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// ProvisioningUoW links riders to user accounts.
	ProvisioningUoW interface {
		TxManager
		RiderRepoFactory
		UserRepoFactory
	}

	ProvisioningUoWFactory interface {
		Create() ProvisioningUoW
	}
)
