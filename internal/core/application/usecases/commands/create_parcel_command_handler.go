package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// CreateParcelResult identifies the stored parcel.
type CreateParcelResult struct {
	ParcelID       kernel.UUID
	TrackingNumber kernel.TrackingNumber
}

// CreateParcelCommandHandler stores a pending, unpaid parcel. A tracking
// number is generated when the client did not supply one.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the parcel. A duplicate client-supplied tracking number is
// reported as errs.ConflictError by the repository.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (CreateParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateParcelResult{}, err
	}

	p, err := parcel.NewParcel(cmd.ParcelID(), cmd.Details(), time.Now().UTC())
	if err != nil {
		return CreateParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	return CreateParcelResult{ParcelID: p.ID(), TrackingNumber: p.TrackingNumber()}, nil
}
