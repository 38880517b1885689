package commands

import (
	"context"
	"time"
)

// UpdateParcelStatusCommandHandler applies an admin or rider status change.
// Transitions are not ordered: any status may follow any other.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of modified parcels, which is 1 on success.
// A missing parcel is errs.ObjectNotFoundError.
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return 0, err
	}

	if err = p.ChangeStatus(cmd.Status(), cmd.Note(), time.Now().UTC()); err != nil {
		return 0, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return 1, nil
}
