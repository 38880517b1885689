package commands

import (
	"context"

	"parceltrack/internal/pkg/errs"
)

type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the deleted count, or errs.ObjectNotFoundError when the
// parcel does not exist.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) (int64, error) {
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

	deleted, err := uow.ParcelRepository().Delete(ctx, cmd.ParcelID())
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, errs.NewObjectNotFoundError("parcelId", cmd.ParcelID().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
