package commands

import (
	"context"

	"parceltrack/internal/pkg/errs"
)

// DeleteRiderCommandHandler removes a rider application. Snapshots already
// copied onto parcels and the rider's user account are left alone.
type DeleteRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

func NewDeleteRiderCommandHandler(uowFactory RiderUoWFactory) DeleteRiderCommandHandler {
	return DeleteRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteRiderCommandHandler) Handle(ctx context.Context, cmd DeleteRiderCommand) (int64, error) {
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

	deleted, err := uow.RiderRepository().Delete(ctx, cmd.RiderID())
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, errs.NewObjectNotFoundError("riderId", cmd.RiderID().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
