package commands

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/errs"
)

// ApplyAsRiderCommandHandler stores a pending application unless the same
// email already has a pending or active one.
type ApplyAsRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

func NewApplyAsRiderCommandHandler(uowFactory RiderUoWFactory) ApplyAsRiderCommandHandler {
	return ApplyAsRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ApplyAsRiderCommandHandler) Handle(ctx context.Context, cmd ApplyAsRiderCommand) (*rider.Rider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := rider.NewRider(cmd.RiderID(), cmd.Application(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()

	open, err := riderRepo.FindOpenByEmail(ctx, r.Email())
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, errs.NewConflictError(fmt.Sprintf("%s already has a %s rider application", r.Email(), open.Status()))
	}

	if err = riderRepo.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
