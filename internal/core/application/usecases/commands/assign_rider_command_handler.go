package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// AssignRiderResult is what the admin sees after a successful assignment.
type AssignRiderResult struct {
	TrackingNumber kernel.TrackingNumber
	Rider          parcel.AssignedRider
}

// AssignRiderCommandHandler assigns a rider under the parcel row lock and
// writes the snapshot with a conditional update, so two admins racing on
// one parcel produce one assignment and one errs.ConflictError.
type AssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	assigner   services.ParcelAssigner
}

func NewAssignRiderCommandHandler(uowFactory AssignmentUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewParcelAssigner(),
	}
}

// Handle fails with errs.ObjectNotFoundError for a missing parcel or a
// missing or inactive rider, errs.PreconditionFailedError unless the parcel
// is paid in both status and payment status, and errs.ConflictError when a
// rider is already attached. Nothing is written on failure.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) (AssignRiderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignRiderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignRiderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	riderRepo := uow.RiderRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return AssignRiderResult{}, err
	}

	r, err := riderRepo.Get(ctx, cmd.Request().RiderID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignRiderResult{}, err
	}

	snapshot, err := h.assigner.Assign(p, r, cmd.Request(), time.Now().UTC())
	if err != nil {
		return AssignRiderResult{}, err
	}

	if err = parcelRepo.Assign(ctx, p); err != nil {
		return AssignRiderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignRiderResult{}, err
	}

	return AssignRiderResult{TrackingNumber: p.TrackingNumber(), Rider: snapshot}, nil
}
