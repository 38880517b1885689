package commands

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/internal/core/domain/model/rider"
)

// SetRiderStatusResult reports the status change and, for activations, the
// account provisioning that followed it. ProvisioningErr does not undo the
// status change; RiderProvisioningJob retries it.
type SetRiderStatusResult struct {
	Status          rider.Status
	UserCreated     bool
	UserChanged     bool
	ProvisioningErr error
}

// SetRiderStatusCommandHandler stores the new rider status and, when the
// rider is active afterwards, makes sure a rider account exists.
//
// Example:
//
//	cmd, _ := NewSetRiderStatusCommand(riderID, "active")
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // status not changed
//	}
//	if res.ProvisioningErr != nil {
//	    // status changed, account will be repaired by the job
//	}
type SetRiderStatusCommandHandler struct {
	uowFactory   ProvisioningUoWFactory
	provisioning riderUserProvisioning
	logger       *slog.Logger
}

func NewSetRiderStatusCommandHandler(uowFactory ProvisioningUoWFactory, logger *slog.Logger) SetRiderStatusCommandHandler {
	return SetRiderStatusCommandHandler{
		uowFactory:   uowFactory,
		provisioning: newRiderUserProvisioning(uowFactory),
		logger:       logger.With("component", "rider_status"),
	}
}

func (h SetRiderStatusCommandHandler) Handle(ctx context.Context, cmd SetRiderStatusCommand) (SetRiderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return SetRiderStatusResult{}, err
	}

	if err := h.changeStatus(ctx, cmd); err != nil {
		return SetRiderStatusResult{}, err
	}

	res := SetRiderStatusResult{Status: cmd.Status()}
	if cmd.Status() != rider.StatusActive {
		return res, nil
	}

	provisioned, err := h.provisioning.run(ctx, cmd.RiderID())
	if err != nil {
		res.ProvisioningErr = err
		h.logger.ErrorContext(ctx, "Rider account provisioning failed",
			"rider_id", cmd.RiderID().String(), "error", err)
		return res, nil
	}

	res.UserCreated = provisioned.Created
	res.UserChanged = provisioned.Changed
	return res, nil
}

func (h SetRiderStatusCommandHandler) changeStatus(ctx context.Context, cmd SetRiderStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()

	r, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if _, err = r.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
