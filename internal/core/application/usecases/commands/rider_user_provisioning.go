package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// riderUserProvisioning gives one active rider a rider account in its own
// transaction. The unique email index on users keeps concurrent runs from
// creating two accounts; the loser gets errs.ConflictError and the next
// run finds the winner's account.
type riderUserProvisioning struct {
	uowFactory  ProvisioningUoWFactory
	provisioner services.RiderProvisioner
}

func newRiderUserProvisioning(uowFactory ProvisioningUoWFactory) riderUserProvisioning {
	return riderUserProvisioning{
		uowFactory:  uowFactory,
		provisioner: services.NewRiderProvisioner(),
	}
}

func (p riderUserProvisioning) run(ctx context.Context, riderID kernel.UUID) (services.ProvisionResult, error) {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ProvisionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	userRepo := uow.UserRepository()

	r, err := riderRepo.Get(ctx, riderID)
	if err != nil {
		return services.ProvisionResult{}, err
	}

	var existing *user.User
	existing, err = userRepo.GetByEmail(ctx, r.Email())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return services.ProvisionResult{}, err
	}

	res, err := p.provisioner.Provision(r, existing, kernel.NewUUID(), time.Now().UTC())
	if err != nil {
		return services.ProvisionResult{}, err
	}

	switch {
	case res.Created:
		err = userRepo.Add(ctx, res.User)
	case res.Changed:
		err = userRepo.Update(ctx, res.User)
	}
	if err != nil {
		return services.ProvisionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ProvisionResult{}, err
	}

	return res, nil
}
