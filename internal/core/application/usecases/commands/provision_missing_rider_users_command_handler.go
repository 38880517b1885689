package commands

import (
	"context"
	"errors"
	"fmt"
)

// ProvisionReport summarizes one repair pass.
type ProvisionReport struct {
	Checked     int
	Provisioned int
	// Err joins the per-rider failures of the pass.
	Err error
}

// ProvisionMissingRiderUsersCommandHandler finds active riders without a
// rider account and provisions each in its own transaction, so one bad row
// does not block the rest of the batch.
type ProvisionMissingRiderUsersCommandHandler struct {
	uowFactory   ProvisioningUoWFactory
	provisioning riderUserProvisioning
}

func NewProvisionMissingRiderUsersCommandHandler(uowFactory ProvisioningUoWFactory) ProvisionMissingRiderUsersCommandHandler {
	return ProvisionMissingRiderUsersCommandHandler{
		uowFactory:   uowFactory,
		provisioning: newRiderUserProvisioning(uowFactory),
	}
}

// Handle returns an error when the candidates cannot be listed. Failures on
// individual riders are collected in ProvisionReport.Err.
func (h ProvisionMissingRiderUsersCommandHandler) Handle(
	ctx context.Context,
	cmd ProvisionMissingRiderUsersCommand,
) (ProvisionReport, error) {
	if err := cmd.Validate(); err != nil {
		return ProvisionReport{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProvisionReport{}, err
	}

	riders, err := uow.RiderRepository().GetActiveWithoutRiderUser(ctx, cmd.BatchSize())
	_ = uow.Rollback(ctx)
	if err != nil {
		return ProvisionReport{}, err
	}

	report := ProvisionReport{Checked: len(riders)}
	var failures []error
	for _, r := range riders {
		if ctx.Err() != nil {
			failures = append(failures, ctx.Err())
			break
		}
		if _, err = h.provisioning.run(ctx, r.ID()); err != nil {
			failures = append(failures, fmt.Errorf("rider %s: %w", r.ID(), err))
			continue
		}
		report.Provisioned++
	}
	report.Err = errors.Join(failures...)

	return report, nil
}
