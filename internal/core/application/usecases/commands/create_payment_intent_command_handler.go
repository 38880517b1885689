package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// CreatePaymentIntentCommandHandler asks the gateway for a payment intent.
// The parcel is read in a short transaction that ends before the gateway
// call; metadata on the intent routes the later webhook back to the parcel.
type CreatePaymentIntentCommandHandler struct {
	uowFactory ParcelUoWFactory
	gateway    ports.PaymentGateway
	currency   string
}

func NewCreatePaymentIntentCommandHandler(
	uowFactory ParcelUoWFactory,
	gateway ports.PaymentGateway,
	currency string,
) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		currency:   currency,
	}
}

// Handle fails with errs.PreconditionFailedError for a parcel that is
// already paid or confirmed.
func (h CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentIntentCommand,
) (ports.IntentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ports.IntentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.IntentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return ports.IntentResult{}, err
	}
	if p.PaymentStatus().IsSettled() {
		return ports.IntentResult{}, errs.NewPreconditionFailedError(
			fmt.Sprintf("parcel %s is already %s", p.TrackingNumber(), p.PaymentStatus()))
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.IntentResult{}, err
	}

	payer := cmd.PayerEmail()
	if payer == "" {
		payer = p.OwnerEmail()
	}

	return h.gateway.CreateIntent(ctx, ports.IntentRequest{
		Amount:         p.Cost(),
		Currency:       h.currency,
		ParcelID:       p.ID().String(),
		TrackingNumber: p.TrackingNumber().String(),
		PayerEmail:     payer,
	})
}
