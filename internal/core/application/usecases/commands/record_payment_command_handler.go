package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/payment"
)

// RecordPaymentCommandHandler applies a client-reported payment.
//
// The parcel row is locked for the whole transaction, so a webhook for the
// same parcel waits for this handler and sees its result. The ledger row is
// written only when no row exists for the intent id, whichever path got
// there first. Ledger row and parcel update commit together.
//
// Example:
//
//	cmd, _ := NewRecordPaymentCommand(parcelID, "pi_123", "paid", 15000, time.Now(), "ann@example.com")
//	modified, err := handler.Handle(ctx, cmd)
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns 1 when the parcel changed and 0 when it already reflected
// the payment.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	paidAt := cmd.PaidAt()
	if paidAt.IsZero() {
		paidAt = now
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	ledger := uow.PaymentRecordRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return 0, err
	}

	payer := cmd.PayerEmail()
	if payer == "" {
		payer = p.OwnerEmail()
	}

	record, err := payment.NewRecord(kernel.NewUUID(), payment.NewRecordParams{
		Parcel:        payment.SnapshotOf(p),
		PayerEmail:    payer,
		IntentID:      cmd.IntentID(),
		Amount:        cmd.Amount(),
		PaidAt:        paidAt,
		PaymentStatus: cmd.Status(),
		Source:        payment.SourceClient,
	}, now)
	if err != nil {
		return 0, err
	}

	if _, err = ledger.AddIfAbsent(ctx, record); err != nil {
		return 0, err
	}

	changed, err := p.ApplyClientPayment(cmd.Status(), cmd.IntentID(), cmd.Amount(), paidAt, now)
	if err != nil {
		return 0, err
	}

	if changed {
		if err = parcelRepo.Update(ctx, p); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if !changed {
		return 0, nil
	}
	return 1, nil
}
