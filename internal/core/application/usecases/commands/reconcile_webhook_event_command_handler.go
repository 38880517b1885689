package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/payment"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// ReconcileOutcome says what a verified event did.
type ReconcileOutcome string

const (
	// OutcomeConfirmed means the parcel is now paid and confirmed.
	OutcomeConfirmed ReconcileOutcome = "confirmed"
	// OutcomeUnknownParcel means the event names no parcel we store.
	OutcomeUnknownParcel ReconcileOutcome = "unknown_parcel"
	// OutcomePaymentFailed means the gateway reported a failed charge.
	OutcomePaymentFailed ReconcileOutcome = "payment_failed"
	// OutcomeIgnored means the event kind is not handled.
	OutcomeIgnored ReconcileOutcome = "ignored"
	// OutcomeFailed means applying the event failed; see ReconcileResult.Err.
	OutcomeFailed ReconcileOutcome = "failed"
)

// ReconcileResult is the outcome of a delivery whose signature verified.
// Err carries internal failures; the gateway is acknowledged regardless,
// so they never become a transport error.
type ReconcileResult struct {
	EventID        string
	Kind           payment.EventKind
	Outcome        ReconcileOutcome
	ParcelID       string
	RecordInserted bool
	Err            error
}

// ReconcileWebhookEventCommandHandler applies gateway events. Deliveries
// are at-least-once and unordered, so applying the same event twice leaves
// exactly one ledger row and the same parcel state.
//
// Example:
//
//	cmd, _ := NewReconcileWebhookEventCommand(body, c.Request().Header.Get("Stripe-Signature"))
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // bad signature, 400
//	}
//	// 200, whatever res.Outcome is
type ReconcileWebhookEventCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	secret     string
	logger     *slog.Logger
}

func NewReconcileWebhookEventCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	webhookSecret string,
	logger *slog.Logger,
) ReconcileWebhookEventCommandHandler {
	return ReconcileWebhookEventCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		secret:     webhookSecret,
		logger:     logger.With("component", "webhook_reconciler"),
	}
}

// Handle returns an error only when the delivery cannot be trusted: the
// command is malformed or the signature does not verify.
func (h ReconcileWebhookEventCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileWebhookEventCommand,
) (ReconcileResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileResult{}, err
	}

	event, err := h.gateway.VerifyEvent(cmd.Payload(), cmd.Signature(), h.secret)
	if err != nil {
		h.logger.WarnContext(ctx, "Webhook signature rejected", "error", err)
		return ReconcileResult{}, err
	}

	res := ReconcileResult{EventID: event.ID, Kind: event.Kind, ParcelID: event.Intent.ParcelID()}

	if event.DecodeErr != nil {
		res.Outcome, res.Err = OutcomeFailed, event.DecodeErr
		h.logger.ErrorContext(ctx, "Webhook payload could not be decoded",
			"event_id", event.ID, "kind", event.Kind, "error", event.DecodeErr)
		return res, nil
	}

	switch event.Kind {
	case payment.EventIntentSucceeded:
		res.Outcome, res.RecordInserted, res.Err = h.confirm(ctx, event)
		if res.Err != nil {
			res.Outcome = OutcomeFailed
			h.logger.ErrorContext(ctx, "Payment confirmation failed",
				"event_id", event.ID, "parcel_id", res.ParcelID, "error", res.Err)
		} else {
			h.logger.InfoContext(ctx, "Payment event reconciled",
				"event_id", event.ID, "parcel_id", res.ParcelID,
				"outcome", res.Outcome, "record_inserted", res.RecordInserted)
		}
	case payment.EventIntentFailed:
		res.Outcome = OutcomePaymentFailed
		reason := ""
		if event.Intent != nil {
			reason = event.Intent.FailureReason
		}
		h.logger.WarnContext(ctx, "Payment failed at gateway",
			"event_id", event.ID, "parcel_id", res.ParcelID, "reason", reason)
	default:
		res.Outcome = OutcomeIgnored
		h.logger.InfoContext(ctx, "Webhook event ignored", "event_id", event.ID, "kind", event.Kind)
	}

	return res, nil
}

func (h ReconcileWebhookEventCommandHandler) confirm(
	ctx context.Context,
	event payment.Event,
) (ReconcileOutcome, bool, error) {
	intent := event.Intent
	if intent == nil || intent.ID == "" {
		return OutcomeFailed, false, errs.NewValueIsRequiredError("paymentIntentId")
	}

	parcelID, err := kernel.UUIDFromString(intent.ParcelID())
	if err != nil {
		return OutcomeUnknownParcel, false, nil
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return OutcomeFailed, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	ledger := uow.PaymentRecordRepository()

	p, err := parcelRepo.GetForUpdate(ctx, parcelID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OutcomeUnknownParcel, false, nil
	}
	if err != nil {
		return OutcomeFailed, false, err
	}

	paidAt := intent.CreatedAt
	if paidAt.IsZero() {
		paidAt = now
	}

	record, err := payment.NewRecord(kernel.NewUUID(), payment.NewRecordParams{
		Parcel:        payment.SnapshotOf(p),
		PayerEmail:    payerOf(intent, p),
		IntentID:      intent.ID,
		Amount:        intent.Amount,
		PaidAt:        paidAt,
		PaymentStatus: parcel.PaymentConfirmed,
		Source:        payment.SourceWebhook,
	}, now)
	if err != nil {
		return OutcomeFailed, false, err
	}

	inserted, err := ledger.AddIfAbsent(ctx, record)
	if err != nil {
		return OutcomeFailed, false, err
	}

	if err = p.ConfirmGatewayPayment(intent.ID, intent.Amount, now, now); err != nil {
		return OutcomeFailed, false, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return OutcomeFailed, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OutcomeFailed, false, err
	}

	return OutcomeConfirmed, inserted, nil
}

func payerOf(intent *payment.Intent, p *parcel.Parcel) string {
	if intent.ReceiptEmail != "" {
		return intent.ReceiptEmail
	}
	if email := intent.Metadata[payment.MetadataPayerEmail]; email != "" {
		return email
	}
	return p.OwnerEmail()
}
