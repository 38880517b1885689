package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Source tells which path reconciled the payment.
type Source string

const (
	SourceClient  Source = "client"
	SourceWebhook Source = "webhook"
)

func (s Source) Validate() error {
	if s != SourceClient && s != SourceWebhook {
		return errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%q is not client or webhook", s))
	}
	return nil
}

// ParcelSnapshot copies the parcel fields shown on receipts.
type ParcelSnapshot struct {
	ParcelID       kernel.UUID
	TrackingNumber string
	Title          string
	SenderName     string
	SenderRegion   string
	ReceiverName   string
	ReceiverRegion string
}

// SnapshotOf captures the ledger view of a parcel.
func SnapshotOf(p *parcel.Parcel) ParcelSnapshot {
	return ParcelSnapshot{
		ParcelID:       p.ID(),
		TrackingNumber: p.TrackingNumber().String(),
		Title:          p.Title(),
		SenderName:     p.Sender().Name,
		SenderRegion:   p.Sender().Region,
		ReceiverName:   p.Receiver().Name,
		ReceiverRegion: p.Receiver().Region,
	}
}

// Record is one reconciled payment event.
type Record struct {
	id            kernel.UUID
	parcel        ParcelSnapshot
	payerEmail    string
	intentID      string
	amount        int64
	paidAt        time.Time
	paymentStatus parcel.PaymentStatus
	source        Source
	createdAt     time.Time

	isConstructed bool
}

// NewRecordParams groups the fields of a new ledger row.
type NewRecordParams struct {
	Parcel        ParcelSnapshot
	PayerEmail    string
	IntentID      string
	Amount        int64
	PaidAt        time.Time
	PaymentStatus parcel.PaymentStatus
	Source        Source
}

func NewRecord(id kernel.UUID, p NewRecordParams, now time.Time) (*Record, error) {
	r := &Record{
		id:            id,
		parcel:        p.Parcel,
		intentID:      strings.TrimSpace(p.IntentID),
		amount:        p.Amount,
		paidAt:        p.PaidAt,
		paymentStatus: p.PaymentStatus,
		source:        p.Source,
		createdAt:     now,
		isConstructed: true,
	}

	var emailErr error
	if strings.TrimSpace(p.PayerEmail) != "" {
		r.payerEmail, emailErr = kernel.NormalizeEmail("payerEmail", p.PayerEmail)
	}

	var intentErr error
	if r.intentID == "" {
		intentErr = errs.NewValueIsRequiredError("paymentIntentId")
	}

	var amountErr error
	if p.Amount < 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("paymentAmount", fmt.Errorf("%d is negative", p.Amount))
	}

	var statusErr error
	if !p.PaymentStatus.IsSettled() && p.PaymentStatus != parcel.PaymentPending {
		statusErr = errs.NewInvalidStatusError(p.PaymentStatus.String(), []string{"pending", "paid", "confirmed"})
	}

	if err := errors.Join(
		id.Validate(),
		p.Parcel.ParcelID.Validate(),
		emailErr,
		intentErr,
		amountErr,
		statusErr,
		p.Source.Validate(),
	); err != nil {
		return nil, err
	}
	if r.paidAt.IsZero() {
		r.paidAt = now
	}
	return r, nil
}

// RestoreRecord rebuilds a ledger row from storage.
func RestoreRecord(
	id kernel.UUID,
	snapshot ParcelSnapshot,
	payerEmail, intentID string,
	amount int64,
	paidAt time.Time,
	status parcel.PaymentStatus,
	source Source,
	createdAt time.Time,
) (*Record, error) {
	if err := errors.Join(id.Validate(), source.Validate()); err != nil {
		return nil, err
	}
	return &Record{
		id:            id,
		parcel:        snapshot,
		payerEmail:    payerEmail,
		intentID:      intentID,
		amount:        amount,
		paidAt:        paidAt,
		paymentStatus: status,
		source:        source,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) ID() kernel.UUID                     { return r.id }
func (r *Record) Parcel() ParcelSnapshot              { return r.parcel }
func (r *Record) PayerEmail() string                  { return r.payerEmail }
func (r *Record) IntentID() string                    { return r.intentID }
func (r *Record) Amount() int64                       { return r.amount }
func (r *Record) PaidAt() time.Time                   { return r.paidAt }
func (r *Record) PaymentStatus() parcel.PaymentStatus { return r.paymentStatus }
func (r *Record) Source() Source                      { return r.source }
func (r *Record) CreatedAt() time.Time                { return r.createdAt }
