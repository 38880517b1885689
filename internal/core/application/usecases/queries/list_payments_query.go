package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListPaymentsQueryIsNotConstructed = errors.New(
		"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
	)
)

// ListPaymentsQuery lists payment ledger rows newest first. An empty payer
// email lists the whole ledger.
type ListPaymentsQuery struct {
	payerEmail string

	guard guard.ConstructorGuard
}

func NewListPaymentsQuery(payerEmail string) (ListPaymentsQuery, error) {
	q := ListPaymentsQuery{guard: guard.NewConstructorGuard()}
	if payerEmail == "" {
		return q, nil
	}

	email, err := kernel.NormalizeEmail("email", payerEmail)
	if err != nil {
		return ListPaymentsQuery{}, err
	}
	q.payerEmail = email

	return q, nil
}

func (q ListPaymentsQuery) PayerEmail() string {
	return q.payerEmail
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

// PaymentView is one ledger row together with the parcel snapshot taken
// when it was recorded.
type PaymentView struct {
	ID             kernel.UUID
	ParcelID       kernel.UUID
	TrackingNumber string
	Title          string
	SenderName     string
	SenderRegion   string
	ReceiverName   string
	ReceiverRegion string
	PayerEmail     string
	IntentID       string
	Amount         int64
	PaidAt         time.Time
	PaymentStatus  string
	Source         string
	CreatedAt      time.Time
}
