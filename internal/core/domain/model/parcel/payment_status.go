package parcel

import (
	"parceltrack/internal/pkg/errs"
)

// PaymentStatus tracks the payment-gateway state of a parcel, separately
// from its logistics Status.
//
//	unset ──> pending ──> paid ──> confirmed
//
// The client reports pending, paid or confirmed; a verified gateway event
// always sets confirmed.
type PaymentStatus string

const (
	PaymentUnset     PaymentStatus = ""
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentConfirmed PaymentStatus = "confirmed"
)

// ParsePaymentStatus accepts "", "unset", "pending", "paid" and "confirmed".
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentUnset, "unset":
		return PaymentUnset, nil
	case PaymentPending, PaymentPaid, PaymentConfirmed:
		return PaymentStatus(s), nil
	}
	return "", errs.NewInvalidStatusError(s, []string{"unset", "pending", "paid", "confirmed"})
}

// ParseReportedPaymentStatus validates a status reported by a client.
// Unset cannot be reported.
func ParseReportedPaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentConfirmed:
		return PaymentStatus(s), nil
	}
	return "", errs.NewInvalidStatusError(s, []string{"pending", "paid", "confirmed"})
}

// IsSettled reports whether money has been collected, by client report or
// gateway confirmation.
func (s PaymentStatus) IsSettled() bool {
	return s == PaymentPaid || s == PaymentConfirmed
}

// String renders PaymentUnset as "unset".
func (s PaymentStatus) String() string {
	if s == PaymentUnset {
		return "unset"
	}
	return string(s)
}
