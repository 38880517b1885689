package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/payment"
)

// IntentRequest describes a payment intent to open for a parcel.
type IntentRequest struct {
	// Amount is in minor currency units.
	Amount         int64
	Currency       string
	ParcelID       string
	TrackingNumber string
	PayerEmail     string
}

// IntentResult is what the client needs to complete the charge.
type IntentResult struct {
	ID           string
	ClientSecret string
}

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	// CreateIntent opens a payment intent. Failures are errs.UpstreamError.
	CreateIntent(ctx context.Context, req IntentRequest) (IntentResult, error)

	// VerifyEvent checks the signature of a webhook payload against secret
	// and decodes it. A bad signature is errs.SignatureIsInvalidError.
	VerifyEvent(payload []byte, signature, secret string) (payment.Event, error)
}
