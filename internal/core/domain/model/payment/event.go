package payment

import "time"

// EventKind is the gateway event type.
type EventKind string

const (
	EventIntentSucceeded EventKind = "payment_intent.succeeded"
	EventIntentFailed    EventKind = "payment_intent.payment_failed"
)

// Event is a gateway event whose signature has been verified.
// DecodeErr is set when the signature verified but the event object could
// not be decoded; Intent is nil then.
type Event struct {
	ID        string
	Kind      EventKind
	Intent    *Intent
	DecodeErr error
}

// Intent is the payment-intent payload of an event.
type Intent struct {
	ID            string
	Amount        int64
	Currency      string
	ReceiptEmail  string
	FailureReason string
	Metadata      map[string]string
	CreatedAt     time.Time
}

// Metadata keys set when creating intents and read back from events.
const (
	MetadataParcelID       = "parcelId"
	MetadataTrackingNumber = "trackingNumber"
	MetadataPayerEmail     = "payerEmail"
)

// ParcelID returns the parcel id carried in the intent metadata.
func (i *Intent) ParcelID() string {
	if i == nil || i.Metadata == nil {
		return ""
	}
	return i.Metadata[MetadataParcelID]
}
