package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/payment"
)

// PaymentRecordRepository is the append-only payment ledger.
type PaymentRecordRepository interface {
	// AddIfAbsent inserts the record unless one with the same payment intent
	// id exists. It reports whether a row was inserted. This is the
	// idempotency gate for both the client and the gateway paths.
	AddIfAbsent(ctx context.Context, record *payment.Record) (bool, error)
}
