package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("payment_records").Select(`
		id,
		parcel_id,
		tracking_number,
		title,
		sender_name,
		sender_region,
		receiver_name,
		receiver_region,
		payer_email,
		payment_intent_id,
		payment_amount,
		payment_date,
		payment_status,
		source,
		created_at`)
	if query.PayerEmail() != "" {
		tx = tx.Where("payer_email = ?", query.PayerEmail())
	}

	rows, err := tx.Order("payment_date DESC").Order("created_at DESC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentView, 0)
	for rows.Next() {
		var p PaymentView
		var id, parcelID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&p.TrackingNumber,
			&p.Title,
			&p.SenderName,
			&p.SenderRegion,
			&p.ReceiverName,
			&p.ReceiverRegion,
			&p.PayerEmail,
			&p.IntentID,
			&p.Amount,
			&p.PaidAt,
			&p.PaymentStatus,
			&p.Source,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if p.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
