// Package paymentrepo persists the append-only payment ledger. Rows are
// inserted once per payment intent id and never updated.
package paymentrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// RecordDTO represents one ledger row.
type RecordDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID        uuid.UUID `gorm:"type:uuid;index;not null"`
	TrackingNumber  string    `gorm:"size:40"`
	Title           string
	SenderName      string
	SenderRegion    string
	ReceiverName    string
	ReceiverRegion  string
	PayerEmail      string    `gorm:"index"`
	PaymentIntentID string    `gorm:"size:255;uniqueIndex;not null"`
	PaymentAmount   int64     `gorm:"not null"`
	PaymentDate     time.Time `gorm:"not null"`
	PaymentStatus   string    `gorm:"size:16;not null"`
	Source          string    `gorm:"size:16;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false;index"`
}

// TableName specifies the database table name for ledger rows.
func (RecordDTO) TableName() string {
	return "payment_records"
}

func fromDomain(r *payment.Record) RecordDTO {
	s := r.Parcel()
	return RecordDTO{
		ID:              r.ID().Bytes(),
		ParcelID:        s.ParcelID.Bytes(),
		TrackingNumber:  s.TrackingNumber,
		Title:           s.Title,
		SenderName:      s.SenderName,
		SenderRegion:    s.SenderRegion,
		ReceiverName:    s.ReceiverName,
		ReceiverRegion:  s.ReceiverRegion,
		PayerEmail:      r.PayerEmail(),
		PaymentIntentID: r.IntentID(),
		PaymentAmount:   r.Amount(),
		PaymentDate:     r.PaidAt(),
		PaymentStatus:   string(r.PaymentStatus()),
		Source:          string(r.Source()),
		CreatedAt:       r.CreatedAt(),
	}
}

func toDomain(dto RecordDTO) (*payment.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestoreRecord(
		id,
		payment.ParcelSnapshot{
			ParcelID:       parcelID,
			TrackingNumber: dto.TrackingNumber,
			Title:          dto.Title,
			SenderName:     dto.SenderName,
			SenderRegion:   dto.SenderRegion,
			ReceiverName:   dto.ReceiverName,
			ReceiverRegion: dto.ReceiverRegion,
		},
		dto.PayerEmail,
		dto.PaymentIntentID,
		dto.PaymentAmount,
		dto.PaymentDate,
		parcel.PaymentStatus(dto.PaymentStatus),
		payment.Source(dto.Source),
		dto.CreatedAt,
	)
}
