package paymentrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/payment"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRecordRepository implements PaymentRecordRepository using GORM.
type GormRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormRecordRepository {
	return &GormRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddIfAbsent inserts with ON CONFLICT (payment_intent_id) DO NOTHING and
// reports whether the row was new.
func (r *GormRecordRepository) AddIfAbsent(ctx context.Context, record *payment.Record) (bool, error) {
	if err := record.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_intent_id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return true, nil
}

// GetByIntentID retrieves the ledger row of a payment intent.
func (r *GormRecordRepository) GetByIntentID(ctx context.Context, intentID string) (*payment.Record, error) {
	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "payment_intent_id = ?", intentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("paymentIntentId", intentID)
		}
		return nil, err
	}
	return toDomain(dto)
}
