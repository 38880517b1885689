package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListParcelsQueryHandler builds the filter with GORM's chain since every
// condition is optional.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("parcels").Select(parcelColumns)
	if query.ownerEmail != "" {
		tx = tx.Where("user_email = ?", query.ownerEmail)
	}
	if query.status != nil {
		tx = tx.Where("status = ?", string(*query.status))
	}
	if query.paymentStatus != nil {
		tx = tx.Where("payment_status = ?", string(*query.paymentStatus))
	}

	rows, err := tx.Order("created_at DESC").Order("id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelView, 0)
	for rows.Next() {
		view, scanErr := scanParcel(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
