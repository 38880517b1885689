package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListRiderParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListRiderParcelsQueryHandler(db *gorm.DB) ListRiderParcelsQueryHandler {
	return ListRiderParcelsQueryHandler{db: db}
}

func (h ListRiderParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListRiderParcelsQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+parcelColumns+`
		FROM parcels
		WHERE rider_id IS NOT NULL AND lower(rider_email) = ?
		ORDER BY rider_assigned_at DESC, id`,
		query.RiderEmail(),
	).Rows()
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
