package queries

import (
	"context"

	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler reads a single parcel row.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle returns the parcel, or ObjectNotFoundError when no row matches.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+parcelColumns+` FROM parcels WHERE id = ?`,
		query.ParcelID().Bytes(),
	).Rows()
	if err != nil {
		return ParcelView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelView{}, err
		}
		return ParcelView{}, errs.NewObjectNotFoundError("parcelID", query.ParcelID().String())
	}

	return scanParcel(rows)
}
