package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRidersQueryHandler struct {
	db *gorm.DB
}

func NewListRidersQueryHandler(db *gorm.DB) ListRidersQueryHandler {
	return ListRidersQueryHandler{db: db}
}

func (h ListRidersQueryHandler) Handle(ctx context.Context, query ListRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("riders").Select(`
		id,
		name,
		email,
		phone,
		region,
		district,
		national_id,
		vehicle_type,
		vehicle_reg_no,
		status,
		created_at,
		updated_at`)
	if query.status != nil {
		tx = tx.Where("status = ?", string(*query.status))
	}

	rows, err := tx.Order("created_at").Order("id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]RiderView, 0)
	for rows.Next() {
		var r RiderView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&r.Name,
			&r.Email,
			&r.Phone,
			&r.Region,
			&r.District,
			&r.NationalID,
			&r.VehicleType,
			&r.VehicleRegNo,
			&r.Status,
			&r.CreatedAt,
			&r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if r.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		riders = append(riders, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
