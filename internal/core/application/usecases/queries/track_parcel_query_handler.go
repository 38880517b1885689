package queries

import (
	"context"

	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type TrackParcelQueryHandler struct {
	db *gorm.DB
}

func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			title,
			kind,
			status,
			payment_status,
			sender_region,
			receiver_region,
			receiver_district,
			rider_name,
			last_update_note,
			created_at,
			updated_at
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Rows()
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackParcelQueryResponse{}, err
		}
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber().String(),
		)
	}

	var resp TrackParcelQueryResponse
	err = rows.Scan(
		&resp.TrackingNumber,
		&resp.Title,
		&resp.Kind,
		&resp.Status,
		&resp.PaymentStatus,
		&resp.SenderRegion,
		&resp.ReceiverRegion,
		&resp.ReceiverDistrict,
		&resp.RiderName,
		&resp.LastUpdateNote,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	return resp, nil
}
