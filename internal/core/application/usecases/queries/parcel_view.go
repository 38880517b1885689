package queries

import (
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// parcelColumns lists the parcels columns in the order scanParcel reads them.
const parcelColumns = `
	id,
	tracking_number,
	title,
	kind,
	weight_kg,
	sender_name, sender_region, sender_district, sender_address, sender_contact,
	receiver_name, receiver_region, receiver_district, receiver_address, receiver_contact,
	cost,
	user_email,
	status,
	payment_status,
	payment_intent_id, payment_amount, payment_date, payment_confirmed_at,
	rider_id, rider_name, rider_email, rider_phone, rider_vehicle_type, rider_assigned_at,
	last_update_note,
	created_at,
	updated_at`

// ParcelView is the read model of a parcel. Payment and Rider are nil until
// a payment is reported or a rider is assigned.
type ParcelView struct {
	ID             kernel.UUID
	TrackingNumber string
	Title          string
	Kind           string
	WeightKg       float64
	Sender         parcel.Party
	Receiver       parcel.Party
	Cost           int64
	OwnerEmail     string
	Status         string
	PaymentStatus  string
	Payment        *PaymentInfo
	Rider          *RiderInfo
	LastUpdateNote string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PaymentInfo is the payment embedded in a ParcelView.
type PaymentInfo struct {
	IntentID    string
	Amount      int64
	Date        *time.Time
	ConfirmedAt *time.Time
}

// RiderInfo is the assignment snapshot embedded in a ParcelView.
type RiderInfo struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Phone       string
	VehicleType string
	AssignedAt  *time.Time
}

// RiderEmail returns the assigned rider's email, or "" when unassigned.
func (v ParcelView) RiderEmail() string {
	if v.Rider == nil {
		return ""
	}
	return v.Rider.Email
}

func scanParcel(rows *sql.Rows) (ParcelView, error) {
	var (
		view              ParcelView
		id                uuid.UUID
		intentID          sql.NullString
		amount            sql.NullInt64
		paidAt, confirmed sql.NullTime
		riderID           uuid.NullUUID
		riderAssignedAt   sql.NullTime
		rider             RiderInfo
		sender, receiver  parcel.Party
	)

	err := rows.Scan(
		&id,
		&view.TrackingNumber,
		&view.Title,
		&view.Kind,
		&view.WeightKg,
		&sender.Name, &sender.Region, &sender.District, &sender.Address, &sender.Contact,
		&receiver.Name, &receiver.Region, &receiver.District, &receiver.Address, &receiver.Contact,
		&view.Cost,
		&view.OwnerEmail,
		&view.Status,
		&view.PaymentStatus,
		&intentID, &amount, &paidAt, &confirmed,
		&riderID, &rider.Name, &rider.Email, &rider.Phone, &rider.VehicleType, &riderAssignedAt,
		&view.LastUpdateNote,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return ParcelView{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelView{}, err
	}
	view.ID = parcelID
	view.Sender = sender
	view.Receiver = receiver

	if intentID.Valid {
		view.Payment = &PaymentInfo{
			IntentID:    intentID.String,
			Amount:      amount.Int64,
			Date:        timePtr(paidAt),
			ConfirmedAt: timePtr(confirmed),
		}
	}

	if riderID.Valid {
		rid, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if idErr != nil {
			return ParcelView{}, idErr
		}
		rider.ID = rid
		rider.AssignedAt = timePtr(riderAssignedAt)
		view.Rider = &rider
	}

	return view, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
