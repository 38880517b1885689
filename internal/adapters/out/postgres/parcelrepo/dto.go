// Package parcelrepo persists parcel aggregates in the parcels table. The
// sender, receiver, payment and assigned-rider parts are embedded columns
// of the same row, so one row lock covers the whole aggregate.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
type ParcelDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber string     `gorm:"size:40;uniqueIndex;not null"`
	Title          string     `gorm:"not null"`
	Kind           string     `gorm:"size:16;not null"`
	WeightKg       float64    `gorm:"type:double precision"`
	Sender         PartyDTO   `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver       PartyDTO   `gorm:"embedded;embeddedPrefix:receiver_"`
	Cost           int64      `gorm:"not null"`
	UserEmail      string     `gorm:"index;not null"`
	Status         string     `gorm:"size:32;index;not null"`
	PaymentStatus  string     `gorm:"size:16;index;not null;default:''"`
	Payment        PaymentDTO `gorm:"embedded;embeddedPrefix:payment_"`
	Rider          RiderDTO   `gorm:"embedded;embeddedPrefix:rider_"`
	LastUpdateNote string
	CreatedAt      time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// PartyDTO is the embedded sender or receiver.
type PartyDTO struct {
	Name     string
	Region   string
	District string
	Address  string
	Contact  string
}

// PaymentDTO is the embedded gateway payment. IntentID is nil until a
// payment is reported.
type PaymentDTO struct {
	IntentID    *string `gorm:"size:255;index"`
	Amount      *int64
	Date        *time.Time
	ConfirmedAt *time.Time
}

// RiderDTO is the embedded assignment snapshot. ID is nil while the parcel
// is unassigned; the conditional assignment update relies on that.
type RiderDTO struct {
	ID          *uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Email       string `gorm:"index"`
	Phone       string
	VehicleType string
	AssignedAt  *time.Time
}

func partyFromDomain(p parcel.Party) PartyDTO {
	return PartyDTO(p)
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:             p.ID().Bytes(),
		TrackingNumber: p.TrackingNumber().String(),
		Title:          p.Title(),
		Kind:           string(p.Kind()),
		WeightKg:       p.WeightKg(),
		Sender:         partyFromDomain(p.Sender()),
		Receiver:       partyFromDomain(p.Receiver()),
		Cost:           p.Cost(),
		UserEmail:      p.OwnerEmail(),
		Status:         string(p.Status()),
		PaymentStatus:  string(p.PaymentStatus()),
		LastUpdateNote: p.LastUpdateNote(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}

	if pay := p.Payment(); pay != nil {
		intentID := pay.IntentID
		amount := pay.Amount
		date := pay.PaidAt
		dto.Payment = PaymentDTO{
			IntentID:    &intentID,
			Amount:      &amount,
			Date:        &date,
			ConfirmedAt: pay.ConfirmedAt,
		}
	}

	if r := p.AssignedRider(); r != nil {
		riderID := r.RiderID.Bytes()
		assignedAt := r.AssignedAt
		dto.Rider = RiderDTO{
			ID:          &riderID,
			Name:        r.Name,
			Email:       r.Email,
			Phone:       r.Phone,
			VehicleType: r.VehicleType,
			AssignedAt:  &assignedAt,
		}
	}

	return dto
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tn, err := kernel.ParseTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	state := parcel.State{
		ID:             id,
		TrackingNumber: tn,
		Details: parcel.Details{
			TrackingNumber: tn,
			Title:          dto.Title,
			Kind:           parcel.Kind(dto.Kind),
			WeightKg:       dto.WeightKg,
			Sender:         parcel.Party(dto.Sender),
			Receiver:       parcel.Party(dto.Receiver),
			Cost:           dto.Cost,
			OwnerEmail:     dto.UserEmail,
		},
		Status:         parcel.Status(dto.Status),
		PaymentStatus:  parcel.PaymentStatus(dto.PaymentStatus),
		LastUpdateNote: dto.LastUpdateNote,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}

	if dto.Payment.IntentID != nil {
		pay := &parcel.Payment{IntentID: *dto.Payment.IntentID, ConfirmedAt: dto.Payment.ConfirmedAt}
		if dto.Payment.Amount != nil {
			pay.Amount = *dto.Payment.Amount
		}
		if dto.Payment.Date != nil {
			pay.PaidAt = *dto.Payment.Date
		}
		state.Payment = pay
	}

	if dto.Rider.ID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.Rider.ID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		r := &parcel.AssignedRider{
			RiderID:     riderID,
			Name:        dto.Rider.Name,
			Email:       dto.Rider.Email,
			Phone:       dto.Rider.Phone,
			VehicleType: dto.Rider.VehicleType,
		}
		if dto.Rider.AssignedAt != nil {
			r.AssignedAt = *dto.Rider.AssignedAt
		}
		state.AssignedRider = r
	}

	return parcel.RestoreParcel(state)
}
