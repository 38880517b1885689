package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// Party is a sender or receiver.
type Party struct {
	Name     string `json:"name"`
	Region   string `json:"region,omitempty"`
	District string `json:"district,omitempty"`
	Address  string `json:"address,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

func (p Party) toDomain() parcel.Party {
	return parcel.Party{
		Name:     p.Name,
		Region:   p.Region,
		District: p.District,
		Address:  p.Address,
		Contact:  p.Contact,
	}
}

func partyOf(p parcel.Party) Party {
	return Party{
		Name:     p.Name,
		Region:   p.Region,
		District: p.District,
		Address:  p.Address,
		Contact:  p.Contact,
	}
}

type NewParcel struct {
	TrackingNumber string  `json:"trackingNumber"`
	Title          string  `json:"title"`
	Kind           string  `json:"kind"`
	Weight         float64 `json:"weight"`
	Sender         Party   `json:"sender"`
	Receiver       Party   `json:"receiver"`
	Cost           int64   `json:"cost"`
}

type Inserted struct {
	InsertedID     uuid.UUID `json:"insertedId"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
}

type Modified struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type Deleted struct {
	DeletedCount int64 `json:"deletedCount"`
}

type StatusUpdate struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type PaymentReport struct {
	PaymentIntentID string     `json:"paymentIntentId"`
	PaymentStatus   string     `json:"paymentStatus"`
	PaymentAmount   int64      `json:"paymentAmount"`
	PaymentDate     *time.Time `json:"paymentDate"`
	PayerEmail      string     `json:"payerEmail"`
}

type AssignmentRequest struct {
	RiderID     uuid.UUID `json:"riderId"`
	RiderName   string    `json:"riderName"`
	RiderEmail  string    `json:"riderEmail"`
	RiderPhone  string    `json:"riderPhone"`
	VehicleType string    `json:"vehicleType"`
}

type Assignment struct {
	TrackingNumber string     `json:"trackingNumber,omitempty"`
	RiderID        uuid.UUID  `json:"riderId"`
	RiderName      string     `json:"riderName"`
	RiderEmail     string     `json:"riderEmail"`
	RiderPhone     string     `json:"riderPhone,omitempty"`
	VehicleType    string     `json:"vehicleType,omitempty"`
	AssignedAt     *time.Time `json:"assignedAt,omitempty"`
}

type Parcel struct {
	ID                 uuid.UUID   `json:"id"`
	TrackingNumber     string      `json:"trackingNumber"`
	Title              string      `json:"title"`
	Kind               string      `json:"kind"`
	Weight             float64     `json:"weight,omitempty"`
	Sender             Party       `json:"sender"`
	Receiver           Party       `json:"receiver"`
	Cost               int64       `json:"cost"`
	UserEmail          string      `json:"userEmail"`
	Status             string      `json:"status"`
	PaymentStatus      string      `json:"paymentStatus,omitempty"`
	PaymentIntentID    string      `json:"paymentIntentId,omitempty"`
	PaymentAmount      *int64      `json:"paymentAmount,omitempty"`
	PaymentDate        *time.Time  `json:"paymentDate,omitempty"`
	PaymentConfirmedAt *time.Time  `json:"paymentConfirmedAt,omitempty"`
	AssignedRider      *Assignment `json:"assignedRider,omitempty"`
	LastUpdateNote     string      `json:"lastUpdateNote,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

func parcelOf(v queries.ParcelView) Parcel {
	p := Parcel{
		ID:             v.ID.Bytes(),
		TrackingNumber: v.TrackingNumber,
		Title:          v.Title,
		Kind:           v.Kind,
		Weight:         v.WeightKg,
		Sender:         partyOf(v.Sender),
		Receiver:       partyOf(v.Receiver),
		Cost:           v.Cost,
		UserEmail:      v.OwnerEmail,
		Status:         v.Status,
		PaymentStatus:  v.PaymentStatus,
		LastUpdateNote: v.LastUpdateNote,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}

	if v.Payment != nil {
		amount := v.Payment.Amount
		p.PaymentIntentID = v.Payment.IntentID
		p.PaymentAmount = &amount
		p.PaymentDate = v.Payment.Date
		p.PaymentConfirmedAt = v.Payment.ConfirmedAt
	}

	if v.Rider != nil {
		p.AssignedRider = &Assignment{
			RiderID:     v.Rider.ID.Bytes(),
			RiderName:   v.Rider.Name,
			RiderEmail:  v.Rider.Email,
			RiderPhone:  v.Rider.Phone,
			VehicleType: v.Rider.VehicleType,
			AssignedAt:  v.Rider.AssignedAt,
		}
	}

	return p
}

func parcelsOf(views []queries.ParcelView) []Parcel {
	out := make([]Parcel, len(views))
	for i, v := range views {
		out[i] = parcelOf(v)
	}
	return out
}

type Tracking struct {
	TrackingNumber   string    `json:"trackingNumber"`
	Title            string    `json:"title"`
	Kind             string    `json:"kind"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"paymentStatus,omitempty"`
	SenderRegion     string    `json:"senderRegion,omitempty"`
	ReceiverRegion   string    `json:"receiverRegion,omitempty"`
	ReceiverDistrict string    `json:"receiverDistrict,omitempty"`
	RiderName        string    `json:"riderName,omitempty"`
	LastUpdateNote   string    `json:"lastUpdateNote,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type IntentRequest struct {
	ParcelID   uuid.UUID `json:"parcelId"`
	PayerEmail string    `json:"payerEmail"`
}

type Intent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type WebhookAck struct {
	Received bool   `json:"received"`
	EventID  string `json:"eventId,omitempty"`
	Outcome  string `json:"outcome,omitempty"`
}

type PaymentRecord struct {
	ID              uuid.UUID `json:"id"`
	ParcelID        uuid.UUID `json:"parcelId"`
	TrackingNumber  string    `json:"trackingNumber"`
	Title           string    `json:"title"`
	SenderName      string    `json:"senderName"`
	SenderRegion    string    `json:"senderRegion"`
	ReceiverName    string    `json:"receiverName"`
	ReceiverRegion  string    `json:"receiverRegion"`
	PayerEmail      string    `json:"payerEmail"`
	PaymentIntentID string    `json:"paymentIntentId"`
	PaymentAmount   int64     `json:"paymentAmount"`
	PaymentDate     time.Time `json:"paymentDate"`
	PaymentStatus   string    `json:"paymentStatus"`
	Source          string    `json:"source"`
	CreatedAt       time.Time `json:"createdAt"`
}

func paymentsOf(views []queries.PaymentView) []PaymentRecord {
	out := make([]PaymentRecord, len(views))
	for i, v := range views {
		out[i] = PaymentRecord{
			ID:              v.ID.Bytes(),
			ParcelID:        v.ParcelID.Bytes(),
			TrackingNumber:  v.TrackingNumber,
			Title:           v.Title,
			SenderName:      v.SenderName,
			SenderRegion:    v.SenderRegion,
			ReceiverName:    v.ReceiverName,
			ReceiverRegion:  v.ReceiverRegion,
			PayerEmail:      v.PayerEmail,
			PaymentIntentID: v.IntentID,
			PaymentAmount:   v.Amount,
			PaymentDate:     v.PaidAt,
			PaymentStatus:   v.PaymentStatus,
			Source:          v.Source,
			CreatedAt:       v.CreatedAt,
		}
	}
	return out
}

type RiderApplication struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Region       string `json:"region"`
	District     string `json:"district"`
	NationalID   string `json:"nationalId"`
	VehicleType  string `json:"vehicleType"`
	VehicleRegNo string `json:"vehicleRegNo"`
}

type Rider struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Region       string    `json:"region,omitempty"`
	District     string    `json:"district,omitempty"`
	NationalID   string    `json:"nationalId,omitempty"`
	VehicleType  string    `json:"vehicleType,omitempty"`
	VehicleRegNo string    `json:"vehicleRegNo,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func riderOf(r *rider.Rider) Rider {
	a := r.Application()
	return Rider{
		ID:           r.ID().Bytes(),
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		Region:       a.Region,
		District:     a.District,
		NationalID:   a.NationalID,
		VehicleType:  a.VehicleType,
		VehicleRegNo: a.VehicleRegNo,
		Status:       r.Status().String(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func ridersOf(views []queries.RiderView) []Rider {
	out := make([]Rider, len(views))
	for i, v := range views {
		out[i] = Rider{
			ID:           v.ID.Bytes(),
			Name:         v.Name,
			Email:        v.Email,
			Phone:        v.Phone,
			Region:       v.Region,
			District:     v.District,
			NationalID:   v.NationalID,
			VehicleType:  v.VehicleType,
			VehicleRegNo: v.VehicleRegNo,
			Status:       v.Status,
			CreatedAt:    v.CreatedAt,
			UpdatedAt:    v.UpdatedAt,
		}
	}
	return out
}

type StatusChange struct {
	Status string `json:"status"`
}

type RiderStatusResult struct {
	Status            string `json:"status"`
	UserCreated       bool   `json:"userCreated"`
	UserChanged       bool   `json:"userChanged"`
	ProvisioningError string `json:"provisioningError,omitempty"`
}

type Registration struct {
	UserID  uuid.UUID `json:"userId"`
	Role    string    `json:"role"`
	Created bool      `json:"created"`
}

type RoleChange struct {
	Role string `json:"role"`
}

type UserRole struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name,omitempty"`
	Role        string     `json:"role"`
	RiderID     *uuid.UUID `json:"riderId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt time.Time  `json:"lastLoginAt"`
}

func usersOf(views []queries.UserView) []User {
	out := make([]User, len(views))
	for i, v := range views {
		u := User{
			ID:          v.ID.Bytes(),
			Email:       v.Email,
			Name:        v.Name,
			Role:        v.Role,
			CreatedAt:   v.CreatedAt,
			LastLoginAt: v.LastLoginAt,
		}
		if v.RiderID != nil {
			rid := v.RiderID.Bytes()
			u.RiderID = &rid
		}
		out[i] = u
	}
	return out
}
