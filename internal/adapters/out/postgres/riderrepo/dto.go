// Package riderrepo persists rider applications.
package riderrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for rider applications.
type RiderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"index;not null"`
	Phone        string
	Region       string
	District     string
	NationalID   string
	VehicleType  string
	VehicleRegNo string
	Status       string    `gorm:"size:16;index;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(r *rider.Rider) RiderDTO {
	a := r.Application()
	return RiderDTO{
		ID:           r.ID().Bytes(),
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		Region:       a.Region,
		District:     a.District,
		NationalID:   a.NationalID,
		VehicleType:  a.VehicleType,
		VehicleRegNo: a.VehicleRegNo,
		Status:       string(r.Status()),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, rider.Application{
		Name:         dto.Name,
		Email:        dto.Email,
		Phone:        dto.Phone,
		Region:       dto.Region,
		District:     dto.District,
		NationalID:   dto.NationalID,
		VehicleType:  dto.VehicleType,
		VehicleRegNo: dto.VehicleRegNo,
	}, rider.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt)
}

func toDomainList(dtos []RiderDTO) ([]*rider.Rider, error) {
	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		r, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, r)
	}
	return riders, nil
}
