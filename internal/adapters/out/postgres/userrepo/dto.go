// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user accounts. The rider
// columns are empty for accounts that never had rider access.
type UserDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"uniqueIndex;not null"`
	Name         string
	Role         string     `gorm:"size:16;index;not null"`
	RiderID      *uuid.UUID `gorm:"type:uuid;index"`
	Phone        string
	Region       string
	District     string
	VehicleType  string
	VehicleRegNo string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	LastLoginAt  time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	dto := UserDTO{
		ID:          u.ID().Bytes(),
		Email:       u.Email(),
		Name:        u.Name(),
		Role:        string(u.Role()),
		CreatedAt:   u.CreatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}

	if p := u.RiderProfile(); p != nil {
		riderID := p.RiderID.Bytes()
		dto.RiderID = &riderID
		dto.Phone = p.Phone
		dto.Region = p.Region
		dto.District = p.District
		dto.VehicleType = p.VehicleType
		dto.VehicleRegNo = p.VehicleRegNo
	}

	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var profile *user.RiderProfile
	if dto.RiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		profile = &user.RiderProfile{
			RiderID:      riderID,
			Name:         dto.Name,
			Phone:        dto.Phone,
			Region:       dto.Region,
			District:     dto.District,
			VehicleType:  dto.VehicleType,
			VehicleRegNo: dto.VehicleRegNo,
		}
	}

	return user.RestoreUser(id, dto.Email, dto.Name, user.Role(dto.Role), profile, dto.CreatedAt, dto.LastLoginAt)
}
