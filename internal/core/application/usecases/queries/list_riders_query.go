package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListRidersQueryIsNotConstructed = errors.New(
		"ListRidersQuery must be created via NewListRidersQuery constructor",
	)
)

// ListRidersQuery lists rider applications oldest first, so the review
// queue reads in arrival order. An empty status lists every application.
type ListRidersQuery struct {
	status *rider.Status

	guard guard.ConstructorGuard
}

func NewListRidersQuery(status string) (ListRidersQuery, error) {
	q := ListRidersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	st, err := rider.ParseStatus(status)
	if err != nil {
		return ListRidersQuery{}, err
	}
	q.status = &st

	return q, nil
}

func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

type RiderView struct {
	ID           kernel.UUID
	Name         string
	Email        string
	Phone        string
	Region       string
	District     string
	NationalID   string
	VehicleType  string
	VehicleRegNo string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
