package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListRiderParcelsQueryIsNotConstructed = errors.New(
		"ListRiderParcelsQuery must be created via NewListRiderParcelsQuery constructor",
	)
)

// ListRiderParcelsQuery lists the parcels assigned to one rider, most
// recently assigned first.
type ListRiderParcelsQuery struct {
	riderEmail string

	guard guard.ConstructorGuard
}

func NewListRiderParcelsQuery(riderEmail string) (ListRiderParcelsQuery, error) {
	email, err := kernel.NormalizeEmail("riderEmail", riderEmail)
	if err != nil {
		return ListRiderParcelsQuery{}, err
	}

	return ListRiderParcelsQuery{
		riderEmail: email,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListRiderParcelsQuery) RiderEmail() string {
	return q.riderEmail
}

func (q ListRiderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListRiderParcelsQueryIsNotConstructed)
}
