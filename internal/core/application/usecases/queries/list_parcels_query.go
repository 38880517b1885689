package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrListParcelsQueryIsNotConstructed = errors.New(
		"ListParcelsQuery must be created via NewListParcelsQuery constructor",
	)
)

// ListParcelsQuery lists parcels newest first. An empty owner email lists
// every owner's parcels; callers restrict that to administrators. Empty
// status filters match any value, and "unset" matches parcels that have no
// payment yet.
type ListParcelsQuery struct {
	ownerEmail    string
	status        *parcel.Status
	paymentStatus *parcel.PaymentStatus

	guard guard.ConstructorGuard
}

func NewListParcelsQuery(ownerEmail, status, paymentStatus string) (ListParcelsQuery, error) {
	q := ListParcelsQuery{guard: guard.NewConstructorGuard()}

	if ownerEmail != "" {
		email, err := kernel.NormalizeEmail("email", ownerEmail)
		if err != nil {
			return ListParcelsQuery{}, err
		}
		q.ownerEmail = email
	}

	if status != "" {
		st, err := parcel.ParseStatus(status)
		if err != nil {
			return ListParcelsQuery{}, err
		}
		q.status = &st
	}

	if paymentStatus != "" {
		ps, err := parcel.ParsePaymentStatus(paymentStatus)
		if err != nil {
			return ListParcelsQuery{}, err
		}
		q.paymentStatus = &ps
	}

	return q, nil
}

func (q ListParcelsQuery) OwnerEmail() string {
	return q.ownerEmail
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}
