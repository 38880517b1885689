package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
)

// TrackParcelQuery looks a parcel up by its public tracking number. It
// needs no credential, so its response leaves out contact details.
type TrackParcelQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

func NewTrackParcelQuery(trackingNumber string) (TrackParcelQuery, error) {
	tn, err := kernel.ParseTrackingNumber(trackingNumber)
	if err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingNumber: tn,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q TrackParcelQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackParcelQueryResponse is the public tracking view.
type TrackParcelQueryResponse struct {
	TrackingNumber   string
	Title            string
	Kind             string
	Status           string
	PaymentStatus    string
	SenderRegion     string
	ReceiverRegion   string
	ReceiverDistrict string
	RiderName        string
	LastUpdateNote   string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
