package parcel

import (
	"parceltrack/internal/pkg/errs"
)

// Status is the logistics state of a parcel.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPaid           Status = "paid"
	StatusProcessing     Status = "processing"
	StatusShipped        Status = "shipped"
	StatusInTransit      Status = "in-transit"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusAssigned       Status = "assigned"
)

var allStatuses = []Status{
	StatusPending,
	StatusPaid,
	StatusProcessing,
	StatusShipped,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
	StatusAssigned,
}

// Statuses returns the closed set of logistics statuses.
func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func statusNames() []string {
	names := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		names[i] = string(s)
	}
	return names
}

// ParseStatus returns an InvalidStatusError for values outside the set.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	for _, known := range allStatuses {
		if s == known {
			return nil
		}
	}
	return errs.NewInvalidStatusError(string(s), statusNames())
}

func (s Status) String() string {
	return string(s)
}
