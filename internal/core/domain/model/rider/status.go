package rider

import "parceltrack/internal/pkg/errs"

// Status is the review state of a rider application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusActive, StatusRejected:
		return nil
	}
	return errs.NewInvalidStatusError(string(s), []string{"pending", "active", "rejected"})
}

func (s Status) String() string {
	return string(s)
}
