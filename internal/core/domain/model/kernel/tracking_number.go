package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"parceltrack/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

const trackingNumberPrefix = "PCL-"

var trackingNumberRx = regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-]{5,39}$`)

// TrackingNumber is the human-facing parcel identifier. It is unique and
// never changes once assigned to a parcel.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a sortable tracking number, PCL-<ULID>.
func NewTrackingNumber() TrackingNumber {
	return TrackingNumber{value: trackingNumberPrefix + ulid.Make().String()}
}

// ParseTrackingNumber accepts a client-supplied or stored tracking number.
// Input is trimmed and upper-cased.
func ParseTrackingNumber(s string) (TrackingNumber, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if v == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberRx.MatchString(v) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q must be 6-40 characters of A-Z, 0-9 or '-'", s),
		)
	}
	return TrackingNumber{value: v}, nil
}

func (t TrackingNumber) String() string {
	return t.value
}

func (t TrackingNumber) IsZero() bool {
	return t.value == ""
}
