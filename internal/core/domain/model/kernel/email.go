package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// NormalizeEmail trims and lower-cases an address after checking it parses
// as a bare RFC 5322 address. Users, riders and parcel owners are matched on
// the normalized form.
func NormalizeEmail(paramName, s string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return "", errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not an email address", s))
	}
	return v, nil
}
