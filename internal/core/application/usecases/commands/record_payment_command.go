package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand carries a payment the client reports after
// completing checkout. The client may only report pending or paid;
// confirmation comes from the gateway.
type RecordPaymentCommand struct {
	parcelID   kernel.UUID
	intentID   string
	status     parcel.PaymentStatus
	amount     int64
	paidAt     time.Time
	payerEmail string

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(
	parcelID kernel.UUID,
	intentID, status string,
	amount int64,
	paidAt time.Time,
	payerEmail string,
) (RecordPaymentCommand, error) {
	reported, statusErr := parcel.ParseReportedPaymentStatus(status)

	intentID = strings.TrimSpace(intentID)
	var intentErr error
	if intentID == "" {
		intentErr = errs.NewValueIsRequiredError("paymentIntentId")
	}

	var amountErr error
	if amount < 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("paymentAmount", fmt.Errorf("%d is negative", amount))
	}

	if err := errors.Join(parcelID.Validate(), intentErr, statusErr, amountErr); err != nil {
		return RecordPaymentCommand{}, err
	}

	return RecordPaymentCommand{
		parcelID:   parcelID,
		intentID:   intentID,
		status:     reported,
		amount:     amount,
		paidAt:     paidAt,
		payerEmail: strings.TrimSpace(payerEmail),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) ParcelID() kernel.UUID        { return c.parcelID }
func (c RecordPaymentCommand) IntentID() string             { return c.intentID }
func (c RecordPaymentCommand) Status() parcel.PaymentStatus { return c.status }
func (c RecordPaymentCommand) Amount() int64                { return c.amount }
func (c RecordPaymentCommand) PaidAt() time.Time            { return c.paidAt }
func (c RecordPaymentCommand) PayerEmail() string           { return c.payerEmail }
