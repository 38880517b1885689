package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand opens a gateway payment for the full cost of a
// parcel. PayerEmail is optional and becomes the receipt address.
type CreatePaymentIntentCommand struct {
	parcelID   kernel.UUID
	payerEmail string

	guard guard.ConstructorGuard
}

func NewCreatePaymentIntentCommand(parcelID kernel.UUID, payerEmail string) (CreatePaymentIntentCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return CreatePaymentIntentCommand{}, err
	}
	return CreatePaymentIntentCommand{
		parcelID:   parcelID,
		payerEmail: strings.TrimSpace(payerEmail),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

func (c CreatePaymentIntentCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c CreatePaymentIntentCommand) PayerEmail() string    { return c.payerEmail }
