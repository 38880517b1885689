package commands

import (
	"errors"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrReconcileWebhookEventCommandIsNotConstructed = errors.New(
	"ReconcileWebhookEventCommand must be created via NewReconcileWebhookEventCommand constructor",
)

// ReconcileWebhookEventCommand is a raw gateway delivery: the body exactly
// as received and its signature header.
type ReconcileWebhookEventCommand struct {
	payload   []byte
	signature string

	guard guard.ConstructorGuard
}

func NewReconcileWebhookEventCommand(payload []byte, signature string) (ReconcileWebhookEventCommand, error) {
	if len(payload) == 0 {
		return ReconcileWebhookEventCommand{}, errs.NewValueIsRequiredError("payload")
	}
	if signature == "" {
		return ReconcileWebhookEventCommand{}, errs.NewSignatureIsInvalidError(errs.NewValueIsRequiredError("signature"))
	}

	return ReconcileWebhookEventCommand{
		payload:   payload,
		signature: signature,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileWebhookEventCommand) Validate() error {
	return c.guard.Validate(ErrReconcileWebhookEventCommandIsNotConstructed)
}

func (c ReconcileWebhookEventCommand) Payload() []byte   { return c.payload }
func (c ReconcileWebhookEventCommand) Signature() string { return c.signature }
