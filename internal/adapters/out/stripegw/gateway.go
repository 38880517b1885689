// Package stripegw implements ports.PaymentGateway on Stripe: payment
// intents are created through the v1 API and webhook payloads are checked
// against the endpoint signing secret.
package stripegw

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/payment"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const serviceName = "stripe"

// intentCreator is the slice of the Stripe client the gateway needs.
type intentCreator interface {
	Create(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)
}

// Gateway implements ports.PaymentGateway.
type Gateway struct {
	intents intentCreator
}

// NewGateway creates a gateway authenticated with secretKey.
func NewGateway(secretKey string) (*Gateway, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, errs.NewValueIsRequiredError("STRIPE_SECRET_KEY")
	}
	return &Gateway{intents: stripe.NewClient(secretKey).V1PaymentIntents}, nil
}

// CreateIntent opens a card payment intent. The parcel id doubles as the
// idempotency key so a retried request reuses the open intent.
func (g *Gateway) CreateIntent(ctx context.Context, req ports.IntentRequest) (ports.IntentResult, error) {
	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			payment.MetadataParcelID:       req.ParcelID,
			payment.MetadataTrackingNumber: req.TrackingNumber,
		},
	}
	if req.PayerEmail != "" {
		params.ReceiptEmail = stripe.String(req.PayerEmail)
		params.Metadata[payment.MetadataPayerEmail] = req.PayerEmail
	}
	params.SetIdempotencyKey(fmt.Sprintf("intent-%s-%d", req.ParcelID, req.Amount))

	pi, err := g.intents.Create(ctx, params)
	if err != nil {
		return ports.IntentResult{}, errs.NewUpstreamError(serviceName, err)
	}
	return ports.IntentResult{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// VerifyEvent checks the Stripe-Signature header and decodes the event.
// Events of kinds other than payment intents carry a nil Intent. An intent
// object that fails to decode is reported through Event.DecodeErr, since the
// delivery itself is authentic.
func (g *Gateway) VerifyEvent(payload []byte, signature, secret string) (payment.Event, error) {
	if secret == "" {
		return payment.Event{}, errs.NewSignatureIsInvalidError(errs.NewValueIsRequiredError("STRIPE_WEBHOOK_SECRET"))
	}

	ev, err := webhook.ConstructEventWithOptions(payload, signature, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return payment.Event{}, errs.NewSignatureIsInvalidError(err)
	}

	out := payment.Event{ID: ev.ID, Kind: payment.EventKind(ev.Type)}
	if !strings.HasPrefix(string(ev.Type), "payment_intent.") || ev.Data == nil {
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err = json.Unmarshal(ev.Data.Raw, &pi); err != nil {
		out.DecodeErr = errs.NewValueIsInvalidErrorWithCause("event.data.object", err)
		return out, nil
	}

	amount := pi.AmountReceived
	if amount == 0 {
		amount = pi.Amount
	}
	intent := &payment.Intent{
		ID:           pi.ID,
		Amount:       amount,
		Currency:     string(pi.Currency),
		ReceiptEmail: pi.ReceiptEmail,
		Metadata:     pi.Metadata,
		CreatedAt:    time.Unix(ev.Created, 0).UTC(),
	}
	if pi.LastPaymentError != nil {
		intent.FailureReason = pi.LastPaymentError.Msg
	}
	out.Intent = intent
	return out, nil
}
