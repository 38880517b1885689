package http

import (
	"io"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const signatureHeader = "Stripe-Signature"

// ListPayments handles GET /api/v1/payments. Without an email filter, or
// with someone else's, the caller must be an admin.
func (s *Server) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := queryString(c, "email")
	if err != nil {
		return err
	}
	if err = s.policy.RequireOwnerOrAdmin(ctx, principalOf(c), email); err != nil {
		return err
	}

	query, err := queries.NewListPaymentsQuery(email)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListPayments.Handle(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, paymentsOf(views))
}

// CreatePaymentIntent handles POST /api/v1/payments/intents for the parcel
// owner or an admin.
func (s *Server) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var body IntentRequest
	if err := bindBody(c, &body); err != nil {
		return err
	}

	parcelID, err := kernel.UUIDFromBytes(body.ParcelID[:])
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return err
	}
	view, err := s.handlers.GetParcel.Handle(ctx, query)
	if err != nil {
		return err
	}
	if err = s.policy.RequireOwnerOrAdmin(ctx, principalOf(c), view.OwnerEmail); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(parcelID, body.PayerEmail)
	if err != nil {
		return err
	}

	intent, err := s.handlers.CreatePaymentIntent.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Intent{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}

// ReceivePaymentWebhook handles POST /api/v1/webhooks/payments. The raw body
// is verified against the signature header. Once verified the event is
// acknowledged with 200 whatever its reconciliation outcome, so the gateway
// does not redeliver events that can never apply.
func (s *Server) ReceivePaymentWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	cmd, err := commands.NewReconcileWebhookEventCommand(payload, c.Request().Header.Get(signatureHeader))
	if err != nil {
		return err
	}

	res, err := s.handlers.ReconcileWebhookEvent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, WebhookAck{
		Received: true,
		EventID:  res.EventID,
		Outcome:  string(res.Outcome),
	})
}
