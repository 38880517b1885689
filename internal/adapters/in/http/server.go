// Package http exposes the application over a JSON REST API built on echo.
// Handlers translate requests into commands and queries, authorize the
// caller through access.Policy and map domain errors to status codes.
package http

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/access"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/ports"
)

// Handler is implemented by every command and query handler.
type Handler[Req, Resp any] interface {
	Handle(ctx context.Context, req Req) (Resp, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateParcel          Handler[commands.CreateParcelCommand, commands.CreateParcelResult]
	UpdateParcelStatus    Handler[commands.UpdateParcelStatusCommand, int64]
	RecordPayment         Handler[commands.RecordPaymentCommand, int64]
	AssignRider           Handler[commands.AssignRiderCommand, commands.AssignRiderResult]
	DeleteParcel          Handler[commands.DeleteParcelCommand, int64]
	CreatePaymentIntent   Handler[commands.CreatePaymentIntentCommand, ports.IntentResult]
	ReconcileWebhookEvent Handler[commands.ReconcileWebhookEventCommand, commands.ReconcileResult]
	ApplyAsRider          Handler[commands.ApplyAsRiderCommand, *rider.Rider]
	SetRiderStatus        Handler[commands.SetRiderStatusCommand, commands.SetRiderStatusResult]
	DeleteRider           Handler[commands.DeleteRiderCommand, int64]
	RegisterUser          Handler[commands.RegisterUserCommand, commands.RegisterUserResult]
	ChangeUserRole        Handler[commands.ChangeUserRoleCommand, int64]
	DeleteUser            Handler[commands.DeleteUserCommand, int64]

	// Query handlers
	GetParcel        Handler[queries.GetParcelQuery, queries.ParcelView]
	TrackParcel      Handler[queries.TrackParcelQuery, queries.TrackParcelQueryResponse]
	ListParcels      Handler[queries.ListParcelsQuery, []queries.ParcelView]
	ListRiderParcels Handler[queries.ListRiderParcelsQuery, []queries.ParcelView]
	ListPayments     Handler[queries.ListPaymentsQuery, []queries.PaymentView]
	ListRiders       Handler[queries.ListRidersQuery, []queries.RiderView]
	ListUsers        Handler[queries.ListUsersQuery, []queries.UserView]
	GetUserRole      Handler[queries.GetUserRoleQuery, queries.GetUserRoleQueryResponse]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	policy   *access.Policy
	logger   *slog.Logger
}

func NewServer(handlers Handlers, policy *access.Policy, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		policy:   policy,
		logger:   logger.With("component", "http"),
	}
}
