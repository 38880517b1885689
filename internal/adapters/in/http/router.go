package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Options configures NewEcho.
type Options struct {
	// RequestTimeout bounds every request's context; zero disables it.
	RequestTimeout time.Duration
	// Spec is served at /openapi.json and drives request validation.
	Spec *openapi3.T
}

// NewEcho builds the echo instance with middleware, documentation routes
// and the /api/v1 routes of s.
func NewEcho(s *Server, opts Options) (*echo.Echo, error) {
	validate, err := requestValidator(opts.Spec)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.HandleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURI:        true,
		LogStatus:     true,
		LogLatency:    true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: s.logRequest,
	}))
	e.Use(middleware.BodyLimit("1M"))
	if opts.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: opts.RequestTimeout,
		}))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, opts.Spec)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	s.Register(e.Group("/api/v1"), validate)

	return e, nil
}

// Register adds the API routes to g.
func (s *Server) Register(g *echo.Group, validate echo.MiddlewareFunc) {
	public := []echo.MiddlewareFunc{validate}
	authed := []echo.MiddlewareFunc{s.authenticate, validate}
	admin := []echo.MiddlewareFunc{s.authenticate, s.requireAdmin, validate}

	g.POST("/parcels", s.CreateParcel, authed...)
	g.GET("/parcels", s.ListParcels, authed...)
	g.GET("/parcels/:id", s.GetParcel, authed...)
	g.DELETE("/parcels/:id", s.DeleteParcel, authed...)
	g.PATCH("/parcels/:id/status", s.UpdateParcelStatus, authed...)
	g.POST("/parcels/:id/payments", s.RecordPayment, authed...)
	g.PATCH("/parcels/:id/assign", s.AssignRider, admin...)
	g.GET("/rider/parcels", s.ListRiderParcels, authed...)
	g.GET("/track/:trackingNumber", s.TrackParcel, public...)

	g.GET("/payments", s.ListPayments, authed...)
	g.POST("/payments/intents", s.CreatePaymentIntent, authed...)
	g.POST("/webhooks/payments", s.ReceivePaymentWebhook, public...)

	g.POST("/users", s.RegisterUser, authed...)
	g.GET("/users", s.ListUsers, admin...)
	g.GET("/users/:user/role", s.GetUserRole, authed...)
	g.PATCH("/users/:user/role", s.ChangeUserRole, admin...)
	g.DELETE("/users/:id", s.DeleteUser, admin...)

	g.POST("/riders", s.ApplyAsRider, authed...)
	g.GET("/riders", s.ListRiders, admin...)
	g.PATCH("/riders/:id/status", s.SetRiderStatus, admin...)
	g.DELETE("/riders/:id", s.DeleteRider, admin...)
}

func (s *Server) logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	level := slog.LevelInfo
	switch {
	case v.Status >= http.StatusInternalServerError:
		level = slog.LevelError
	case v.Status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	attrs := []slog.Attr{
		slog.String("method", v.Method),
		slog.String("uri", v.URI),
		slog.Int("status", v.Status),
		slog.Duration("latency", v.Latency),
	}
	if v.Error != nil {
		attrs = append(attrs, slog.String("error", v.Error.Error()))
	}

	s.logger.LogAttrs(c.Request().Context(), level, "Request handled", attrs...)
	return nil
}
