package http

import (
	"parceltrack/internal/core/application/access"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// authenticate rejects requests without a verifiable bearer credential and
// stores the caller on the echo context.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, err := s.policy.Authenticate(
			c.Request().Context(),
			c.Request().Header.Get(echo.HeaderAuthorization),
		)
		if err != nil {
			return err
		}
		c.Set(principalKey, caller)
		return next(c)
	}
}

// requireAdmin must run after authenticate.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := s.policy.RequireAdmin(c.Request().Context(), principalOf(c)); err != nil {
			return err
		}
		return next(c)
	}
}

func principalOf(c echo.Context) access.Principal {
	p, _ := c.Get(principalKey).(access.Principal)
	return p
}
