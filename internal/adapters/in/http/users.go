package http

import (
	"net/http"
	"strings"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users, called by clients after every
// sign-in. The account is keyed by the verified email of the caller.
func (s *Server) RegisterUser(c echo.Context) error {
	caller := principalOf(c)

	var body struct {
		Name string `json:"name"`
	}
	if err := bindBody(c, &body); err != nil {
		return err
	}

	name := body.Name
	if strings.TrimSpace(name) == "" {
		name = caller.Name
	}

	cmd, err := commands.NewRegisterUserCommand(caller.Email, name)
	if err != nil {
		return err
	}

	res, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Registration{
		UserID:  res.UserID.Bytes(),
		Role:    res.Role.String(),
		Created: res.Created,
	})
}

// ListUsers handles GET /api/v1/users for admins, optionally filtered by an
// email fragment.
func (s *Server) ListUsers(c echo.Context) error {
	fragment, err := queryString(c, "email")
	if err != nil {
		return err
	}

	views, err := s.handlers.ListUsers.Handle(c.Request().Context(), queries.NewListUsersQuery(fragment))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usersOf(views))
}

// GetUserRole handles GET /api/v1/users/:user/role. Callers may read their
// own role; admins may read anyone's.
func (s *Server) GetUserRole(c echo.Context) error {
	ctx := c.Request().Context()

	query, err := queries.NewGetUserRoleQuery(c.Param("user"))
	if err != nil {
		return err
	}
	if err = s.policy.RequireOwnerOrAdmin(ctx, principalOf(c), query.Email()); err != nil {
		return err
	}

	resp, err := s.handlers.GetUserRole.Handle(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, UserRole{Email: resp.Email, Role: resp.Role.String()})
}

// ChangeUserRole handles PATCH /api/v1/users/:user/role for admins.
func (s *Server) ChangeUserRole(c echo.Context) error {
	id, err := pathUUID(c, "user")
	if err != nil {
		return err
	}

	var body RoleChange
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewChangeUserRoleCommand(id, body.Role)
	if err != nil {
		return err
	}

	modified, err := s.handlers.ChangeUserRole.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Modified{ModifiedCount: modified})
}

// DeleteUser handles DELETE /api/v1/users/:id for admins.
func (s *Server) DeleteUser(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return err
	}

	deleted, err := s.handlers.DeleteUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Deleted{DeletedCount: deleted})
}
