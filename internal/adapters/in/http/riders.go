package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"

	"github.com/labstack/echo/v4"
)

// ApplyAsRider handles POST /api/v1/riders. The application email defaults
// to the caller's.
func (s *Server) ApplyAsRider(c echo.Context) error {
	var body RiderApplication
	if err := bindBody(c, &body); err != nil {
		return err
	}

	email := body.Email
	if email == "" {
		email = principalOf(c).Email
	}

	cmd, err := commands.NewApplyAsRiderCommand(kernel.NewUUID(), rider.Application{
		Name:         body.Name,
		Email:        email,
		Phone:        body.Phone,
		Region:       body.Region,
		District:     body.District,
		NationalID:   body.NationalID,
		VehicleType:  body.VehicleType,
		VehicleRegNo: body.VehicleRegNo,
	})
	if err != nil {
		return err
	}

	r, err := s.handlers.ApplyAsRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, riderOf(r))
}

// ListRiders handles GET /api/v1/riders for admins.
func (s *Server) ListRiders(c echo.Context) error {
	status, err := queryString(c, "status")
	if err != nil {
		return err
	}

	query, err := queries.NewListRidersQuery(status)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListRiders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ridersOf(views))
}

// SetRiderStatus handles PATCH /api/v1/riders/:id/status for admins. A
// failed user provisioning does not fail the request; it is reported in the
// body and retried by the provisioning job.
func (s *Server) SetRiderStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body StatusChange
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSetRiderStatusCommand(id, body.Status)
	if err != nil {
		return err
	}

	res, err := s.handlers.SetRiderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	out := RiderStatusResult{
		Status:      res.Status.String(),
		UserCreated: res.UserCreated,
		UserChanged: res.UserChanged,
	}
	if res.ProvisioningErr != nil {
		out.ProvisioningError = res.ProvisioningErr.Error()
	}

	return c.JSON(http.StatusOK, out)
}

// DeleteRider handles DELETE /api/v1/riders/:id for admins.
func (s *Server) DeleteRider(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteRiderCommand(id)
	if err != nil {
		return err
	}

	deleted, err := s.handlers.DeleteRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Deleted{DeletedCount: deleted})
}
