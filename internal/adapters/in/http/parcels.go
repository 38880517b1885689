package http

import (
	"net/http"
	"strings"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateParcel handles POST /api/v1/parcels. The caller becomes the owner.
func (s *Server) CreateParcel(c echo.Context) error {
	var body NewParcel
	if err := bindBody(c, &body); err != nil {
		return err
	}

	details := parcel.Details{
		Title:      body.Title,
		Kind:       parcel.Kind(body.Kind),
		WeightKg:   body.Weight,
		Sender:     body.Sender.toDomain(),
		Receiver:   body.Receiver.toDomain(),
		Cost:       body.Cost,
		OwnerEmail: principalOf(c).Email,
	}
	if strings.TrimSpace(body.TrackingNumber) != "" {
		tn, err := kernel.ParseTrackingNumber(body.TrackingNumber)
		if err != nil {
			return err
		}
		details.TrackingNumber = tn
	}

	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), details)
	if err != nil {
		return err
	}

	res, err := s.handlers.CreateParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, Inserted{
		InsertedID:     res.ParcelID.Bytes(),
		TrackingNumber: res.TrackingNumber.String(),
	})
}

// ListParcels handles GET /api/v1/parcels. Callers list their own parcels;
// listing another owner's parcels, or everyone's, needs the admin role.
func (s *Server) ListParcels(c echo.Context) error {
	ctx := c.Request().Context()
	caller := principalOf(c)

	email, err := queryString(c, "email")
	if err != nil {
		return err
	}
	status, err := queryString(c, "status")
	if err != nil {
		return err
	}
	paymentStatus, err := queryString(c, "paymentStatus")
	if err != nil {
		return err
	}

	if err = s.policy.RequireOwnerOrAdmin(ctx, caller, email); err != nil {
		return err
	}

	query, err := queries.NewListParcelsQuery(email, status, paymentStatus)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListParcels.Handle(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, parcelsOf(views))
}

// ListRiderParcels handles GET /api/v1/rider/parcels.
func (s *Server) ListRiderParcels(c echo.Context) error {
	ctx := c.Request().Context()
	caller := principalOf(c)

	if err := s.policy.RequireRider(ctx, caller); err != nil {
		return err
	}

	query, err := queries.NewListRiderParcelsQuery(caller.Email)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListRiderParcels.Handle(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, parcelsOf(views))
}

// GetParcel handles GET /api/v1/parcels/:id. The owner, the assigned rider
// and admins may read a parcel.
func (s *Server) GetParcel(c echo.Context) error {
	ctx := c.Request().Context()
	caller := principalOf(c)

	view, err := s.loadParcel(c)
	if err != nil {
		return err
	}

	riderEmail := view.RiderEmail()
	if riderEmail == "" || !strings.EqualFold(riderEmail, caller.Email) {
		if err = s.policy.RequireOwnerOrAdmin(ctx, caller, view.OwnerEmail); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, parcelOf(view))
}

// TrackParcel handles GET /api/v1/track/:trackingNumber without a credential.
func (s *Server) TrackParcel(c echo.Context) error {
	query, err := queries.NewTrackParcelQuery(c.Param("trackingNumber"))
	if err != nil {
		return err
	}

	resp, err := s.handlers.TrackParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Tracking{
		TrackingNumber:   resp.TrackingNumber,
		Title:            resp.Title,
		Kind:             resp.Kind,
		Status:           resp.Status,
		PaymentStatus:    resp.PaymentStatus,
		SenderRegion:     resp.SenderRegion,
		ReceiverRegion:   resp.ReceiverRegion,
		ReceiverDistrict: resp.ReceiverDistrict,
		RiderName:        resp.RiderName,
		LastUpdateNote:   resp.LastUpdateNote,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
	})
}

// DeleteParcel handles DELETE /api/v1/parcels/:id for the owner or an admin.
func (s *Server) DeleteParcel(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := s.loadParcel(c)
	if err != nil {
		return err
	}
	if err = s.policy.RequireOwnerOrAdmin(ctx, principalOf(c), view.OwnerEmail); err != nil {
		return err
	}

	cmd, err := commands.NewDeleteParcelCommand(view.ID)
	if err != nil {
		return err
	}

	deleted, err := s.handlers.DeleteParcel.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Deleted{DeletedCount: deleted})
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/:id/status.
func (s *Server) UpdateParcelStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body StatusUpdate
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(id, body.Status, body.Note)
	if err != nil {
		return err
	}

	modified, err := s.handlers.UpdateParcelStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Modified{ModifiedCount: modified})
}

// RecordPayment handles POST /api/v1/parcels/:id/payments, the client's
// report of a completed charge.
func (s *Server) RecordPayment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body PaymentReport
	if err = bindBody(c, &body); err != nil {
		return err
	}

	var paidAt time.Time
	if body.PaymentDate != nil {
		paidAt = body.PaymentDate.UTC()
	}

	cmd, err := commands.NewRecordPaymentCommand(
		id,
		body.PaymentIntentID,
		body.PaymentStatus,
		body.PaymentAmount,
		paidAt,
		body.PayerEmail,
	)
	if err != nil {
		return err
	}

	modified, err := s.handlers.RecordPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Modified{ModifiedCount: modified})
}

// AssignRider handles PATCH /api/v1/parcels/:id/assign for admins.
func (s *Server) AssignRider(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body AssignmentRequest
	if err = bindBody(c, &body); err != nil {
		return err
	}

	riderID, err := kernel.UUIDFromBytes(body.RiderID[:])
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}

	cmd, err := commands.NewAssignRiderCommand(
		id,
		riderID,
		body.RiderName,
		body.RiderEmail,
		body.RiderPhone,
		body.VehicleType,
	)
	if err != nil {
		return err
	}

	res, err := s.handlers.AssignRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	assignedAt := res.Rider.AssignedAt
	return c.JSON(http.StatusOK, Assignment{
		TrackingNumber: res.TrackingNumber.String(),
		RiderID:        res.Rider.RiderID.Bytes(),
		RiderName:      res.Rider.Name,
		RiderEmail:     res.Rider.Email,
		RiderPhone:     res.Rider.Phone,
		VehicleType:    res.Rider.VehicleType,
		AssignedAt:     &assignedAt,
	})
}

func (s *Server) loadParcel(c echo.Context) (queries.ParcelView, error) {
	id, err := pathUUID(c, "id")
	if err != nil {
		return queries.ParcelView{}, err
	}

	query, err := queries.NewGetParcelQuery(id)
	if err != nil {
		return queries.ParcelView{}, err
	}

	return s.handlers.GetParcel.Handle(c.Request().Context(), query)
}
