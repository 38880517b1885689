package parcel_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func validDetails() parcel.Details {
	return parcel.Details{
		Title:      "Birthday gift",
		Kind:       parcel.KindNonDocument,
		WeightKg:   1.5,
		Sender:     parcel.Party{Name: "Alice", Region: "Dhaka", District: "Mirpur", Contact: "01700000000"},
		Receiver:   parcel.Party{Name: "Bob", Region: "Chattogram", District: "Pahartali"},
		Cost:       15000,
		OwnerEmail: "Alice@Example.com",
	}
}

func newParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), validDetails(), now)
	require.NoError(t, err)
	return p
}

func paidParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p := newParcel(t)
	changed, err := p.ApplyClientPayment(parcel.PaymentPaid, "pi_123", 15000, now, now)
	require.NoError(t, err)
	require.True(t, changed)
	return p
}

func rider(t *testing.T) parcel.AssignedRider {
	t.Helper()
	r, err := parcel.NewAssignedRider(kernel.NewUUID(), "Rahim", "rahim@example.com", "01800000000", "bike", now.Add(time.Hour))
	require.NoError(t, err)
	return r
}

func TestNewParcel(t *testing.T) {
	t.Run("should create pending unpaid unassigned parcel", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := parcel.NewParcel(id, validDetails(), now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, parcel.PaymentUnset, p.PaymentStatus())
		assert.Nil(t, p.AssignedRider())
		assert.Nil(t, p.Payment())
		assert.Equal(t, "alice@example.com", p.OwnerEmail())
		assert.Equal(t, now, p.CreatedAt())
		assert.Equal(t, now, p.UpdatedAt())
		assert.False(t, p.TrackingNumber().IsZero())
	})

	t.Run("should keep a supplied tracking number", func(t *testing.T) {
		d := validDetails()
		d.TrackingNumber, _ = kernel.ParseTrackingNumber("PF-000123")

		p, err := parcel.NewParcel(kernel.NewUUID(), d, now)

		require.NoError(t, err)
		assert.Equal(t, "PF-000123", p.TrackingNumber().String())
	})

	t.Run("should default kind to non-document", func(t *testing.T) {
		d := validDetails()
		d.Kind = ""

		p, err := parcel.NewParcel(kernel.NewUUID(), d, now)

		require.NoError(t, err)
		assert.Equal(t, parcel.KindNonDocument, p.Kind())
	})

	t.Run("should join all missing required fields", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), parcel.Details{}, now)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"title", "senderName", "senderRegion", "receiverName", "receiverRegion", "userEmail"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject negative cost and weight", func(t *testing.T) {
		d := validDetails()
		d.Cost = -1
		d.WeightKg = -2

		_, err := parcel.NewParcel(kernel.NewUUID(), d, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cost")
		assert.Contains(t, err.Error(), "weight")
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.UUID{}, validDetails(), now)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestParcel_Validate(t *testing.T) {
	var nilParcel *parcel.Parcel
	var zero parcel.Parcel

	assert.Equal(t, parcel.ErrParcelIsNotConstructed, nilParcel.Validate())
	assert.Equal(t, parcel.ErrParcelIsNotConstructed, zero.Validate())
}

func TestParcel_ChangeStatus(t *testing.T) {
	t.Run("should accept every status of the closed set", func(t *testing.T) {
		for _, status := range parcel.Statuses() {
			p := newParcel(t)

			require.NoError(t, p.ChangeStatus(status, "", now.Add(time.Minute)))
			assert.Equal(t, status, p.Status())
			assert.Equal(t, now.Add(time.Minute), p.UpdatedAt())
		}
	})

	t.Run("should allow backwards moves", func(t *testing.T) {
		p := newParcel(t)
		require.NoError(t, p.ChangeStatus(parcel.StatusDelivered, "handed over", now))

		require.NoError(t, p.ChangeStatus(parcel.StatusPending, "", now))

		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, "handed over", p.LastUpdateNote())
	})

	t.Run("should reject values outside the enum without mutating", func(t *testing.T) {
		p := newParcel(t)

		err := p.ChangeStatus(parcel.Status("delivered-ish"), "note", now.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Empty(t, p.LastUpdateNote())
		assert.Equal(t, now, p.UpdatedAt())
	})
}

func TestParcel_ApplyClientPayment(t *testing.T) {
	t.Run("paid report moves pending parcel to paid", func(t *testing.T) {
		p := newParcel(t)
		paidAt := now.Add(-time.Minute)

		changed, err := p.ApplyClientPayment(parcel.PaymentPaid, "pi_1", 15000, paidAt, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, parcel.StatusPaid, p.Status())
		assert.Equal(t, parcel.PaymentPaid, p.PaymentStatus())
		require.NotNil(t, p.Payment())
		assert.Equal(t, "pi_1", p.Payment().IntentID)
		assert.Equal(t, int64(15000), p.Payment().Amount)
		assert.Equal(t, paidAt, p.Payment().PaidAt)
	})

	t.Run("pending report keeps parcel pending", func(t *testing.T) {
		p := newParcel(t)

		changed, err := p.ApplyClientPayment(parcel.PaymentPending, "pi_1", 15000, now, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, parcel.PaymentPending, p.PaymentStatus())
	})

	t.Run("repeating the same report changes nothing", func(t *testing.T) {
		p := paidParcel(t)

		changed, err := p.ApplyClientPayment(parcel.PaymentPaid, "pi_123", 15000, now, now.Add(time.Hour))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("pending report moves a paid parcel back to pending", func(t *testing.T) {
		p := paidParcel(t)

		changed, err := p.ApplyClientPayment(parcel.PaymentPending, "pi_123", 15000, now, now.Add(time.Minute))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, parcel.PaymentPending, p.PaymentStatus())
		assert.Equal(t, now.Add(time.Minute), p.UpdatedAt())
	})

	t.Run("client report replaces gateway confirmation", func(t *testing.T) {
		p := newParcel(t)
		require.NoError(t, p.ConfirmGatewayPayment("pi_1", 15000, now, now))

		changed, err := p.ApplyClientPayment(parcel.PaymentPaid, "pi_1", 15000, now, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, parcel.StatusPaid, p.Status())
		assert.Equal(t, parcel.PaymentPaid, p.PaymentStatus())
		require.NotNil(t, p.Payment().ConfirmedAt)
	})

	t.Run("paid report sets status paid from any status", func(t *testing.T) {
		p := newParcel(t)
		require.NoError(t, p.ChangeStatus(parcel.StatusShipped, "", now))

		_, err := p.ApplyClientPayment(parcel.PaymentPaid, "pi_1", 15000, now, now)

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusPaid, p.Status())
		assert.Equal(t, parcel.PaymentPaid, p.PaymentStatus())
	})

	t.Run("confirmed report keeps status pending", func(t *testing.T) {
		p := newParcel(t)

		changed, err := p.ApplyClientPayment(parcel.PaymentConfirmed, "pi_1", 15000, now, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, parcel.PaymentConfirmed, p.PaymentStatus())
	})

	t.Run("rejects status outside the reported set", func(t *testing.T) {
		p := newParcel(t)

		for _, reported := range []parcel.PaymentStatus{parcel.PaymentUnset, "settled"} {
			_, err := p.ApplyClientPayment(reported, "pi_1", 15000, now, now)

			require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
		}
		assert.Equal(t, parcel.PaymentUnset, p.PaymentStatus())
		assert.Nil(t, p.Payment())
	})

	t.Run("requires intent id", func(t *testing.T) {
		p := newParcel(t)

		_, err := p.ApplyClientPayment(parcel.PaymentPaid, " ", 15000, now, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestParcel_ConfirmGatewayPayment(t *testing.T) {
	t.Run("confirms pending parcel", func(t *testing.T) {
		p := newParcel(t)

		require.NoError(t, p.ConfirmGatewayPayment("pi_9", 15000, now, now))

		assert.Equal(t, parcel.StatusPaid, p.Status())
		assert.Equal(t, parcel.PaymentConfirmed, p.PaymentStatus())
		require.NotNil(t, p.Payment().ConfirmedAt)
		assert.Equal(t, now, *p.Payment().ConfirmedAt)
	})

	t.Run("is idempotent", func(t *testing.T) {
		p := newParcel(t)
		require.NoError(t, p.ConfirmGatewayPayment("pi_9", 15000, now, now))
		first := *p.Payment()

		require.NoError(t, p.ConfirmGatewayPayment("pi_9", 15000, now, now.Add(time.Minute)))

		assert.Equal(t, parcel.StatusPaid, p.Status())
		assert.Equal(t, parcel.PaymentConfirmed, p.PaymentStatus())
		assert.Equal(t, first.IntentID, p.Payment().IntentID)
		assert.Equal(t, first.PaidAt, p.Payment().PaidAt)
	})

	t.Run("keeps the client paid timestamp and amount", func(t *testing.T) {
		p := paidParcel(t)

		require.NoError(t, p.ConfirmGatewayPayment("pi_123", 0, now.Add(time.Minute), now.Add(time.Minute)))

		assert.Equal(t, now, p.Payment().PaidAt)
		assert.Equal(t, int64(15000), p.Payment().Amount)
	})

	t.Run("sets status paid from any status", func(t *testing.T) {
		p := paidParcel(t)
		require.NoError(t, p.AssignRider(rider(t)))

		require.NoError(t, p.ConfirmGatewayPayment("pi_123", 15000, now, now))

		assert.Equal(t, parcel.StatusPaid, p.Status())
		assert.Equal(t, parcel.PaymentConfirmed, p.PaymentStatus())
		assert.NotNil(t, p.AssignedRider())
	})
}

func TestParcel_AssignRider(t *testing.T) {
	t.Run("assigns paid parcel", func(t *testing.T) {
		p := paidParcel(t)
		r := rider(t)

		require.NoError(t, p.AssignRider(r))

		assert.Equal(t, parcel.StatusAssigned, p.Status())
		require.NotNil(t, p.AssignedRider())
		assert.Equal(t, r, *p.AssignedRider())
		assert.Equal(t, r.AssignedAt, p.UpdatedAt())
	})

	t.Run("rejects gateway-confirmed parcel", func(t *testing.T) {
		p := newParcel(t)
		require.NoError(t, p.ConfirmGatewayPayment("pi_1", 15000, now, now))

		err := p.AssignRider(rider(t))

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Nil(t, p.AssignedRider())
		assert.Equal(t, parcel.StatusPaid, p.Status())
	})

	t.Run("rejects pending parcel without mutation", func(t *testing.T) {
		p := newParcel(t)

		err := p.AssignRider(rider(t))

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "must be paid before assignment")
		assert.Nil(t, p.AssignedRider())
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("rejects paid status with unpaid payment", func(t *testing.T) {
		p := newParcel(t)
		require.NoError(t, p.ChangeStatus(parcel.StatusPaid, "", now))

		err := p.AssignRider(rider(t))

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("second assignment fails the paid precondition", func(t *testing.T) {
		p := paidParcel(t)
		first := rider(t)
		require.NoError(t, p.AssignRider(first))

		err := p.AssignRider(rider(t))

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, parcel.StatusAssigned, p.Status())
		assert.True(t, p.AssignedRider().RiderID.IsEqual(first.RiderID))
	})

	t.Run("rejects paid parcel that already carries a rider", func(t *testing.T) {
		paid := paidParcel(t)
		first := rider(t)
		p, err := parcel.RestoreParcel(parcel.State{
			ID:             paid.ID(),
			TrackingNumber: paid.TrackingNumber(),
			Details:        paid.Details(),
			Status:         parcel.StatusPaid,
			PaymentStatus:  parcel.PaymentPaid,
			Payment:        paid.Payment(),
			AssignedRider:  &first,
			CreatedAt:      paid.CreatedAt(),
			UpdatedAt:      paid.UpdatedAt(),
		})
		require.NoError(t, err)

		err = p.AssignRider(rider(t))

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, p.AssignedRider().RiderID.IsEqual(first.RiderID))
	})

	t.Run("rejects zero-value snapshot", func(t *testing.T) {
		p := paidParcel(t)

		err := p.AssignRider(parcel.AssignedRider{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p.AssignedRider())
	})
}

func TestNewAssignedRider(t *testing.T) {
	t.Run("requires id, name and email", func(t *testing.T) {
		_, err := parcel.NewAssignedRider(kernel.UUID{}, " ", "", "", "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "riderId")
		assert.Contains(t, err.Error(), "riderName")
		assert.Contains(t, err.Error(), "riderEmail")
	})

	t.Run("normalizes email and keeps optional fields", func(t *testing.T) {
		r, err := parcel.NewAssignedRider(kernel.NewUUID(), "Rahim", "RAHIM@example.com", "", "", now)

		require.NoError(t, err)
		assert.Equal(t, "rahim@example.com", r.Email)
		assert.Empty(t, r.Phone)
		assert.Empty(t, r.VehicleType)
	})
}

func TestRestoreParcel(t *testing.T) {
	original := paidParcel(t)

	restored, err := parcel.RestoreParcel(parcel.State{
		ID:             original.ID(),
		TrackingNumber: original.TrackingNumber(),
		Details:        original.Details(),
		Status:         original.Status(),
		PaymentStatus:  original.PaymentStatus(),
		Payment:        original.Payment(),
		CreatedAt:      original.CreatedAt(),
		UpdatedAt:      original.UpdatedAt(),
	})

	require.NoError(t, err)
	require.NoError(t, restored.Validate())
	assert.Equal(t, original.Details(), restored.Details())
	assert.Equal(t, original.Payment(), restored.Payment())

	_, err = parcel.RestoreParcel(parcel.State{
		ID:             kernel.NewUUID(),
		TrackingNumber: kernel.NewTrackingNumber(),
		Status:         "lost",
	})
	require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
}
