package commands_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/pgtest"
	"parceltrack/internal/adapters/out/stripegw"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82/webhook"
)

const integrationWebhookSecret = "whsec_integration"

// gormFactory narrows the gorm unit of work to the interface a handler takes.
type gormFactory[T any] struct {
	factory *adapter.GormUnitOfWorkFactory
}

func (f gormFactory[T]) Create() T {
	return any(f.factory.Create()).(T)
}

// ReconciliationIntegrationTestSuite drives the payment and assignment
// handlers against a real database with gateway-signed webhook payloads.
type ReconciliationIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *adapter.GormUnitOfWorkFactory
	logger  *slog.Logger

	create    commands.CreateParcelCommandHandler
	record    commands.RecordPaymentCommandHandler
	reconcile commands.ReconcileWebhookEventCommandHandler
	assign    commands.AssignRiderCommandHandler
	apply     commands.ApplyAsRiderCommandHandler
	setStatus commands.SetRiderStatusCommandHandler
}

func (suite *ReconciliationIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = adapter.NewGormUnitOfWorkFactory(pg.DB)
	suite.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	gateway, err := stripegw.NewGateway("sk_test_integration")
	suite.Require().NoError(err)

	suite.create = commands.NewCreateParcelCommandHandler(gormFactory[commands.ParcelUoW]{suite.factory})
	suite.record = commands.NewRecordPaymentCommandHandler(gormFactory[commands.PaymentUoW]{suite.factory})
	suite.reconcile = commands.NewReconcileWebhookEventCommandHandler(
		gormFactory[commands.PaymentUoW]{suite.factory}, gateway, integrationWebhookSecret, suite.logger)
	suite.assign = commands.NewAssignRiderCommandHandler(gormFactory[commands.AssignmentUoW]{suite.factory})
	suite.apply = commands.NewApplyAsRiderCommandHandler(gormFactory[commands.RiderUoW]{suite.factory})
	suite.setStatus = commands.NewSetRiderStatusCommandHandler(
		gormFactory[commands.ProvisioningUoW]{suite.factory}, suite.logger)
}

func (suite *ReconciliationIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *ReconciliationIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *ReconciliationIntegrationTestSuite) createParcel() commands.CreateParcelResult {
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), testDetails())
	suite.Require().NoError(err)
	res, err := suite.create.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return res
}

func (suite *ReconciliationIntegrationTestSuite) loadParcel(id kernel.UUID) *parcel.Parcel {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	p, err := uow.ParcelRepository().Get(ctx, id)
	suite.Require().NoError(err)
	return p
}

func (suite *ReconciliationIntegrationTestSuite) ledgerRows(intentID string) int64 {
	var n int64
	suite.Require().NoError(suite.pg.DB.Table("payment_records").
		Where("payment_intent_id = ?", intentID).Count(&n).Error)
	return n
}

func (suite *ReconciliationIntegrationTestSuite) deliver(eventID, kind, intentID, parcelID string) commands.ReconcileResult {
	body := fmt.Sprintf(`{
  "id": %q,
  "object": "event",
  "type": %q,
  "created": 1767225600,
  "data": {"object": {
    "id": %q,
    "object": "payment_intent",
    "amount": 15000,
    "amount_received": 15000,
    "currency": "bdt",
    "metadata": {"parcelId": %q}
  }}
}`, eventID, kind, intentID, parcelID)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(body),
		Secret:    integrationWebhookSecret,
		Timestamp: time.Now(),
	})

	cmd, err := commands.NewReconcileWebhookEventCommand(signed.Payload, signed.Header)
	suite.Require().NoError(err)
	res, err := suite.reconcile.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return res
}

func (suite *ReconciliationIntegrationTestSuite) TestDuplicateWebhookLeavesOneLedgerRow() {
	created := suite.createParcel()

	first := suite.deliver("evt_1", "payment_intent.succeeded", "pi_dup", created.ParcelID.String())
	second := suite.deliver("evt_1", "payment_intent.succeeded", "pi_dup", created.ParcelID.String())

	suite.Require().NoError(first.Err)
	suite.Require().NoError(second.Err)
	suite.Equal(commands.OutcomeConfirmed, first.Outcome)
	suite.True(first.RecordInserted)
	suite.Equal(commands.OutcomeConfirmed, second.Outcome)
	suite.False(second.RecordInserted)
	suite.Equal(int64(1), suite.ledgerRows("pi_dup"))

	p := suite.loadParcel(created.ParcelID)
	suite.Equal(parcel.StatusPaid, p.Status())
	suite.Equal(parcel.PaymentConfirmed, p.PaymentStatus())
}

func (suite *ReconciliationIntegrationTestSuite) TestClientThenWebhookShareTheLedgerRow() {
	created := suite.createParcel()

	cmd, err := commands.NewRecordPaymentCommand(created.ParcelID, "pi_both", "paid", 15000, testNow, "ann@example.com")
	suite.Require().NoError(err)
	modified, err := suite.record.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	suite.Equal(int64(1), modified)

	p := suite.loadParcel(created.ParcelID)
	suite.Equal(parcel.StatusPaid, p.Status())
	suite.Equal(parcel.PaymentPaid, p.PaymentStatus())

	res := suite.deliver("evt_2", "payment_intent.succeeded", "pi_both", created.ParcelID.String())

	suite.Require().NoError(res.Err)
	suite.False(res.RecordInserted)
	suite.Equal(int64(1), suite.ledgerRows("pi_both"))
	confirmed := suite.loadParcel(created.ParcelID)
	suite.Equal(parcel.StatusPaid, confirmed.Status())
	suite.Equal(parcel.PaymentConfirmed, confirmed.PaymentStatus())
}

func (suite *ReconciliationIntegrationTestSuite) TestWebhookForUnknownParcelIsNoOp() {
	res := suite.deliver("evt_3", "payment_intent.succeeded", "pi_ghost", kernel.NewUUID().String())

	suite.Require().NoError(res.Err)
	suite.Equal(commands.OutcomeUnknownParcel, res.Outcome)
	suite.Equal(int64(0), suite.ledgerRows("pi_ghost"))
}

func (suite *ReconciliationIntegrationTestSuite) TestAssignmentAfterRiderActivation() {
	ctx := context.Background()
	created := suite.createParcel()

	applyCmd, err := commands.NewApplyAsRiderCommand(kernel.NewUUID(), rider.Application{
		Name:         "Rahim",
		Email:        "rahim@example.com",
		Phone:        "+8801700000000",
		Region:       "Dhaka",
		District:     "Mirpur",
		VehicleType:  "bike",
		VehicleRegNo: "DHA-1234",
	})
	suite.Require().NoError(err)
	applied, err := suite.apply.Handle(ctx, applyCmd)
	suite.Require().NoError(err)

	for range 2 {
		statusCmd, err := commands.NewSetRiderStatusCommand(applied.ID(), "active")
		suite.Require().NoError(err)
		res, err := suite.setStatus.Handle(ctx, statusCmd)
		suite.Require().NoError(err)
		suite.Require().NoError(res.ProvisioningErr)
	}

	var roles []string
	suite.Require().NoError(suite.pg.DB.Table("users").
		Where("email = ?", "rahim@example.com").Pluck("role", &roles).Error)
	suite.Equal([]string{string(user.RoleRider)}, roles)

	assignCmd, err := commands.NewAssignRiderCommand(created.ParcelID, applied.ID(),
		"Rahim", "rahim@example.com", "+8801700000000", "bike")
	suite.Require().NoError(err)

	_, err = suite.assign.Handle(ctx, assignCmd)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)
	suite.Nil(suite.loadParcel(created.ParcelID).AssignedRider())

	suite.deliver("evt_4", "payment_intent.succeeded", "pi_assign", created.ParcelID.String())

	_, err = suite.assign.Handle(ctx, assignCmd)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)
	confirmed := suite.loadParcel(created.ParcelID)
	suite.Equal(parcel.PaymentConfirmed, confirmed.PaymentStatus())
	suite.Nil(confirmed.AssignedRider())

	recordCmd, err := commands.NewRecordPaymentCommand(created.ParcelID, "pi_assign", "paid", 15000, testNow, "")
	suite.Require().NoError(err)
	_, err = suite.record.Handle(ctx, recordCmd)
	suite.Require().NoError(err)

	assigned, err := suite.assign.Handle(ctx, assignCmd)
	suite.Require().NoError(err)
	suite.Equal(created.TrackingNumber, assigned.TrackingNumber)

	p := suite.loadParcel(created.ParcelID)
	suite.Equal(parcel.StatusAssigned, p.Status())
	suite.Require().NotNil(p.AssignedRider())
	suite.True(p.AssignedRider().RiderID.IsEqual(applied.ID()))

	_, err = suite.assign.Handle(ctx, assignCmd)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)
	suite.Equal(int64(1), suite.ledgerRows("pi_assign"))
}

func TestReconciliationIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationIntegrationTestSuite))
}
