package commands_test

import (
	"errors"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetRiderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSetRiderStatusCommand(id, "active")
	require.NoError(t, err)
	assert.Equal(t, rider.StatusActive, cmd.Status())

	_, err = commands.NewSetRiderStatusCommand(id, "suspended")
	require.ErrorIs(t, err, errs.ErrStatusIsInvalid)

	var zero commands.SetRiderStatusCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrSetRiderStatusCommandIsNotConstructed)
}

// expectStatusChange sets up the first transaction of SetRiderStatus.
func expectStatusChange(t *testing.T, r *rider.Rider) (*MockRiderRepository, *MockUoW) {
	t.Helper()
	ctx := t.Context()
	riders := new(MockRiderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riders).Once(),
		riders.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		riders.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return riders, uow
}

func TestSetRiderStatusCommandHandler_Handle_ActivationCreatesRiderUser(t *testing.T) {
	ctx := t.Context()
	r := newTestRider(rider.StatusPending)
	cmd, _ := commands.NewSetRiderStatusCommand(r.ID(), "active")

	_, statusUoW := expectStatusChange(t, r)

	riders := new(MockRiderRepository)
	users := new(MockUserRepository)
	provisionUoW := new(MockUoW)
	mock.InOrder(
		provisionUoW.On("Begin", ctx).Return(nil).Once(),
		provisionUoW.On("RiderRepository").Return(riders).Once(),
		provisionUoW.On("UserRepository").Return(users).Once(),
		riders.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		users.On("GetByEmail", ctx, "rahim@example.com").Return(nil, errs.NewObjectNotFoundError("email", "rahim@example.com")).Once(),
		users.On("Add", ctx, mock.MatchedBy(func(u *user.User) bool {
			return u.Role() == user.RoleRider &&
				u.Email() == "rahim@example.com" &&
				u.RiderProfile() != nil &&
				u.RiderProfile().RiderID == r.ID() &&
				u.RiderProfile().VehicleType == "bike"
		})).Return(nil).Once(),
		provisionUoW.On("Commit", ctx).Return(nil).Once(),
		provisionUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory[commands.ProvisioningUoW])
	factory.On("Create").Return(statusUoW).Once()
	factory.On("Create").Return(provisionUoW).Once()

	res, err := commands.NewSetRiderStatusCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, res.ProvisioningErr)
	assert.Equal(t, rider.StatusActive, res.Status)
	assert.True(t, res.UserCreated)
	assert.Equal(t, rider.StatusActive, r.Status())
	users.AssertExpectations(t)
	statusUoW.AssertExpectations(t)
	provisionUoW.AssertExpectations(t)
}

func TestSetRiderStatusCommandHandler_Handle_ActivationPromotesExistingUser(t *testing.T) {
	ctx := t.Context()
	r := newTestRider(rider.StatusPending)
	cmd, _ := commands.NewSetRiderStatusCommand(r.ID(), "active")
	existing, err := user.NewUser(kernel.NewUUID(), "rahim@example.com", "", testNow)
	require.NoError(t, err)

	_, statusUoW := expectStatusChange(t, r)

	riders := new(MockRiderRepository)
	users := new(MockUserRepository)
	provisionUoW := new(MockUoW)
	provisionUoW.On("Begin", ctx).Return(nil).Once()
	provisionUoW.On("RiderRepository").Return(riders).Once()
	provisionUoW.On("UserRepository").Return(users).Once()
	riders.On("Get", ctx, r.ID()).Return(r, nil).Once()
	users.On("GetByEmail", ctx, "rahim@example.com").Return(existing, nil).Once()
	users.On("Update", ctx, existing).Return(nil).Once()
	provisionUoW.On("Commit", ctx).Return(nil).Once()
	provisionUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory[commands.ProvisioningUoW])
	factory.On("Create").Return(statusUoW).Once()
	factory.On("Create").Return(provisionUoW).Once()

	res, err := commands.NewSetRiderStatusCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, res.UserCreated)
	assert.True(t, res.UserChanged)
	assert.Equal(t, user.RoleRider, existing.Role())
	assert.Equal(t, "Rahim", existing.Name())
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSetRiderStatusCommandHandler_Handle_AdminIsNotDemoted(t *testing.T) {
	ctx := t.Context()
	r := newTestRider(rider.StatusActive)
	cmd, _ := commands.NewSetRiderStatusCommand(r.ID(), "active")
	admin, err := user.RestoreUser(kernel.NewUUID(), "rahim@example.com", "Rahim", user.RoleAdmin, nil, testNow, testNow)
	require.NoError(t, err)

	_, statusUoW := expectStatusChange(t, r)

	riders := new(MockRiderRepository)
	users := new(MockUserRepository)
	provisionUoW := new(MockUoW)
	provisionUoW.On("Begin", ctx).Return(nil).Once()
	provisionUoW.On("RiderRepository").Return(riders).Once()
	provisionUoW.On("UserRepository").Return(users).Once()
	riders.On("Get", ctx, r.ID()).Return(r, nil).Once()
	users.On("GetByEmail", ctx, "rahim@example.com").Return(admin, nil).Once()
	users.On("Update", ctx, admin).Return(nil).Once()
	provisionUoW.On("Commit", ctx).Return(nil).Once()
	provisionUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory[commands.ProvisioningUoW])
	factory.On("Create").Return(statusUoW).Once()
	factory.On("Create").Return(provisionUoW).Once()

	_, err = commands.NewSetRiderStatusCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, admin.Role())
	require.NotNil(t, admin.RiderProfile())
	assert.Equal(t, r.ID(), admin.RiderProfile().RiderID)
}

func TestSetRiderStatusCommandHandler_Handle_ProvisioningFailureKeepsStatus(t *testing.T) {
	ctx := t.Context()
	r := newTestRider(rider.StatusPending)
	cmd, _ := commands.NewSetRiderStatusCommand(r.ID(), "active")

	_, statusUoW := expectStatusChange(t, r)

	provisionUoW := new(MockUoW)
	provisionUoW.On("Begin", ctx).Return(errors.New("connection reset")).Once()

	factory := new(MockUoWFactory[commands.ProvisioningUoW])
	factory.On("Create").Return(statusUoW).Once()
	factory.On("Create").Return(provisionUoW).Once()

	res, err := commands.NewSetRiderStatusCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	require.EqualError(t, res.ProvisioningErr, "connection reset")
	assert.Equal(t, rider.StatusActive, res.Status)
	statusUoW.AssertCalled(t, "Commit", ctx)
}

func TestSetRiderStatusCommandHandler_Handle_RejectDoesNotProvision(t *testing.T) {
	ctx := t.Context()
	r := newTestRider(rider.StatusPending)
	cmd, _ := commands.NewSetRiderStatusCommand(r.ID(), "rejected")

	_, statusUoW := expectStatusChange(t, r)
	factory := new(MockUoWFactory[commands.ProvisioningUoW])
	factory.On("Create").Return(statusUoW).Once()

	res, err := commands.NewSetRiderStatusCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rider.StatusRejected, r.Status())
	assert.False(t, res.UserCreated)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestSetRiderStatusCommandHandler_Handle_RiderMissing(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewSetRiderStatusCommand(id, "active")

	riders := new(MockRiderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riders).Once(),
		riders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("riderId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory[commands.ProvisioningUoW])
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewSetRiderStatusCommandHandler(factory, discardLogger()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNumberOfCalls(t, "Create", 1)
}
