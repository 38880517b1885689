package commands_test

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/payment"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Assign(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRecordRepository struct{ mock.Mock }

func (m *MockPaymentRecordRepository) AddIfAbsent(ctx context.Context, r *payment.Record) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) FindOpenByEmail(ctx context.Context, email string) (*rider.Rider, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetActiveWithoutRiderUser(ctx context.Context, limit int) ([]*rider.Rider, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) Delete(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit-of-work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) PaymentRecordRepository() ports.PaymentRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRecordRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

// MockUoWFactory creates units of work typed as T, for example
// commands.PaymentUoW.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	args := m.Called()
	return args.Get(0).(T)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, req ports.IntentRequest) (ports.IntentResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.IntentResult), args.Error(1)
}

func (m *MockPaymentGateway) VerifyEvent(payload []byte, signature, secret string) (payment.Event, error) {
	args := m.Called(payload, signature, secret)
	return args.Get(0).(payment.Event), args.Error(1)
}

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func testDetails() parcel.Details {
	return parcel.Details{
		Title:      "Documents",
		Kind:       parcel.KindDocument,
		WeightKg:   0.4,
		Sender:     parcel.Party{Name: "Ann", Region: "Dhaka", District: "Mirpur"},
		Receiver:   parcel.Party{Name: "Bob", Region: "Khulna", District: "Sonadanga"},
		Cost:       15000,
		OwnerEmail: "ann@example.com",
	}
}

func newTestParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), testDetails(), testNow)
	if err != nil {
		panic(err)
	}
	return p
}

func newPaidParcel() *parcel.Parcel {
	p := newTestParcel()
	if _, err := p.ApplyClientPayment(parcel.PaymentPaid, "pi_paid", 15000, testNow, testNow); err != nil {
		panic(err)
	}
	return p
}

func newTestRider(status rider.Status) *rider.Rider {
	r, err := rider.RestoreRider(kernel.NewUUID(), rider.Application{
		Name:         "Rahim",
		Email:        "rahim@example.com",
		Phone:        "+8801700000000",
		Region:       "Dhaka",
		District:     "Mirpur",
		VehicleType:  "bike",
		VehicleRegNo: "DHA-1234",
	}, status, testNow, testNow)
	if err != nil {
		panic(err)
	}
	return r
}
