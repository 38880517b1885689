package access_test

import (
	"context"
	"errors"
	"testing"

	"parceltrack/internal/core/application/access"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVerifier struct{ mock.Mock }

func (m *MockVerifier) Verify(ctx context.Context, token string) (ports.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(ports.Identity), args.Error(1)
}

type MockRoleLookup struct{ mock.Mock }

func (m *MockRoleLookup) GetRole(ctx context.Context, email string) (user.Role, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.Role), args.Error(1)
}

var alice = access.Principal{Subject: "u-1", Email: "alice@example.com"}

func TestPolicy_Authenticate(t *testing.T) {
	ctx := t.Context()

	t.Run("accepts bearer token", func(t *testing.T) {
		verifier := new(MockVerifier)
		verifier.On("Verify", ctx, "tok").Return(ports.Identity{Subject: "u-1", Email: "alice@example.com", Name: "Alice"}, nil).Once()
		p := access.NewPolicy(verifier, new(MockRoleLookup))

		principal, err := p.Authenticate(ctx, "Bearer tok")

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", principal.Email)
		assert.Equal(t, "Alice", principal.Name)
		verifier.AssertExpectations(t)
	})

	for name, header := range map[string]string{
		"empty":        "",
		"no token":     "Bearer ",
		"basic scheme": "Basic dXNlcjpwYXNz",
		"bare token":   "tok",
	} {
		t.Run("rejects "+name, func(t *testing.T) {
			verifier := new(MockVerifier)
			p := access.NewPolicy(verifier, new(MockRoleLookup))

			_, err := p.Authenticate(ctx, header)

			require.ErrorIs(t, err, errs.ErrUnauthorized)
			verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
		})
	}

	t.Run("maps verifier failures to unauthorized", func(t *testing.T) {
		verifier := new(MockVerifier)
		verifier.On("Verify", ctx, "tok").Return(ports.Identity{}, errors.New("boom")).Once()
		p := access.NewPolicy(verifier, new(MockRoleLookup))

		_, err := p.Authenticate(ctx, "bearer tok")

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestPolicy_RequireAdmin(t *testing.T) {
	ctx := t.Context()

	tests := []struct {
		name    string
		role    user.Role
		lookErr error
		wantErr error
	}{
		{name: "admin passes", role: user.RoleAdmin},
		{name: "user is forbidden", role: user.RoleUser, wantErr: errs.ErrForbidden},
		{name: "rider is forbidden", role: user.RoleRider, wantErr: errs.ErrForbidden},
		{name: "unknown user is forbidden", lookErr: errs.NewObjectNotFoundError("email", alice.Email), wantErr: errs.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := new(MockRoleLookup)
			roles.On("GetRole", ctx, alice.Email).Return(tt.role, tt.lookErr).Once()
			p := access.NewPolicy(new(MockVerifier), roles)

			err := p.RequireAdmin(ctx, alice)

			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
			roles.AssertExpectations(t)
		})
	}

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		roles := new(MockRoleLookup)
		roles.On("GetRole", ctx, alice.Email).Return(user.Role(""), storeErr).Once()
		p := access.NewPolicy(new(MockVerifier), roles)

		err := p.RequireAdmin(ctx, alice)

		require.ErrorIs(t, err, storeErr)
	})
}

func TestPolicy_RequireRider(t *testing.T) {
	ctx := t.Context()
	roles := new(MockRoleLookup)
	roles.On("GetRole", ctx, "r@example.com").Return(user.RoleRider, nil)
	roles.On("GetRole", ctx, "a@example.com").Return(user.RoleAdmin, nil)
	roles.On("GetRole", ctx, "u@example.com").Return(user.RoleUser, nil)
	p := access.NewPolicy(new(MockVerifier), roles)

	require.NoError(t, p.RequireRider(ctx, access.Principal{Email: "r@example.com"}))
	require.NoError(t, p.RequireRider(ctx, access.Principal{Email: "a@example.com"}))
	require.ErrorIs(t, p.RequireRider(ctx, access.Principal{Email: "u@example.com"}), errs.ErrForbidden)
}

func TestPolicy_RequireOwnerOrAdmin(t *testing.T) {
	ctx := t.Context()

	t.Run("owner passes without lookup", func(t *testing.T) {
		roles := new(MockRoleLookup)
		p := access.NewPolicy(new(MockVerifier), roles)

		require.NoError(t, p.RequireOwnerOrAdmin(ctx, alice, "Alice@example.com"))
		roles.AssertNotCalled(t, "GetRole", mock.Anything, mock.Anything)
	})

	t.Run("admin passes for others", func(t *testing.T) {
		roles := new(MockRoleLookup)
		roles.On("GetRole", ctx, alice.Email).Return(user.RoleAdmin, nil).Once()
		p := access.NewPolicy(new(MockVerifier), roles)

		require.NoError(t, p.RequireOwnerOrAdmin(ctx, alice, "bob@example.com"))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		roles := new(MockRoleLookup)
		roles.On("GetRole", ctx, alice.Email).Return(user.RoleUser, nil).Once()
		p := access.NewPolicy(new(MockVerifier), roles)

		err := p.RequireOwnerOrAdmin(ctx, alice, "bob@example.com")

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("passes store failure through", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		roles := new(MockRoleLookup)
		roles.On("GetRole", ctx, alice.Email).Return(user.Role(""), storeErr).Once()
		p := access.NewPolicy(new(MockVerifier), roles)

		err := p.RequireOwnerOrAdmin(ctx, alice, "bob@example.com")

		require.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, errs.ErrForbidden)
	})
}
