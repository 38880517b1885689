package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
)

// RegisterUserResult describes the account after sign-in.
type RegisterUserResult struct {
	UserID  kernel.UUID
	Role    user.Role
	Created bool
}

// RegisterUserCommandHandler creates an account with role user on first
// sign-in and only refreshes lastLoginAt afterwards.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle is idempotent per email. Two first sign-ins racing on one email
// leave one account; the loser gets errs.ConflictError.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterUserResult{}, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RegisterUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	u, err := userRepo.GetByEmail(ctx, cmd.Email())
	created := false
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if u, err = user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.Name(), now); err != nil {
			return RegisterUserResult{}, err
		}
		err = userRepo.Add(ctx, u)
		created = true
	case err != nil:
		return RegisterUserResult{}, err
	default:
		u.TouchLogin(now)
		err = userRepo.Update(ctx, u)
	}
	if err != nil {
		return RegisterUserResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterUserResult{}, err
	}

	return RegisterUserResult{UserID: u.ID(), Role: u.Role(), Created: created}, nil
}
