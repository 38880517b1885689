package commands

import (
	"context"
)

type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewChangeUserRoleCommandHandler(uowFactory UserUoWFactory) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns 1 when the role was stored. A missing user is
// errs.ObjectNotFoundError.
func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return 0, err
	}

	if err = u.ChangeRole(cmd.Role()); err != nil {
		return 0, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return 1, nil
}
