package commands

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand is sent on every sign-in.
type RegisterUserCommand struct {
	email string
	name  string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(email, name string) (RegisterUserCommand, error) {
	normalized, err := kernel.NormalizeEmail("email", email)
	if err != nil {
		return RegisterUserCommand{}, err
	}
	return RegisterUserCommand{
		email: normalized,
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string { return c.email }
func (c RegisterUserCommand) Name() string  { return c.name }
