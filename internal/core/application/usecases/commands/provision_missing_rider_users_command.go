package commands

import (
	"errors"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrProvisionMissingRiderUsersCommandIsNotConstructed = errors.New(
	"ProvisionMissingRiderUsersCommand must be created via NewProvisionMissingRiderUsersCommand constructor",
)

// ProvisionMissingRiderUsersCommand repairs up to batchSize active riders
// whose account provisioning failed after activation.
type ProvisionMissingRiderUsersCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewProvisionMissingRiderUsersCommand(batchSize int) (ProvisionMissingRiderUsersCommand, error) {
	if batchSize <= 0 {
		return ProvisionMissingRiderUsersCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	return ProvisionMissingRiderUsersCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c ProvisionMissingRiderUsersCommand) Validate() error {
	return c.guard.Validate(ErrProvisionMissingRiderUsersCommandIsNotConstructed)
}

func (c ProvisionMissingRiderUsersCommand) BatchSize() int { return c.batchSize }
