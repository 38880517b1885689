// Package access decides who may call an operation. Authentication is
// delegated to a ports.IdentityVerifier; authorization reads the caller's
// role from the user store on every check, so role changes apply at once.
package access

import (
	"context"
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// RoleLookup reads the stored role of a user by normalized email. A missing
// user is errs.ObjectNotFoundError.
type RoleLookup interface {
	GetRole(ctx context.Context, email string) (user.Role, error)
}

// Principal is an authenticated caller.
type Principal struct {
	Subject string
	Email   string
	Name    string
}

// Policy implements the access checks.
type Policy struct {
	verifier ports.IdentityVerifier
	roles    RoleLookup
}

func NewPolicy(verifier ports.IdentityVerifier, roles RoleLookup) *Policy {
	return &Policy{verifier: verifier, roles: roles}
}

// Authenticate verifies an Authorization header value of the form
// "Bearer <token>".
func (p *Policy) Authenticate(ctx context.Context, authorization string) (Principal, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return Principal{}, errs.NewUnauthorizedError("missing bearer token")
	}

	id, err := p.verifier.Verify(ctx, strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return Principal{}, err
		}
		return Principal{}, errs.NewUnauthorizedErrorWithCause("credential verification failed", err)
	}
	return Principal{Subject: id.Subject, Email: id.Email, Name: id.Name}, nil
}

// RoleOf returns the stored role of the caller. Callers without a user
// record have no role and get an empty value.
func (p *Policy) RoleOf(ctx context.Context, caller Principal) (user.Role, error) {
	role, err := p.roles.GetRole(ctx, caller.Email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", nil
	}
	return role, err
}

// RequireAdmin fails with ForbiddenError unless the caller's user record has
// the admin role.
func (p *Policy) RequireAdmin(ctx context.Context, caller Principal) error {
	role, err := p.RoleOf(ctx, caller)
	if err != nil {
		return err
	}
	if role != user.RoleAdmin {
		return errs.NewForbiddenError("admin role required")
	}
	return nil
}

// RequireRider admits riders and admins.
func (p *Policy) RequireRider(ctx context.Context, caller Principal) error {
	role, err := p.RoleOf(ctx, caller)
	if err != nil {
		return err
	}
	if role != user.RoleRider && role != user.RoleAdmin {
		return errs.NewForbiddenError("rider role required")
	}
	return nil
}

// RequireOwnerOrAdmin admits the owner of a resource without a store
// lookup and falls back to RequireAdmin for everyone else. Role lookup
// failures are returned as they are.
func (p *Policy) RequireOwnerOrAdmin(ctx context.Context, caller Principal, ownerEmail string) error {
	if ownerEmail != "" && strings.EqualFold(caller.Email, ownerEmail) {
		return nil
	}
	err := p.RequireAdmin(ctx, caller)
	if errors.Is(err, errs.ErrForbidden) {
		return errs.NewForbiddenError("only the owner or an admin may access this resource")
	}
	return err
}
