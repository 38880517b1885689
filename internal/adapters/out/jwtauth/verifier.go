// Package jwtauth verifies HS256 bearer tokens issued by the identity
// provider and turns them into ports.Identity values.
package jwtauth

import (
	"context"
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSecretIsRequired is returned by NewVerifier for an empty signing secret.
var ErrSecretIsRequired = errs.NewValueIsRequiredError("JWT_SECRET")

// Claims are the token claims the service reads.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Verifier implements ports.IdentityVerifier.
type Verifier struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewVerifier builds a verifier for tokens signed with secret. When issuer
// is not empty the iss claim must match it.
func NewVerifier(secret, issuer string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(opts...),
	}, nil
}

// Verify checks the signature, expiry and issuer of token and returns the
// normalized identity.
func (v *Verifier) Verify(_ context.Context, token string) (ports.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ports.Identity{}, errs.NewUnauthorizedError("missing bearer token")
	}

	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return ports.Identity{}, errs.NewUnauthorizedErrorWithCause("invalid bearer token", err)
	}
	if !parsed.Valid {
		return ports.Identity{}, errs.NewUnauthorizedError("invalid bearer token")
	}

	email, err := kernel.NormalizeEmail("email", claims.Email)
	if err != nil {
		return ports.Identity{}, errs.NewUnauthorizedErrorWithCause("token carries no usable email", err)
	}

	return ports.Identity{
		Subject: claims.Subject,
		Email:   email,
		Name:    strings.TrimSpace(claims.Name),
	}, nil
}

// Issue signs a token for id that expires after ttl. It is used by local
// tooling and tests; production tokens come from the identity provider.
func (v *Verifier) Issue(id ports.Identity, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}
	claims := Claims{
		Email: id.Email,
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
