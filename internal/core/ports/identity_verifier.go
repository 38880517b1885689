package ports

import "context"

// Identity is the verified subject of a bearer credential.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// IdentityVerifier validates bearer credentials issued by the identity
// provider.
type IdentityVerifier interface {
	// Verify returns the identity behind token, or errs.UnauthorizedError.
	Verify(ctx context.Context, token string) (Identity, error)
}
