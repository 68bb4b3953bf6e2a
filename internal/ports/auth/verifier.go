package auth

import "context"

// SessionVerifier resuelve un token de sesión (cookie) a un principal o error.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}
