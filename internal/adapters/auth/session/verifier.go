package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"willow-pups/internal/ports/auth"
)

var (
	ErrTokenEmpty = errors.New("token is empty")
)

// Verifier implementa auth.SessionVerifier contra el servicio de sesión.
// Se instancia desde main/router solo si SESSION_AUTH_URL está configurada.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Principal, error) {
	if v == nil || v.client == nil {
		return auth.Principal{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Principal{}, ErrTokenEmpty
	}

	p, err := v.client.ResolveSession(ctx, token)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("session verify failed: %w", err)
	}

	if strings.TrimSpace(p.UserID) == "" {
		return auth.Principal{}, errors.New("session principal missing user id")
	}

	return p, nil
}
