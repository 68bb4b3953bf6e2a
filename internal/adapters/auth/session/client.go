package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"willow-pups/internal/platform/httpclient"
	"willow-pups/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("session client not configured")
	ErrUnauthorized  = errors.New("session unauthorized")
	ErrUpstream      = errors.New("session upstream error")
)

// Config del cliente del servicio de sesión.
// BaseURL y APIKey normalmente vienen de env vars (SESSION_AUTH_URL, SESSION_AUTH_KEY).
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: header de la API key. Vacío => "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

// ResolveSession intercambia el token de la cookie por el principal.
func (c *Client) ResolveSession(ctx context.Context, token string) (auth.Principal, error) {
	if !c.IsConfigured() {
		return auth.Principal{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Principal{}, ErrUnauthorized
	}

	var out struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}

	err := c.http.DoJSON(ctx, http.MethodPost, "/v1/sessions/verify",
		map[string]string{c.apiKeyHeader: c.apiKey},
		map[string]string{"token": token},
		&out,
	)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) {
			if he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden {
				return auth.Principal{}, ErrUnauthorized
			}
			return auth.Principal{}, fmt.Errorf("%w: status=%d", ErrUpstream, he.StatusCode)
		}
		return auth.Principal{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Principal{}, errors.New("session response missing user_id")
	}

	role := auth.RoleUser
	if strings.EqualFold(strings.TrimSpace(out.Role), string(auth.RoleAdmin)) {
		role = auth.RoleAdmin
	}

	return auth.Principal{
		UserID: out.UserID,
		Email:  strings.TrimSpace(out.Email),
		Role:   role,
	}, nil
}
