package owner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"willow-pups/internal/platform/httpclient"
	"willow-pups/internal/platform/logger"
	"willow-pups/internal/ports/notify"
)

var (
	ErrNotConfigured = errors.New("owner notifier not configured")
	ErrUpstream      = errors.New("owner notifier upstream error")
)

// Config del webhook de avisos al dueño.
// Viene de env vars (OWNER_NOTIFY_URL, OWNER_NOTIFY_KEY).
type Config struct {
	URL    string
	APIKey string

	APIKeyHeader string
	Timeout      time.Duration
}

// Notifier implementa notify.Notifier contra un webhook simple.
// Es best-effort por contrato: el caller descarta el error, acá solo se loguea.
type Notifier struct {
	http         *httpclient.Client
	url          string
	apiKey       string
	apiKeyHeader string
	log          logger.Logger
}

func NewNotifier(cfg Config, log logger.Logger) *Notifier {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Notifier{
		http:         httpclient.New(timeout),
		url:          strings.TrimSpace(cfg.URL),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		log:          log,
	}
}

func (n *Notifier) IsConfigured() bool {
	return n != nil && n.url != ""
}

func (n *Notifier) Notify(ctx context.Context, msg notify.Notification) error {
	if !n.IsConfigured() {
		return ErrNotConfigured
	}

	headers := map[string]string{}
	if n.apiKey != "" {
		headers[n.apiKeyHeader] = n.apiKey
	}

	err := n.http.DoJSON(ctx, http.MethodPost, n.url, headers, map[string]string{
		"title":   msg.Title,
		"content": msg.Content,
	}, nil)
	if err != nil {
		if n.log != nil {
			n.log.Warn("owner notification failed", map[string]any{"err": err.Error()})
		}
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return nil
}
