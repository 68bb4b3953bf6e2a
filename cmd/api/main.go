package main

import (
	"net/http"
	"os"
	"time"

	"willow-pups/internal/adapters/auth/session"
	"willow-pups/internal/adapters/notify/owner"
	"willow-pups/internal/platform/logger"
	"willow-pups/internal/ports/auth"
	"willow-pups/internal/ports/notify"
	"willow-pups/internal/router"
)

// @title Willow Pups API
// @version 1.0
// @description Backend del sitio de adopción de la camada: galería pública, hearts por visitante, solicitudes de adopción y administración.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Verifier de sesión: solo si está configurado el servicio externo.
	// Sin SESSION_AUTH_URL corre en modo dev (headers X-Debug-*).
	var verifier auth.SessionVerifier
	if baseURL := os.Getenv("SESSION_AUTH_URL"); baseURL != "" {
		client, err := session.NewClient(session.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("SESSION_AUTH_KEY"),
		})
		if err != nil {
			log.Error("invalid session auth config", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		verifier = session.NewVerifier(client)
	}

	// Avisos al dueño: best-effort, opcional.
	var notifier notify.Notifier
	if url := os.Getenv("OWNER_NOTIFY_URL"); url != "" {
		notifier = owner.NewNotifier(owner.Config{
			URL:    url,
			APIKey: os.Getenv("OWNER_NOTIFY_KEY"),
		}, log)
	}

	r := router.NewRouter(router.Options{
		SessionVerifier: verifier,
		Notifier:        notifier,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
