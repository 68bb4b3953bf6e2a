package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	mem "willow-pups/internal/adapters/storage/memory"
	pg "willow-pups/internal/adapters/storage/postgres"
	"willow-pups/internal/domain/applications"
	"willow-pups/internal/domain/hearts"
	"willow-pups/internal/domain/puppies"
	"willow-pups/internal/middleware"
	"willow-pups/internal/ports/auth"
	"willow-pups/internal/ports/notify"

	_ "willow-pups/docs" // registro del spec swagger generado

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	SessionVerifier auth.SessionVerifier // puede ser nil (modo dev)
	Notifier        notify.Notifier      // puede ser nil (sin avisos al dueño)

	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(15 * time.Second))

	r.Use(middleware.AuthContext(opts.SessionVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		puppyRepo puppies.Repository
		heartRepo hearts.Repository
		appRepo   applications.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				if err := pg.Migrate(opened); err == nil {
					db = opened
				} else {
					_ = opened.Close()
				}
			}
		}
	}

	if db != nil {
		puppyRepo = pg.NewPuppiesRepo(db)
		heartRepo = pg.NewHeartsRepo(db)
		appRepo = pg.NewApplicationsRepo(db)
	} else {
		puppyRepo = mem.NewPuppiesRepo()
		heartRepo = mem.NewHeartsRepo()
		appRepo = mem.NewApplicationsRepo()
	}

	// Services por módulo
	puppiesSvc := puppies.NewService(puppyRepo)
	heartsSvc := hearts.NewService(heartRepo)
	appsSvc := applications.NewService(appRepo, opts.Notifier)

	// Rutas por módulo
	puppies.RegisterRoutes(r, puppiesSvc)
	hearts.RegisterRoutes(r, heartsSvc)
	applications.RegisterRoutes(r, appsSvc)

	return r
}
