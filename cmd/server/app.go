package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/aimun-naharr/food-donation-app-server/internal/api"
	"github.com/aimun-naharr/food-donation-app-server/internal/api/middleware"
	"github.com/aimun-naharr/food-donation-app-server/internal/config"
	"github.com/aimun-naharr/food-donation-app-server/internal/platform/postgres"
	"github.com/aimun-naharr/food-donation-app-server/internal/service/auth"
	"github.com/aimun-naharr/food-donation-app-server/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// application holds the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore   store.UserStore
	supplyStore store.SupplyStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	// Handlers
	authHandler   *api.AuthHandler
	supplyHandler *api.SupplyHandler
	healthHandler *api.HealthHandler
}

// newApplication creates an application instance with all dependencies
// initialized and injected.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	app := &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        postgres.NewUserStore(db, logger),
		supplyStore:      postgres.NewSupplyStore(db, logger),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
	}

	app.authHandler = api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	app.supplyHandler = api.NewSupplyHandler(app.supplyStore)
	app.healthHandler = api.NewHealthHandler()

	return app, nil
}

// router builds the chi router with middleware and all routes.
func (app *application) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/", app.healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", app.authHandler.Register)
		r.Post("/login", app.authHandler.Login)

		r.Post("/create-new", app.supplyHandler.Create)
		r.Get("/all-supplies", app.supplyHandler.List)
		r.Route("/items", func(r chi.Router) {
			r.Get("/{id}", app.supplyHandler.GetByID)
			r.Put("/{id}", app.supplyHandler.Update)
			r.Delete("/{id}", app.supplyHandler.Delete)
		})
	})

	return r
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
