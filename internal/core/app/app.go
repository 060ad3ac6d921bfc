package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/cryptly-dev/cryptly/internal/core/http"
	"github.com/cryptly-dev/cryptly/internal/core/service"
	"github.com/cryptly-dev/cryptly/internal/core/store"
	"github.com/cryptly-dev/cryptly/internal/core/store/drivers/sqlite"
	"github.com/cryptly-dev/cryptly/pkg/jwtx"
	"github.com/cryptly-dev/cryptly/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the core service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	verifier jwtx.Verifier

	// Services
	accessService       *service.AccessService
	projectService      *service.ProjectService
	invitationService   *service.InvitationService
	deviceService       *service.DeviceService
	webhookService      *service.WebhookService
	housekeepingService *service.HousekeepingService
	events              *service.EventEmitter

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	// HMAC with an empty key is forgeable; refuse to boot without one.
	if cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("CRYPTLY_WEBHOOK_SECRET is required")
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "cryptly-core",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initVerifier(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("core service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down core service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service and drain the event channel
	app.housekeepingService.Stop()
	app.events.Close()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("core service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initVerifier loads the Ed25519 public key tokens are verified against.
// Token minting lives in the identity service; this service only verifies.
func (app *Application) initVerifier() error {
	if app.cfg.AuthPublicKeyFile == "" {
		return fmt.Errorf("CRYPTLY_AUTH_PUBLIC_KEY_FILE is required")
	}

	pemKey, err := os.ReadFile(app.cfg.AuthPublicKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read auth public key: %w", err)
	}

	verifier, err := jwtx.NewVerifierFromPEM(pemKey, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to load auth public key: %w", err)
	}
	app.verifier = verifier
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.events = service.NewEventEmitter(app.cfg.EventBufferSize, app.logger)

	app.accessService = &service.AccessService{Store: app.db}
	app.projectService = &service.ProjectService{
		Store:  app.db,
		Access: app.accessService,
	}
	app.invitationService = &service.InvitationService{
		Store:  app.db,
		Access: app.accessService,
		Events: app.events,
		TTL:    app.cfg.InvitationTTL,
	}
	app.deviceService = &service.DeviceService{
		Store:  app.db,
		Events: app.events,
		TTL:    app.cfg.DeviceTTL,
	}
	app.webhookService = &service.WebhookService{
		Secret: []byte(app.cfg.WebhookSecret),
		Events: app.events,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	// Drain events into the structured log until a downstream consumer exists.
	go func() {
		for ev := range app.events.Events() {
			app.logger.Info("event",
				"type", ev.Type,
				"project_id", ev.ProjectID,
				"actor_id", ev.ActorID,
				"subject_id", ev.SubjectID,
			)
		}
	}()
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.ProjectService = app.projectService
	router.InvitationService = app.invitationService
	router.DeviceService = app.deviceService
	router.WebhookService = app.webhookService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
