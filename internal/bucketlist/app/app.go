package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/kawerewagaba/bucketlist/internal/bucketlist/http"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/service"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store/drivers/sqlite"
	"github.com/kawerewagaba/bucketlist/pkg/cryptox"
	"github.com/kawerewagaba/bucketlist/pkg/jwtx"
	"github.com/kawerewagaba/bucketlist/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the bucketlist service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	tokens *jwtx.HS256

	// Services
	userService         *service.UserService
	tokenService        *service.TokenService
	bucketlistService   *service.BucketlistService
	itemService         *service.ItemService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "bucketlist",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("bucketlist service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down bucketlist service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("bucketlist service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
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

// initTokens builds the HS256 signer/verifier. Without a configured secret a
// random one is generated: fine for dev, but every restart invalidates all
// outstanding tokens.
func (app *Application) initTokens() error {
	secret := []byte(app.cfg.TokenSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate token secret: %w", err)
		}
		app.logger.Warn("BUCKETLIST_TOKEN_SECRET not set, generated an ephemeral secret")
	}

	app.tokens = jwtx.NewHS256(secret, app.cfg.Issuer)
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	revocations := service.NewRevocationList()

	app.tokenService = &service.TokenService{
		Tokens:      app.tokens,
		Revocations: revocations,
		AccessTTL:   app.cfg.AccessTokenTTL,
	}

	app.userService = &service.UserService{Store: app.db}
	app.bucketlistService = &service.BucketlistService{Store: app.db}
	app.itemService = &service.ItemService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		revocations,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokens,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.UserService = app.userService
	router.TokenService = app.tokenService
	router.BucketlistService = app.bucketlistService
	router.ItemService = app.itemService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
