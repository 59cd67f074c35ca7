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

	httpapi "github.com/aussiebroadwan/timeworld/internal/server/http"
	"github.com/aussiebroadwan/timeworld/internal/server/service"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
	"github.com/aussiebroadwan/timeworld/internal/server/store/drivers/sqlite"
	"github.com/aussiebroadwan/timeworld/pkg/cryptox"
	"github.com/aussiebroadwan/timeworld/pkg/jwtx"
	"github.com/aussiebroadwan/timeworld/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"

	sessionKeyInfo = "timeworld-session-signing"
)

// Application encapsulates the service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.HS256Signer

	tokenService        *service.TokenService
	authService         *service.AuthService
	cityService         *service.CityService
	settingsService     *service.SettingsService
	weatherService      *service.WeatherService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "timeworld",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSigner(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("timeworld service starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down timeworld service...")

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

	app.logger.Info("timeworld service stopped")
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

// initSigner derives the session signing key from the master secret file.
// The same file across restarts keeps previously minted tokens verifiable.
func (app *Application) initSigner() error {
	secret, err := cryptox.LoadOrCreateMasterSecret(app.cfg.MasterSecretFile)
	if err != nil {
		return fmt.Errorf("failed to load master secret: %w", err)
	}

	key, err := cryptox.DeriveKey(secret, sessionKeyInfo, jwtx.HS256KeyLength)
	if err != nil {
		return fmt.Errorf("failed to derive signing key: %w", err)
	}

	app.signer, err = jwtx.NewHS256Signer(key, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize signer: %w", err)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Signer:     app.signer,
		Store:      app.db,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.authService = &service.AuthService{
		Store:  app.db,
		Tokens: app.tokenService,
		Yandex: service.NewYandexClient(app.cfg.YandexClientID, app.cfg.YandexClientSecret),
	}

	app.cityService = &service.CityService{Store: app.db}
	app.settingsService = &service.SettingsService{Store: app.db}
	app.weatherService = service.NewWeatherService(app.cfg.OpenWeatherAPIKey)

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.TokenService = app.tokenService
	router.AuthService = app.authService
	router.CityService = app.cityService
	router.SettingsService = app.settingsService
	router.WeatherService = app.weatherService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
