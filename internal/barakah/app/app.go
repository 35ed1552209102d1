package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/chatbot"
	httpapi "github.com/AnthonyMuncherz/barakahbot/internal/barakah/http"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/payments"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store/drivers/sqlite"
	"github.com/AnthonyMuncherz/barakahbot/pkg/cryptox"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application wires the whole service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	authService         *service.AuthService
	mfaService          *service.MFAService
	campaignService     *service.CampaignService
	donationService     *service.DonationService
	chatService         *service.ChatService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized and the
// database migrated and seeded.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "barakahbot",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.SessionSigningKey == "" {
		// An ephemeral key keeps dev setups painless; sessions will not
		// survive a restart.
		key, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("generating ephemeral session key: %w", err)
		}
		app.cfg.SessionSigningKey = key
		app.logger.Warn("BARAKAH_SESSION_KEY not set, using an ephemeral signing key")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	app.initServices()

	if err := app.seed(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("barakahbot starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down barakahbot...")

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

	app.logger.Info("barakahbot stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
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

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		SigningKey: []byte(app.cfg.SessionSigningKey),
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: "BarakahBot",
	}
	app.campaignService = &service.CampaignService{Store: app.db}
	app.donationService = &service.DonationService{
		Store: app.db,
		Checkout: payments.NewClient(payments.Config{
			BaseURL:       app.cfg.PaymentBaseURL,
			SecretKey:     app.cfg.PaymentSecretKey,
			WebhookSecret: app.cfg.PaymentWebhookSecret,
			SuccessURL:    app.cfg.PaymentSuccessURL,
			CancelURL:     app.cfg.PaymentCancelURL,
		}),
	}
	app.chatService = &service.ChatService{
		Client: chatbot.NewClient(chatbot.Config{
			BaseURL: app.cfg.ChatBaseURL,
			APIKey:  app.cfg.ChatAPIKey,
			Model:   app.cfg.ChatModel,
			Timeout: 30 * time.Second,
		}),
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) seed() error {
	bootstrap := &service.BootstrapService{
		Store:         app.db,
		AdminEmail:    app.cfg.AdminEmail,
		AdminPassword: app.cfg.AdminPassword,
	}
	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := bootstrap.Bootstrap(ctx); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.authService,
		app.cfg.PaymentWebhookSecret,
		app.cfg.SessionTTL,
		app.logger,
	)

	router.MFAService = app.mfaService
	router.CampaignService = app.campaignService
	router.DonationService = app.donationService
	router.ChatService = app.chatService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
