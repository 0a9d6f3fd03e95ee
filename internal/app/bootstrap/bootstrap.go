package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	campaignservice "fundflow/contexts/fundraising/campaign-service"
	campaignpostgres "fundflow/contexts/fundraising/campaign-service/adapters/postgres"
	donationservice "fundflow/contexts/fundraising/donation-service"
	donationpostgres "fundflow/contexts/fundraising/donation-service/adapters/postgres"
	accountservice "fundflow/contexts/identity-access/account-service"
	accountpostgres "fundflow/contexts/identity-access/account-service/adapters/postgres"
	"fundflow/contexts/identity-access/account-service/adapters/token"
	"fundflow/internal/platform/config"
	"fundflow/internal/platform/db"
	"fundflow/internal/platform/httpserver"
	"fundflow/internal/platform/mail"
	"fundflow/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	module       donationservice.Module
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	accounts := accountservice.NewModule(accountservice.Dependencies{
		Users:       accountRepo,
		Hasher:      token.BcryptHasher{},
		Tokens:      token.JWTIssuer{Secret: []byte(cfg.TokenSecret), TTL: cfg.TokenTTL},
		Clock:       accountpostgres.SystemClock{},
		IDGenerator: accountpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	campaignRepo := campaignpostgres.NewRepository(pg.DB, logger)
	campaigns := campaignservice.NewModule(campaignservice.Dependencies{
		Campaigns:   campaignRepo,
		Owners:      campaignRepo,
		Clock:       campaignpostgres.SystemClock{},
		IDGenerator: campaignpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	// The API process never publishes or consumes; the outbox relay and the
	// confirmation consumer live in the worker process.
	donationRepo := donationpostgres.NewRepository(pg.DB, logger)
	donations := donationservice.NewModule(donationservice.Dependencies{
		Ledger:      donationRepo,
		Outbox:      donationRepo,
		Dedup:       donationRepo,
		Clock:       donationpostgres.SystemClock{},
		IDGenerator: donationpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(accounts, campaigns, donations, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	donationRepo := donationpostgres.NewRepository(pg.DB, logger)
	module := donationservice.NewModule(donationservice.Dependencies{
		Ledger:      donationRepo,
		Outbox:      donationRepo,
		Publisher:   bus,
		Subscriber:  bus,
		Dedup:       donationRepo,
		Mailer:      mail.LogMailer{Logger: logger},
		Clock:       donationpostgres.SystemClock{},
		IDGenerator: donationpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	return &WorkerApp{
		postgres:     pg,
		module:       module,
		pollInterval: cfg.WorkerPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.module.Confirmation.Start(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.module.Relay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
