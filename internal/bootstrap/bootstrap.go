package bootstrap

import (
	"agencydesk-server/internal/auth"
	"agencydesk-server/internal/clients/mail"
	"agencydesk-server/internal/config"
	"agencydesk-server/internal/invoicepdf"
	"agencydesk-server/internal/observability"
	"agencydesk-server/internal/scheduler"
	"agencydesk-server/internal/store"
	"context"
	"fmt"

	automationHandler "agencydesk-server/internal/automation/handler"
	automationProcessor "agencydesk-server/internal/automation/processor"
	queueHandler "agencydesk-server/internal/emailqueue/handler"
	queueProcessor "agencydesk-server/internal/emailqueue/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Auth
	Authenticator auth.Authenticator

	// Handlers
	AutomationHandler automationHandler.Handler
	QueueHandler      queueHandler.Handler

	// Processors exposed for background use
	AutomationProcessor automationProcessor.AutomationProcessor
	QueueProcessor      queueProcessor.QueueProcessor

	// Background workers
	QueueScheduler *scheduler.Scheduler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	pdfGenerator := invoicepdf.New(logger)

	// Initialize auth middleware
	deps.Authenticator = auth.New(cfg.Auth.JWTSecret, logger)

	// Initialize automation processor and handler
	deps.AutomationProcessor = automationProcessor.New(&deps.Store, logger)
	deps.AutomationHandler = automationHandler.New(deps.AutomationProcessor, logger)

	// Initialize queue processor and handler
	deps.QueueProcessor = queueProcessor.New(
		&deps.Store,
		mailClient,
		pdfGenerator,
		cfg.Queue.LeaseDuration,
		cfg.Queue.BatchSize,
		logger,
	)
	deps.QueueHandler = queueHandler.New(
		deps.QueueProcessor,
		cfg.Queue.ProcessSecret,
		cfg.Services.ResendAPIKey != "",
		cfg.Services.DefaultEmailSender,
		logger,
	)

	// Initialize in-process queue scheduler when enabled
	if cfg.Queue.SchedulerEnabled {
		deps.QueueScheduler = scheduler.New(&deps.QueueProcessor, cfg.Queue.SchedulerInterval, logger)
	}

	return deps, nil
}
