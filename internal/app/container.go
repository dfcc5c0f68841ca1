package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/slotwise/internal/classifier"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/commands"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/services"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/infrastructure/persistence"
	"github.com/felixgeelhaar/slotwise/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/slotwise/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/slotwise/pkg/config"
	"github.com/felixgeelhaar/slotwise/pkg/observability"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	UserID uuid.UUID

	// Database
	DBDriver     database.Driver
	SQLiteDB     *sql.DB
	PostgresPool *pgxpool.Pool

	// Metrics and health
	Registry *prometheus.Registry
	Metrics  *observability.SchedulerMetrics
	Health   *observability.HealthRegistry

	// Repositories
	ScheduleRepo domain.ScheduleRepository

	// Services
	Classifier     *classifier.Chain
	SmartScheduler *services.SmartScheduler

	// Command handlers
	SmartScheduleTaskHandler *commands.SmartScheduleTaskHandler
	SaveScheduleHandler      *commands.SaveScheduleHandler
	EditSlotHandler          *commands.EditSlotHandler
	ResetScheduleHandler     *commands.ResetScheduleHandler
	ImportScheduleHandler    *commands.ImportScheduleHandler

	// Query handlers
	GetScheduleHandler    *queries.GetScheduleHandler
	GetActiveSlotHandler  *queries.GetActiveSlotHandler
	GetNextSlotHandler    *queries.GetNextSlotHandler
	ListCategoriesHandler *queries.ListCategoriesHandler
}

// NewContainer creates a new container with all dependencies wired up.
// An empty or non-postgres DATABASE_URL runs against the local SQLite file.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid SLOTWISE_USER_ID %q: %w", cfg.UserID, err)
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		UserID:   userID,
		DBDriver: database.DetectDriver(cfg.DatabaseURL),
		Registry: prometheus.NewRegistry(),
		Health:   observability.NewHealthRegistry(),
	}
	c.Metrics = observability.NewSchedulerMetrics(c.Registry)

	if err := c.initStorage(ctx); err != nil {
		c.Close()
		return nil, err
	}

	c.initClassifier()
	c.SmartScheduler = services.NewSmartScheduler(c.classifierOrNil(), logger, c.Metrics)

	c.SmartScheduleTaskHandler = commands.NewSmartScheduleTaskHandler(c.ScheduleRepo, c.SmartScheduler)
	c.SaveScheduleHandler = commands.NewSaveScheduleHandler(c.ScheduleRepo)
	c.EditSlotHandler = commands.NewEditSlotHandler(c.ScheduleRepo)
	c.ResetScheduleHandler = commands.NewResetScheduleHandler(c.ScheduleRepo)
	c.ImportScheduleHandler = commands.NewImportScheduleHandler(c.ScheduleRepo)

	c.GetScheduleHandler = queries.NewGetScheduleHandler(c.ScheduleRepo)
	c.GetActiveSlotHandler = queries.NewGetActiveSlotHandler(c.ScheduleRepo)
	c.GetNextSlotHandler = queries.NewGetNextSlotHandler(c.ScheduleRepo)
	c.ListCategoriesHandler = queries.NewListCategoriesHandler(c.ScheduleRepo)

	c.Health.Register("classifier", observability.ClassifierHealthChecker(c.Classifier.Providers, c.Classifier.OpenCircuits))

	logger.Debug("container initialized",
		"driver", c.DBDriver,
		"classifier_providers", c.Classifier.Len(),
	)
	return c, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	switch c.DBDriver {
	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, c.Config.DatabaseURL, 0)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.PostgresPool = pool
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.ScheduleRepo = persistence.NewPostgresScheduleRepository(pool)
		c.Health.Register("storage", observability.StorageHealthChecker("postgres", pool.Ping))

	default:
		db, err := database.OpenSQLite(ctx, c.Config.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to initialize SQLite: %w", err)
		}
		c.SQLiteDB = db
		if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.ScheduleRepo = persistence.NewSQLiteScheduleRepository(db)
		c.Health.Register("storage", observability.StorageHealthChecker("sqlite", db.PingContext))
	}
	return nil
}

func (c *Container) initClassifier() {
	cfg := c.Config
	providers := classifier.NewProviders(classifier.Settings{
		GroqAPIKey:         cfg.GroqAPIKey,
		GroqBaseURL:        cfg.GroqBaseURL,
		GroqPrimaryModel:   cfg.GroqPrimaryModel,
		GroqFallbackModel:  cfg.GroqFallbackModel,
		HuggingFaceAPIKey:  cfg.HuggingFaceAPIKey,
		HuggingFaceBaseURL: cfg.HuggingFaceBaseURL,
		HuggingFaceModels:  cfg.HuggingFaceModels,
		Options: classifier.GenerationOptions{
			Temperature: cfg.ClassifierTemperature,
			MaxTokens:   cfg.ClassifierMaxTokens,
		},
		Timeout: cfg.ClassifierHTTPTimeout,
	})
	if len(providers) == 0 {
		c.Logger.Debug("no classifier providers configured, LLM fallback disabled")
		return
	}

	chainConfig := classifier.DefaultChainConfig()
	if cfg.ClassifierBreakerFailures > 0 {
		chainConfig.FailureThreshold = uint32(cfg.ClassifierBreakerFailures)
	}
	if cfg.ClassifierBreakerTimeout > 0 {
		chainConfig.Timeout = cfg.ClassifierBreakerTimeout
	}
	c.Classifier = classifier.NewChain(providers, chainConfig, c.Logger, c.Metrics)
}

// classifierOrNil keeps a nil *Chain from becoming a non-nil interface.
func (c *Container) classifierOrNil() services.Classifier {
	if c.Classifier == nil {
		return nil
	}
	return c.Classifier
}

// Close releases the database connections.
func (c *Container) Close() {
	if c.PostgresPool != nil {
		c.PostgresPool.Close()
		c.Logger.Debug("PostgreSQL connection closed")
	}
	if c.SQLiteDB != nil {
		if err := c.SQLiteDB.Close(); err != nil {
			c.Logger.Warn("error closing SQLite connection", "error", err)
		} else {
			c.Logger.Debug("SQLite connection closed")
		}
	}
}

// WriteMetrics dumps the metrics registry to the configured textfile.
func (c *Container) WriteMetrics() error {
	if c.Config.MetricsTextfile == "" {
		return nil
	}
	return observability.WriteTextfile(c.Config.MetricsTextfile, c.Registry)
}
