package config

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lotto-engine/application/engine"
	"lotto-engine/application/services"
	"lotto-engine/application/usecases"
	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
	"lotto-engine/infrastructure/blockchain"
	"lotto-engine/infrastructure/logger"
	"lotto-engine/infrastructure/metrics"
	"lotto-engine/infrastructure/notifier"
	"lotto-engine/infrastructure/repository"
)

// Container represents the dependency injection container
type Container struct {
	Config *Config

	// Infrastructure
	Logger      interfaces.Logger
	DB          *gorm.DB
	ChainReader interfaces.ChainReader
	Metrics     *metrics.Metrics
	Notifier    interfaces.Notifier

	// Repositories
	RoundRepository  interfaces.RoundRepository
	TicketRepository interfaces.TicketRepository
	PayoutRepository interfaces.PayoutRepository
	StateRepository  interfaces.StateRepository
	UnitOfWork       interfaces.UnitOfWork

	// Core
	Engine           *engine.Engine
	RandomnessSource interfaces.RandomnessSource

	// Services
	ReportBuilder interfaces.ReportBuilder

	// Use Cases
	DrawRoundUseCase        interfaces.DrawRoundUseCase
	WatchRoundUseCase       interfaces.WatchRoundUseCase
	SettlementReportUseCase interfaces.SettlementReportUseCase
}

// NewContainer creates a new dependency injection container. The engine is
// rebuilt from the persisted ledger records, so every command sees the state
// the previous command left behind.
func NewContainer(config *Config) (*Container, error) {
	container := &Container{
		Config: config,
	}

	container.Logger = logger.NewLogrusLogger(config.LogLevel, config.LogFormat)

	if err := container.initChainReader(); err != nil {
		return nil, fmt.Errorf("failed to initialize chain reader: %w", err)
	}

	if err := container.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := container.initEngine(); err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}

	container.initServices()
	container.initUseCases()

	return container, nil
}

// initChainReader connects to the chain endpoint when one is configured.
func (c *Container) initChainReader() error {
	if c.Config.RPCAddr == "" {
		c.Logger.Debug("No RPC endpoint configured, running without a chain connection")
		return nil
	}

	chainReader, err := blockchain.NewEthereumClient(c.Config.RPCAddr, c.Config.ChainID)
	if err != nil {
		return err
	}
	c.ChainReader = chainReader
	return nil
}

// initDatabase opens the database and migrates the ledger schema.
func (c *Container) initDatabase() error {
	var dialector gorm.Dialector
	switch c.Config.Database.Driver {
	case "postgres":
		dialector = postgres.Open(c.Config.Database.GetDatabaseDSN())
	case "sqlite":
		dialector = sqlite.Open(c.Config.Database.Path)
	default:
		return fmt.Errorf("unsupported database driver %q", c.Config.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if c.Config.Database.Driver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
		sqlDB.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	}

	if err := db.AutoMigrate(
		&entities.EngineState{},
		&entities.Round{},
		&entities.Ticket{},
		&entities.Payout{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	c.DB = db
	c.RoundRepository = repository.NewRoundRepository(db)
	c.TicketRepository = repository.NewTicketRepository(db)
	c.PayoutRepository = repository.NewPayoutRepository(db)
	c.StateRepository = repository.NewStateRepository(db)
	c.UnitOfWork = repository.NewUnitOfWork(db)

	return nil
}

// initEngine restores the engine from the persisted ledger. The randomness
// source follows the oracle reference stored with the engine configuration,
// so a reconfiguration takes effect on the next process start.
func (c *Container) initEngine() error {
	ctx := context.Background()

	state, err := c.StateRepository.Load(ctx)
	if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return err
	}

	oracleRef := ""
	if state != nil {
		oracleRef = state.Config.OracleRef
	}
	source, err := blockchain.NewRandomnessSource(oracleRef, c.ChainReader, c.Logger)
	if err != nil {
		return err
	}
	c.RandomnessSource = source

	if state == nil {
		c.Engine = engine.New(source, c.Logger)
		return nil
	}

	rounds, err := c.RoundRepository.FindAll(ctx)
	if err != nil {
		return err
	}
	tickets, err := c.TicketRepository.FindAll(ctx)
	if err != nil {
		return err
	}

	c.Engine = engine.Restore(state, rounds, tickets, source, c.Logger)
	c.Logger.Debug("Engine restored",
		"rounds", len(rounds),
		"tickets", len(tickets),
		"treasury", state.TreasuryBalance)
	return nil
}

// initServices initializes domain services
func (c *Container) initServices() {
	c.ReportBuilder = services.NewSettlementReporter(c.Logger)
	c.Metrics = metrics.NewMetrics()

	if c.Config.Slack.WebhookURL != "" {
		c.Notifier = notifier.NewSlackNotifier(
			c.Config.Slack.WebhookURL,
			c.Config.Slack.Channel,
			c.Config.Slack.MentionUsers,
			c.Logger,
		)
	}
}

// initUseCases initializes use cases
func (c *Container) initUseCases() {
	c.DrawRoundUseCase = usecases.NewDrawRoundUseCase(
		c.Engine,
		c.ChainReader,
		c.UnitOfWork,
		c.Notifier,
		c.Logger,
	)

	c.WatchRoundUseCase = usecases.NewWatchRoundUseCase(
		c.Engine,
		c.ChainReader,
		c.DrawRoundUseCase,
		c.Logger,
	)

	c.SettlementReportUseCase = usecases.NewSettlementReportUseCase(
		c.RoundRepository,
		c.TicketRepository,
		c.PayoutRepository,
		c.StateRepository,
		c.ChainReader,
		c.ReportBuilder,
		c.Logger,
	)
}

// Close releases the container's external connections.
func (c *Container) Close() {
	if c.ChainReader != nil {
		_ = c.ChainReader.Close()
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
