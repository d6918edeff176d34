package api

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/smsledger/smsledger/internal/domain/accounts"
	"github.com/smsledger/smsledger/internal/domain/ingest"
	ingesthandler "github.com/smsledger/smsledger/internal/domain/ingest/handler"
	"github.com/smsledger/smsledger/internal/domain/parser"
	"github.com/smsledger/smsledger/pkg/config"
	"github.com/smsledger/smsledger/pkg/metrics"
	"github.com/smsledger/smsledger/pkg/money"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	// Repositories
	AccountRepo     accounts.Repository
	TransactionRepo ingest.TransactionRepository

	// Services
	Parser          *parser.Parser
	AccountResolver *accounts.Resolver
	IngestService   *ingest.Service

	// Handlers
	IngestHandler *ingesthandler.IngestHandler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
	}

	deps.initRepositories()
	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initRepositories initializes the storage layer. Stores are in-memory; the
// account set is seeded with the default book every fresh process starts
// with.
func (d *Dependencies) initRepositories() {
	accountRepo := accounts.NewMemoryRepository()
	accountRepo.Seed(defaultAccounts())
	d.AccountRepo = accountRepo

	d.TransactionRepo = ingest.NewMemoryTransactionRepository()

	d.Logger.Info("repositories initialized")
}

// initServices initializes the service layer
func (d *Dependencies) initServices() {
	d.Parser = parser.New()
	d.AccountResolver = accounts.NewResolver(d.AccountRepo)
	d.IngestService = ingest.NewService(
		d.Parser,
		d.AccountResolver,
		d.TransactionRepo,
		d.Metrics,
		d.Logger,
		d.Config.Currency.Default,
	)

	d.Logger.Info("services initialized")
}

// initHandlers initializes the handler layer
func (d *Dependencies) initHandlers() {
	d.IngestHandler = ingesthandler.NewIngestHandler(d.IngestService, d.Logger)

	d.Logger.Info("handlers initialized")
}

// defaultAccounts is the starter account book new installs get.
func defaultAccounts() []accounts.Account {
	return []accounts.Account{
		{ID: uuid.New(), Name: "HDFC Bank", Type: accounts.TypeBank, InitialBalance: money.Zero(money.INR), Color: "#004C8F"},
		{ID: uuid.New(), Name: "SBI Bank", Type: accounts.TypeBank, InitialBalance: money.Zero(money.INR), Color: "#22409A"},
		{ID: uuid.New(), Name: "ICICI Bank", Type: accounts.TypeBank, InitialBalance: money.Zero(money.INR), Color: "#F37B20"},
		{ID: uuid.New(), Name: "Axis Bank", Type: accounts.TypeBank, InitialBalance: money.Zero(money.INR), Color: "#97144D"},
		{ID: uuid.New(), Name: "Cash", Type: accounts.TypeCash, InitialBalance: money.Zero(money.INR), Color: "#4CAF50"},
	}
}
