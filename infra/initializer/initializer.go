// Package initializer builds the application's dependency graph from
// configuration.
package initializer

import (
	"log/slog"

	infranotify "github.com/amirasaad/transfers/infra/notify"
	infrarepo "github.com/amirasaad/transfers/infra/repository"
	"github.com/amirasaad/transfers/pkg/config"
	"github.com/amirasaad/transfers/pkg/guard"
	"github.com/amirasaad/transfers/pkg/notify"
	"github.com/amirasaad/transfers/pkg/repository"
	"github.com/amirasaad/transfers/pkg/service/transfer"
)

// Deps bundles every constructed dependency the server needs.
type Deps struct {
	Logger      *slog.Logger
	Accounts    repository.AccountRepository
	Guards      *guard.Registry
	Pipeline    *notify.Pipeline
	TransferSvc *transfer.Service
}

// InitializeDependencies wires the account store, balance guards,
// notification pipeline and transfer engine.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	accounts := infrarepo.NewMemoryAccountRepository()
	guards := guard.NewRegistry(cfg.Guard.Timeout)
	notifier := infranotify.NewLogNotifier(logger)
	pipeline := notify.NewPipeline(notifier, cfg.Notify.Buffer, logger)
	svc := transfer.NewService(accounts, guards, pipeline, logger)

	return &Deps{
		Logger:      logger,
		Accounts:    accounts,
		Guards:      guards,
		Pipeline:    pipeline,
		TransferSvc: svc,
	}, nil
}
