// Package app assembles the process-wide AppContext: the opened store, the
// in-memory budget and the advisor rule table, built from configuration.
package app

import (
	"context"
	"errors"
	"fmt"

	"expensetracker/internal/config"
	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/services"
	"expensetracker/internal/storage"
	"expensetracker/internal/storage/memory"
)

// BackendType represents the type of storage backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases what New acquired. It is safe to call more than once.
type CleanupFunc func() error

// Context carries everything the presenter needs. There is no package-level
// state: each Context owns its store and budget.
type Context struct {
	Store       storage.Store
	Budget      *services.BudgetHolder
	Rules       []core.AdvisorRule
	StrictDates bool
	ExportPath  string
	Currency    string
	Logger      *applog.Logger
}

// Options are the subset of config.Config that New reads.
type Options struct {
	Backend     BackendType
	DBPath      string
	RulesFile   string
	ExportPath  string
	StrictDates bool
	Currency    string
}

// OptionsFromConfig converts the application config to context options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	if cfg == nil {
		return Options{}, errors.New("app config is nil")
	}
	backend := BackendType(cfg.DataBackend)
	if !backend.IsValid() {
		return Options{}, fmt.Errorf("invalid backend type in config: %s", cfg.DataBackend)
	}
	return Options{
		Backend:     backend,
		DBPath:      cfg.SQLiteDBPath,
		RulesFile:   cfg.RulesFile,
		ExportPath:  cfg.ExportPath,
		StrictDates: cfg.StrictDates,
		Currency:    cfg.CurrencySymbol,
	}, nil
}

// New opens the store and loads the rule table. The returned cleanup closes
// the store and must run on every exit path.
func New(ctx context.Context, opts Options, logger *applog.Logger) (*Context, CleanupFunc, error) {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	logger = logger.WithComponent(applog.ComponentApp)

	rules, err := services.LoadRules(opts.RulesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load advisor rules: %w", err)
	}
	rulesSource := "built-in"
	if opts.RulesFile != "" {
		rulesSource = opts.RulesFile
	}

	store, err := openStore(opts)
	if err != nil {
		return nil, nil, err
	}

	logger.InfoContext(ctx, "Initialized expense store",
		applog.FieldBackend, opts.Backend.String(),
		applog.FieldDBPath, opts.DBPath,
		applog.FieldRulesSource, rulesSource)

	appCtx := &Context{
		Store:       store,
		Budget:      services.NewBudgetHolder(),
		Rules:       rules,
		StrictDates: opts.StrictDates,
		ExportPath:  opts.ExportPath,
		Currency:    opts.Currency,
		Logger:      logger,
	}

	closed := false
	cleanup := func() error {
		if closed {
			return nil
		}
		closed = true
		if err := store.Close(); err != nil {
			return fmt.Errorf("close store: %w", err)
		}
		logger.Info("Expense store closed", applog.FieldOperation, applog.OpShutdown)
		return nil
	}

	return appCtx, cleanup, nil
}

func openStore(opts Options) (storage.Store, error) {
	switch opts.Backend {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
		}
		return repo, nil
	case MemoryBackend:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", opts.Backend)
	}
}
