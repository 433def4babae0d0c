// Package cli provides the bootstrap steps shared by every expense-tracker
// command: environment loading, config validation, logging and shutdown.
package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"expensetracker/internal/config"
	applog "expensetracker/internal/log"
)

// LoadEnvFile loads a .env file from the working directory if one exists.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the process logger from cfg and installs it as the slog default.
func SetupLogger(cfg *config.Config) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: applog.ComponentApp,
		Output:    os.Stderr,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig reads the environment, applies overrides in order
// (command-line flags, usually) and validates the result.
func LoadAndValidateConfig(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.Load()
	for _, apply := range overrides {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NotifyShutdown returns a context cancelled on SIGINT or SIGTERM. cleanup
// runs exactly once: when a signal arrives or when stop is called, whichever
// comes first.
func NotifyShutdown(parent context.Context, logger *applog.Logger, cleanup func() error) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var once sync.Once
	runCleanup := func() {
		once.Do(func() {
			signal.Stop(sigChan)
			if cleanup == nil {
				return
			}
			if err := cleanup(); err != nil {
				logger.Error("Cleanup failed",
					applog.FieldOperation, applog.OpShutdown,
					applog.FieldError, err)
			}
		})
	}

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			runCleanup()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		cancel()
		runCleanup()
	}
}
