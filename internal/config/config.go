package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Storage
	DataBackend  string
	SQLiteDBPath string

	// Export
	ExportPath string

	// Advisor
	RulesFile string

	// Ledger
	StrictDates bool

	// View
	CurrencySymbol string

	// Logging
	LogLevel  string
	LogFormat string
}

var (
	validBackends   = []string{"sqlite", "memory"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

func Load() *Config {
	cfg := &Config{
		DataBackend:  getEnv("EXPENSES_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("EXPENSES_DB_PATH", "expenses.db"),

		ExportPath: getEnv("EXPENSES_EXPORT_PATH", "expense_report.csv"),
		RulesFile:  getEnv("EXPENSES_RULES_FILE", ""),

		StrictDates:    getEnvBool("EXPENSES_STRICT_DATES", false),
		CurrencySymbol: getEnv("EXPENSES_CURRENCY", "₹"),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !contains(validBackends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if info, err := os.Stat(c.SQLiteDBPath); err == nil && info.IsDir() {
			errors = append(errors, fmt.Sprintf("SQLite database path '%s' is a directory", c.SQLiteDBPath))
		}
	}

	if c.ExportPath == "" {
		errors = append(errors, "export path cannot be empty")
	} else if dir := filepath.Dir(c.ExportPath); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("export directory '%s' does not exist", dir))
		}
	}

	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("advisor rules file does not exist: %s", c.RulesFile))
		}
		switch strings.ToLower(filepath.Ext(c.RulesFile)) {
		case ".yaml", ".yml", ".toml":
		default:
			errors = append(errors, fmt.Sprintf("advisor rules file '%s' must be .yaml, .yml or .toml", c.RulesFile))
		}
	}

	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLogLevels))
	}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validLogFormats))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
