package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		DataBackend:    "sqlite",
		SQLiteDBPath:   "expenses.db",
		ExportPath:     "expense_report.csv",
		CurrencySymbol: "₹",
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	rulesFile := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(rulesFile, []byte("rules: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	jsonRules := filepath.Join(dir, "rules.json")
	if err := os.WriteFile(jsonRules, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "memory backend ignores db path",
			mutate: func(c *Config) { c.DataBackend = "memory"; c.SQLiteDBPath = "" },
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [sqlite memory]",
		},
		{
			name:        "sqlite backend missing database path",
			mutate:      func(c *Config) { c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name:        "database path is a directory",
			mutate:      func(c *Config) { c.SQLiteDBPath = dir },
			wantErr:     true,
			errorString: "is a directory",
		},
		{
			name:        "export directory missing",
			mutate:      func(c *Config) { c.ExportPath = filepath.Join(dir, "nope", "report.csv") },
			wantErr:     true,
			errorString: "export directory",
		},
		{
			name:   "rules file present",
			mutate: func(c *Config) { c.RulesFile = rulesFile },
		},
		{
			name:        "rules file missing",
			mutate:      func(c *Config) { c.RulesFile = filepath.Join(dir, "missing.yaml") },
			wantErr:     true,
			errorString: "advisor rules file does not exist",
		},
		{
			name:        "rules file wrong extension",
			mutate:      func(c *Config) { c.RulesFile = jsonRules },
			wantErr:     true,
			errorString: "must be .yaml, .yml or .toml",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "invalid log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Config.Validate() error = %v, want substring %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.DataBackend = "nope"
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Count(err.Error(), "\n- ") != 2 {
		t.Errorf("expected two reported problems, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	keys := []string{
		"EXPENSES_BACKEND", "EXPENSES_DB_PATH", "EXPENSES_EXPORT_PATH",
		"EXPENSES_RULES_FILE", "EXPENSES_STRICT_DATES", "EXPENSES_CURRENCY",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()
		if cfg.DataBackend != "sqlite" {
			t.Errorf("Load() DataBackend = %v, want sqlite", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "expenses.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want expenses.db", cfg.SQLiteDBPath)
		}
		if cfg.ExportPath != "expense_report.csv" {
			t.Errorf("Load() ExportPath = %v, want expense_report.csv", cfg.ExportPath)
		}
		if cfg.RulesFile != "" || cfg.StrictDates {
			t.Errorf("Load() unexpected rules/strict defaults: %+v", cfg)
		}
		if cfg.CurrencySymbol != "₹" {
			t.Errorf("Load() CurrencySymbol = %v, want ₹", cfg.CurrencySymbol)
		}
		if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
			t.Errorf("Load() logging = %s/%s, want warn/text", cfg.LogLevel, cfg.LogFormat)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("EXPENSES_BACKEND", "memory")
		t.Setenv("EXPENSES_DB_PATH", "/tmp/test.db")
		t.Setenv("EXPENSES_STRICT_DATES", "true")
		t.Setenv("EXPENSES_CURRENCY", "€")
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg := Load()
		if cfg.DataBackend != "memory" || cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() storage = %s/%s", cfg.DataBackend, cfg.SQLiteDBPath)
		}
		if !cfg.StrictDates {
			t.Error("Load() StrictDates should be true")
		}
		if cfg.CurrencySymbol != "€" {
			t.Errorf("Load() CurrencySymbol = %v, want €", cfg.CurrencySymbol)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("invalid bool falls back to default", func(t *testing.T) {
		t.Setenv("EXPENSES_STRICT_DATES", "sometimes")
		if Load().StrictDates {
			t.Error("Load() StrictDates should fall back to false")
		}
	})
}
