package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:              "8080",
		DefaultLanguage:   "vi",
		DataBackend:       "memory",
		SQLiteDBPath:      "./data/tally.db",
		AMQPExchange:      "tally",
		AMQPQueue:         "export_records",
		GoogleSheetName:   "Ledger",
		ExportBatchSize:   10,
		ExportInterval:    30 * time.Second,
		SummaryCacheTTL:   30 * time.Second,
		RequestsPerMinute: 120,
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DefaultLanguage != "vi" {
		t.Errorf("DefaultLanguage = %q, want vi", cfg.DefaultLanguage)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("DataBackend = %q, want memory", cfg.DataBackend)
	}
	if !cfg.SeedDemoData {
		t.Errorf("SeedDemoData should default to true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_LANGUAGE", "ja")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("EXPORT_BATCH_SIZE", "25")
	t.Setenv("EXPORT_INTERVAL", "2m")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DefaultLanguage != "ja" || cfg.DataBackend != "sqlite" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.SeedDemoData {
		t.Errorf("SeedDemoData should be false")
	}
	if cfg.ExportBatchSize != 25 || cfg.ExportInterval != 2*time.Minute {
		t.Errorf("worker overrides not applied: %+v", cfg)
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		mut  func(c *Config)
		want string
	}{
		{"bad port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad language", func(c *Config) { c.DefaultLanguage = "fr" }, "invalid default language"},
		{"bad backend", func(c *Config) { c.DataBackend = "postgres" }, "invalid data backend"},
		{"bad amqp scheme", func(c *Config) { c.AMQPURL = "http://localhost" }, "invalid AMQP URL scheme"},
		{"empty exchange", func(c *Config) { c.AMQPURL = "amqp://localhost"; c.AMQPExchange = "" }, "exchange name cannot be empty"},
		{"batch size", func(c *Config) { c.ExportBatchSize = 0 }, "invalid export batch size"},
		{"interval", func(c *Config) { c.ExportInterval = time.Millisecond }, "invalid export interval"},
		{"rate limit", func(c *Config) { c.RequestsPerMinute = 0 }, "invalid requests per minute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mut(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.DefaultLanguage = "xx"
	cfg.ExportBatchSize = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"invalid port", "invalid default language", "invalid export batch size"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q: %s", want, msg)
		}
	}
}
