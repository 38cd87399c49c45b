package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"SkinScout/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Schedule.UpdateCron != "0 0 */6 * * *" {
		t.Errorf("update_cron default = %q", cfg.Schedule.UpdateCron)
	}
	if cfg.Market.Timeout != 10*time.Second || cfg.Market.FetchCount != 100 {
		t.Errorf("unexpected market defaults: %+v", cfg.Market)
	}
	if cfg.Simulation.FloorRatio != 0.7 || cfg.Schedule.TopCount != 3 {
		t.Errorf("unexpected simulation/schedule defaults")
	}
	if cfg.Server.Port != "8080" || cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("unexpected server/log defaults")
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: file-token
  chat_id: "42"
market:
  timeout: 3s
  offline: true
simulation:
  seed: 7
scoring:
  base: 40
  trend:
    bull: 20
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("PORT", "9000")
	t.Setenv("MARKET_SEED", "123")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.BotToken != "env-token" || cfg.Telegram.ChatID != "42" {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
	if cfg.Market.Timeout != 3*time.Second || !cfg.Market.Offline {
		t.Errorf("market = %+v", cfg.Market)
	}
	if cfg.Simulation.Seed != 123 || cfg.Server.Port != "9000" {
		t.Errorf("env overrides not applied: seed %d port %s", cfg.Simulation.Seed, cfg.Server.Port)
	}

	p, err := cfg.Policy()
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	if p.Base != 40 || p.Trend[model.TrendBull] != 20 {
		t.Errorf("scoring overrides not applied: base %d bull %d", p.Base, p.Trend[model.TrendBull])
	}
	if p.Max != 95 {
		t.Errorf("untouched policy field changed: max %d", p.Max)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(writeConfig(t, "telegram: [")); err == nil {
		t.Error("expected parse error")
	}
	t.Setenv("MARKET_SEED", "abc")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected MARKET_SEED error")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Telegram.BotToken = "t"
		cfg.Telegram.ChatID = "1"
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing token", func(c *Config) { c.Telegram.BotToken = "" }},
		{"missing chat", func(c *Config) { c.Telegram.ChatID = "" }},
		{"fetch count", func(c *Config) { c.Market.FetchCount = 500 }},
		{"negative rate", func(c *Config) { c.Market.RatePerSec = -1 }},
		{"floor ratio", func(c *Config) { c.Simulation.FloorRatio = 1 }},
		{"top count", func(c *Config) { c.Schedule.TopCount = -1 }},
		{"bad cron", func(c *Config) { c.Schedule.UpdateCron = "every day" }},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("baseline config invalid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPolicy_InvalidOverride(t *testing.T) {
	path := writeConfig(t, `
scoring:
  min: 90
  max: 20
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := cfg.Policy(); err == nil {
		t.Error("expected inverted clamp to be rejected")
	}
}
