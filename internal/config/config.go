package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"SkinScout/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Market struct {
		SearchURL  string        `yaml:"search_url"`
		ListingURL string        `yaml:"listing_url"`
		Offline    bool          `yaml:"offline"`
		Timeout    time.Duration `yaml:"timeout"`
		FetchCount int           `yaml:"fetch_count"`
		RatePerSec float64       `yaml:"rate_per_sec"`
		Burst      int           `yaml:"burst"`
	} `yaml:"market"`
	Simulation struct {
		Seed       uint64  `yaml:"seed"`
		FloorRatio float64 `yaml:"floor_ratio"`
	} `yaml:"simulation"`
	// Scoring holds overrides decoded onto strategy.DefaultPolicy.
	Scoring  yaml.Node `yaml:"scoring"`
	Schedule struct {
		UpdateCron string `yaml:"update_cron"`
		TopCount   int    `yaml:"top_count"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		c.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_UPDATE"); v != "" {
		c.Schedule.UpdateCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("MARKET_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse MARKET_SEED: %w", err)
		}
		c.Simulation.Seed = seed
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Market.Timeout <= 0 {
		c.Market.Timeout = 10 * time.Second
	}
	if c.Market.FetchCount == 0 {
		c.Market.FetchCount = 100
	}
	if c.Market.Burst == 0 {
		c.Market.Burst = 1
	}
	if c.Simulation.FloorRatio == 0 {
		c.Simulation.FloorRatio = 0.7
	}
	if c.Schedule.UpdateCron == "" {
		c.Schedule.UpdateCron = "0 0 */6 * * *"
	}
	if c.Schedule.TopCount == 0 {
		c.Schedule.TopCount = 3
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/skinscout.db"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Market.FetchCount < 1 || c.Market.FetchCount > 100 {
		return fmt.Errorf("market.fetch_count must be between 1 and 100")
	}
	if c.Market.RatePerSec < 0 {
		return fmt.Errorf("market.rate_per_sec must not be negative")
	}
	if c.Simulation.FloorRatio < 0 || c.Simulation.FloorRatio >= 1 {
		return fmt.Errorf("simulation.floor_ratio must be in [0, 1)")
	}
	if c.Schedule.TopCount < 1 {
		return fmt.Errorf("schedule.top_count must be positive")
	}
	if _, err := CronParser.Parse(c.Schedule.UpdateCron); err != nil {
		return fmt.Errorf("schedule.update_cron: %w", err)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}

// Policy returns the scoring policy with the scoring section applied.
func (c *Config) Policy() (strategy.Policy, error) {
	p := strategy.DefaultPolicy()
	if c.Scoring.Kind == 0 {
		return p, nil
	}
	if err := p.Apply(&c.Scoring); err != nil {
		return p, fmt.Errorf("scoring: %w", err)
	}
	return p, nil
}

// CronParser accepts the six-field (with seconds) specs used by the scheduler.
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
