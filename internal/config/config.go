package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Holdings Holdings `yaml:"holdings"`
	Fetch    struct {
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
	} `yaml:"fetch"`
	RefreshInterval int `yaml:"refresh_interval"` // seconds
	Concurrency     int `yaml:"concurrency"`
	DataSource      struct {
		Provider string `yaml:"provider"`
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Data source providers.
const (
	ProviderYahoo = "yahoo"
	ProviderREST  = "rest"
	ProviderMock  = "mock"
)

// Load reads config from a YAML file, then applies environment variable overrides.
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

	// Environment variable overrides
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("REFRESH_INTERVAL: %w", err)
		}
		cfg.RefreshInterval = n
	}
	if v := os.Getenv("FETCH_PERIOD"); v != "" {
		cfg.Fetch.Period = v
	}
	if v := os.Getenv("FETCH_INTERVAL"); v != "" {
		cfg.Fetch.Interval = v
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("DATA_SOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_SOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Holdings) == 0 {
		c.Holdings = DefaultHoldings()
	}
	if c.Fetch.Period == "" {
		c.Fetch.Period = "1d"
	}
	if c.Fetch.Interval == "" {
		c.Fetch.Interval = "1m"
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 60
	}
	if c.Concurrency == 0 {
		c.Concurrency = 1
	}
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = ProviderYahoo
		if c.DataSource.BaseURL != "" {
			c.DataSource.Provider = ProviderREST
		}
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Holdings) == 0 {
		return fmt.Errorf("holdings: at least one symbol is required")
	}
	if err := c.Holdings.Validate(); err != nil {
		return fmt.Errorf("holdings: %w", err)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	switch c.DataSource.Provider {
	case ProviderYahoo, ProviderMock:
	case ProviderREST:
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for provider %q", ProviderREST)
		}
	default:
		return fmt.Errorf("data_source.provider: unknown provider %q", c.DataSource.Provider)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// Refresh returns the refresh interval as a duration.
func (c *Config) Refresh() time.Duration {
	return time.Duration(c.RefreshInterval) * time.Second
}

// TelegramEnabled reports whether the Telegram command bot is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
