package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rewired-gh/ttareungi-insights/internal/dashboard"
	"github.com/rewired-gh/ttareungi-insights/internal/render"
	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

// EnvPrefix prefixes environment overrides, e.g. TTAREUNGI_DASHBOARD_TOP_N.
const EnvPrefix = "TTAREUNGI"

// Config represents the complete application configuration
type Config struct {
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DashboardConfig holds page building and output configuration
type DashboardConfig struct {
	TopN          int          `mapstructure:"top_n"`
	Bands         []stats.Band `mapstructure:"bands"`
	DefaultFormat string       `mapstructure:"default_format"`
}

// TelegramConfig holds Telegram digest configuration
type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	ChatID         string        `mapstructure:"chat_id"`
	Enabled        bool          `mapstructure:"enabled"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. An empty
// path skips the file and uses defaults plus environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Dashboard defaults
	v.SetDefault("dashboard.top_n", 5)
	v.SetDefault("dashboard.default_format", string(render.FormatTerminal))
	bands := make([]map[string]any, 0, 3)
	for _, b := range stats.DefaultReturnPatternBands() {
		bands = append(bands, map[string]any{"upper": b.Upper, "label": b.Label})
	}
	v.SetDefault("dashboard.bands", bands)

	// Telegram defaults
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.max_retries", 3)
	v.SetDefault("telegram.retry_delay_base", "1s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Dashboard config
	if c.Dashboard.TopN < 1 {
		return fmt.Errorf("dashboard.top_n must be at least 1")
	}
	if _, err := stats.NewClassifier(c.Dashboard.Bands); err != nil {
		return fmt.Errorf("dashboard.bands: %w", err)
	}
	if _, err := render.ParseFormat(c.Dashboard.DefaultFormat); err != nil {
		return fmt.Errorf("dashboard.default_format: %w", err)
	}

	// Validate Telegram config
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}
	if c.Telegram.MaxRetries < 0 {
		return fmt.Errorf("telegram.max_retries must not be negative")
	}
	if c.Telegram.RetryDelayBase < 0 {
		return fmt.Errorf("telegram.retry_delay_base must not be negative")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// DashboardOptions converts the dashboard section into page build options.
func (c *Config) DashboardOptions() dashboard.Options {
	return dashboard.Options{TopN: c.Dashboard.TopN, Bands: slices.Clone(c.Dashboard.Bands)}
}
