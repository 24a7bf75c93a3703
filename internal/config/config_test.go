package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewired-gh/ttareungi-insights/internal/stats"
)

func validConfig() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			TopN:          5,
			Bands:         stats.DefaultReturnPatternBands(),
			DefaultFormat: "terminal",
		},
		Telegram: TelegramConfig{MaxRetries: 3, RetryDelayBase: time.Second},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoadAndValidate(t *testing.T) {
	content := `
dashboard:
  top_n: 3
  default_format: markdown
  bands:
    - upper: 30
      label: one-way
    - upper: .inf
      label: round-trip

telegram:
  bot_token: "test_token"
  chat_id: "12345"
  enabled: true
  max_retries: 5
  retry_delay_base: 2s

logging:
  level: "debug"
  format: "json"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Dashboard.TopN)
	assert.Equal(t, "markdown", cfg.Dashboard.DefaultFormat)
	require.Len(t, cfg.Dashboard.Bands, 2)
	assert.Equal(t, stats.Band{Upper: 30, Label: "one-way"}, cfg.Dashboard.Bands[0])
	assert.True(t, math.IsInf(cfg.Dashboard.Bands[1].Upper, 1))
	assert.Equal(t, 2*time.Second, cfg.Telegram.RetryDelayBase)
	assert.Equal(t, 5, cfg.Telegram.MaxRetries)
	assert.Equal(t, "debug", cfg.Logging.Level)

	require.NoError(t, cfg.Validate())

	opts := cfg.DashboardOptions()
	assert.Equal(t, 3, opts.TopN)
	assert.Equal(t, cfg.Dashboard.Bands, opts.Bands)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Dashboard.TopN)
	assert.Equal(t, "terminal", cfg.Dashboard.DefaultFormat)
	assert.Equal(t, stats.DefaultReturnPatternBands(), cfg.Dashboard.Bands)
	assert.False(t, cfg.Telegram.Enabled)
	assert.Equal(t, time.Second, cfg.Telegram.RetryDelayBase)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TTAREUNGI_DASHBOARD_TOP_N", "8")
	t.Setenv("TTAREUNGI_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Dashboard.TopN)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero top_n",
			mutate:  func(c *Config) { c.Dashboard.TopN = 0 },
			wantErr: true,
		},
		{
			name: "bounded last band",
			mutate: func(c *Config) {
				c.Dashboard.Bands = []stats.Band{{Upper: 40, Label: "a"}, {Upper: 70, Label: "b"}}
			},
			wantErr: true,
		},
		{
			name:    "no bands",
			mutate:  func(c *Config) { c.Dashboard.Bands = nil },
			wantErr: true,
		},
		{
			name:    "unknown output format",
			mutate:  func(c *Config) { c.Dashboard.DefaultFormat = "pdf" },
			wantErr: true,
		},
		{
			name:    "missing telegram token when enabled",
			mutate:  func(c *Config) { c.Telegram.Enabled = true; c.Telegram.ChatID = "1" },
			wantErr: true,
		},
		{
			name:    "missing telegram chat when enabled",
			mutate:  func(c *Config) { c.Telegram.Enabled = true; c.Telegram.BotToken = "token" },
			wantErr: true,
		},
		{
			name:    "telegram fields ignored when disabled",
			mutate:  func(c *Config) { c.Telegram.BotToken = "" },
			wantErr: false,
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Telegram.MaxRetries = -1 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "console" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_BandErrorIsConfigurationError(t *testing.T) {
	cfg := validConfig()
	cfg.Dashboard.Bands = []stats.Band{{Upper: 0, Label: "empty"}, {Upper: math.Inf(1), Label: "rest"}}
	assert.ErrorIs(t, cfg.Validate(), stats.ErrInvalidConfiguration)
}
