package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/shubh-37/inflections-studio/internal/models"
)

type Config struct {
	Server    ServerConfig
	Airtable  AirtableConfig
	Anthropic AnthropicConfig
	Replicate ReplicateConfig
	Database  DatabaseConfig
	Slack     SlackConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// AirtableConfig holds the record store credentials and table names.
type AirtableConfig struct {
	Token         string `env:"AIRTABLE_PERSONAL_ACCESS_TOKEN"`
	BaseID        string `env:"AIRTABLE_BASE_ID"`
	APIURL        string `env:"AIRTABLE_API_URL"        env-default:"https://api.airtable.com/v0"`
	BrandsTable   string `env:"AIRTABLE_BRANDS_TABLE"   env-default:"Brands"`
	IssuesTable   string `env:"AIRTABLE_ISSUES_TABLE"   env-default:"Issues"`
	ArticlesTable string `env:"AIRTABLE_ARTICLES_TABLE" env-default:"Articles"`
	PostsTable    string `env:"AIRTABLE_POSTS_TABLE"    env-default:"LinkedIn Posts"`
	TopicsTable   string `env:"AIRTABLE_TOPICS_TABLE"   env-default:"Topics Bank"`
}

type AnthropicConfig struct {
	APIKey  string `env:"ANTHROPIC_API_KEY"`
	BaseURL string `env:"ANTHROPIC_BASE_URL"`
	Model   string `env:"ANTHROPIC_MODEL" env-default:"claude-sonnet-4-20250514"`
}

// ReplicateConfig controls image generation. PollInterval and
// PollMaxAttempts bound the wait for a pending prediction.
type ReplicateConfig struct {
	APIToken        string        `env:"REPLICATE_API_TOKEN"`
	APIURL          string        `env:"REPLICATE_API_URL"          env-default:"https://api.replicate.com/v1"`
	Model           string        `env:"REPLICATE_MODEL"            env-default:"black-forest-labs/flux-schnell"`
	PollInterval    time.Duration `env:"IMAGE_POLL_INTERVAL"        env-default:"1s"`
	PollMaxAttempts int           `env:"IMAGE_POLL_MAX_ATTEMPTS"    env-default:"30"`
}

// DatabaseConfig is optional. Generation history is disabled when URL is empty.
type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" env-default:"25"`
	MinConns int32  `env:"DATABASE_MIN_CONNS" env-default:"5"`
}

type SlackConfig struct {
	Token     string `env:"SLACK_BOT_TOKEN"`
	ChannelID string `env:"SLACK_CHANNEL_ID"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func LoadConfig() (*Config, error) {
	// ignore error if the file doesn't exist
	_ = godotenv.Load()

	var cfg Config
	if err := cfg.read(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) read() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	return c.Validate()
}

// Validate checks settings that have no meaningful fallback. Provider
// credentials are not checked here; see the Require methods.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	if c.Replicate.PollInterval <= 0 {
		return fmt.Errorf("IMAGE_POLL_INTERVAL must be positive")
	}
	if c.Replicate.PollMaxAttempts < 1 {
		return fmt.Errorf("IMAGE_POLL_MAX_ATTEMPTS must be at least 1")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}

// RequireAirtable reports a configuration error when the record store
// cannot be reached with the current settings.
func (c *Config) RequireAirtable() error {
	if c.Airtable.Token == "" {
		return &models.ConfigError{Setting: "AIRTABLE_PERSONAL_ACCESS_TOKEN"}
	}
	if c.Airtable.BaseID == "" {
		return &models.ConfigError{Setting: "AIRTABLE_BASE_ID"}
	}
	return nil
}

func (c *Config) RequireAnthropic() error {
	if c.Anthropic.APIKey == "" {
		return &models.ConfigError{Setting: "ANTHROPIC_API_KEY"}
	}
	return nil
}

func (c *Config) RequireReplicate() error {
	if c.Replicate.APIToken == "" {
		return &models.ConfigError{Setting: "REPLICATE_API_TOKEN"}
	}
	return nil
}

// HistoryEnabled reports whether generation runs are persisted.
func (c *Config) HistoryEnabled() bool {
	return c.Database.URL != ""
}

// SlackEnabled reports whether push announcements are sent.
func (c *Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}
