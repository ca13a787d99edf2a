package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/samvad-hq/openai-lite/pkg/openai"
)

// Config holds the CLI configuration loaded from files and environment
// variables. The library itself never reads env; key sourcing is this layer's
// job.
type Config struct {
	APIKey             string        `mapstructure:"api_key"`
	Organization       string        `mapstructure:"organization"`
	CompletionModel    string        `mapstructure:"completion_model"`
	ChatModel          string        `mapstructure:"chat_model"`
	EditModel          string        `mapstructure:"edit_model"`
	ProfilesFile       string        `mapstructure:"profiles_file"`
	LogLevel           string        `mapstructure:"log_level"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, prefixed OPENAI_.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("api_key", "")
	v.SetDefault("organization", "")
	v.SetDefault("completion_model", openai.DefaultCompletionModel)
	v.SetDefault("chat_model", openai.DefaultChatModel)
	v.SetDefault("edit_model", openai.DefaultEditModel)
	v.SetDefault("profiles_file", "./configs/profiles.yaml")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_timeout_seconds", 60)

	v.SetEnvPrefix("openai")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}

// Validate checks fields the CLI cannot usefully proceed without. The client
// accepts an empty key and lets the remote service reject it; the CLI fails
// fast instead.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("api key is not set (export OPENAI_API_KEY)")
	}
	return nil
}
