package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token   string `yaml:"token"`
	Mode    string `yaml:"mode"`    // polling | webhook; webhook is forced when a base URL is set
	Workers int    `yaml:"workers"` // concurrent update handlers
}

type ServerConfig struct {
	Port           int    `yaml:"port"`
	WebhookBaseURL string `yaml:"webhook_base_url"` // externally reachable, e.g. https://bot.example.com
}

type LogConfig struct {
	Level  string `yaml:"level"`  // trace|debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

type YasnoConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Config struct {
	Bot      BotConfig    `yaml:"bot"`
	Server   ServerConfig `yaml:"server"`
	Log      LogConfig    `yaml:"log"`
	Yasno    YasnoConfig  `yaml:"yasno"`
	Redis    RedisConfig  `yaml:"redis"`
	Language string       `yaml:"language"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the YAML file (optional; hosted deployments configure
// purely through the environment) and applies env overrides and defaults.
func LoadConfig(path string, dev bool) (*Config, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	// env overrides
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("WEBHOOK_BASE_URL"); v != "" {
		cfg.Server.WebhookBaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}

	// defaults
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 8
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Yasno.BaseURL == "" {
		cfg.Yasno.BaseURL = "https://app.yasno.ua"
	}
	if cfg.Yasno.Timeout <= 0 {
		cfg.Yasno.Timeout = 10 * time.Second
	}
	if cfg.Language == "" {
		cfg.Language = "uk"
	}
	// Webhook registration happens only when a public base URL exists.
	if cfg.Server.WebhookBaseURL != "" {
		cfg.Bot.Mode = "webhook"
	} else if cfg.Bot.Mode == "" {
		cfg.Bot.Mode = "polling"
	}

	// Minimal validation
	if cfg.Bot.Token == "" {
		return nil, errors.New("bot.token is required (or BOT_TOKEN)")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
