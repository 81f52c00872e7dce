package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the chat demo service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"chat-demo-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPHost        string        `env:"HTTP_HOST" envDefault:""`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	EnableSwagger   bool          `env:"ENABLE_SWAGGER" envDefault:"true"`

	// Session payload advertised to the chat UI
	BotName     string `env:"BOT_NAME" envDefault:"ExampleBot"`
	MultiTurn   bool   `env:"MULTI_TURN" envDefault:"true"`
	FileSupport bool   `env:"FILE_SUPPORT" envDefault:"true"`

	// Scripted conversations. Built-in examples are used when no file is set.
	ConversationsFile string        `env:"CONVERSATIONS_FILE"`
	DefaultEventDelay time.Duration `env:"DEFAULT_EVENT_DELAY" envDefault:"40ms"`

	// Uploads are read and discarded; this only caps how much is accepted.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"33554432"`

	// Frontend bundle and static pages
	DistDir   string `env:"STATIC_DIST_DIR" envDefault:"../../dist"`
	StaticDir string `env:"STATIC_DIR" envDefault:"static"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTPPort)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.DefaultEventDelay < 0 {
		return fmt.Errorf("DEFAULT_EVENT_DELAY must not be negative, got %s", c.DefaultEventDelay)
	}
	if strings.TrimSpace(c.BotName) == "" {
		return fmt.Errorf("BOT_NAME must not be empty")
	}

	c.ConversationsFile = strings.TrimSpace(c.ConversationsFile)
	c.DistDir = strings.TrimSpace(c.DistDir)
	c.StaticDir = strings.TrimSpace(c.StaticDir)
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}
