// config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the report service reads from the environment
type Config struct {
	Env  string `env:"ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	// MongoDB
	MongoURI       string        `env:"MONGO_URI"`
	MongoURIAlt    string        `env:"MONGODB_URI"`
	DBName         string        `env:"DB_NAME" envDefault:"apre"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
	QueryTimeout   time.Duration `env:"QUERY_TIMEOUT" envDefault:"10s"`
	EnsureIndexes  bool          `env:"ENSURE_INDEXES" envDefault:"false"`

	// Base URL the HTML report pages use to reach the JSON API
	APIBaseURL string `env:"API_BASE_URL"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	RateLimitBlock time.Duration `env:"RATE_LIMIT_BLOCK" envDefault:"5m"`

	// Disable behind a reverse proxy that connects over loopback
	RateLimitSkipLoopback bool `env:"RATE_LIMIT_SKIP_LOOPBACK" envDefault:"true"`

	// Read client IPs from X-Forwarded-For sent by a proxy on a private network
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// Load reads an optional .env file and parses the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Warn(".env file not found")
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MongoURI == "" {
		c.MongoURI = c.MongoURIAlt
	}
	if c.MongoURI == "" && c.IsDevelopment() {
		c.MongoURI = "mongodb://localhost:27017"
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://localhost:" + c.Port + "/api"
	}
}

// IsDevelopment reports whether the service runs with development defaults
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Validate checks the settings that have no usable default
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI or MONGODB_URI environment variable is required for %s", c.Env)
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("QUERY_TIMEOUT must be positive, got %s", c.QueryTimeout)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
