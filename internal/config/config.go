package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	namespace = "CAPSYNCER"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env      string `envconfig:"ENV" default:"development"`
	HTTPHost string `envconfig:"HTTP_HOST" default:""`
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"postgres"`
	DatabaseURL    string `envconfig:"DATABASE_URL" default:"host=localhost port=5432 dbname=capsyncerdb user=postgres password=postgres sslmode=disable"`
	// Unset means "migrate in development only".
	AutoMigrate *bool `envconfig:"AUTO_MIGRATE"`

	DevOrigins  []string `envconfig:"DEV_ORIGINS" default:"http://localhost:3000,https://localhost:3000,http://localhost:3001,https://localhost:3001"`
	ProdOrigins []string `envconfig:"PROD_ORIGINS" default:"https://your-production-domain.com"`
	ClientURL   string   `envconfig:"CLIENT_URL"`
}

// ClientConfig is what API consumers need to reach the server.
type ClientConfig struct {
	APIBaseURL string `envconfig:"API_BASEURL" default:"http://localhost:8080"`
}

// Load reads an optional .env file and then the CAPSYNCER_* environment.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := envconfig.Process(namespace, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	var cfg ClientConfig
	if err := envconfig.Process(namespace, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &cfg, nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, EnvDevelopment)
}

func (c *Config) ShouldAutoMigrate() bool {
	if c.AutoMigrate != nil {
		return *c.AutoMigrate
	}
	return c.IsDevelopment()
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

// AllowedOrigins returns the CORS allow list for the current environment,
// with CLIENT_URL appended when set.
func (c *Config) AllowedOrigins() []string {
	source := c.ProdOrigins
	if c.IsDevelopment() {
		source = c.DevOrigins
	}

	origins := make([]string, 0, len(source)+1)
	for _, origin := range source {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	if clientURL := strings.TrimSpace(c.ClientURL); clientURL != "" {
		origins = append(origins, clientURL)
	}

	return origins
}

func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
