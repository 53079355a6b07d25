// Package config loads service settings from defaults, an optional YAML
// file, and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Catalog CatalogConfig `yaml:"catalog"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Money   MoneyConfig   `yaml:"money"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port" validate:"required,numeric"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type CatalogConfig struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" validate:"oneof=memory sqlite mysql postgres"`
	// DSN is a file path for sqlite and a connection string for mysql/postgres.
	DSN string `yaml:"dsn" validate:"required_unless=Driver memory"`
}

type AuthConfig struct {
	Secret   string        `yaml:"secret" validate:"required,min=8"`
	TokenTTL time.Duration `yaml:"token_ttl" validate:"gt=0"`
}

type MoneyConfig struct {
	Currency string `yaml:"currency" validate:"required,len=3"`
	Locale   string `yaml:"locale" validate:"required"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:3333",
			Timeout: 5 * time.Second,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "data/cart.sqlite",
		},
		Auth: AuthConfig{
			Secret:   "change-me-please",
			TokenTTL: 30 * 24 * time.Hour,
		},
		Money: MoneyConfig{
			Currency: "BRL",
			Locale:   "pt-BR",
		},
	}
}

// Load builds the configuration. path may be empty; a missing file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.HTTP.Port = getenv("APP_PORT", cfg.HTTP.Port)
	cfg.Catalog.BaseURL = getenv("CATALOG_URL", cfg.Catalog.BaseURL)
	cfg.Storage.Driver = getenv("STORAGE_DRIVER", cfg.Storage.Driver)
	cfg.Storage.DSN = getenv("STORAGE_DSN", cfg.Storage.DSN)
	cfg.Auth.Secret = getenv("JWT_SECRET", cfg.Auth.Secret)
	cfg.Money.Currency = getenv("CURRENCY", cfg.Money.Currency)
	cfg.Money.Locale = getenv("LOCALE", cfg.Money.Locale)

	var err error
	if cfg.Catalog.Timeout, err = getenvDuration("CATALOG_TIMEOUT", cfg.Catalog.Timeout); err != nil {
		return err
	}
	if cfg.Auth.TokenTTL, err = getenvDuration("TOKEN_TTL", cfg.Auth.TokenTTL); err != nil {
		return err
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}
