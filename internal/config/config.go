package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

const (
	defaultEnv      = "dev"
	defaultPort     = "8080"
	defaultLogLevel = "info"
)

var defaultUnitPrice = decimal.NewFromInt(200)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env       string
	Port      string
	UnitPrice decimal.Decimal
	LogLevel  zapcore.Level
}

// IsDev reports whether the app runs in a local development environment.
func (c Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

// Load reads environment variables and returns a populated Config.
func Load() (Config, error) {
	// Best-effort: a missing .env is fine, production injects real env vars.
	if _, err := loadDotEnv(".env"); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Env:       strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV"))),
		Port:      strings.TrimSpace(os.Getenv("PORT")),
		UnitPrice: defaultUnitPrice,
	}

	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if raw := strings.TrimSpace(os.Getenv("UNIT_PRICE")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return Config{}, fmt.Errorf("UNIT_PRICE debe ser numérico: %w", err)
		}
		if !price.IsPositive() {
			return Config{}, fmt.Errorf("UNIT_PRICE debe ser mayor a 0")
		}
		cfg.UnitPrice = price
	}

	level := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if level == "" {
		level = defaultLogLevel
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	return cfg, nil
}
