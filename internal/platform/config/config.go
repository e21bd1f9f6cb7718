// Package config loads the service configuration from the environment.
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr   string        `env:"HTTP_ADDR" envDefault:":8080"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	JWT        JWT
	DB         DB
	Redis      Redis
	Market     Market
}

type JWT struct {
	Secret     string        `env:"JWT_SECRET"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"1h"`
}

type DB struct {
	// Driver selects sqlite (default, file path in DSN) or postgres.
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DB_DSN" envDefault:"estate.db"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Market struct {
	// TickInterval enables the background market drift job when positive.
	TickInterval time.Duration `env:"MARKET_TICK_INTERVAL" envDefault:"0"`

	// TickMaxDeltaPct bounds the random per-tick change, in percent.
	TickMaxDeltaPct float64 `env:"MARKET_TICK_MAX_DELTA_PCT" envDefault:"1.5"`

	// SimulatePerMinute caps manual market simulations per minute.
	SimulatePerMinute int `env:"MARKET_SIMULATE_PER_MINUTE" envDefault:"6"`
}

// MustLoad reads .env when present and parses the environment into a
// Config. It exits the process on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
