package main

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// config is loaded from the environment; every field has a development
// default so the binary runs locally with no configuration at all.
type config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisUseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// CreationSessionTTL bounds how long an idle character-creation
	// session is kept before it is treated as abandoned.
	CreationSessionTTL time.Duration `env:"CREATION_SESSION_TTL" envDefault:"1h"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
