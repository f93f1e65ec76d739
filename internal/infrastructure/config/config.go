package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretFile holds the token signing secret, generated on first run.
	SecretFile string        `env:"SECRET_FILE, default=secret.key"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`

	// AdminPassword is the bootstrap admin credential, used only when the
	// admin account does not exist yet. Rotate it after first login.
	AdminPassword string `env:"ADMIN_PASSWORD, default=Admin@123"`

	MySQL MySQLConfig
	Redis RedisConfig
}

type MySQLConfig struct {
	DSN          string `env:"MYSQL_DSN, default=beyond:beyond@tcp(localhost:3306)/beyond?charset=utf8mb4&parseTime=True&loc=UTC"`
	MaxOpenConns int    `env:"MYSQL_MAX_OPEN_CONNS, default=25"`
	MaxIdleConns int    `env:"MYSQL_MAX_IDLE_CONNS, default=5"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
