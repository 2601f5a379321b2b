package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string `env:"DB_DRIVER" envDefault:"postgres"`
	// DatabaseURL overrides the DSN built from the DB_* parts when set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"studentorg"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"studentorg"`
	DBName      string `env:"DB_NAME" envDefault:"studentorg"`

	RedisAddr     string `env:"REDIS_ADDR"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"default-secret-key-change-me"`

	Addr      string `env:"ADDR" envDefault:":8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	PageSize          int      `env:"PAGE_SIZE" envDefault:"5"`
	MemberOrderings   []string `env:"MEMBER_ORDERINGS" envSeparator:"," envDefault:"student__lastname,student__firstname,date_joined,-date_joined"`
	DefaultMemberSort string   `env:"DEFAULT_MEMBER_ORDERING" envDefault:"student__lastname"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no safe fallback.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	for _, o := range c.MemberOrderings {
		if o == c.DefaultMemberSort {
			return nil
		}
	}
	return fmt.Errorf("DEFAULT_MEMBER_ORDERING %q is not in MEMBER_ORDERINGS", c.DefaultMemberSort)
}

func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}
