package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	JWT    JWT    `validate:"required"`
	Bcrypt Bcrypt `validate:"required"`
	Cache  Cache  `validate:"required"`
	Query  Query  `validate:"required"`

	Seed Seed
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	ConnectTimeout time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type JWT struct {
	Secret string        `validate:"required,min=16"`
	Issuer string        `validate:"required"`
	TTL    time.Duration `validate:"gt=0"`
}

type Bcrypt struct {
	Cost int `validate:"gte=4,lte=31"`
}

type Cache struct {
	TTL             time.Duration `validate:"gt=0"`
	CleanupInterval time.Duration `validate:"gt=0"`
}

// Query bounds the loops that drain every page of a result set.
type Query struct {
	DrainTimeout  time.Duration `validate:"gt=0"`
	DrainPageSize int           `validate:"gte=1,lte=1000"`
}

type Seed struct {
	AdminName     string
	AdminEmail    string `validate:"omitempty,email"`
	AdminPassword string `validate:"required_with=AdminEmail"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "pizza"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnectTimeout:  envDuration("POSTGRES_CONNECT_TIMEOUT", 30*time.Second),
		},

		JWT: JWT{
			Secret: env("JWT_SECRET", ""),
			Issuer: env("JWT_ISSUER", "pizza-service"),
			TTL:    envDuration("JWT_TTL", time.Hour),
		},

		Bcrypt: Bcrypt{
			Cost: envInt("BCRYPT_COST", 10),
		},

		Cache: Cache{
			TTL:             envDuration("CACHE_TTL", time.Minute),
			CleanupInterval: envDuration("CACHE_CLEANUP_INTERVAL", 2*time.Minute),
		},

		Query: Query{
			DrainTimeout:  envDuration("QUERY_DRAIN_TIMEOUT", 10*time.Second),
			DrainPageSize: envInt("QUERY_DRAIN_PAGE_SIZE", 100),
		},

		Seed: Seed{
			AdminName:     env("SEED_ADMIN_NAME", "Administrator"),
			AdminEmail:    env("SEED_ADMIN_EMAIL", ""),
			AdminPassword: env("SEED_ADMIN_PASSWORD", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

// Validate checks only the database section, for commands that need nothing else.
func (p Postgres) Validate() error {
	return validator.New().Struct(p)
}

func (s Seed) Validate() error {
	return validator.New().Struct(s)
}
