// Package config loads the process-wide service configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every setting the service reads at startup.
// It is built once by Load and never mutated afterwards.
type Config struct {
	// Application
	AppHost  string
	AppPort  string
	LogLevel string

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Redis; an empty host disables the favorites cache
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	// Kafka; no brokers disables event publishing
	KafkaBrokers []string
	KafkaTopic   string

	// gRPC health service; an empty port disables it
	GRPCHealthPort string

	// Security
	JWTSecretKey string
	BcryptCost   int
}

// DefaultJWTSecretKey signs tokens when JWT_SECRET_KEY is unset. It is public,
// so any deployment relying on it accepts forged tokens.
const DefaultJWTSecretKey = "my_super_secret_key"

// UsesDefaultJWTSecret reports whether tokens are signed with DefaultJWTSecretKey.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecretKey == DefaultJWTSecretKey
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns host:port the HTTP server listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// Load reads environment variables, optionally seeded from the dotenv file at path,
// and returns the resulting configuration. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	cfg := &Config{}

	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = atoi("POSTGRES_PORT", getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = atoi("POSTGRES_MAX_OPEN_CONNS", getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = atoi("POSTGRES_MAX_IDLE_CONNS", getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}

	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = atoi("REDIS_PORT", getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = atoi("REDIS_DB", getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = atoi("REDIS_POOL_SIZE", getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = atoi("REDIS_MIN_IDLE_CONNS", getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return nil, err
	}
	redisExpSecond, err := atoi("REDIS_EXP_SECOND", getEnv("REDIS_EXP_SECOND", "60"))
	if err != nil {
		return nil, err
	}
	cfg.RedisExp = time.Duration(redisExpSecond) * time.Second

	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "favorites")

	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "")

	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", DefaultJWTSecretKey)
	if cfg.BcryptCost, err = atoi("BCRYPT_COST", getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))); err != nil {
		return nil, err
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, cfg.BcryptCost)
	}
	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		return nil, errors.New("JWT_SECRET_KEY must not be blank")
	}

	return cfg, nil
}

func atoi(key, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
