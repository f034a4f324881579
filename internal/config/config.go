// Package config loads process configuration from environment variables
// (optionally via a .env file), with defaults applied through viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the full process configuration for the server and CLI.
type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
	Optimizer OptimizerConfig
	Cache     CacheConfig
}

// DatabaseConfig configures the GORM connection (postgres when DSN set,
// sqlite file otherwise).
type DatabaseConfig struct {
	DSN     string
	SQLitePath string
}

// RedisConfig configures the optional result cache backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig configures admin-session token signing and the distinct
// HMAC secret used to mint and verify API keys.
type JWTConfig struct {
	Secret        string
	Expiration    time.Duration
	APIKeySecret  string
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// OptimizerConfig points at the external solver, when configured.
type OptimizerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig tunes the optional feasibility-result cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// Load reads configuration from the environment (and .env, if present),
// applying defaults for anything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:       v.GetString("ENV"),
		Port:      v.GetInt("PORT"),
		APIPrefix: v.GetString("API_PREFIX"),

		Database: DatabaseConfig{
			DSN:        v.GetString("DATABASE_URL"),
			SQLitePath: v.GetString("DATA_PATH"),
		},

		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},

		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			Expiration:   parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
			APIKeySecret: v.GetString("API_MASTER_SECRET"),
		},

		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},

		Optimizer: OptimizerConfig{
			BaseURL: v.GetString("OPTIMIZER_URL"),
			Timeout: parseDuration(v.GetString("OPTIMIZER_TIMEOUT"), 30*time.Second),
		},

		Cache: CacheConfig{
			Enabled: v.GetBool("CACHE_ENABLED"),
			TTL:     parseDuration(v.GetString("CACHE_TTL"), 30*time.Second),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8000)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATA_PATH", "roster_feasibility.db")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("API_MASTER_SECRET", "dev_api_master_secret")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("OPTIMIZER_URL", "")
	v.SetDefault("OPTIMIZER_TIMEOUT", "30s")

	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_TTL", "30s")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
