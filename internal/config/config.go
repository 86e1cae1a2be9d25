package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Pagination PaginationConfig
	Jobs       JobsConfig
	Wellness   WellnessConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// PaginationConfig holds listing defaults
type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// JobsConfig holds background job settings
type JobsConfig struct {
	SweepInterval  time.Duration
	SweepBatchSize int
	// MonthlyResetSpec is a cron expression; midnight on the 1st by default.
	MonthlyResetSpec string
}

// WellnessConfig controls what a cancellation reverses. Whether a refund
// should also undo wellness accumulation is a product decision, so both
// reversals are independently switchable.
type WellnessConfig struct {
	ReverseSpendOnCancel     bool
	ReverseNutritionOnCancel bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "canteen"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-this-in-production"),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		},
		Pagination: PaginationConfig{
			DefaultLimit: getEnvAsInt("PAGE_DEFAULT_LIMIT", 20),
			MaxLimit:     getEnvAsInt("PAGE_MAX_LIMIT", 100),
		},
		Jobs: JobsConfig{
			SweepInterval:    getEnvAsDuration("WELLNESS_SWEEP_INTERVAL", 30*time.Second),
			SweepBatchSize:   getEnvAsInt("WELLNESS_SWEEP_BATCH", 100),
			MonthlyResetSpec: getEnv("MONTHLY_RESET_CRON", "0 0 1 * *"),
		},
		Wellness: WellnessConfig{
			ReverseSpendOnCancel:     getEnvAsBool("WELLNESS_REVERSE_SPEND_ON_CANCEL", false),
			ReverseNutritionOnCancel: getEnvAsBool("WELLNESS_REVERSE_NUTRITION_ON_CANCEL", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
