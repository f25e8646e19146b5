// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront client
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Payment PaymentConfig
	Company CompanyConfig
	Logging LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// APIConfig contains backend REST API configuration
type APIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	MaxBodySize int64
}

// SessionConfig contains session persistence configuration
type SessionConfig struct {
	Backend  string // memory, file or redis
	FilePath string
}

// RedisConfig contains Redis configuration for the redis session backend
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// PaymentConfig contains payment flow configuration
type PaymentConfig struct {
	Currency     string
	CheckoutName string
	ThemeColor   string
	SuccessDelay time.Duration
}

// CompanyConfig contains the merchant identity printed on invoices
type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront Client"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		API: APIConfig{
			BaseURL:     getEnv("API_BASE_URL", "http://localhost:5000"),
			Timeout:     getEnvAsDuration("API_TIMEOUT", 30*time.Second),
			UserAgent:   getEnv("API_USER_AGENT", "storefront-client/1.0"),
			MaxBodySize: getEnvAsInt64("API_MAX_BODY_SIZE", 10485760), // 10MB
		},
		Session: SessionConfig{
			Backend:  getEnv("SESSION_BACKEND", "file"),
			FilePath: getEnv("SESSION_FILE_PATH", ".storefront-session.json"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Payment: PaymentConfig{
			Currency:     getEnv("PAYMENT_CURRENCY", "INR"),
			CheckoutName: getEnv("PAYMENT_CHECKOUT_NAME", "HoverSale"),
			ThemeColor:   getEnv("PAYMENT_THEME_COLOR", "#0ea5e9"),
			SuccessDelay: getEnvAsDuration("PAYMENT_SUCCESS_DELAY", 3*time.Second),
		},
		Company: CompanyConfig{
			Name:    getEnv("COMPANY_NAME", "HoverSale"),
			Address: getEnv("COMPANY_ADDRESS", "123, Business Street, Chennai, India"),
			Phone:   getEnv("COMPANY_PHONE", "+91 98765 43210"),
			Email:   getEnv("COMPANY_EMAIL", "hoversale521@gmail.com"),
			Website: getEnv("COMPANY_WEBSITE", "https://hoversale.example.com"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	switch c.Session.Backend {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("SESSION_BACKEND must be one of memory, file, redis")
	}

	if c.Session.Backend == "file" && c.Session.FilePath == "" {
		return fmt.Errorf("SESSION_FILE_PATH is required for the file session backend")
	}

	if c.Session.Backend == "redis" && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required for the redis session backend")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
