// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Database
	DatabaseURL string

	// HTTP server
	ListenAddr string

	// Vimeo metadata API
	VimeoBaseURL string
	VimeoToken   string

	// Admin playlist API
	AdminBaseURL string
	AdminToken   string

	// Logging
	LogLevel string

	// App data directory
	AppDataDir string

	// Cache TTLs per resource class
	CacheTTL CacheTTLConfig

	// HTTP client
	HTTPClientConfig HTTPClientConfig

	// Database connect retry
	DBRetryConfig RetryConfig
}

// CacheTTLConfig holds one TTL per cached resource class
type CacheTTLConfig struct {
	VideoList   time.Duration
	VideoDetail time.Duration
	Thumbnail   time.Duration
}

// HTTPClientConfig holds the outbound HTTP client settings
type HTTPClientConfig struct {
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	DisableKeepAlives     bool
	RequestTimeout        time.Duration
}

// RetryConfig holds the retry settings for the database connect loop
type RetryConfig struct {
	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional, real deployments use the environment directly
	_ = godotenv.Load()

	config := &Config{
		DatabaseURL:  getEnv("DB_DSN", ""),
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		VimeoBaseURL: getEnv("VIMEO_BASE_URL", "https://api.vimeo.com"),
		VimeoToken:   getEnv("VIMEO_TOKEN", ""),
		AdminBaseURL: getEnv("ADMIN_BASE_URL", ""),
		AdminToken:   getEnv("ADMIN_TOKEN", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		AppDataDir:   getEnv("APP_DATA_DIR", "./data"),
		CacheTTL: CacheTTLConfig{
			VideoList:   getEnvDuration("CACHE_TTL_VIDEO_LIST", 1*time.Hour),
			VideoDetail: getEnvDuration("CACHE_TTL_VIDEO_DETAIL", 24*time.Hour),
			Thumbnail:   getEnvDuration("CACHE_TTL_THUMBNAIL", 168*time.Hour),
		},
		HTTPClientConfig: HTTPClientConfig{
			MaxIdleConns:          getEnvInt("HTTP_MAX_IDLE_CONNS", 100),
			MaxIdleConnsPerHost:   getEnvInt("HTTP_MAX_IDLE_CONNS_PER_HOST", 10),
			IdleConnTimeout:       getEnvDuration("HTTP_IDLE_CONN_TIMEOUT", 90*time.Second),
			TLSHandshakeTimeout:   getEnvDuration("HTTP_TLS_HANDSHAKE_TIMEOUT", 10*time.Second),
			ResponseHeaderTimeout: getEnvDuration("HTTP_RESPONSE_HEADER_TIMEOUT", 30*time.Second),
			DisableKeepAlives:     getEnvBool("HTTP_DISABLE_KEEP_ALIVES", false),
			RequestTimeout:        getEnvDuration("HTTP_REQUEST_TIMEOUT", 60*time.Second),
		},
		DBRetryConfig: RetryConfig{
			MaxRetries:        getEnvInt("DB_MAX_RETRIES", 10),
			InitialDelay:      getEnvDuration("DB_RETRY_INITIAL_DELAY", 1*time.Second),
			MaxDelay:          getEnvDuration("DB_RETRY_MAX_DELAY", 30*time.Second),
			BackoffMultiplier: getEnvFloat("DB_RETRY_BACKOFF_MULTIPLIER", 2.0),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	if c.VimeoBaseURL == "" {
		return fmt.Errorf("VIMEO_BASE_URL is required")
	}

	if c.VimeoToken == "" {
		return fmt.Errorf("VIMEO_TOKEN is required")
	}

	if c.AdminBaseURL == "" {
		return fmt.Errorf("ADMIN_BASE_URL is required")
	}

	if c.CacheTTL.VideoList <= 0 {
		return fmt.Errorf("CACHE_TTL_VIDEO_LIST must be positive")
	}

	if c.CacheTTL.VideoDetail <= 0 {
		return fmt.Errorf("CACHE_TTL_VIDEO_DETAIL must be positive")
	}

	if c.CacheTTL.Thumbnail <= 0 {
		return fmt.Errorf("CACHE_TTL_THUMBNAIL must be positive")
	}

	if c.DBRetryConfig.MaxRetries < 1 {
		return fmt.Errorf("DB_MAX_RETRIES must be at least 1")
	}

	return nil
}

// getEnv reads an environment variable with a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as int
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration reads an environment variable as time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool reads an environment variable as bool
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as float64
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
