// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, providers, cache and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration.
// It is constructed once at process start and passed explicitly into the
// services that need it; core packages never read the environment directly.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Providers contains external content provider credentials
	Providers ProviderConfig

	// Enrichment contains language-model gateway configuration
	Enrichment EnrichmentConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// HTTPTimeoutSeconds is the per-call timeout for outbound requests
	HTTPTimeoutSeconds int
}

// ProviderConfig holds content provider credentials.
// YouTubeAPIKey is mandatory for the search endpoint; the Udemy pair is
// optional and both values must be present for course results to appear.
type ProviderConfig struct {
	// YouTubeAPIKey is the video provider API key
	YouTubeAPIKey string

	// UdemyClientID is the course provider OAuth client ID
	UdemyClientID string

	// UdemyClientSecret is the course provider OAuth client secret
	UdemyClientSecret string
}

// EnrichmentConfig holds language-model gateway configuration
type EnrichmentConfig struct {
	// APIKey is the gateway API key; empty disables enrichment calls
	APIKey string

	// Model is the gateway model identifier
	Model string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// File is the log file path; empty logs to stdout
	File string

	// Level is the minimum log level (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8000"),
			HTTPTimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 30),
		},
		Providers: ProviderConfig{
			YouTubeAPIKey:     os.Getenv("YOUTUBE_API_KEY"),
			UdemyClientID:     os.Getenv("UDEMY_CLIENT_ID"),
			UdemyClientSecret: os.Getenv("UDEMY_CLIENT_SECRET"),
		},
		Enrichment: EnrichmentConfig{
			APIKey: os.Getenv("OPENROUTER_KEY"),
			Model:  getEnvOrDefault("OPENROUTER_MODEL", "mistralai/mistral-7b-instruct"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Log: LogConfig{
			File:  os.Getenv("LOG_FILE"),
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// HasUdemyCredentials reports whether both course provider credentials are set
func (c *ProviderConfig) HasUdemyCredentials() bool {
	return c.UdemyClientID != "" && c.UdemyClientSecret != ""
}

// Validate checks if the configuration is valid.
// A missing YouTube key is deliberately not a validation failure: it is
// surfaced per-request so the health endpoint stays available on a
// misconfigured instance.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.HTTPTimeoutSeconds < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
