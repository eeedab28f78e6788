// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage, and provider settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains persistence configuration
	Storage StorageConfig

	// Providers contains external provider credentials
	Providers ProviderConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// BaseURL is the public base URL used to build preview links
	BaseURL string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
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

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	// SQLitePath is the path to the SQLite database file
	SQLitePath string
}

// ProviderConfig holds external provider credentials. Every key is optional
// at runtime: a missing key puts the corresponding pipeline stage into its
// fallback mode instead of failing startup.
type ProviderConfig struct {
	// PexelsAPIKey authenticates image search requests
	PexelsAPIKey string

	// OpenAIAPIKey authenticates text generation requests
	OpenAIAPIKey string

	// OpenAIModel selects the generation model
	OpenAIModel string

	// NetlifyAPIKey authenticates hosting provisioning and deploys
	NetlifyAPIKey string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8000"),
			BaseURL: getEnvOrDefault("BASE_URL", "http://localhost:8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "sitegen.db"),
		},
		Providers: ProviderConfig{
			PexelsAPIKey:  os.Getenv("PEXELS_API_KEY"),
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			NetlifyAPIKey: os.Getenv("NETLIFY_API_KEY"),
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.BaseURL == "" {
		return errors.New("base URL cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Storage.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty")
	}

	return nil
}

// DegradedModes reports which pipeline stages will run in fallback mode
// because their provider credential is absent.
func (c *Config) DegradedModes() []string {
	var modes []string
	if c.Providers.PexelsAPIKey == "" {
		modes = append(modes, "images")
	}
	if c.Providers.OpenAIAPIKey == "" {
		modes = append(modes, "generation")
	}
	if c.Providers.NetlifyAPIKey == "" {
		modes = append(modes, "hosting")
	}
	return modes
}
