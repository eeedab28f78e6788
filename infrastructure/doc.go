// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, persistence, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger backed by logrus
// - storage/sqlite: SQLite persistence for accounts and websites
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(5*time.Minute, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Storage
//
// The SQLite client owns the schema and enforces the quota ceiling with a
// conditional increment, so concurrent creations cannot oversubscribe a plan:
//
//	storage, err := sqlite.NewClient("sitegen.db")
//	newCount, err := storage.ReserveWebsiteSlot(ctx, accountID, limit)
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger(os.Stdout, "info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "account_id": "123",
//	    "action":     "create_website",
//	})
package infrastructure
