package cache

import "time"

// MemoryConfig holds in-memory cache configuration.
type MemoryConfig struct {
	MaxSize         int
	CleanupInterval time.Duration
}

// MemoryOption configures MemoryCache.
type MemoryOption func(*MemoryConfig)

// WithMaxSize sets the maximum number of entries before LRU eviction.
func WithMaxSize(n int) MemoryOption {
	return func(cfg *MemoryConfig) { cfg.MaxSize = n }
}

// WithCleanupInterval sets how often expired entries are swept.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(cfg *MemoryConfig) { cfg.CleanupInterval = d }
}

// RedisConfig holds Redis cache configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	Prefix   string
}

// RedisOption configures RedisCache.
type RedisOption func(*RedisConfig)

// WithAddr sets the Redis address.
func WithAddr(addr string) RedisOption {
	return func(cfg *RedisConfig) { cfg.Addr = addr }
}

// WithCredentials sets the Redis password and DB.
func WithCredentials(password string, db int) RedisOption {
	return func(cfg *RedisConfig) {
		cfg.Password = password
		cfg.DB = db
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(cfg *RedisConfig) { cfg.Prefix = prefix }
}
