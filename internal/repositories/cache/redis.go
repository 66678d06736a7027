package cache

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings for the cache backend.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient builds a redis client from config.
func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Cache key helpers. Keys are shared between the wallet service (which
// populates them) and the purchase workflow (which invalidates after a
// debit).

func UserKey(userID uint) string {
	return fmt.Sprintf("user:id:%d", userID)
}

func BalanceKey(userID uint) string {
	return fmt.Sprintf("wallet:balance:%d", userID)
}

func TransactionsKey(userID uint) string {
	return fmt.Sprintf("wallet:transactions:%d", userID)
}
