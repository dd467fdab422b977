// File: utils/cache.go
package utils

import (
	"busimap/config"
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the Redis client dedicated to conversation session
// snapshots.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for session snapshots (using
// DB from AppConfig).
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for session snapshots.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
