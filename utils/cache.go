// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"amberhall/config"

	"github.com/go-redis/redis/v8"
)

// BroadcastClient is the Redis client used for the live-update broadcast channel.
var BroadcastClient *redis.Client

// InitBroadcast initializes the Redis client backing the broadcast channel.
func InitBroadcast() {
	BroadcastClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBroadcastDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := BroadcastClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Broadcast): %v", err)
	}
}

// GetBroadcastClient returns the Redis client for the broadcast channel.
func GetBroadcastClient() *redis.Client {
	if BroadcastClient == nil {
		InitBroadcast()
	}
	return BroadcastClient
}
