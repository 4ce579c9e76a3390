package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestStartHealthMonitorChecksImmediately(t *testing.T) {
	// Neither backend is reachable; the point is that a snapshot is taken
	// right away rather than after the first 60s tick.
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer redisClient.Close()

	mongoClient, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(200*time.Millisecond).
		SetConnectTimeout(200*time.Millisecond))
	require.NoError(t, err)
	defer mongoClient.Disconnect(context.Background())

	StartHealthMonitor(redisClient, mongoClient)

	assert.Eventually(t, func() bool {
		return !GetHealthStatus().CheckedAt.IsZero()
	}, 2*time.Second, 50*time.Millisecond)

	status := GetHealthStatus()
	assert.False(t, status.Redis)
	assert.False(t, status.Mongo)
}
