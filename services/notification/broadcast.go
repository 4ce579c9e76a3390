package notification

import (
	"context"
	"encoding/json"
	"time"

	"amberhall/models"
	"amberhall/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisBroadcaster publishes live-update events on a Redis channel. Listeners
// (the realtime frontend bridge) subscribe to the channel; publishing is
// fire-and-forget and never blocks a state transition for long.
type RedisBroadcaster struct {
	client  *redis.Client
	channel string
}

// NewRedisBroadcaster creates a Broadcaster publishing on the given channel.
func NewRedisBroadcaster(client *redis.Client, channel string) *RedisBroadcaster {
	return &RedisBroadcaster{client: client, channel: channel}
}

// Publish pushes the event to the channel. Failures are logged and dropped.
func (b *RedisBroadcaster) Publish(ctx context.Context, event models.BroadcastEvent) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		utils.GetLogger().Warn("broadcast: failed to marshal event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		utils.GetLogger().Warn("broadcast: failed to publish event",
			zap.String("type", event.Type), zap.Error(err))
	}
}
