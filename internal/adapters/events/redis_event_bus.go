package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careloop/synthgen/internal/domain/entities"
	"github.com/careloop/synthgen/internal/domain/providers"
	"github.com/careloop/synthgen/internal/infrastructure/clients/redis"
	"github.com/careloop/synthgen/internal/infrastructure/observability"
)

// RedisEventBus announces completed generation runs over Redis
// Pub/Sub, so downstream ETL can pick up freshly written tables.
type RedisEventBus struct {
	client *redis.Client
}

// NewRedisEventBus creates a new Redis-based event bus.
func NewRedisEventBus(client *redis.Client) providers.EventBus {
	return &RedisEventBus{client: client}
}

// Publish publishes a run event on the given channel.
func (b *RedisEventBus) Publish(ctx context.Context, channel string, event *entities.RunEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal run event: %w", err)
	}

	if err := b.client.Client().Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish run event: %w", err)
	}

	observability.GetLogger().Info().
		Str("channel", channel).
		Str("run_id", event.RunID).
		Msg("published run event")
	return nil
}

// Close closes the event bus.
func (b *RedisEventBus) Close() error {
	return b.client.Close()
}
