package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ChangeChannel names the pub/sub channel carrying change notifications for
// one user's collection. Every accepted mutation publishes here; the sync
// controller holds the single live subscription.
func ChangeChannel(userID, collection string) string {
	return fmt.Sprintf("changes:%s:%s", userID, collection)
}

// Publisher notifies listeners that a collection changed. The payload is
// only a wake-up: subscribers re-fetch the full collection value, so
// listeners never see partial updates.
type Publisher interface {
	PublishChange(ctx context.Context, userID, collection string) error
}

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) PublishChange(ctx context.Context, userID, collection string) error {
	return p.client.Publish(ctx, ChangeChannel(userID, collection), "changed").Err()
}
