package events

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisChannel carries every post event.
const RedisChannel = "posts.events"

// RedisPublisher publishes JSON events with PUBLISH.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	if p.rdb == nil {
		return errors.New("redis publisher has no client")
	}
	data, err := event.encode()
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, RedisChannel, data).Err()
}

// Close is a no-op: the client is shared with the cache and closed there.
func (p *RedisPublisher) Close() error {
	return nil
}
