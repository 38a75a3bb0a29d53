package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps records as plain string keys.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

// ConnectRedis creates a client and checks it with a ping.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("remote.ConnectRedis: ping: %w", err)
	}
	return client, nil
}

// RecordKey returns the redis key for a record id.
func RecordKey(id string) string {
	return "app_state:" + id
}

func (b *RedisBackend) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := b.client.Get(ctx, RecordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("remote.RedisBackend.Get: %w", err)
	}
	return data, nil
}

func (b *RedisBackend) Put(ctx context.Context, id string, state []byte) error {
	if err := b.client.Set(ctx, RecordKey(id), state, 0).Err(); err != nil {
		return fmt.Errorf("remote.RedisBackend.Put: %w", err)
	}
	return nil
}
