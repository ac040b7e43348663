package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores entries as plain redis strings, for setups that
// already run redis and want the tracker state shared off the machine.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(addr, password string, db int) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisBackend{client: client}, nil
}

func (b *RedisBackend) Get(key string) (string, bool, error) {
	val, err := b.client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (b *RedisBackend) Set(key, value string) error {
	return b.client.Set(context.Background(), key, value, 0).Err()
}

func (b *RedisBackend) Delete(key string) error {
	return b.client.Del(context.Background(), key).Err()
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
