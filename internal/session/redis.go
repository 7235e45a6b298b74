package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore implémente Store au-dessus de Redis. Les clés sont préfixées
// pour cohabiter avec les autres caches (categories:all, login_attempts:…).
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, token string, payload Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	// Pas d'expiration : la session vit jusqu'au sign-out explicite
	if err := s.client.Set(ctx, redisKeyPrefix+token, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (Payload, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+token).Result()
	if err == redis.Nil {
		return Payload{}, ErrNotFound
	}
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var payload Payload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return Payload{}, fmt.Errorf("session: payload corrompu: %v", err)
	}
	return payload, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
