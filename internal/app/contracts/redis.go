package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	CompareAndDelete(ctx context.Context, key string, value interface{}) (int, error)
}

// Results of RedisRepository.CompareAndDelete.
const (
	CompareAndDeleteMismatch = -1
	CompareAndDeleteMissing  = 0
	CompareAndDeleteDeleted  = 1
)
