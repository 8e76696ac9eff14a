package dedupe

import (
	"context"
	"time"

	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const defaultKeyPrefix = "hepeco:dup:"

// RedisGuard claims keys with SET NX PX so every API replica shares one
// view of recent requests.
type RedisGuard struct {
	client redis.Cmdable
	prefix string
}

var _ interfaces.IDuplicateGuard = (*RedisGuard)(nil)

func NewRedisGuard(client redis.Cmdable) *RedisGuard {
	return &RedisGuard{client: client, prefix: defaultKeyPrefix}
}

func (g *RedisGuard) Claim(ctx context.Context, key string, window time.Duration) (bool, error) {
	return g.client.SetNX(ctx, g.prefix+key, "1", window).Result()
}
