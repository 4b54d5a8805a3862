package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service_inventory/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "lock:order:"

// releaseScript deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serializes writers of an order across API instances with
// SET NX PX. The TTL bounds how long a crashed holder can block an order.
type RedisLocker struct {
	rdb   *redis.Client
	ttl   time.Duration
	wait  time.Duration
	retry time.Duration
	log   *zap.Logger
}

var _ interfaces.IOrderLocker = (*RedisLocker)(nil)

func NewRedisLocker(rdb *redis.Client, ttl, wait time.Duration, log *zap.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{rdb: rdb, ttl: ttl, wait: wait, retry: 50 * time.Millisecond, log: log}
}

func (l *RedisLocker) Lock(ctx context.Context, orderID string) (func(), error) {
	key := keyPrefix + orderID
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			l.log.Warn("acquire order lock failed", zap.String("order_id", orderID), zap.Error(err))
			return nil, fmt.Errorf("%w: %w", interfaces.ErrLockUnavailable, err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, interfaces.ErrLockNotAcquired
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}

	return func() {
		// The request context may already be cancelled.
		relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(relCtx, l.rdb, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			l.log.Warn("release order lock failed", zap.String("order_id", orderID), zap.Error(err))
		}
	}, nil
}
