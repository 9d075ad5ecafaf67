package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix         = "reservation:slotlock:"
	defaultRetryDelay = 50 * time.Millisecond
	releaseTimeout    = 2 * time.Second
)

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisClient подмножество *redis.Client, нужное для блокировки
type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	redis.Scripter
}

// Redis сериализует операции по ключу между репликами сервиса через SET NX PX
// TTL ограничивает время жизни блокировки, если процесс-владелец упал,
// и дедлайн контекста, который получает fn
type Redis struct {
	client     RedisClient
	ttl        time.Duration
	retryDelay time.Duration
}

func NewRedis(client RedisClient, ttl time.Duration) *Redis {
	return &Redis{
		client:     client,
		ttl:        ttl,
		retryDelay: defaultRetryDelay,
	}
}

func (r *Redis) DoSerialized(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lockKey := keyPrefix + key
	token := uuid.NewString()

	if err := r.acquire(ctx, lockKey, token); err != nil {
		return err
	}
	defer r.release(ctx, lockKey, token)

	// Работа под блокировкой не переживает ее TTL: по истечении ключ может захватить другая реплика
	fnCtx, cancel := context.WithTimeout(ctx, r.ttl)
	defer cancel()

	return fn(fnCtx)
}

func (r *Redis) acquire(ctx context.Context, lockKey, token string) error {
	ticker := time.NewTicker(r.retryDelay)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, lockKey, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, lockKey, ctx.Err())
			}
			return fmt.Errorf("%w: key=%s: %v", ErrLockUnavailable, lockKey, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, lockKey, ctx.Err())
		}
	}
}

func (r *Redis) release(ctx context.Context, lockKey, token string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	// Ошибку освобождения игнорируем: ключ истечет по TTL
	_ = releaseScript.Run(releaseCtx, r.client, []string{lockKey}, token).Err()
}
