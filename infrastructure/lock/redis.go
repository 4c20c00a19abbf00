package lock

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:"

// só remove a chave se o token ainda for o dono
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// redisClient é satisfeito por *redis.Client
type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type RedisLocker struct {
	client redisClient
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	token, err := gonanoid.New()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar token da trava")
	}

	ok, err := l.client.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao adquirir trava %s", key)
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	return &redisLock{client: l.client, key: key, token: token}, nil
}

type redisLock struct {
	client redisClient
	key    string
	token  string
}

func (l *redisLock) Key() string { return l.key }

func (l *redisLock) Release(ctx context.Context) error {
	if err := l.client.Eval(ctx, releaseScript, []string{keyPrefix + l.key}, l.token).Err(); err != nil {
		return errors.Wrapf(err, "erro ao liberar trava %s", l.key)
	}
	return nil
}
