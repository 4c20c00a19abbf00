package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	sellersListPrefix = "sellers_list"
	scanBatchSize     = 100
)

// SellerListCache guarda cada página da listagem de vendedores separadamente
type SellerListCache interface {
	Get(ctx context.Context, page, perPage int) (*domain.SellerListResponse, bool, error)
	Set(ctx context.Context, page, perPage int, list *domain.SellerListResponse) error
	Invalidate(ctx context.Context) error
}

func sellersListKey(page, perPage int) string {
	return fmt.Sprintf("%s_page_%d_per_%d", sellersListPrefix, page, perPage)
}

// redisClient é satisfeito por *redis.Client
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisSellerListCache struct {
	client redisClient
	ttl    time.Duration
}

func NewRedisSellerListCache(client *redis.Client, ttl time.Duration) *RedisSellerListCache {
	return &RedisSellerListCache{client: client, ttl: ttl}
}

func (c *RedisSellerListCache) Get(ctx context.Context, page, perPage int) (*domain.SellerListResponse, bool, error) {
	raw, err := c.client.Get(ctx, sellersListKey(page, perPage)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao ler listagem de vendedores do cache")
	}

	var list domain.SellerListResponse
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false, errors.Wrap(err, "listagem de vendedores corrompida no cache")
	}

	return &list, true, nil
}

func (c *RedisSellerListCache) Set(ctx context.Context, page, perPage int, list *domain.SellerListResponse) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar listagem de vendedores")
	}

	if err := c.client.Set(ctx, sellersListKey(page, perPage), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "erro ao gravar listagem de vendedores no cache")
	}

	return nil
}

// Invalidate remove todas as páginas em cache, qualquer que seja o tamanho da página
func (c *RedisSellerListCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, sellersListPrefix+"_page_*", scanBatchSize).Result()
		if err != nil {
			return errors.Wrap(err, "erro ao listar chaves do cache de vendedores")
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "erro ao limpar cache de vendedores")
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// NoopSellerListCache é usado quando o Redis está desabilitado
type NoopSellerListCache struct{}

func (NoopSellerListCache) Get(context.Context, int, int) (*domain.SellerListResponse, bool, error) {
	return nil, false, nil
}

func (NoopSellerListCache) Set(context.Context, int, int, *domain.SellerListResponse) error {
	return nil
}

func (NoopSellerListCache) Invalidate(context.Context) error { return nil }
