package redis

import (
	"context"
	"errors"
	"time"

	"medtrack-core/internal/ports/translation"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "medtrack:tr:"

// TranslationCache guarda traducciones compartidas entre réplicas.
type TranslationCache struct {
	c *redis.Client
}

func NewTranslationCache(c *redis.Client) *TranslationCache { return &TranslationCache{c: c} }

// NewClient arma el cliente; la conexión se abre perezosamente.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (r *TranslationCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.c.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", translation.ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

func (r *TranslationCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.c.Set(ctx, keyPrefix+key, value, ttl).Err()
}

var _ translation.Cache = (*TranslationCache)(nil)
