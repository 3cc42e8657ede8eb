package cache

import (
	"context"
	"encoding/json"
	"errors"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/platform/obs"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisLegPrefix = "leg:"

// RedisLegCache stores leg plans as JSON strings with a per-entry TTL.
type RedisLegCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisLegCache(client *redis.Client, ttl time.Duration) *RedisLegCache {
	return &RedisLegCache{Client: client, TTL: ttl}
}

// NewRedisClient parses a redis:// URL and verifies the server is reachable.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

func (r *RedisLegCache) GetLeg(ctx context.Context, key string) (_ *domain.LegPlan, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.redis.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("leg cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get leg cache: key must not be empty")
	}

	b, err := r.Client.Get(ctx, redisLegPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get leg cache: redis get %q: %w", key, err)
	}

	var plan domain.LegPlan
	if err := json.Unmarshal(b, &plan); err != nil {
		return nil, false, fmt.Errorf("get leg cache: decode payload for %q: %w", key, err)
	}

	return &plan, true, nil
}

func (r *RedisLegCache) PutLeg(ctx context.Context, key string, plan *domain.LegPlan) error {
	if r.Client == nil {
		return errors.New("leg cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert leg cache: key must not be empty")
	}
	if plan == nil {
		return errors.New("insert leg cache: plan is nil")
	}

	b, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert leg cache: encode payload: %w", err)
	}

	if err := r.Client.Set(ctx, redisLegPrefix+key, b, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert leg cache: redis set %q: %w", key, err)
	}
	return nil
}
