package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/platform/obs"
	"fmt"
	"strings"
	"time"
)

// SQLLegCache is a SQL-backed cache for computed leg plans.
// Entries older than TTL are treated as misses; a zero TTL never expires.
type SQLLegCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLLegCache(db *sql.DB, ttl time.Duration) *SQLLegCache {
	return &SQLLegCache{DB: db, TTL: ttl}
}

// Fetch a cached leg plan by key.
func (s *SQLLegCache) GetLeg(ctx context.Context, key string) (_ *domain.LegPlan, _ bool, err error) {
	defer obs.Time(ctx, "leg.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("leg cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get leg cache: key must not be empty")
	}

	q := `
	SELECT payload, created_at
	FROM leg_cache
	WHERE cache_key = $1;
	`

	var payload []byte
	var createdAt time.Time
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get leg cache: query leg_cache table: %w", err)
	}

	if s.TTL > 0 && time.Since(createdAt) > s.TTL {
		return nil, false, nil
	}

	var plan domain.LegPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, false, fmt.Errorf("get leg cache: decode payload for %q: %w", key, err)
	}

	return &plan, true, nil
}

// Store a leg plan, replacing any previous entry for the key.
func (s *SQLLegCache) PutLeg(ctx context.Context, key string, plan *domain.LegPlan) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert leg cache: key must not be empty")
	}
	if plan == nil {
		return errors.New("insert leg cache: plan is nil")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert leg cache: encode payload: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO leg_cache (cache_key, payload, created_at)
	VALUES ($1, $2, now())
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		created_at = EXCLUDED.created_at;
	`, key, payload)
	if err != nil {
		return fmt.Errorf("insert leg cache key=%q: %w", key, err)
	}

	return nil
}

// Purge deletes entries older than the TTL and returns how many were removed.
func (s *SQLLegCache) Purge(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("leg cache: db is nil")
	}
	if s.TTL <= 0 {
		return 0, nil
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM leg_cache WHERE created_at < $1;`, time.Now().Add(-s.TTL))
	if err != nil {
		return 0, fmt.Errorf("purge leg cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge leg cache: rows affected: %w", err)
	}
	return n, nil
}
