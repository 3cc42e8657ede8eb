package cache

import (
	"context"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/platform/metrics"
	"flight-planning-service/internal/ports"
)

// InstrumentedLegCache counts lookups by result and stores.
type InstrumentedLegCache struct {
	Next    ports.LegCache
	Metrics *metrics.Collector
}

func NewInstrumentedLegCache(next ports.LegCache, m *metrics.Collector) *InstrumentedLegCache {
	return &InstrumentedLegCache{Next: next, Metrics: m}
}

func (c *InstrumentedLegCache) GetLeg(ctx context.Context, key string) (*domain.LegPlan, bool, error) {
	plan, ok, err := c.Next.GetLeg(ctx, key)
	switch {
	case err != nil:
		c.Metrics.RecordLegCache("error")
	case ok:
		c.Metrics.RecordLegCache("hit")
	default:
		c.Metrics.RecordLegCache("miss")
	}
	return plan, ok, err
}

func (c *InstrumentedLegCache) PutLeg(ctx context.Context, key string, plan *domain.LegPlan) error {
	c.Metrics.RecordLegCacheStore()
	return c.Next.PutLeg(ctx, key, plan)
}
