package ports

import (
	"context"
	"flight-planning-service/internal/domain"
)

// Optional store for previously computed leg plans.
type LegCache interface {
	// Return the cached plan and true, or false on a miss.
	GetLeg(ctx context.Context, key string) (*domain.LegPlan, bool, error)
	PutLeg(ctx context.Context, key string, plan *domain.LegPlan) error
}
