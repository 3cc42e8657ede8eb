package cache

import (
	"context"
	"errors"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/ports"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUAirportRepository fronts an AirportRepository with an in-process
// expirable LRU. Misses are batched into one call to the wrapped repository;
// idents the wrapped repository does not know are not cached.
type LRUAirportRepository struct {
	next  ports.AirportRepository
	cache *expirable.LRU[string, domain.Airport]
}

func NewLRUAirportRepository(next ports.AirportRepository, size int, ttl time.Duration) *LRUAirportRepository {
	if size <= 0 {
		size = 1024
	}
	return &LRUAirportRepository{
		next:  next,
		cache: expirable.NewLRU[string, domain.Airport](size, nil, ttl),
	}
}

func (l *LRUAirportRepository) GetAirports(ctx context.Context, idents []string) (map[string]domain.Airport, error) {
	out := make(map[string]domain.Airport, len(idents))

	var missing []string
	for _, id := range idents {
		id = domain.NormalizeIdent(id)
		if id == "" {
			continue
		}
		if a, ok := l.cache.Get(id); ok {
			out[id] = a
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := l.next.GetAirports(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("lru airport repository: %w", err)
	}
	for id, a := range fetched {
		l.cache.Add(id, a)
		out[id] = a
	}

	return out, nil
}

// Len reports the number of cached airports.
func (l *LRUAirportRepository) Len() int { return l.cache.Len() }

// ListAirports delegates to the wrapped repository when it is a catalog.
// Listings are not cached; the airports returned do warm the lookup cache.
func (l *LRUAirportRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	catalog, ok := l.next.(ports.AirportCatalog)
	if !ok {
		return nil, errors.New("lru airport repository: wrapped repository cannot list airports")
	}

	all, err := catalog.ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("lru airport repository: %w", err)
	}
	for _, a := range all {
		l.cache.Add(a.Ident, a)
	}
	return all, nil
}
