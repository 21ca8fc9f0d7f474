package analytics

import (
	"context"
	"time"

	"github.com/salespulse/salespulse/internal/sales"
)

// SaleSource supplies the raw sale collection.
type SaleSource interface {
	ListSales(ctx context.Context) ([]sales.Sale, error)
}

// Service resolves KPI snapshots using cache-aware lookups. Cache keys
// include the calendar day so windows roll at local midnight, and the cache
// version so intake writes invalidate across processes.
type Service struct {
	source SaleSource
	cache  *Cache
	loc    *time.Location

	workspaceID string
	now         func() time.Time
}

// NewService constructs the analytics service.
func NewService(source SaleSource, cache *Cache, loc *time.Location, workspaceID string) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		source:      source,
		cache:       cache,
		loc:         loc,
		workspaceID: workspaceID,
		now:         time.Now,
	}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// Location exposes the deployment calendar used for windowing.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Snapshot resolves the current KPI snapshot.
func (s *Service) Snapshot(ctx context.Context) (KPISnapshot, error) {
	now := s.now()
	loader := func(ctx context.Context) (interface{}, error) {
		list, err := s.source.ListSales(ctx)
		if err != nil {
			return KPISnapshot{}, err
		}
		return Compute(list, now, s.loc), nil
	}

	if s.cache == nil {
		value, err := loader(ctx)
		if err != nil {
			return KPISnapshot{}, err
		}
		return value.(KPISnapshot), nil
	}

	day := now.In(s.loc).Format("2006-01-02")
	key, err := s.cache.BuildKey(ctx, keyKPI(s.workspaceID, day))
	if err != nil {
		// version lookup failed, serve uncached
		value, lerr := loader(ctx)
		if lerr != nil {
			return KPISnapshot{}, lerr
		}
		return value.(KPISnapshot), nil
	}
	var snap KPISnapshot
	if err := s.cache.FetchJSON(ctx, key, &snap, loader); err != nil {
		return KPISnapshot{}, err
	}
	return snap, nil
}
