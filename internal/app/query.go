package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"reviewpulse/internal/domain"
)

// QueryService answers read queries: scan, filter by location and date
// window, rank by descending compound sentiment. Read-only.
type QueryService struct {
	store    domain.ReviewStore
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService builds a query service. cache may be nil to disable
// result caching.
func NewQueryService(st domain.ReviewStore, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: st, cache: c, cacheTTL: ttl}
}

// List returns the filtered records sorted by Sentiment.Compound
// descending; ties keep insertion order. The returned slice is never
// nil so it always serializes as a JSON array.
//
// An unrecognized location filter is ignored rather than matching
// nothing; that mirrors the long-standing service behavior clients
// rely on. A date filter (or stored timestamp) that fails to parse
// fails the whole query.
func (s *QueryService) List(ctx context.Context, q domain.ReviewQuery) ([]domain.Review, error) {
	// The store version changes on every append, so a versioned key
	// self-invalidates without explicit cache eviction.
	key := fmt.Sprintf("reviews:%d:%s|%s|%s", s.store.Version(), q.Location, q.StartDate, q.EndDate)
	if s.cache != nil {
		var cached []domain.Review
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	start, end, err := parseWindow(q)
	if err != nil {
		return nil, err
	}

	records := s.store.All()
	out := make([]domain.Review, 0, len(records))
	for _, r := range records {
		if q.Location != "" && domain.IsValidLocation(q.Location) && r.Location != q.Location {
			continue
		}
		if start != nil || end != nil {
			ts, terr := time.Parse(domain.TimestampLayout, r.CreatedAt)
			if terr != nil {
				return nil, fmt.Errorf("%w: stored timestamp %q", domain.ErrInvalidDate, r.CreatedAt)
			}
			if start != nil && ts.Before(*start) {
				continue
			}
			if end != nil && ts.After(*end) {
				continue
			}
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sentiment.Compound > out[j].Sentiment.Compound
	})

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// parseWindow resolves the inclusive date bounds. Both bounds are the
// midnight of the supplied day: end_date is deliberately not extended
// to end-of-day, so a record at 10:00 on the end date is excluded.
func parseWindow(q domain.ReviewQuery) (start, end *time.Time, err error) {
	if q.StartDate != "" {
		t, perr := time.Parse(domain.DateLayout, q.StartDate)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: start_date %q", domain.ErrInvalidDate, q.StartDate)
		}
		start = &t
	}
	if q.EndDate != "" {
		t, perr := time.Parse(domain.DateLayout, q.EndDate)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: end_date %q", domain.ErrInvalidDate, q.EndDate)
		}
		end = &t
	}
	return start, end, nil
}
