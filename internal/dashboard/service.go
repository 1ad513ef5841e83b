package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
	"github.com/bondwatch-lab/bondwatch/internal/metrics"
	"github.com/shopspring/decimal"
)

const (
	endpointKPIs      = "kpis"
	endpointPerCounty = "per_county"
	endpointTop       = "top"
)

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	ErrInvalidQuery = errors.New("invalid dashboard query")

	kpiWindows = []bucket.Window{
		bucket.Window24h,
		bucket.Window48h,
		bucket.Window72h,
		bucket.Window7d,
		bucket.Window30d,
	}
)

// Options tunes the dashboard service.
type Options struct {
	TopLimit    int
	MaxTopLimit int
	CacheTTL    time.Duration // zero disables caching
}

// Service serves the dashboard aggregation reads.
type Service struct {
	store   storage.CaseStore
	cache   Cache
	metrics *metrics.Metrics
	opts    Options
	nowFn   func() time.Time
}

// NewService creates a dashboard service. cache and m may be nil.
func NewService(store storage.CaseStore, cache Cache, m *metrics.Metrics, opts Options) *Service {
	if store == nil {
		panic("dashboard: store must not be nil")
	}
	if opts.TopLimit <= 0 {
		opts.TopLimit = 10
	}
	if opts.MaxTopLimit < opts.TopLimit {
		opts.MaxTopLimit = opts.TopLimit
	}
	return &Service{
		store:   store,
		cache:   cache,
		metrics: m,
		opts:    opts,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// KPIs returns totals for the headline windows and every canonical bucket.
func (s *Service) KPIs(ctx context.Context) (*KPIResponse, error) {
	return cached(ctx, s, endpointKPIs, func() (*KPIResponse, error) {
		totals, err := s.store.CountByCountyBucket(ctx)
		if err != nil {
			return nil, fmt.Errorf("count by county and bucket: %w", err)
		}

		resp := &KPIResponse{
			Windows:     make([]WindowTotal, 0, len(kpiWindows)),
			Buckets:     summarizeBuckets(totals),
			GeneratedAt: s.nowFn(),
		}
		for _, w := range kpiWindows {
			buckets := bucket.BucketsForWindow(string(w))
			count, sum := storage.SumTotals(storage.FoldByCounty(totals, buckets))
			resp.Windows = append(resp.Windows, WindowTotal{
				Window:  w,
				Kind:    w.Kind().String(),
				Buckets: buckets,
				Count:   count,
				BondSum: sum,
			})
		}
		return resp, nil
	})
}

// PerCounty returns per-county totals over the buckets of window.
func (s *Service) PerCounty(ctx context.Context, window string) (*PerCountyResponse, error) {
	w, buckets, requested := s.resolve(endpointPerCounty, window)

	key := fmt.Sprintf("%s:%s", endpointPerCounty, w)
	resp, err := cached(ctx, s, key, func() (*PerCountyResponse, error) {
		counties, err := s.store.AggregateByCounty(ctx, buckets)
		if err != nil {
			return nil, fmt.Errorf("aggregate by county: %w", err)
		}
		if counties == nil {
			counties = []storage.CountyTotal{}
		}
		return &PerCountyResponse{
			Window:   w,
			Buckets:  buckets,
			Counties: counties,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	resp.RequestedWindow = requested
	return resp, nil
}

// Top returns the highest-bond cases within window. limit=0 selects the configured default;
// larger limits are capped at the configured maximum.
func (s *Service) Top(ctx context.Context, window string, limit int) (*TopResponse, error) {
	if limit < 0 {
		return nil, invalidQueryf("limit must be positive, got %d", limit)
	}
	if limit == 0 {
		limit = s.opts.TopLimit
	}
	if limit > s.opts.MaxTopLimit {
		limit = s.opts.MaxTopLimit
	}

	w, buckets, requested := s.resolve(endpointTop, window)

	key := fmt.Sprintf("%s:%s:%d", endpointTop, w, limit)
	resp, err := cached(ctx, s, key, func() (*TopResponse, error) {
		cases, err := s.store.TopByBond(ctx, buckets, limit)
		if err != nil {
			return nil, fmt.Errorf("top by bond: %w", err)
		}
		out := make([]TopCase, 0, len(cases))
		for _, c := range cases {
			out = append(out, TopCase{
				ID:         c.ID,
				County:     c.County,
				FullName:   c.FullName,
				BookedAt:   c.BookedAt,
				BondAmount: c.BondAmount,
				TimeBucket: c.TimeBucket,
				Freshness:  c.Freshness(),
			})
		}
		return &TopResponse{
			Window:  w,
			Buckets: buckets,
			Limit:   limit,
			Cases:   out,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	resp.RequestedWindow = requested
	return resp, nil
}

// resolve maps a raw window label to its buckets. A non-empty unknown label falls back
// to the default window; it is logged, counted, and returned as requested.
func (s *Service) resolve(endpoint, raw string) (bucket.Window, []bucket.Bucket, string) {
	w, buckets, ok := bucket.ResolveWindow(raw)
	if ok || strings.TrimSpace(raw) == "" {
		return w, buckets, ""
	}

	slog.Warn("[Dashboard] Unknown window label, falling back",
		"endpoint", endpoint,
		"window", raw,
		"fallback", w)
	s.metrics.RecordWindowFallback(endpoint)
	return w, buckets, raw
}

// cached serves fn through the response cache. Cache errors are logged and bypassed.
// A context from WithoutCache skips the read but still refreshes the entry.
func cached[T any](ctx context.Context, s *Service, key string, fn func() (T, error)) (T, error) {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return fn()
	}

	if cacheBypassed(ctx) {
		s.metrics.RecordCacheLookup("bypass")
	} else if v, ok := readCache[T](ctx, s, key); ok {
		return v, nil
	}

	v, err := fn()
	if err != nil {
		return v, err
	}

	if encoded, err := json.Marshal(v); err == nil {
		if err := s.cache.Set(ctx, key, encoded, s.opts.CacheTTL); err != nil {
			slog.Warn("[Dashboard] Cache write failed", "key", key, "error", err)
		}
	}
	return v, nil
}

// readCache decodes the entry at key. Misses and failures report ok=false.
func readCache[T any](ctx context.Context, s *Service, key string) (T, bool) {
	var v T
	data, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		slog.Warn("[Dashboard] Cache read failed", "key", key, "error", err)
		s.metrics.RecordCacheLookup("error")
	case !ok:
		s.metrics.RecordCacheLookup("miss")
	default:
		if err := json.Unmarshal(data, &v); err == nil {
			s.metrics.RecordCacheLookup("hit")
			return v, true
		}
		slog.Warn("[Dashboard] Discarding undecodable cache entry", "key", key)
		s.metrics.RecordCacheLookup("error")
	}
	return v, false
}

func summarizeBuckets(totals []storage.BucketTotal) []BucketSummary {
	all := bucket.All()
	out := make([]BucketSummary, len(all))
	for i, b := range all {
		out[i] = BucketSummary{Bucket: b, BondSum: decimal.Zero}
	}
	for _, t := range totals {
		idx := t.Bucket.Index()
		if idx < 0 {
			continue
		}
		out[idx].Count += t.Count
		out[idx].BondSum = out[idx].BondSum.Add(t.BondSum)
	}
	return out
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
