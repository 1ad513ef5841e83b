package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	StatusOK       = "ok"
	StatusMismatch = "mismatch"

	coverageBatchSize = 5000
)

// Options tunes a reconciliation run.
type Options struct {
	Windows      []bucket.Window // defaults to every known window
	TolerancePct float64
	Concurrency  int
}

// Comparison is the DB-vs-API result for one county and window.
type Comparison struct {
	County    string          `json:"county"`
	Window    bucket.Window   `json:"window"`
	DBCount   int64           `json:"db_count"`
	APICount  int64           `json:"api_count"`
	DBBondSum decimal.Decimal `json:"db_bond_sum"`
	DiffPct   float64         `json:"diff_pct"`
	Status    string          `json:"status"`
}

// Coverage reports how many stored buckets agree with a fresh classification.
type Coverage struct {
	Total          int `json:"total"`
	Matched        int `json:"matched"`
	Mismatched     int `json:"mismatched"`
	Unclassifiable int `json:"unclassifiable"`
}

// Rate is the matched fraction of all cases; an empty store counts as fully covered.
func (c Coverage) Rate() float64 {
	if c.Total == 0 {
		return 1
	}
	return float64(c.Matched) / float64(c.Total)
}

// Report is the outcome of one reconciliation run.
type Report struct {
	GeneratedAt  time.Time    `json:"generated_at"`
	TolerancePct float64      `json:"tolerance_pct"`
	Comparisons  []Comparison `json:"comparisons"`
	Coverage     Coverage     `json:"coverage"`
}

// Mismatches returns the comparisons outside tolerance.
func (r *Report) Mismatches() []Comparison {
	var out []Comparison
	for _, c := range r.Comparisons {
		if c.Status != StatusOK {
			out = append(out, c)
		}
	}
	return out
}

// Passed reports whether every comparison is within tolerance.
func (r *Report) Passed() bool {
	return len(r.Mismatches()) == 0
}

// Checker compares database truth with what the API serves.
type Checker struct {
	store storage.CaseStore
	api   PerCountyFetcher
	opts  Options
	nowFn func() time.Time
}

func NewChecker(store storage.CaseStore, api PerCountyFetcher, opts Options) *Checker {
	if len(opts.Windows) == 0 {
		opts.Windows = bucket.Windows()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.TolerancePct < 0 {
		opts.TolerancePct = 0
	}
	return &Checker{
		store: store,
		api:   api,
		opts:  opts,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Run executes the full reconciliation. An error means the run itself could not complete.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	now := c.nowFn()

	dbTotals, err := c.dbWindowTotals(ctx)
	if err != nil {
		return nil, err
	}

	apiTotals, err := c.apiWindowTotals(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		GeneratedAt:  now,
		TolerancePct: c.opts.TolerancePct,
	}
	for i, w := range c.opts.Windows {
		report.Comparisons = append(report.Comparisons, compareWindow(w, dbTotals[i], apiTotals[i], c.opts.TolerancePct)...)
	}

	report.Coverage, err = c.coverage(ctx, now)
	if err != nil {
		return nil, err
	}

	slog.Info("[Reconcile] Run complete",
		"comparisons", len(report.Comparisons),
		"mismatches", len(report.Mismatches()),
		"coverage_rate", report.Coverage.Rate(),
	)
	return report, nil
}

// dbWindowTotals folds one grouped query into per-window county totals, aligned with opts.Windows.
func (c *Checker) dbWindowTotals(ctx context.Context) ([][]storage.CountyTotal, error) {
	groups, err := c.store.CountByCountyBucket(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by county and bucket: %w", err)
	}

	out := make([][]storage.CountyTotal, len(c.opts.Windows))
	for i, w := range c.opts.Windows {
		out[i] = storage.FoldByCounty(groups, bucket.BucketsForWindow(string(w)))
	}
	return out, nil
}

func (c *Checker) apiWindowTotals(ctx context.Context) ([][]storage.CountyTotal, error) {
	out := make([][]storage.CountyTotal, len(c.opts.Windows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, w := range c.opts.Windows {
		g.Go(func() error {
			totals, err := c.api.FetchPerCounty(gctx, w)
			if err != nil {
				return err
			}
			out[i] = totals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch api totals: %w", err)
	}
	return out, nil
}

// coverage pages through every case and compares its stored bucket with Classify at now.
func (c *Checker) coverage(ctx context.Context, now time.Time) (Coverage, error) {
	var cov Coverage
	var cursor int64
	for {
		cases, err := c.store.RetrieveCasesAfterCursor(ctx, cursor, coverageBatchSize)
		if err != nil {
			return cov, fmt.Errorf("scan cases: %w", err)
		}
		for _, cs := range cases {
			cov.Total++
			b, ok := bucket.Classify(cs.BookedAt, now)
			switch {
			case !ok:
				cov.Unclassifiable++
			case b == cs.TimeBucket:
				cov.Matched++
			default:
				cov.Mismatched++
			}
		}
		if len(cases) < coverageBatchSize {
			return cov, nil
		}
		cursor = cases[len(cases)-1].IngestSeq
	}
}

func compareWindow(w bucket.Window, db, api []storage.CountyTotal, tolerance float64) []Comparison {
	rows := make(map[string]*Comparison)
	get := func(county string) *Comparison {
		row, ok := rows[county]
		if !ok {
			row = &Comparison{County: county, Window: w, DBBondSum: decimal.Zero}
			rows[county] = row
		}
		return row
	}
	for _, t := range db {
		row := get(t.County)
		row.DBCount = t.Count
		row.DBBondSum = t.BondSum
	}
	for _, t := range api {
		get(t.County).APICount = t.Count
	}

	out := make([]Comparison, 0, len(rows))
	for _, row := range rows {
		row.DiffPct = DiffPct(row.DBCount, row.APICount)
		row.Status = StatusOK
		if row.DiffPct > tolerance {
			row.Status = StatusMismatch
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].County < out[j].County })
	return out
}

// DiffPct is |api-db| / max(db,1) * 100.
func DiffPct(db, api int64) float64 {
	denom := math.Max(float64(db), 1)
	return math.Abs(float64(api-db)) / denom * 100
}
