package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "github.com/bondwatch-lab/bondwatch/internal/api/v1"
	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
	storagemocks "github.com/bondwatch-lab/bondwatch/internal/mocks/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type stubFetcher struct {
	byWindow map[bucket.Window][]storage.CountyTotal
	err      error
}

func (s *stubFetcher) FetchPerCounty(_ context.Context, w bucket.Window) ([]storage.CountyTotal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byWindow[w], nil
}

func TestDiffPct(t *testing.T) {
	require.Equal(t, 0.0, DiffPct(100, 100))
	require.Equal(t, 1.0, DiffPct(100, 101))
	require.Equal(t, 1.0, DiffPct(100, 99))
	require.Equal(t, 300.0, DiffPct(0, 3))
	require.Equal(t, 100.0, DiffPct(2, 0))
}

func TestChecker_Run(t *testing.T) {
	store := storagemocks.NewCaseStore(t)
	store.EXPECT().CountByCountyBucket(mock.Anything).Return([]storage.BucketTotal{
		{County: "harris", Bucket: bucket.Bucket0To24h, Count: 100, BondSum: decimal.NewFromInt(1000)},
		{County: "harris", Bucket: bucket.Bucket24To48h, Count: 50, BondSum: decimal.NewFromInt(500)},
		{County: "galveston", Bucket: bucket.Bucket0To24h, Count: 10, BondSum: decimal.NewFromInt(10)},
	}, nil).Once()
	store.EXPECT().RetrieveCasesAfterCursor(mock.Anything, int64(0), coverageBatchSize).Return([]*v1.Case{
		{IngestSeq: 1, BookedAt: testNow.Add(-time.Hour), TimeBucket: bucket.Bucket0To24h},
		{IngestSeq: 2, BookedAt: testNow.Add(-30 * time.Hour), TimeBucket: bucket.Bucket0To24h},
		{IngestSeq: 3, BookedAt: testNow.Add(time.Hour), TimeBucket: bucket.Bucket0To24h},
		{IngestSeq: 4, BookedAt: testNow.Add(-50 * time.Hour), TimeBucket: bucket.Bucket48To72h},
	}, nil).Once()

	api := &stubFetcher{byWindow: map[bucket.Window][]storage.CountyTotal{
		bucket.Window24h: {
			{County: "galveston", Count: 10},
			{County: "harris", Count: 101},
		},
		bucket.Window7d: {
			{County: "galveston", Count: 12},
			{County: "harris", Count: 150},
			{County: "jefferson", Count: 1},
		},
	}}

	checker := NewChecker(store, api, Options{
		Windows:      []bucket.Window{bucket.Window24h, bucket.Window7d},
		TolerancePct: 1.0,
	})
	checker.nowFn = func() time.Time { return testNow }

	report, err := checker.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Comparisons, 5)

	byKey := make(map[string]Comparison)
	for _, c := range report.Comparisons {
		byKey[string(c.Window)+"/"+c.County] = c
	}

	require.Equal(t, StatusOK, byKey["24h/harris"].Status)
	require.Equal(t, 1.0, byKey["24h/harris"].DiffPct)
	require.Equal(t, StatusOK, byKey["24h/galveston"].Status)

	require.Equal(t, int64(150), byKey["7d/harris"].DBCount)
	require.True(t, decimal.NewFromInt(1500).Equal(byKey["7d/harris"].DBBondSum))
	require.Equal(t, StatusOK, byKey["7d/harris"].Status)
	require.Equal(t, StatusMismatch, byKey["7d/galveston"].Status)
	require.Equal(t, StatusMismatch, byKey["7d/jefferson"].Status)
	require.Equal(t, int64(0), byKey["7d/jefferson"].DBCount)

	require.False(t, report.Passed())
	require.Len(t, report.Mismatches(), 2)

	require.Equal(t, Coverage{Total: 4, Matched: 2, Mismatched: 1, Unclassifiable: 1}, report.Coverage)
	require.Equal(t, 0.5, report.Coverage.Rate())
}

func TestChecker_Run_APIErrorFailsRun(t *testing.T) {
	store := storagemocks.NewCaseStore(t)
	store.EXPECT().CountByCountyBucket(mock.Anything).Return(nil, nil).Once()

	checker := NewChecker(store, &stubFetcher{err: errors.New("connection refused")}, Options{})
	_, err := checker.Run(context.Background())
	require.ErrorContains(t, err, "fetch api totals")
}

func TestChecker_Run_StoreErrorFailsRun(t *testing.T) {
	store := storagemocks.NewCaseStore(t)
	store.EXPECT().CountByCountyBucket(mock.Anything).Return(nil, errors.New("db down")).Once()

	checker := NewChecker(store, &stubFetcher{}, Options{})
	_, err := checker.Run(context.Background())
	require.ErrorContains(t, err, "db down")
}

func TestChecker_Run_AllAgree(t *testing.T) {
	store := storagemocks.NewCaseStore(t)
	store.EXPECT().CountByCountyBucket(mock.Anything).Return([]storage.BucketTotal{
		{County: "harris", Bucket: bucket.Bucket48To72h, Count: 3, BondSum: decimal.NewFromInt(3)},
	}, nil).Once()
	store.EXPECT().RetrieveCasesAfterCursor(mock.Anything, int64(0), coverageBatchSize).Return(nil, nil).Once()

	api := &stubFetcher{byWindow: map[bucket.Window][]storage.CountyTotal{
		bucket.Window72h: {{County: "harris", Count: 3}},
		bucket.Window7d:  {{County: "harris", Count: 3}},
		bucket.Window30d: {{County: "harris", Count: 3}},
	}}

	checker := NewChecker(store, api, Options{TolerancePct: 1})
	report, err := checker.Run(context.Background())
	require.NoError(t, err)
	require.True(t, report.Passed())
	require.Len(t, report.Comparisons, 3)
	require.Equal(t, 1.0, report.Coverage.Rate())
}
