package storage

import (
	"testing"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFoldByCounty(t *testing.T) {
	totals := []BucketTotal{
		{County: "harris", Bucket: bucket.Bucket0To24h, Count: 3, BondSum: decimal.NewFromInt(300)},
		{County: "harris", Bucket: bucket.Bucket24To48h, Count: 2, BondSum: decimal.NewFromInt(50)},
		{County: "harris", Bucket: bucket.Bucket60dPlus, Count: 9, BondSum: decimal.NewFromInt(900)},
		{County: "brazoria", Bucket: bucket.Bucket3dTo7d, Count: 1, BondSum: decimal.RequireFromString("12.50")},
		{County: "galveston", Bucket: bucket.Bucket7dTo30d, Count: 4, BondSum: decimal.NewFromInt(40)},
	}

	got := FoldByCounty(totals, bucket.BucketsForWindow("7d"))
	require.Len(t, got, 2)

	require.Equal(t, "brazoria", got[0].County)
	require.Equal(t, int64(1), got[0].Count)
	require.True(t, decimal.RequireFromString("12.5").Equal(got[0].BondSum))

	require.Equal(t, "harris", got[1].County)
	require.Equal(t, int64(5), got[1].Count)
	require.True(t, decimal.NewFromInt(350).Equal(got[1].BondSum))

	count, sum := SumTotals(got)
	require.Equal(t, int64(6), count)
	require.True(t, decimal.RequireFromString("362.5").Equal(sum))
}

func TestFoldByCounty_NoMatches(t *testing.T) {
	totals := []BucketTotal{{County: "harris", Bucket: bucket.Bucket60dPlus, Count: 1}}

	got := FoldByCounty(totals, bucket.BucketsForWindow("24h"))
	require.NotNil(t, got)
	require.Empty(t, got)

	count, sum := SumTotals(got)
	require.Zero(t, count)
	require.True(t, sum.IsZero())
}
