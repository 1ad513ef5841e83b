package storage

import (
	"sort"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/shopspring/decimal"
)

// FoldByCounty collapses raw (county, bucket) groups into per-county totals over buckets.
// Groups whose bucket is outside the set are ignored. Result is sorted by county and
// contains only counties with at least one matching group.
func FoldByCounty(totals []BucketTotal, buckets []bucket.Bucket) []CountyTotal {
	want := make(map[bucket.Bucket]struct{}, len(buckets))
	for _, b := range buckets {
		want[b] = struct{}{}
	}

	byCounty := make(map[string]*CountyTotal)
	for _, t := range totals {
		if _, ok := want[t.Bucket]; !ok {
			continue
		}
		ct, ok := byCounty[t.County]
		if !ok {
			ct = &CountyTotal{County: t.County, BondSum: decimal.Zero}
			byCounty[t.County] = ct
		}
		ct.Count += t.Count
		ct.BondSum = ct.BondSum.Add(t.BondSum)
	}

	out := make([]CountyTotal, 0, len(byCounty))
	for _, ct := range byCounty {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].County < out[j].County })
	return out
}

// SumTotals adds up county totals into a single count and bond sum.
func SumTotals(totals []CountyTotal) (int64, decimal.Decimal) {
	var count int64
	sum := decimal.Zero
	for _, t := range totals {
		count += t.Count
		sum = sum.Add(t.BondSum)
	}
	return count, sum
}
