package bucket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketsForWindow(t *testing.T) {
	tests := []struct {
		window string
		want   []Bucket
	}{
		{window: "24h", want: []Bucket{"0_24h"}},
		{window: "48h", want: []Bucket{"24_48h"}},
		{window: "72h", want: []Bucket{"48_72h"}},
		{window: "3d_7d", want: []Bucket{"3d_7d"}},
		{window: "7d", want: []Bucket{"0_24h", "24_48h", "48_72h", "3d_7d"}},
		{window: "30d", want: []Bucket{"0_24h", "24_48h", "48_72h", "3d_7d", "7d_30d"}},
	}

	for _, tc := range tests {
		t.Run(tc.window, func(t *testing.T) {
			require.Equal(t, tc.want, BucketsForWindow(tc.window))
		})
	}
}

func TestBucketsForWindow_CaseInsensitive(t *testing.T) {
	require.Equal(t, BucketsForWindow("7d"), BucketsForWindow("7D"))
	require.Equal(t, BucketsForWindow("3d_7d"), BucketsForWindow("3D_7D"))
	require.Equal(t, BucketsForWindow("30d"), BucketsForWindow(" 30d "))
}

func TestBucketsForWindow_Fallback(t *testing.T) {
	for _, in := range []string{"garbage", "", "60d", "0_24h"} {
		require.Equal(t, []Bucket{Bucket0To24h}, BucketsForWindow(in), "input %q", in)
	}
}

func TestResolveWindow_ReportsFallback(t *testing.T) {
	w, buckets, ok := ResolveWindow("7D")
	require.True(t, ok)
	require.Equal(t, Window7d, w)
	require.Len(t, buckets, 4)

	w, buckets, ok = ResolveWindow("nope")
	require.False(t, ok)
	require.Equal(t, DefaultWindow, w)
	require.Equal(t, []Bucket{Bucket0To24h}, buckets)
}

func TestBucketsForWindow_ResultIsACopy(t *testing.T) {
	first := BucketsForWindow("7d")
	first[0] = "tampered"

	require.Equal(t, Bucket0To24h, BucketsForWindow("7d")[0])

	all := All()
	all[0] = "tampered"
	require.Equal(t, Bucket0To24h, All()[0])
}

func TestBucketsForWindow_AllElementsAreV2(t *testing.T) {
	for _, w := range Windows() {
		buckets := BucketsForWindow(string(w))
		require.NotEmpty(t, buckets, "window %s", w)
		for _, b := range buckets {
			require.True(t, IsV2Bucket(string(b)), "window %s bucket %s", w, b)
		}
	}
}

func TestBucketsForWindow_RangesArePrefixes(t *testing.T) {
	canonical := All()
	for _, w := range Windows() {
		if w.Kind() != KindRange {
			continue
		}
		buckets := BucketsForWindow(string(w))
		require.Equal(t, canonical[:len(buckets)], buckets, "window %s", w)
	}

	sevenDay := BucketsForWindow("7d")
	require.Equal(t, []Bucket{"0_24h", "24_48h", "48_72h"}, sevenDay[:3])
	require.Equal(t, Bucket("3d_7d"), sevenDay[3])
}

func TestLegacyWindowForBucket(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0_24h", want: "24h"},
		{in: "24_48h", want: "48h"},
		{in: "48_72h", want: "72h"},
		{in: "3d_7d", want: "3d_7d"},
		{in: "7d_30d", want: "7d_30d"},
		{in: "30d_60d", want: "30d_60d"},
		{in: "60d_plus", want: "60d_plus"},
		{in: "something-else", want: "something-else"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, LegacyWindowForBucket(tc.in), "input %q", tc.in)
	}
}

func TestIsV2Bucket(t *testing.T) {
	for _, b := range All() {
		require.True(t, IsV2Bucket(string(b)))
	}
	require.False(t, IsV2Bucket("24h"))
	require.False(t, IsV2Bucket("0_24H"))
	require.False(t, IsV2Bucket(""))
}

func TestOperationsAreIdempotent(t *testing.T) {
	for _, w := range []string{"24h", "7d", "30d", "bogus"} {
		require.Equal(t, BucketsForWindow(w), BucketsForWindow(w))
	}
	for _, b := range []string{"0_24h", "3d_7d", "x"} {
		require.Equal(t, LegacyWindowForBucket(b), LegacyWindowForBucket(b))
		require.Equal(t, IsV2Bucket(b), IsV2Bucket(b))
	}
}

func TestWindowKind(t *testing.T) {
	require.Equal(t, KindFreshness, Window24h.Kind())
	require.Equal(t, KindFreshness, Window3dTo7d.Kind())
	require.Equal(t, KindRange, Window7d.Kind())
	require.Equal(t, KindRange, Window30d.Kind())
	require.Equal(t, KindUnknown, Window("90d").Kind())
	require.Equal(t, "range", KindRange.String())
}

func TestBucketIndex(t *testing.T) {
	require.Equal(t, 0, Bucket0To24h.Index())
	require.Equal(t, 6, Bucket60dPlus.Index())
	require.Equal(t, -1, Bucket("nope").Index())
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		age    time.Duration
		want   Bucket
		wantOK bool
	}{
		{name: "just booked", age: 0, want: Bucket0To24h, wantOK: true},
		{name: "23h", age: 23 * time.Hour, want: Bucket0To24h, wantOK: true},
		{name: "exactly 24h starts next bucket", age: 24 * time.Hour, want: Bucket24To48h, wantOK: true},
		{name: "47h59m", age: 48*time.Hour - time.Minute, want: Bucket24To48h, wantOK: true},
		{name: "48h", age: 48 * time.Hour, want: Bucket48To72h, wantOK: true},
		{name: "72h", age: 72 * time.Hour, want: Bucket3dTo7d, wantOK: true},
		{name: "6d", age: 6 * day, want: Bucket3dTo7d, wantOK: true},
		{name: "7d", age: 7 * day, want: Bucket7dTo30d, wantOK: true},
		{name: "30d", age: 30 * day, want: Bucket30dTo60d, wantOK: true},
		{name: "60d", age: 60 * day, want: Bucket60dPlus, wantOK: true},
		{name: "years", age: 900 * day, want: Bucket60dPlus, wantOK: true},
		{name: "future", age: -time.Minute, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Classify(now.Add(-tc.age), now)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}

	_, ok := Classify(time.Time{}, now)
	require.False(t, ok)
}
