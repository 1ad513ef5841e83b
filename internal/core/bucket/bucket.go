package bucket

import "strings"

// Bucket is a canonical time-since-booking interval stored on every case (time_bucket_v2).
// Buckets are contiguous and non-overlapping; a case sits in exactly one at any instant.
type Bucket string

const (
	Bucket0To24h   Bucket = "0_24h"
	Bucket24To48h  Bucket = "24_48h"
	Bucket48To72h  Bucket = "48_72h"
	Bucket3dTo7d   Bucket = "3d_7d"
	Bucket7dTo30d  Bucket = "7d_30d"
	Bucket30dTo60d Bucket = "30d_60d"
	Bucket60dPlus  Bucket = "60d_plus"
)

// Window is a legacy dashboard label. It is either a single-bucket freshness label
// (24h, 48h, 72h, 3d_7d) or a cumulative range starting at 0_24h (7d, 30d).
type Window string

const (
	Window24h    Window = "24h"
	Window48h    Window = "48h"
	Window72h    Window = "72h"
	Window3dTo7d Window = "3d_7d"
	Window7d     Window = "7d"
	Window30d    Window = "30d"

	// DefaultWindow is used when a label is missing or unknown.
	DefaultWindow = Window24h
)

// Kind separates the two meanings packed into the window label space.
type Kind int

const (
	KindUnknown Kind = iota
	KindFreshness
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindFreshness:
		return "freshness"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

var order = [...]Bucket{
	Bucket0To24h,
	Bucket24To48h,
	Bucket48To72h,
	Bucket3dTo7d,
	Bucket7dTo30d,
	Bucket30dTo60d,
	Bucket60dPlus,
}

var windowOrder = [...]Window{
	Window24h,
	Window48h,
	Window72h,
	Window3dTo7d,
	Window7d,
	Window30d,
}

var bucketsByWindow = map[Window][]Bucket{
	Window24h:    {Bucket0To24h},
	Window48h:    {Bucket24To48h},
	Window72h:    {Bucket48To72h},
	Window3dTo7d: {Bucket3dTo7d},
	Window7d:     {Bucket0To24h, Bucket24To48h, Bucket48To72h, Bucket3dTo7d},
	Window30d:    {Bucket0To24h, Bucket24To48h, Bucket48To72h, Bucket3dTo7d, Bucket7dTo30d},
}

var legacyByBucket = map[Bucket]Window{
	Bucket0To24h:  Window24h,
	Bucket24To48h: Window48h,
	Bucket48To72h: Window72h,
}

var kindByWindow = map[Window]Kind{
	Window24h:    KindFreshness,
	Window48h:    KindFreshness,
	Window72h:    KindFreshness,
	Window3dTo7d: KindFreshness,
	Window7d:     KindRange,
	Window30d:    KindRange,
}

// All returns the canonical bucket order.
func All() []Bucket {
	out := make([]Bucket, len(order))
	copy(out, order[:])
	return out
}

// Windows returns every known window label in display order.
func Windows() []Window {
	out := make([]Window, len(windowOrder))
	copy(out, windowOrder[:])
	return out
}

// ParseWindow normalizes a label (trimmed, case-insensitive) and reports whether it is known.
func ParseWindow(s string) (Window, bool) {
	w := Window(strings.ToLower(strings.TrimSpace(s)))
	_, ok := bucketsByWindow[w]
	return w, ok
}

// ResolveWindow maps a window label to its ordered bucket set.
// Unknown or empty labels resolve to DefaultWindow; ok is false in that case so the
// caller can record the fallback. The returned slice is a fresh copy.
func ResolveWindow(s string) (Window, []Bucket, bool) {
	w, ok := ParseWindow(s)
	if !ok {
		w = DefaultWindow
	}
	src := bucketsByWindow[w]
	out := make([]Bucket, len(src))
	copy(out, src)
	return w, out, ok
}

// BucketsForWindow returns the ordered buckets covered by window.
// Unknown labels silently fall back to the 24h mapping.
func BucketsForWindow(window string) []Bucket {
	_, buckets, _ := ResolveWindow(window)
	return buckets
}

// LegacyWindowForBucket returns the short legacy label for the three freshness buckets
// and the input unchanged for everything else.
func LegacyWindowForBucket(b string) string {
	if w, ok := legacyByBucket[Bucket(b)]; ok {
		return string(w)
	}
	return b
}

// IsV2Bucket reports whether value is one of the canonical buckets.
func IsV2Bucket(value string) bool {
	return Bucket(value).Valid()
}

// Valid reports whether b is one of the canonical buckets.
func (b Bucket) Valid() bool {
	return b.Index() >= 0
}

// Index returns the position of b in the canonical order, or -1.
func (b Bucket) Index() int {
	for i, c := range order {
		if c == b {
			return i
		}
	}
	return -1
}

// Kind reports whether w is a freshness label or a cumulative range.
func (w Window) Kind() Kind {
	return kindByWindow[w]
}

// Strings converts buckets to plain strings, e.g. for a SQL ANY($1) parameter.
func Strings(buckets []Bucket) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = string(b)
	}
	return out
}
