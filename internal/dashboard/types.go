package dashboard

import (
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
	"github.com/shopspring/decimal"
)

// WindowTotal is the all-county count and bond sum for one window.
type WindowTotal struct {
	Window  bucket.Window   `json:"window"`
	Kind    string          `json:"kind"`
	Buckets []bucket.Bucket `json:"buckets"`
	Count   int64           `json:"count"`
	BondSum decimal.Decimal `json:"bond_sum"`
}

// BucketSummary is the all-county count and bond sum for one canonical bucket.
type BucketSummary struct {
	Bucket  bucket.Bucket   `json:"bucket"`
	Count   int64           `json:"count"`
	BondSum decimal.Decimal `json:"bond_sum"`
}

type KPIResponse struct {
	Windows     []WindowTotal   `json:"windows"`
	Buckets     []BucketSummary `json:"buckets"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type PerCountyResponse struct {
	Window          bucket.Window         `json:"window"`
	RequestedWindow string                `json:"requested_window,omitempty"` // set only when the label fell back
	Buckets         []bucket.Bucket       `json:"buckets"`
	Counties        []storage.CountyTotal `json:"counties"`
}

// TopCase is a case row as shown in the dashboard top list.
type TopCase struct {
	ID         string          `json:"id"`
	County     string          `json:"county"`
	FullName   string          `json:"full_name,omitempty"`
	BookedAt   time.Time       `json:"booked_at"`
	BondAmount decimal.Decimal `json:"bond_amount"`
	TimeBucket bucket.Bucket   `json:"time_bucket_v2"`
	Freshness  string          `json:"freshness"`
}

type TopResponse struct {
	Window          bucket.Window   `json:"window"`
	RequestedWindow string          `json:"requested_window,omitempty"`
	Buckets         []bucket.Bucket `json:"buckets"`
	Limit           int             `json:"limit"`
	Cases           []TopCase       `json:"cases"`
}
