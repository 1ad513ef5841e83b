package storage

import (
	"context"
	"errors"

	v1 "github.com/bondwatch-lab/bondwatch/internal/api/v1"
	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicate is returned when a case with the same (county, id) already exists.
	ErrDuplicate = errors.New("case already exists")

	// ErrNotFound is returned when a case lookup has no match.
	ErrNotFound = errors.New("case not found")
)

// BucketTotal is one (county, bucket) group of the raw aggregation.
type BucketTotal struct {
	County  string
	Bucket  bucket.Bucket
	Count   int64
	BondSum decimal.Decimal
}

// CountyTotal is the count and bond sum of one county over a bucket set.
type CountyTotal struct {
	County  string          `json:"county"`
	Count   int64           `json:"count"`
	BondSum decimal.Decimal `json:"bond_sum"`
}

// BucketUpdate moves one case to a new bucket.
type BucketUpdate struct {
	IngestSeq int64
	Bucket    bucket.Bucket
}

// CaseStore defines persistence for booking cases.
type CaseStore interface {
	// SaveCase inserts a case and populates IngestSeq.
	// Returns ErrDuplicate when (county, id) already exists.
	SaveCase(ctx context.Context, c *v1.Case) error

	// GetCase returns ErrNotFound when no case matches.
	GetCase(ctx context.Context, county, id string) (*v1.Case, error)

	// RetrieveCasesAfterCursor pages through all cases in ingest_seq order.
	// cursor=0 means "from the beginning".
	RetrieveCasesAfterCursor(ctx context.Context, cursor int64, limit int) ([]*v1.Case, error)

	// UpdateBuckets applies bucket moves atomically.
	UpdateBuckets(ctx context.Context, updates []BucketUpdate) error

	// CountByCountyBucket groups every case by (county, time_bucket_v2).
	CountByCountyBucket(ctx context.Context) ([]BucketTotal, error)

	// AggregateByCounty totals cases per county over the given buckets, ordered by county.
	AggregateByCounty(ctx context.Context, buckets []bucket.Bucket) ([]CountyTotal, error)

	// TopByBond returns the highest-bond cases within the given buckets.
	TopByBond(ctx context.Context, buckets []bucket.Bucket, limit int) ([]*v1.Case, error)
}
