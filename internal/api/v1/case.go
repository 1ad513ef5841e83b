package v1

import (
	"fmt"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/shopspring/decimal"
)

// Case is one booking record as normalized from a county source.
type Case struct {
	// ID is the scraper-provided record identifier, unique per County.
	// Generated on ingestion when the scraper has none.
	ID string `json:"id"`

	// County is the lower-case county key (e.g. "harris", "galveston").
	County string `json:"county"`

	// Source names the raw collection the record came from (e.g. "harris_bond").
	// It selects the field mapping used to derive BookedAt and BondAmount.
	Source string `json:"source"`

	FullName string `json:"full_name,omitempty"`

	// BookedAt is the reference event for bucketing.
	BookedAt time.Time `json:"booked_at"`

	BondAmount decimal.Decimal `json:"bond_amount"`

	// TimeBucket is the canonical bucket as of the last (re)classification.
	TimeBucket bucket.Bucket `json:"time_bucket_v2"`

	IngestedAt time.Time `json:"ingested_at"`

	// IngestSeq is a monotonic sequence assigned by the database (BIGSERIAL).
	IngestSeq int64 `json:"-"`

	// Data is the raw scraped document.
	Data map[string]interface{} `json:"data,omitempty"`
}

// Validate ensures the case has everything required to be stored and bucketed.
func (c *Case) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("id is required")
	}
	if c.County == "" {
		return fmt.Errorf("county is required")
	}
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if c.BookedAt.IsZero() {
		return fmt.Errorf("booked_at is required")
	}
	if !c.TimeBucket.Valid() {
		return fmt.Errorf("time_bucket_v2 %q is not a known bucket", c.TimeBucket)
	}
	if c.BondAmount.IsNegative() {
		return fmt.Errorf("bond_amount must not be negative")
	}
	return nil
}

// Freshness is the short badge label for the case's bucket.
func (c *Case) Freshness() string {
	return bucket.LegacyWindowForBucket(string(c.TimeBucket))
}
