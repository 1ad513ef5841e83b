package v1

import (
	"testing"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/shopspring/decimal"
)

func TestCase_Validate(t *testing.T) {
	now := time.Now().UTC()

	valid := func() Case {
		return Case{
			ID:         "bk-1",
			County:     "harris",
			Source:     "harris_bond",
			BookedAt:   now,
			BondAmount: decimal.NewFromInt(500),
			TimeBucket: bucket.Bucket0To24h,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Case)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Case) {}},
		{name: "zero bond is fine", mutate: func(c *Case) { c.BondAmount = decimal.Zero }},
		{name: "missing id", mutate: func(c *Case) { c.ID = "" }, wantErr: true},
		{name: "missing county", mutate: func(c *Case) { c.County = "" }, wantErr: true},
		{name: "missing source", mutate: func(c *Case) { c.Source = "" }, wantErr: true},
		{name: "missing booked_at", mutate: func(c *Case) { c.BookedAt = time.Time{} }, wantErr: true},
		{name: "legacy label is not a bucket", mutate: func(c *Case) { c.TimeBucket = "24h" }, wantErr: true},
		{name: "negative bond", mutate: func(c *Case) { c.BondAmount = decimal.NewFromInt(-1) }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCase_Freshness(t *testing.T) {
	c := Case{TimeBucket: bucket.Bucket24To48h}
	if got := c.Freshness(); got != "48h" {
		t.Fatalf("Freshness() = %q, want 48h", got)
	}

	c.TimeBucket = bucket.Bucket7dTo30d
	if got := c.Freshness(); got != "7d_30d" {
		t.Fatalf("Freshness() = %q, want 7d_30d", got)
	}
}
