package rebucket

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
)

const defaultBatchSize = 5000

// Result labels for the rebucket counter.
const (
	ResultUnchanged      = "unchanged"
	ResultMoved          = "moved"
	ResultUnclassifiable = "unclassifiable"
)

// BatchResult summarizes one rebucket batch.
type BatchResult struct {
	Scanned        int
	Moved          int
	Unclassifiable int
	Cursor         int64 // ingest_seq of the last case scanned
}

// RunBatch reclassifies up to batchSize cases after cursor against now and writes back
// only the buckets that changed, in a single store call.
func RunBatch(ctx context.Context, store storage.CaseStore, cursor int64, batchSize int, now time.Time) (BatchResult, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	res := BatchResult{Cursor: cursor}

	cases, err := store.RetrieveCasesAfterCursor(ctx, cursor, batchSize)
	if err != nil {
		return res, fmt.Errorf("query cases: %w", err)
	}
	if len(cases) == 0 {
		return res, nil
	}

	var updates []storage.BucketUpdate
	for _, c := range cases {
		b, ok := bucket.Classify(c.BookedAt, now)
		if !ok {
			res.Unclassifiable++
			continue
		}
		if b != c.TimeBucket {
			updates = append(updates, storage.BucketUpdate{IngestSeq: c.IngestSeq, Bucket: b})
		}
	}

	if len(updates) > 0 {
		if err := store.UpdateBuckets(ctx, updates); err != nil {
			return res, fmt.Errorf("update buckets: %w", err)
		}
	}

	res.Scanned = len(cases)
	res.Moved = len(updates)
	res.Cursor = cases[len(cases)-1].IngestSeq

	slog.Debug("[Rebucket] Batch complete",
		"scanned", res.Scanned,
		"moved", res.Moved,
		"unclassifiable", res.Unclassifiable,
		"cursor_advanced", fmt.Sprintf("%d -> %d", cursor, res.Cursor),
	)
	return res, nil
}
