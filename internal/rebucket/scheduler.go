package rebucket

import (
	"context"
	"log/slog"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
	"github.com/bondwatch-lab/bondwatch/internal/metrics"
)

const maxBatchesPerTick = 100

// Scheduler periodically sweeps every case and moves it to the bucket matching its current age.
// A sweep that hits maxBatchesPerTick resumes from its cursor on the next tick.
type Scheduler struct {
	interval  time.Duration
	store     storage.CaseStore
	metrics   *metrics.Metrics
	batchSize int
	nowFn     func() time.Time
	done      chan struct{}

	cursor int64
}

// NewScheduler creates a rebucket scheduler. m may be nil.
func NewScheduler(interval time.Duration, store storage.CaseStore, m *metrics.Metrics, batchSize int) *Scheduler {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Scheduler{
		interval:  interval,
		store:     store,
		metrics:   m,
		batchSize: batchSize,
		done:      make(chan struct{}),
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Start begins periodic sweeps. Runs until ctx is cancelled, then runs a final sweep.
// Start must be called at most once.
func (s *Scheduler) Start(ctx context.Context) error {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Rebucket] Starting scheduler",
		"interval", s.interval,
		"batch_size", s.batchSize,
	)

	s.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			slog.Info("[Rebucket] Stopping (context cancelled)")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			slog.Info("[Rebucket] Running final sweep before shutdown...")
			s.sweep(shutdownCtx)
			slog.Info("[Rebucket] Final sweep complete")

			return nil
		}
	}
}

// Done is closed once Start has returned, after the final sweep.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// sweep runs batches from the saved cursor until a short batch ends the pass.
// Every batch in one sweep classifies against the same instant.
func (s *Scheduler) sweep(ctx context.Context) {
	now := s.nowFn()
	batchCount := 0
	var scanned, moved int

	for batchCount < maxBatchesPerTick {
		select {
		case <-ctx.Done():
			slog.Info("[Rebucket] Sweep interrupted by context cancellation",
				"batches_processed", batchCount,
				"cursor", s.cursor,
			)
			return
		default:
		}

		res, err := RunBatch(ctx, s.store, s.cursor, s.batchSize, now)
		if err != nil {
			slog.Error("[Rebucket] Batch failed",
				"error", err,
				"cursor", s.cursor,
				"batch_number", batchCount+1,
			)
			return
		}

		batchCount++
		scanned += res.Scanned
		moved += res.Moved
		s.cursor = res.Cursor

		s.metrics.RecordRebucket(ResultMoved, res.Moved)
		s.metrics.RecordRebucket(ResultUnclassifiable, res.Unclassifiable)
		s.metrics.RecordRebucket(ResultUnchanged, res.Scanned-res.Moved-res.Unclassifiable)

		if res.Scanned < s.batchSize {
			s.cursor = 0
			slog.Info("[Rebucket] Sweep complete",
				"batches", batchCount,
				"scanned", scanned,
				"moved", moved,
			)
			return
		}
	}

	slog.Warn("[Rebucket] Max batches per tick reached, pausing sweep",
		"max_batches", maxBatchesPerTick,
		"cursor", s.cursor,
		"note", "Will resume on next tick",
	)
}
