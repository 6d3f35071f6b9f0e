package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/keys"
	"github.com/isa-rankings/rankings/internal/core/partition"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

const (
	defaultConsumerName   = "rankings"
	defaultPollInterval   = time.Second
	defaultBatchSize      = 500
	defaultWorkerCount    = 10
	maxConsecutiveBatches = 100
	finalDrainTimeout     = 30 * time.Second
)

// ConsumerOptions controls how the change log is drained.
type ConsumerOptions struct {
	Name         string
	PollInterval time.Duration
	BatchSize    int
	WorkerCount  int
}

// DefaultConsumerOptions returns the options used when none are configured.
func DefaultConsumerOptions() ConsumerOptions {
	return ConsumerOptions{
		Name:         defaultConsumerName,
		PollInterval: defaultPollInterval,
		BatchSize:    defaultBatchSize,
		WorkerCount:  defaultWorkerCount,
	}
}

func (o ConsumerOptions) normalized() ConsumerOptions {
	n := o
	if n.Name == "" {
		n.Name = defaultConsumerName
	}
	if n.PollInterval <= 0 {
		n.PollInterval = defaultPollInterval
	}
	if n.BatchSize <= 0 {
		n.BatchSize = defaultBatchSize
	}
	if n.WorkerCount <= 0 {
		n.WorkerCount = defaultWorkerCount
	}
	return n
}

// Consumer drains the change log into the processor and checkpoints its
// position. Records of one athlete are processed in log order; different
// athletes are processed in parallel.
type Consumer struct {
	changes   storage.ChangeLog
	processor *Processor
	metrics   *Metrics
	opts      ConsumerOptions
}

// NewConsumer creates a consumer over a change log.
func NewConsumer(changes storage.ChangeLog, processor *Processor, metrics *Metrics, opts ConsumerOptions) *Consumer {
	return &Consumer{
		changes:   changes,
		processor: processor,
		metrics:   metrics,
		opts:      opts.normalized(),
	}
}

// Start drains the backlog, then polls on every tick until ctx is cancelled.
// On cancellation it runs one last bounded drain.
func (c *Consumer) Start(ctx context.Context) error {
	ticker := time.NewTicker(c.opts.PollInterval)
	defer ticker.Stop()

	slog.Info("[Consumer] Starting change log consumer",
		"consumer", c.opts.Name,
		"poll_interval", c.opts.PollInterval,
		"batch_size", c.opts.BatchSize,
		"workers", c.opts.WorkerCount,
	)

	c.drainBacklog(ctx)

	for {
		select {
		case <-ticker.C:
			c.drainBacklog(ctx)
		case <-ctx.Done():
			slog.Info("[Consumer] Stopping (context cancelled)", "consumer", c.opts.Name)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), finalDrainTimeout)
			defer cancel()

			slog.Info("[Consumer] Running final drain before shutdown...", "consumer", c.opts.Name)
			c.drainBacklog(shutdownCtx)
			slog.Info("[Consumer] Final drain complete", "consumer", c.opts.Name)
			return nil
		}
	}
}

// drainBacklog runs batches until one comes back short, fails, or the
// safety limit is hit.
func (c *Consumer) drainBacklog(ctx context.Context) {
	batchCount := 0
	for batchCount < maxConsecutiveBatches {
		select {
		case <-ctx.Done():
			slog.Info("[Consumer] Drain interrupted by context cancellation",
				"consumer", c.opts.Name,
				"batches_processed", batchCount,
			)
			return
		default:
		}

		read, err := c.RunOnce(ctx)
		if err != nil {
			slog.Error("[Consumer] Batch failed",
				"error", err,
				"consumer", c.opts.Name,
				"batch_number", batchCount+1,
			)
			return
		}
		batchCount++

		if read < c.opts.BatchSize {
			if batchCount > 1 {
				slog.Info("[Consumer] Backlog drained",
					"consumer", c.opts.Name,
					"total_batches", batchCount,
				)
			}
			return
		}
		slog.Info("[Consumer] Backlog detected, continuing to drain",
			"consumer", c.opts.Name,
			"batches_so_far", batchCount,
		)
	}

	slog.Warn("[Consumer] Max consecutive batches reached, pausing drain",
		"consumer", c.opts.Name,
		"max_batches", maxConsecutiveBatches,
	)
}

// RunOnce processes one batch after the checkpoint and returns how many
// records it read. When a record fails, the checkpoint stops right before
// the earliest failed record so it is redelivered, together with every later
// record of its athlete, on the next run.
func (c *Consumer) RunOnce(ctx context.Context) (int, error) {
	started := time.Now()
	defer func() { c.metrics.observeBatch(time.Since(started)) }()

	cursor, err := c.changes.ReadCheckpoint(ctx, c.opts.Name)
	if err != nil {
		c.metrics.recordFailure("read_checkpoint")
		return 0, fmt.Errorf("read checkpoint: %w", err)
	}

	records, err := c.changes.ReadChangesAfter(ctx, cursor, c.opts.BatchSize)
	if err != nil {
		c.metrics.recordFailure("read_changes")
		return 0, fmt.Errorf("read changes: %w", err)
	}
	if len(records) == 0 {
		slog.Debug("[Consumer] No new changes", "consumer", c.opts.Name, "cursor", cursor)
		return 0, nil
	}

	failedAt, procErr := c.processPartitions(ctx, records)

	newCursor := records[len(records)-1].Seq
	if procErr != nil {
		newCursor = lastBefore(records, failedAt, cursor)
	}
	if newCursor > cursor {
		if err := c.changes.WriteCheckpoint(ctx, c.opts.Name, newCursor); err != nil {
			c.metrics.recordFailure("write_checkpoint")
			return 0, fmt.Errorf("write checkpoint: %w", err)
		}
		c.metrics.setCheckpoint(newCursor)
	}

	if procErr != nil {
		return len(records), fmt.Errorf("process changes after %d: %w", newCursor, procErr)
	}

	slog.Info("[Consumer] Batch complete",
		"consumer", c.opts.Name,
		"records_processed", len(records),
		"cursor_advanced", fmt.Sprintf("%d -> %d", cursor, newCursor),
	)
	return len(records), nil
}

// processPartitions groups records by athlete partition and runs the groups
// on a worker pool. It returns the smallest Seq of a record that did not
// complete, and the error that stopped it.
func (c *Consumer) processPartitions(ctx context.Context, records []*v1.ChangeRecord) (int64, error) {
	groups := make(map[int][]*v1.ChangeRecord)
	for _, rec := range records {
		p := partition.For(rec.Keys[keys.AttrPK])
		groups[p] = append(groups[p], rec)
	}

	workerCount := min(c.opts.WorkerCount, len(groups))
	jobs := make(chan []*v1.ChangeRecord, len(groups))

	var (
		mu       sync.Mutex
		failedAt int64
		firstErr error
	)
	fail := func(seq int64, err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil || seq < failedAt {
			failedAt, firstErr = seq, err
		}
	}

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func() {
			defer wg.Done()
			for group := range jobs {
				if seq, err := c.processInOrder(ctx, group); err != nil {
					fail(seq, err)
				}
			}
		}()
	}

	for _, group := range groups {
		jobs <- group
	}
	close(jobs)
	wg.Wait()

	return failedAt, firstErr
}

// processInOrder stops at the first retryable failure so later records of
// the same athlete are never applied ahead of it. Malformed records are
// logged and passed over.
func (c *Consumer) processInOrder(ctx context.Context, group []*v1.ChangeRecord) (int64, error) {
	for _, rec := range group {
		if err := ctx.Err(); err != nil {
			return rec.Seq, err
		}
		outcome, err := c.processor.Process(ctx, rec)
		if errors.Is(err, ErrMalformedRecord) {
			continue
		}
		if err != nil {
			return rec.Seq, err
		}
		slog.Debug("[Consumer] Processed change",
			"seq", rec.Seq,
			"event_id", rec.EventID,
			"outcome", outcome)
	}
	return 0, nil
}

// lastBefore returns the Seq of the last record preceding seq, or cursor
// when the failed record is the first of the batch.
func lastBefore(records []*v1.ChangeRecord, seq, cursor int64) int64 {
	i := sort.Search(len(records), func(i int) bool { return records[i].Seq >= seq })
	if i == 0 {
		return cursor
	}
	return records[i-1].Seq
}
