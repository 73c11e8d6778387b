package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"internsift/app/database"
	"internsift/app/dedup"
	"internsift/app/job"
	"internsift/app/pipeline"
	"internsift/app/source"
)

// AggregateTask runs one full aggregation pass: load the identity index,
// pull candidates from every source, validate them, persist the output.
type AggregateTask struct {
	sources  []source.Source
	pipeline *pipeline.Pipeline
	store    database.JobStore
}

func NewAggregateTask(sources []source.Source, p *pipeline.Pipeline, store database.JobStore) *AggregateTask {
	return &AggregateTask{sources: sources, pipeline: p, store: store}
}

func (t *AggregateTask) Execute(ctx context.Context) error {
	start := time.Now()

	existing, err := t.store.LoadExistingKeys()
	if err != nil {
		return fmt.Errorf("failed to load existing keys: %w", err)
	}
	index := dedup.NewIndex(existing.IdentityKeys, existing.URLs, existing.JobIDs)
	slog.Info("Identity index loaded",
		"keys", index.KnownKeys(), "urls", index.KnownURLs(), "job_ids", index.KnownJobIDs())

	pc := pipeline.NewContext(index)

	for _, src := range t.sources {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		candidates, err := src.Fetch(ctx)
		if err != nil {
			// One broken source must not abort the batch.
			slog.Error("Source fetch failed", "source", src.Name(), "error", err)
			continue
		}
		slog.Info("Source fetched", "source", src.Name(), "candidates", len(candidates))

		t.pipeline.Run(ctx, pc, candidates)
	}

	pipeline.LogSummary(pc)

	validRows := make([]job.Row, 0, len(pc.Valid))
	for _, v := range pc.Valid {
		validRows = append(validRows, job.NewRow(v))
	}
	discardedRows := make([]job.Row, 0, len(pc.Discarded))
	for _, v := range pc.Discarded {
		discardedRows = append(discardedRows, job.NewRow(v))
	}

	validCount, discardedCount, err := t.store.AppendRows(validRows, discardedRows)
	if err != nil {
		return fmt.Errorf("failed to append rows: %w", err)
	}

	slog.Info("Task completed",
		"valid", validCount, "discarded", discardedCount,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}
