package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Runner executes the aggregation task on a cron schedule (daemon mode).
// Overlapping runs are prevented: a tick is dropped while a run is live.
type Runner struct {
	task     *AggregateTask
	schedule string
	cron     *cron.Cron
	running  chan struct{}
}

func NewRunner(task *AggregateTask, schedule string) *Runner {
	return &Runner{
		task:     task,
		schedule: schedule,
		cron:     cron.New(),
		running:  make(chan struct{}, 1),
	}
}

func (r *Runner) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.schedule, func() {
		select {
		case r.running <- struct{}{}:
			defer func() { <-r.running }()
		default:
			slog.Warn("Skipping scheduled run, previous run still active")
			return
		}

		if err := r.task.Execute(ctx); err != nil {
			slog.Error("Scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", r.schedule, err)
	}

	r.cron.Start()
	slog.Info("Scheduler started", "schedule", r.schedule)
	return nil
}

// Stop halts scheduling and waits for a live run to finish.
func (r *Runner) Stop() {
	stopCtx := r.cron.Stop()
	<-stopCtx.Done()
	r.running <- struct{}{}
	slog.Info("Scheduler stopped")
}
