package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule runs the expiry sweep once a minute.
const DefaultExpirySchedule = "0 * * * * *"

// PendingOrderExpirer cancels pending orders created before a cutoff.
// Implemented by commands.ExpirePendingOrdersCommandHandler.
type PendingOrderExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (commands.ExpirePendingOrdersResult, error)
}

// PendingOrderExpiryJob periodically cancels orders that stayed pending longer than ttl.
type PendingOrderExpiryJob struct {
	handler  PendingOrderExpirer
	ttl      time.Duration
	schedule string
	expired  prometheus.Counter
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingOrderExpiryJob creates the job. expired may be nil.
func NewPendingOrderExpiryJob(
	handler PendingOrderExpirer,
	ttl time.Duration,
	schedule string,
	expired prometheus.Counter,
	logger *slog.Logger,
) *PendingOrderExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}
	return &PendingOrderExpiryJob{
		handler:  handler,
		ttl:      ttl,
		schedule: schedule,
		expired:  expired,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_order_expiry_job"),
	}
}

// Start registers the sweep on the schedule and starts the scheduler.
func (j *PendingOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started",
		"schedule", j.schedule,
		"ttl", j.ttl.String(),
	)
	return nil
}

// RunOnce performs one sweep and returns how many orders it cancelled.
func (j *PendingOrderExpiryJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.now().Add(-j.ttl), commands.DefaultExpireBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiry job misconfigured", "error", err)
		return 0, err
	}

	result, err := j.handler.Handle(ctx, cmd)
	cancelled := len(result.Cancelled)
	if j.expired != nil {
		j.expired.Add(float64(cancelled))
	}

	if err != nil {
		// The store is contended; the next tick retries.
		if errs.IsRetryable(err) || errors.Is(err, context.Canceled) {
			j.logger.WarnContext(ctx, "Pending order expiry job deferred", "error", err)
		} else {
			j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", err)
		}
		return cancelled, err
	}

	if cancelled > 0 || result.Skipped > 0 {
		j.logger.InfoContext(ctx, "Expired pending orders",
			"cancelled", cancelled,
			"skipped", result.Skipped,
		)
	}
	return cancelled, nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}
