package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically surfaces non-terminal orders that stopped moving
// through the lifecycle. Surfacing means logging: the follow-up (support
// outreach, manual cancellation) stays a human decision.
type StaleOrderJob struct {
	handler   queries.GetStaleOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderJob creates a job that reports orders last updated more than
// threshold ago.
func NewStaleOrderJob(handler queries.GetStaleOrdersQueryHandler, threshold time.Duration, logger *slog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every five minutes.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		cutoff := kernel.TimestampFromTime(time.Now().Add(-j.threshold))
		query, err := queries.NewGetStaleOrdersQuery(cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed to build query", "error", err)
			return
		}

		stale, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
			return
		}

		for _, o := range stale {
			j.logger.WarnContext(ctx, "Order has not progressed within threshold",
				"orderId", o.ID,
				"status", o.Status,
				"updatedAt", o.UpdatedAt,
				"threshold", j.threshold.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every five minutes)")
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
