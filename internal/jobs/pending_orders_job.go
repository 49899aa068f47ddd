package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob periodically reports the unpaid order backlog.
// Runs every minute and logs the number of orders in PENDING and
// PENDING_PAYMENT status.
type PendingOrdersJob struct {
	handler queries.GetOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a job watching the unpaid order backlog.
func NewPendingOrdersJob(handler queries.GetOrdersByStatusQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start begins the backlog report job, running at the top of every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		total := 0
		for _, status := range order.PendingStatuses() {
			query, queryErr := queries.NewGetOrdersByStatusQuery(status)
			if queryErr != nil {
				j.logger.ErrorContext(ctx, "Pending orders job failed to build query", "error", queryErr)
				return
			}

			result, handleErr := j.handler.Handle(ctx, query)
			if handleErr != nil {
				j.logger.ErrorContext(ctx, "Pending orders job failed", "error", handleErr)
				return
			}
			total += len(result)
		}

		j.logger.InfoContext(ctx, "Unpaid order backlog", "count", total)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
