package jobs

import (
	"context"
	"log/slog"

	"foodorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderStatusJob manages the scheduled progression of order statuses.
// Runs every minute to move each active order one step toward delivery.
type OrderStatusJob struct {
	handler commands.AdvanceOrderStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatusJob creates a new job for advancing order statuses.
// Uses AdvanceOrderStatusesCommandHandler to process the progression every minute.
func NewOrderStatusJob(handler commands.AdvanceOrderStatusesCommandHandler, logger *slog.Logger) *OrderStatusJob {
	return &OrderStatusJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_status_job"),
	}
}

// Start begins the order status job to run every minute.
func (j *OrderStatusJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceOrderStatusesCommand()

		advanced, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order status job failed", "error", err)
			return
		}

		if advanced > 0 {
			j.logger.InfoContext(ctx, "Order statuses updated", "advanced", advanced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status job started (running every minute)")
	return nil
}

// Stop stops the order status job.
func (j *OrderStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order status job stopped")
}
