package jobs

import (
	"context"
	"log/slog"
	"time"

	"pharmorders/internal/core/application/usecases/commands"
	"pharmorders/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DeliveryReminderJob watches orders that are awaiting delivery and reports
// the ones whose expected delivery date has passed. Runs every minute.
type DeliveryReminderJob struct {
	uowFactory commands.OrderUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryReminderJob creates a job that flags overdue deliveries.
func NewDeliveryReminderJob(uowFactory commands.OrderUoWFactory, logger *slog.Logger) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "delivery_reminder_job"),
	}
}

// Start begins the reminder job at the top of every minute.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}

func (j *DeliveryReminderJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	awaiting, err := uow.OrderRepository().GetByStatus(ctx, order.AwaitingDelivery)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, o := range awaiting {
		expected := o.ExpectedDeliveryDate()
		if expected == nil || !expected.Before(now) {
			continue
		}

		j.logger.WarnContext(ctx, "Order delivery is overdue",
			"orderId", o.ID().String(),
			"labId", o.LabID().String(),
			"pharmacyId", o.PharmacyID().String(),
			"expectedDeliveryDate", expected.Format(time.RFC3339),
		)
	}

	return nil
}
