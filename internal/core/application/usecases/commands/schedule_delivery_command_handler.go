package commands

import (
	"context"
)

// ScheduleDeliveryCommandHandler sets the expected delivery date of an order
// awaiting delivery. The status itself does not change.
type ScheduleDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery scheduling.
func NewScheduleDeliveryCommandHandler(uowFactory OrderUoWFactory) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, sets the delivery date and persists the result.
func (h *ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	scheduled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = scheduled.ScheduleDelivery(cmd.Date()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, scheduled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
