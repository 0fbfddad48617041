package commands

import (
	"context"
)

// MarkDeliveredCommandHandler moves an order awaiting delivery into the
// terminal delivered status and stamps deliveredAt.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, marks it delivered and persists the result.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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
	delivered, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = delivered.MarkDelivered(cmd.DeliveredAt()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, delivered); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
