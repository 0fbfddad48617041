package commands

import (
	"context"
)

// ReviewOrderCommandHandler applies a review decision to a pending order.
// An approved order moves on to awaiting delivery, a rejected one leaves the
// workflow. Reviewing a non-pending order fails with
// order.ErrInvalidTransition and changes nothing.
type ReviewOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReviewOrderCommandHandler creates a handler for order review operations.
func NewReviewOrderCommandHandler(uowFactory OrderUoWFactory) ReviewOrderCommandHandler {
	return ReviewOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, records the decision and persists the result.
func (h *ReviewOrderCommandHandler) Handle(ctx context.Context, cmd ReviewOrderCommand) error {
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
	reviewed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = reviewed.Review(cmd.Decision(), cmd.ReviewedBy(), cmd.ReviewNote()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, reviewed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
