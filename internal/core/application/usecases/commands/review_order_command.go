package commands

import (
	"errors"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/pkg/guard"
)

var ErrReviewOrderCommandIsNotConstructed = errors.New(
	"ReviewOrderCommand must be created via NewReviewOrderCommand constructor",
)

// ReviewOrderCommand represents a reviewer's decision on a pending order.
// ReviewedBy and ReviewNote are optional free text.
type ReviewOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	decision   order.ReviewDecision
	reviewedBy string
	reviewNote string

	guard guard.ConstructorGuard
}

// NewReviewOrderCommand creates a command to record a review decision.
// The decision must be approved or rejected.
func NewReviewOrderCommand(
	orderID kernel.UUID,
	decision order.ReviewDecision,
	reviewedBy, reviewNote string,
) (ReviewOrderCommand, error) {
	cmd := ReviewOrderCommand{
		reviewedBy: reviewedBy,
		reviewNote: reviewNote,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDecision(decision),
	); err != nil {
		return ReviewOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewOrderCommand) Validate() error {
	return c.guard.Validate(ErrReviewOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order under review.
func (c ReviewOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Decision returns the review outcome.
func (c ReviewOrderCommand) Decision() order.ReviewDecision {
	return c.decision
}

// ReviewedBy returns who recorded the decision, possibly empty.
func (c ReviewOrderCommand) ReviewedBy() string {
	return c.reviewedBy
}

// ReviewNote returns the optional note attached to the decision.
func (c ReviewOrderCommand) ReviewNote() string {
	return c.reviewNote
}

func (c *ReviewOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReviewOrderCommand) setDecision(decision order.ReviewDecision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
