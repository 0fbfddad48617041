package commands

import (
	"errors"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand completes the workflow for an order awaiting
// delivery. A zero deliveredAt means the current time.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark an order delivered.
func NewMarkDeliveredCommand(orderID kernel.UUID, deliveredAt time.Time) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveredAt returns the effective delivery time, zero meaning now.
func (c MarkDeliveredCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
