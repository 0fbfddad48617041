package commands

import (
	"errors"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/guard"
)

var (
	ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
		"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
	)
	ErrDeliveryDateIsRequired = errors.New("expectedDeliveryDate is required")
)

// ScheduleDeliveryCommand sets the expected delivery date of an approved
// order. The date may be re-set while the order is still awaiting delivery.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	date    time.Time

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to set the delivery date.
func NewScheduleDeliveryCommand(orderID kernel.UUID, date time.Time) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDate(date),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being scheduled.
func (c ScheduleDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Date returns the expected delivery date.
func (c ScheduleDeliveryCommand) Date() time.Time {
	return c.date
}

func (c *ScheduleDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ScheduleDeliveryCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDeliveryDateIsRequired
	}

	c.date = date
	return nil
}
