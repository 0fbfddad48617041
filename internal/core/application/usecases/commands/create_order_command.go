package commands

import (
	"errors"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("fileName is required")
	ErrRawTextIsRequired  = errors.New("rawText is required")
)

// CreateOrderCommand represents a request to register a new CSV order upload.
// Carries the raw file content; parsing and validation of the line items
// happen in the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), labID, pharmacyID, "week12.csv", rawText)
//	if err != nil {
//	    return fmt.Errorf("invalid upload: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	// result.Warnings lists the CSV rows that were rejected
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	labID      kernel.UUID
	pharmacyID kernel.UUID
	fileName   string
	rawText    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order upload.
// Validates that all identifiers are valid and that a file name and raw
// content are present. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID, labID, pharmacyID kernel.UUID,
	fileName, rawText string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLabID(labID),
		cmd.setPharmacyID(pharmacyID),
		cmd.setFileName(fileName),
		cmd.setRawText(rawText),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LabID returns the identifier of the laboratory ordered from.
func (c CreateOrderCommand) LabID() kernel.UUID {
	return c.labID
}

// PharmacyID returns the identifier of the submitting pharmacy.
func (c CreateOrderCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

// FileName returns the name of the uploaded file.
func (c CreateOrderCommand) FileName() string {
	return c.fileName
}

// RawText returns the raw uploaded CSV content.
func (c CreateOrderCommand) RawText() string {
	return c.rawText
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLabID(labID kernel.UUID) error {
	if err := labID.Validate(); err != nil {
		return err
	}

	c.labID = labID
	return nil
}

func (c *CreateOrderCommand) setPharmacyID(pharmacyID kernel.UUID) error {
	if err := pharmacyID.Validate(); err != nil {
		return err
	}

	c.pharmacyID = pharmacyID
	return nil
}

func (c *CreateOrderCommand) setFileName(fileName string) error {
	if fileName == "" {
		return ErrFileNameIsRequired
	}

	c.fileName = fileName
	return nil
}

func (c *CreateOrderCommand) setRawText(rawText string) error {
	if rawText == "" {
		return ErrRawTextIsRequired
	}

	c.rawText = rawText
	return nil
}
