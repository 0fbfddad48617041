package commands

import (
	"errors"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/guard"
)

var ErrCreateLabCommandIsNotConstructed = errors.New(
	"CreateLabCommand must be created via NewCreateLabCommand constructor",
)

// CreateLabCommand registers a new laboratory.
type CreateLabCommand struct { //nolint:recvcheck //using for validation
	labID kernel.UUID
	name  string

	guard guard.ConstructorGuard
}

// NewCreateLabCommand creates a command to register a lab.
func NewCreateLabCommand(labID kernel.UUID, name string) (CreateLabCommand, error) {
	cmd := CreateLabCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLabID(labID),
		cmd.setName(name),
	); err != nil {
		return CreateLabCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLabCommand) Validate() error {
	return c.guard.Validate(ErrCreateLabCommandIsNotConstructed)
}

// LabID returns the identifier the new lab will carry.
func (c CreateLabCommand) LabID() kernel.UUID {
	return c.labID
}

// Name returns the lab display name.
func (c CreateLabCommand) Name() string {
	return c.name
}

func (c *CreateLabCommand) setLabID(labID kernel.UUID) error {
	if err := labID.Validate(); err != nil {
		return err
	}

	c.labID = labID
	return nil
}

func (c *CreateLabCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
