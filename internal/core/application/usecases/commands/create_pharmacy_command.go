package commands

import (
	"errors"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/guard"
)

var (
	ErrCreatePharmacyCommandIsNotConstructed = errors.New(
		"CreatePharmacyCommand must be created via NewCreatePharmacyCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrEmailIsRequired = errors.New("email is required")
)

// CreatePharmacyCommand registers a new pharmacy account.
type CreatePharmacyCommand struct { //nolint:recvcheck //using for validation
	pharmacyID kernel.UUID
	name       string
	email      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreatePharmacyCommand creates a command to register a pharmacy.
// Name and email are required, the address is optional.
func NewCreatePharmacyCommand(pharmacyID kernel.UUID, name, email, address string) (CreatePharmacyCommand, error) {
	cmd := CreatePharmacyCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPharmacyID(pharmacyID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return CreatePharmacyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePharmacyCommand) Validate() error {
	return c.guard.Validate(ErrCreatePharmacyCommandIsNotConstructed)
}

// PharmacyID returns the identifier the new pharmacy will carry.
func (c CreatePharmacyCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

// Name returns the pharmacy display name.
func (c CreatePharmacyCommand) Name() string {
	return c.name
}

// Email returns the pharmacy contact address.
func (c CreatePharmacyCommand) Email() string {
	return c.email
}

// Address returns the optional postal address.
func (c CreatePharmacyCommand) Address() string {
	return c.address
}

func (c *CreatePharmacyCommand) setPharmacyID(pharmacyID kernel.UUID) error {
	if err := pharmacyID.Validate(); err != nil {
		return err
	}

	c.pharmacyID = pharmacyID
	return nil
}

func (c *CreatePharmacyCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePharmacyCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
