// Package pharmacy provides the Pharmacy reference entity: the party that
// uploads CSV orders. Orders hold a foreign key to a pharmacy but do not own
// it; a pharmacy may be removed while historical orders still reference it,
// in which case display code falls back to a resolver placeholder.
package pharmacy

import (
	"errors"
	"strings"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/errs"
	"pharmorders/internal/pkg/guard"
)

// Domain errors for pharmacy operations.
var (
	// ErrNameIsRequired is returned when attempting to create a pharmacy without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a pharmacy without a contact email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPharmacyIsNotConstructed is returned when using an improperly initialized Pharmacy.
	ErrPharmacyIsNotConstructed = errors.New("Pharmacy must be created via NewPharmacy or RestorePharmacy constructor")
)

// Pharmacy represents a pharmacy account in the system. The email doubles as
// the notification address for order-created broadcasts.
type Pharmacy struct {
	id        kernel.UUID
	name      string
	email     string
	address   string
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewPharmacy creates a pharmacy with a required name and contact email.
// The address is optional. Creation and update timestamps are stamped with
// the current time.
func NewPharmacy(id kernel.UUID, name, email, address string) (*Pharmacy, error) {
	now := time.Now()
	p := &Pharmacy{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
	); err != nil {
		return nil, err
	}

	p.address = address
	return p, nil
}

// RestorePharmacy reconstructs a pharmacy from persistent storage.
func RestorePharmacy(id kernel.UUID, name, email, address string, createdAt, updatedAt time.Time) (*Pharmacy, error) {
	p, err := NewPharmacy(id, name, email, address)
	if err != nil {
		return nil, err
	}

	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the Pharmacy instance was properly constructed.
func (p *Pharmacy) Validate() error {
	if p == nil {
		return ErrPharmacyIsNotConstructed
	}
	return p.guard.Validate(ErrPharmacyIsNotConstructed)
}

// ID returns the pharmacy's unique identifier.
func (p *Pharmacy) ID() kernel.UUID {
	return p.id
}

// Name returns the pharmacy's display name.
func (p *Pharmacy) Name() string {
	return p.name
}

// Email returns the notification/contact address.
func (p *Pharmacy) Email() string {
	return p.email
}

// Address returns the postal address, possibly empty.
func (p *Pharmacy) Address() string {
	return p.address
}

// CreatedAt returns when the pharmacy was registered.
func (p *Pharmacy) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the pharmacy was last modified.
func (p *Pharmacy) UpdatedAt() time.Time {
	return p.updatedAt
}

// Rename updates the display name and bumps updatedAt.
func (p *Pharmacy) Rename(name string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.updatedAt = time.Now()
	return nil
}

func (p *Pharmacy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pharmacy) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Pharmacy) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}
	p.email = email
	return nil
}
