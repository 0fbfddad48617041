// Package lab provides the Lab reference entity: the laboratory a pharmacy
// orders from. Labs are the grouping axis for order statistics.
package lab

import (
	"errors"
	"strings"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/errs"
	"pharmorders/internal/pkg/guard"
)

// Domain errors for lab operations.
var (
	// ErrNameIsRequired is returned when attempting to create a lab without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLabIsNotConstructed is returned when using an improperly initialized Lab.
	ErrLabIsNotConstructed = errors.New("Lab must be created via NewLab or RestoreLab constructor")
)

// Lab represents a laboratory that receives pharmacy orders.
type Lab struct {
	id        kernel.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewLab creates a lab with a required name.
func NewLab(id kernel.UUID, name string) (*Lab, error) {
	now := time.Now()
	l := &Lab{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLab reconstructs a lab from persistent storage.
func RestoreLab(id kernel.UUID, name string, createdAt, updatedAt time.Time) (*Lab, error) {
	l, err := NewLab(id, name)
	if err != nil {
		return nil, err
	}

	l.createdAt = createdAt
	l.updatedAt = updatedAt
	return l, nil
}

// Validate ensures the Lab instance was properly constructed.
func (l *Lab) Validate() error {
	if l == nil {
		return ErrLabIsNotConstructed
	}
	return l.guard.Validate(ErrLabIsNotConstructed)
}

// ID returns the lab's unique identifier.
func (l *Lab) ID() kernel.UUID {
	return l.id
}

// Name returns the lab's display name.
func (l *Lab) Name() string {
	return l.name
}

// CreatedAt returns when the lab was registered.
func (l *Lab) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the lab was last modified.
func (l *Lab) UpdatedAt() time.Time {
	return l.updatedAt
}

// Rename updates the display name and bumps updatedAt.
func (l *Lab) Rename(name string) error {
	if err := l.setName(name); err != nil {
		return err
	}
	l.updatedAt = time.Now()
	return nil
}

func (l *Lab) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Lab) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	l.name = name
	return nil
}
