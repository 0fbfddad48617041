package guard_test

import (
	"errors"
	"testing"

	"pharmorders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage in a domain object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type deliveryWindow struct {
		days  int
		guard guard.ConstructorGuard
	}

	errWindowNotConstructed := errors.New("deliveryWindow must be created via newDeliveryWindow")

	newDeliveryWindow := func(days int) (deliveryWindow, error) {
		if days <= 0 {
			return deliveryWindow{}, errors.New("days must be positive")
		}
		return deliveryWindow{days: days, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		w, err := newDeliveryWindow(7)

		require.NoError(t, err)
		require.NoError(t, w.guard.Validate(errWindowNotConstructed))
		assert.Equal(t, 7, w.days)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var w deliveryWindow

		err := w.guard.Validate(errWindowNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errWindowNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newDeliveryWindow(0)
		require.Error(t, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}
