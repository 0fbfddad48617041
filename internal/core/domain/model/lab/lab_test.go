package lab_test

import (
	"testing"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/lab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLab(t *testing.T) {
	t.Run("should create lab with valid params", func(t *testing.T) {
		id := kernel.NewUUID()

		l, err := lab.NewLab(id, "Laboratoire Nord")

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, id, l.ID())
		assert.Equal(t, "Laboratoire Nord", l.Name())
		assert.False(t, l.CreatedAt().IsZero())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := lab.NewLab(kernel.NewUUID(), "")

		require.ErrorIs(t, err, lab.ErrNameIsRequired)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		_, err := lab.NewLab(kernel.UUID{}, "Laboratoire Nord")

		require.Error(t, err)
	})
}

func TestRestoreLab(t *testing.T) {
	createdAt := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)

	l, err := lab.RestoreLab(kernel.NewUUID(), "Laboratoire Nord", createdAt, updatedAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, l.CreatedAt())
	assert.Equal(t, updatedAt, l.UpdatedAt())
}

func TestLab_Rename(t *testing.T) {
	l, err := lab.NewLab(kernel.NewUUID(), "Laboratoire Nord")
	require.NoError(t, err)

	require.NoError(t, l.Rename("Laboratoire Nord-Est"))
	assert.Equal(t, "Laboratoire Nord-Est", l.Name())

	require.ErrorIs(t, l.Rename("  "), lab.ErrNameIsRequired)
	assert.Equal(t, "Laboratoire Nord-Est", l.Name())
}

func TestLab_Validate(t *testing.T) {
	var nilLab *lab.Lab
	require.ErrorIs(t, nilLab.Validate(), lab.ErrLabIsNotConstructed)

	var zero lab.Lab
	require.ErrorIs(t, zero.Validate(), lab.ErrLabIsNotConstructed)
}
