package pharmacy_test

import (
	"testing"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/pharmacy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPharmacy(t *testing.T) {
	t.Run("should create pharmacy with valid params", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := pharmacy.NewPharmacy(id, "Pharmacie Centrale", "contact@centrale.example", "12 rue de la Paix")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Pharmacie Centrale", p.Name())
		assert.Equal(t, "contact@centrale.example", p.Email())
		assert.Equal(t, "12 rue de la Paix", p.Address())
		assert.False(t, p.CreatedAt().IsZero())
		assert.False(t, p.UpdatedAt().IsZero())
	})

	t.Run("address is optional", func(t *testing.T) {
		p, err := pharmacy.NewPharmacy(kernel.NewUUID(), "Pharmacie du Port", "port@example.com", "")

		require.NoError(t, err)
		assert.Empty(t, p.Address())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := pharmacy.NewPharmacy(kernel.NewUUID(), "", "a@b.c", "")

		require.ErrorIs(t, err, pharmacy.ErrNameIsRequired)
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := pharmacy.NewPharmacy(kernel.NewUUID(), "   ", "a@b.c", "")

		require.ErrorIs(t, err, pharmacy.ErrNameIsRequired)
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := pharmacy.NewPharmacy(kernel.NewUUID(), "Pharmacie du Port", "", "")

		require.ErrorIs(t, err, pharmacy.ErrEmailIsRequired)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		_, err := pharmacy.NewPharmacy(kernel.UUID{}, "Pharmacie du Port", "a@b.c", "")

		require.Error(t, err)
	})
}

func TestRestorePharmacy(t *testing.T) {
	t.Run("should restore persisted timestamps", func(t *testing.T) {
		createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

		p, err := pharmacy.RestorePharmacy(kernel.NewUUID(), "Pharmacie Centrale", "c@c.c", "", createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, createdAt, p.CreatedAt())
		assert.Equal(t, updatedAt, p.UpdatedAt())
	})

	t.Run("should revalidate fields", func(t *testing.T) {
		_, err := pharmacy.RestorePharmacy(kernel.NewUUID(), "", "c@c.c", "", time.Now(), time.Now())

		require.ErrorIs(t, err, pharmacy.ErrNameIsRequired)
	})
}

func TestPharmacy_Rename(t *testing.T) {
	t.Run("should update name and updatedAt", func(t *testing.T) {
		createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		p, err := pharmacy.RestorePharmacy(kernel.NewUUID(), "Old Name", "c@c.c", "", createdAt, createdAt)
		require.NoError(t, err)

		require.NoError(t, p.Rename("New Name"))

		assert.Equal(t, "New Name", p.Name())
		assert.True(t, p.UpdatedAt().After(createdAt))
	})

	t.Run("should reject empty name", func(t *testing.T) {
		p, err := pharmacy.NewPharmacy(kernel.NewUUID(), "Old Name", "c@c.c", "")
		require.NoError(t, err)

		require.ErrorIs(t, p.Rename(""), pharmacy.ErrNameIsRequired)
		assert.Equal(t, "Old Name", p.Name())
	})
}

func TestPharmacy_Validate(t *testing.T) {
	t.Run("nil pharmacy is not constructed", func(t *testing.T) {
		var p *pharmacy.Pharmacy
		require.ErrorIs(t, p.Validate(), pharmacy.ErrPharmacyIsNotConstructed)
	})

	t.Run("zero value pharmacy is not constructed", func(t *testing.T) {
		var p pharmacy.Pharmacy
		require.ErrorIs(t, p.Validate(), pharmacy.ErrPharmacyIsNotConstructed)
	})
}
