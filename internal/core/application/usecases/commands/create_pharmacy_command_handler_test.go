package commands_test

import (
	"testing"

	"pharmorders/internal/core/application/usecases/commands"
	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/pharmacy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePharmacyCommand(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreatePharmacyCommand(id, "Pharmacie Centrale", "c@c.c", "12 rue de la Paix")

		require.NoError(t, err)
		assert.Equal(t, id, cmd.PharmacyID())
		assert.Equal(t, "Pharmacie Centrale", cmd.Name())
	})

	t.Run("name required", func(t *testing.T) {
		_, err := commands.NewCreatePharmacyCommand(kernel.NewUUID(), "", "c@c.c", "")
		require.ErrorIs(t, err, commands.ErrNameIsRequired)
	})

	t.Run("email required", func(t *testing.T) {
		_, err := commands.NewCreatePharmacyCommand(kernel.NewUUID(), "Pharmacie", "", "")
		require.ErrorIs(t, err, commands.ErrEmailIsRequired)
	})
}

func TestCreatePharmacyCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewCreatePharmacyCommand(id, "Pharmacie Centrale", "c@c.c", "")
	require.NoError(t, err)

	repo := new(MockPharmacyRepository)
	uow := new(MockUoW)

	var created *pharmacy.Pharmacy
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PharmacyRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*pharmacy.Pharmacy")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*pharmacy.Pharmacy)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPharmacyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePharmacyCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.Equal(t, id, created.ID())
	assert.Equal(t, "Pharmacie Centrale", created.Name())
	uow.AssertExpectations(t)
}
