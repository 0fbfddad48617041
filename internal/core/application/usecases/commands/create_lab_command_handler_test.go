package commands_test

import (
	"testing"

	"pharmorders/internal/core/application/usecases/commands"
	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/lab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateLabCommand(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateLabCommand(id, "Laboratoire Nord")

		require.NoError(t, err)
		assert.Equal(t, id, cmd.LabID())
		assert.Equal(t, "Laboratoire Nord", cmd.Name())
	})

	t.Run("name required", func(t *testing.T) {
		_, err := commands.NewCreateLabCommand(kernel.NewUUID(), "")
		require.ErrorIs(t, err, commands.ErrNameIsRequired)
	})
}

func TestCreateLabCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateLabCommand(id, "Laboratoire Nord")
	require.NoError(t, err)

	repo := new(MockLabRepository)
	uow := new(MockUoW)

	var created *lab.Lab
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LabRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*lab.Lab")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*lab.Lab)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLabUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateLabCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.Equal(t, "Laboratoire Nord", created.Name())
	uow.AssertExpectations(t)
}
