package commands

import (
	"context"

	"pharmorders/internal/core/domain/model/lab"
)

// CreateLabCommandHandler persists a new laboratory.
type CreateLabCommandHandler struct {
	uowFactory LabUoWFactory
}

// NewCreateLabCommandHandler creates a handler for lab registration.
func NewCreateLabCommandHandler(uowFactory LabUoWFactory) CreateLabCommandHandler {
	return CreateLabCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the lab aggregate and persists it.
func (h *CreateLabCommandHandler) Handle(ctx context.Context, cmd CreateLabCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := lab.NewLab(cmd.LabID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.LabRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
