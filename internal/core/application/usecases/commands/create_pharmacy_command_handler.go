package commands

import (
	"context"

	"pharmorders/internal/core/domain/model/pharmacy"
)

// CreatePharmacyCommandHandler persists a new pharmacy account.
type CreatePharmacyCommandHandler struct {
	uowFactory PharmacyUoWFactory
}

// NewCreatePharmacyCommandHandler creates a handler for pharmacy registration.
func NewCreatePharmacyCommandHandler(uowFactory PharmacyUoWFactory) CreatePharmacyCommandHandler {
	return CreatePharmacyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the pharmacy aggregate and persists it.
func (h *CreatePharmacyCommandHandler) Handle(ctx context.Context, cmd CreatePharmacyCommand) error {
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

	created, err := pharmacy.NewPharmacy(cmd.PharmacyID(), cmd.Name(), cmd.Email(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.PharmacyRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
