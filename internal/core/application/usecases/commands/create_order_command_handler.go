package commands

import (
	"context"
	"errors"
	"log/slog"

	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/core/domain/services"
	"pharmorders/internal/core/ports"
	"pharmorders/internal/pkg/errs"
)

// CreateOrderResult reports the outcome of a successful order creation.
// Warnings lists the CSV rows that were rejected during parsing; the caller
// surfaces them to the uploader.
type CreateOrderResult struct {
	Warnings        []string
	ReferencesCount int
	BoxesCount      int
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Parses the uploaded CSV, persists the resulting order in pending status,
// and notifies the other pharmacies that a new order exists.
//
// Notification is best effort: once the order is committed, a failed
// broadcast is logged and swallowed.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	parser     services.CSVLineItemParser
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence, the CSV parser and a
// notifier for the order-created broadcast.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	parser services.CSVLineItemParser,
	notifier ports.Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		parser:     parser,
		notifier:   notifier,
	}
}

// Handle processes the order creation command.
//
// The raw text is parsed first; a file that cannot be read at all fails the
// command with services.ErrParseFailed and nothing is persisted. Rows that
// fail validation are dropped and reported as warnings on the result while
// the order is still created from the surviving rows.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	parsed, err := h.parser.Parse(cmd.RawText())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.LabID(),
		cmd.PharmacyID(),
		cmd.FileName(),
		parsed.RawContent,
		parsed.Items,
		parsed.UniqueCodeCount,
		parsed.TotalQuantity,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	notification, err := h.buildNotification(ctx, uow, cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.notifier.NotifyOrderCreated(ctx, notification); err != nil {
		slog.Warn("order created notification failed",
			"orderId", cmd.OrderID().String(), "error", err)
	}

	return CreateOrderResult{
		Warnings:        parsed.Warnings,
		ReferencesCount: parsed.UniqueCodeCount,
		BoxesCount:      parsed.TotalQuantity,
	}, nil
}

// buildNotification resolves display names and recipients inside the same
// transaction as the insert. Missing lab or pharmacy records degrade to
// placeholder names instead of failing the command.
func (h *CreateOrderCommandHandler) buildNotification(
	ctx context.Context, uow UoW, cmd CreateOrderCommand,
) (ports.OrderCreatedNotification, error) {
	notification := ports.OrderCreatedNotification{
		LabName:      services.PlaceholderLabName(cmd.LabID()),
		PharmacyName: services.PlaceholderPharmacyName(cmd.PharmacyID()),
		FileName:     cmd.FileName(),
	}

	orderLab, err := uow.LabRepository().Get(ctx, cmd.LabID())
	switch {
	case err == nil:
		notification.LabName = orderLab.Name()
	case !errors.Is(err, errs.ErrObjectNotFound):
		return ports.OrderCreatedNotification{}, err
	}

	pharmacies, err := uow.PharmacyRepository().GetAll(ctx)
	if err != nil {
		return ports.OrderCreatedNotification{}, err
	}

	for _, p := range pharmacies {
		if p.ID().IsEqual(cmd.PharmacyID()) {
			notification.PharmacyName = p.Name()
			continue
		}
		notification.Recipients = append(notification.Recipients, p.Email())
	}

	return notification, nil
}
