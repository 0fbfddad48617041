// Package notify delivers order event notifications. The current
// implementation writes structured log records; a mail or messaging
// transport can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"

	"pharmorders/internal/core/ports"
)

// SlogNotifier implements ports.Notifier by logging each notification.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "order_notifier"),
	}
}

// NotifyOrderCreated logs the order-created broadcast with its recipients.
func (n *SlogNotifier) NotifyOrderCreated(ctx context.Context, notification ports.OrderCreatedNotification) error {
	n.logger.InfoContext(ctx, "order created",
		"lab", notification.LabName,
		"pharmacy", notification.PharmacyName,
		"fileName", notification.FileName,
		"recipients", len(notification.Recipients),
	)
	return nil
}
