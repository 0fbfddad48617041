package ports

import "context"

// OrderCreatedNotification describes a freshly created order to the
// pharmacies that should hear about it.
type OrderCreatedNotification struct {
	LabName      string
	PharmacyName string
	FileName     string
	// Recipients are the notification addresses of every pharmacy except
	// the one that submitted the order.
	Recipients []string
}

// Notifier broadcasts order events to interested parties. Delivery is best
// effort: a failed notification must not fail the business operation that
// triggered it.
type Notifier interface {
	NotifyOrderCreated(ctx context.Context, notification OrderCreatedNotification) error
}
