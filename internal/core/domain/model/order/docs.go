// Package order provides domain entities and business logic for pharmacy
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, parsed payload, and lifecycle
//   - LineItem: A value object for one (product code, quantity) pair from a CSV upload
//   - Status: A state machine that enforces valid order status transitions
//   - ReviewDecision: The approved/rejected outcome a reviewer records
//
// Key business rules:
//   - Orders are created pending, with counts that must match their line items
//   - Status follows a defined workflow: pending -> awaiting_delivery -> delivered
//   - A rejected review exits the workflow; rejected and delivered are terminal
//   - An approved decision never rests: the order lands on awaiting_delivery
//   - Lifecycle fields (reviewedAt, deliveredAt, ...) are set only by their operations
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
