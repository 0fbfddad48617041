package order

import (
	"errors"
	"fmt"

	"pharmorders/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a lifecycle operation is invoked from
// a status that does not allow it. The order is left unmodified in that case.
// Callers can detect it with errors.Is to distinguish workflow rejections
// from validation or persistence failures.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the review-then-deliver workflow.
//
// State transitions:
//
//	Pending ──┬──> AwaitingDelivery ──> Delivered
//	          │
//	          └──> Rejected
//
// Rejected and Delivered are terminal: no operation may move an order out of
// them. An "approved" review decision lands directly on AwaitingDelivery;
// there is no resting approved status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every uploaded order.
	// Orders in this status are waiting for a laboratory review decision.
	Pending

	// AwaitingDelivery indicates the order was approved and is waiting to be
	// shipped. The expected delivery date may be set while in this status.
	AwaitingDelivery

	// Rejected indicates the review turned the order down. Terminal.
	Rejected

	// Delivered indicates the order reached the pharmacy. Terminal.
	Delivered
)

// getStatusStrings returns the wire names for every Status value, including
// the invalid zero value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Pending:          "pending",
		AwaitingDelivery: "awaiting_delivery",
		Rejected:         "rejected",
		Delivered:        "delivered",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "pending",
		AwaitingDelivery: "awaiting_delivery",
		Rejected:         "rejected",
		Delivered:        "delivered",
	}
}

// StatusFromString parses a wire name ("pending", "awaiting_delivery",
// "rejected", "delivered") back into a Status. Used when rehydrating orders
// from persistence or reading API filters.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one an order may hold.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer and
// is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Delivered
}

// Review transitions the status according to a review decision.
//
// Valid transitions:
//   - Pending -> AwaitingDelivery (decision approved)
//   - Pending -> Rejected (decision rejected)
//
// Any other starting status yields ErrInvalidTransition. An approved decision
// never produces a resting "approved" status; it is normalized to
// AwaitingDelivery by this method.
func (s Status) Review(decision ReviewDecision) (Status, error) {
	if err := decision.Validate(); err != nil {
		return 0, err
	}

	if s != Pending {
		return 0, fmt.Errorf("%w: cannot review order in status %s", ErrInvalidTransition, s)
	}

	if decision == DecisionRejected {
		return Rejected, nil
	}
	return AwaitingDelivery, nil
}

// ValidateSchedule checks whether an expected delivery date may be set from
// the current status. Only AwaitingDelivery allows it; scheduling is not a
// transition, so the status itself never changes.
func (s Status) ValidateSchedule() error {
	if s != AwaitingDelivery {
		return fmt.Errorf("%w: cannot set delivery date for order in status %s", ErrInvalidTransition, s)
	}
	return nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - AwaitingDelivery -> Delivered
//
// Everything else, including Pending and the terminal statuses, yields
// ErrInvalidTransition.
func (s Status) Deliver() (Status, error) {
	if s != AwaitingDelivery {
		return 0, fmt.Errorf("%w: cannot deliver order in status %s", ErrInvalidTransition, s)
	}
	return Delivered, nil
}

// ReviewDecision is the outcome a reviewer records for a pending order.
// "approved" exists only as a decision value: the resulting order status is
// AwaitingDelivery, never an approved state.
type ReviewDecision int

const (
	// DecisionUnknown catches uninitialized decision values.
	DecisionUnknown ReviewDecision = iota

	// DecisionApproved accepts the order; it moves on to delivery scheduling.
	DecisionApproved

	// DecisionRejected turns the order down; the order exits the workflow.
	DecisionRejected
)

// DecisionFromString parses "approved" or "rejected" into a ReviewDecision.
func DecisionFromString(s string) (ReviewDecision, error) {
	switch s {
	case "approved":
		return DecisionApproved, nil
	case "rejected":
		return DecisionRejected, nil
	default:
		return DecisionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"decision",
			fmt.Errorf("%q is not a valid review decision", s),
		)
	}
}

// Validate checks if the decision is one of the two recordable outcomes.
func (d ReviewDecision) Validate() error {
	if d != DecisionApproved && d != DecisionRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"decision",
			fmt.Errorf("%d is not a valid review decision", d),
		)
	}
	return nil
}

// String returns the wire name of the decision.
func (d ReviewDecision) String() string {
	switch d {
	case DecisionApproved:
		return "approved"
	case DecisionRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
