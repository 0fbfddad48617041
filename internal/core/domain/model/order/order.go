package order

import (
	"errors"
	"fmt"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/errs"
	"pharmorders/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a single CSV submission by a pharmacy to a
// laboratory. It owns the parsed line items and the review/delivery workflow
// state, and is mutated exclusively through its lifecycle methods.
//
// Invariants:
//   - id, labID and pharmacyID are valid UUIDs (the lab/pharmacy records are
//     not required to exist; references may dangle)
//   - referencesCount equals the number of distinct codes in items
//   - boxesCount equals the sum of quantities in items
//   - createdAt and rawContent are immutable after creation
//   - reviewedAt is stamped exactly when a review decision is recorded
//   - deliveredAt is set only when the status reaches Delivered
//   - status moves only forward; Rejected and Delivered cannot be exited
type Order struct {
	id         kernel.UUID
	labID      kernel.UUID
	pharmacyID kernel.UUID

	fileName   string
	createdAt  time.Time
	rawContent string

	items           []LineItem
	referencesCount int
	boxesCount      int

	status               Status
	reviewedAt           *time.Time
	reviewedBy           string
	reviewNote           string
	expectedDeliveryDate *time.Time
	deliveredAt          *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order from an uploaded file. createdAt is
// stamped with the current time. Every call creates a distinct aggregate:
// there is no deduplication of repeated uploads.
//
// referencesCount and boxesCount are supplied by the parser and re-checked
// here against the items so the aggregate can never carry counts that
// disagree with its own payload.
func NewOrder(
	id, labID, pharmacyID kernel.UUID,
	fileName, rawContent string,
	items []LineItem,
	referencesCount, boxesCount int,
) (*Order, error) {
	o := &Order{
		createdAt: time.Now(),
		status:    Pending,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLabID(labID),
		o.setPharmacyID(pharmacyID),
		o.setFileName(fileName),
		o.setItems(items),
		o.setCounts(referencesCount, boxesCount, items),
	); err != nil {
		return nil, err
	}

	o.rawContent = rawContent
	return o, nil
}

// RestoreOrderParams carries every persisted field of an order for
// rehydration from storage.
type RestoreOrderParams struct {
	ID                   kernel.UUID
	LabID                kernel.UUID
	PharmacyID           kernel.UUID
	FileName             string
	CreatedAt            time.Time
	RawContent           string
	Items                []LineItem
	ReferencesCount      int
	BoxesCount           int
	Status               Status
	ReviewedAt           *time.Time
	ReviewedBy           string
	ReviewNote           string
	ExpectedDeliveryDate *time.Time
	DeliveredAt          *time.Time
}

// RestoreOrder reconstructs an order from persistence. All invariants are
// re-validated so corrupt rows cannot produce an invalid aggregate.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		createdAt:            p.CreatedAt,
		status:               p.Status,
		reviewedAt:           p.ReviewedAt,
		reviewedBy:           p.ReviewedBy,
		reviewNote:           p.ReviewNote,
		expectedDeliveryDate: p.ExpectedDeliveryDate,
		deliveredAt:          p.DeliveredAt,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setLabID(p.LabID),
		o.setPharmacyID(p.PharmacyID),
		o.setFileName(p.FileName),
		o.setItems(p.Items),
		o.setCounts(p.ReferencesCount, p.BoxesCount, p.Items),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if p.CreatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	o.rawContent = p.RawContent
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// LabID returns the identifier of the laboratory the order was placed with.
func (o *Order) LabID() kernel.UUID {
	return o.labID
}

// PharmacyID returns the identifier of the submitting pharmacy.
func (o *Order) PharmacyID() kernel.UUID {
	return o.pharmacyID
}

// FileName returns the name of the uploaded CSV file.
func (o *Order) FileName() string {
	return o.fileName
}

// CreatedAt returns the creation timestamp. Immutable.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// RawContent returns the original CSV text, kept for re-download. Immutable.
func (o *Order) RawContent() string {
	return o.rawContent
}

// Items returns a copy of the parsed line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// ReferencesCount returns the number of distinct product codes in the order.
func (o *Order) ReferencesCount() int {
	return o.referencesCount
}

// BoxesCount returns the total number of boxes across all line items.
func (o *Order) BoxesCount() int {
	return o.boxesCount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ReviewedAt returns when the review decision was recorded, or nil.
func (o *Order) ReviewedAt() *time.Time {
	return o.reviewedAt
}

// ReviewedBy returns who recorded the review decision, if anyone.
func (o *Order) ReviewedBy() string {
	return o.reviewedBy
}

// ReviewNote returns the optional note attached to the review decision.
func (o *Order) ReviewNote() string {
	return o.reviewNote
}

// ExpectedDeliveryDate returns the scheduled delivery date, or nil.
func (o *Order) ExpectedDeliveryDate() *time.Time {
	return o.expectedDeliveryDate
}

// DeliveredAt returns the effective delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Review records a review decision on a pending order.
//
// An approved decision moves the order straight to AwaitingDelivery; a
// rejected decision moves it to the terminal Rejected status. reviewedAt is
// stamped with the current time, and reviewedBy/reviewNote are stored as
// given (both may be empty).
//
// Calling Review on a non-pending order returns ErrInvalidTransition and
// leaves the aggregate untouched.
func (o *Order) Review(decision ReviewDecision, reviewedBy, reviewNote string) error {
	newStatus, err := o.status.Review(decision)
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.reviewedAt = &now
	o.reviewedBy = reviewedBy
	o.reviewNote = reviewNote
	return nil
}

// ScheduleDelivery sets the expected delivery date of an approved order.
// Allowed only while the order is AwaitingDelivery; the date may be re-set
// while the order stays in that status. The status itself never changes.
func (o *Order) ScheduleDelivery(date time.Time) error {
	if err := o.status.ValidateSchedule(); err != nil {
		return err
	}

	if date.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryDate")
	}

	o.expectedDeliveryDate = &date
	return nil
}

// MarkDelivered completes the workflow for an order awaiting delivery.
// A zero deliveredAt means "now". After this call the order is in the
// terminal Delivered status with deliveredAt set.
func (o *Order) MarkDelivered(deliveredAt time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if deliveredAt.IsZero() {
		deliveredAt = time.Now()
	}

	o.status = newStatus
	o.deliveredAt = &deliveredAt
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLabID(labID kernel.UUID) error {
	if err := labID.Validate(); err != nil {
		return fmt.Errorf("labId: %w", err)
	}
	o.labID = labID
	return nil
}

func (o *Order) setPharmacyID(pharmacyID kernel.UUID) error {
	if err := pharmacyID.Validate(); err != nil {
		return fmt.Errorf("pharmacyId: %w", err)
	}
	o.pharmacyID = pharmacyID
	return nil
}

func (o *Order) setFileName(fileName string) error {
	if fileName == "" {
		return errs.NewValueIsRequiredError("fileName")
	}
	o.fileName = fileName
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %d: %w", i, err),
			)
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCounts(referencesCount, boxesCount int, items []LineItem) error {
	if distinct := DistinctCodeCount(items); referencesCount != distinct {
		return errs.NewValueIsInvalidErrorWithCause(
			"referencesCount",
			fmt.Errorf("%d does not match %d distinct codes", referencesCount, distinct),
		)
	}
	if total := TotalQuantity(items); boxesCount != total {
		return errs.NewValueIsInvalidErrorWithCause(
			"boxesCount",
			fmt.Errorf("%d does not match %d total boxes", boxesCount, total),
		)
	}

	o.referencesCount = referencesCount
	o.boxesCount = boxesCount
	return nil
}
