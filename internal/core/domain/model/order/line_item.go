package order

import (
	"fmt"

	"pharmorders/internal/pkg/errs"
)

// LineItem is a single (product code, quantity) pair extracted from an
// uploaded CSV file. It is a value object: immutable after construction and
// never persisted outside its owning Order.
//
// Duplicate codes across rows are deliberately kept as separate line items;
// they are summed in the order's box count but never merged.
type LineItem struct {
	code     string
	quantity int
}

// NewLineItem creates a line item with a non-empty code and a strictly
// positive quantity. Rows with quantity <= 0 never become line items; the
// parser drops them before construction.
func NewLineItem(code string, quantity int) (LineItem, error) {
	if code == "" {
		return LineItem{}, errs.NewValueIsRequiredError("code")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return LineItem{code: code, quantity: quantity}, nil
}

// Code returns the product code (EAN13 for valid rows).
func (li LineItem) Code() string {
	return li.code
}

// Quantity returns the number of boxes ordered for the code.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Validate checks the line item holds a constructible value.
func (li LineItem) Validate() error {
	if li.code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if li.quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", li.quantity),
		)
	}
	return nil
}

// DistinctCodeCount returns the number of unique codes across the items.
// Row order does not matter.
func DistinctCodeCount(items []LineItem) int {
	codes := make(map[string]struct{}, len(items))
	for _, item := range items {
		codes[item.code] = struct{}{}
	}
	return len(codes)
}

// TotalQuantity returns the arithmetic sum of quantities across the items.
func TotalQuantity(items []LineItem) int {
	total := 0
	for _, item := range items {
		total += item.quantity
	}
	return total
}
