package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pharmorders/internal/core/domain/model/order"
)

// ErrParseFailed is returned when the uploaded file cannot be read as
// delimited text at all. Per-row problems never produce this error; they
// accumulate as warnings on an otherwise successful result.
var ErrParseFailed = errors.New("csv parse failed")

var ean13Pattern = regexp.MustCompile(`^\d{13}$`)

// ParseResult is the outcome of parsing one uploaded file.
//
// Items holds only the rows that survived validation. Warnings carry one
// human-readable message per rejected or suspicious row, in file order.
// RawContent is the normalized text the parser actually consumed, suitable
// for storage and later re-download.
type ParseResult struct {
	Items           []order.LineItem
	Warnings        []string
	RawContent      string
	UniqueCodeCount int
	TotalQuantity   int
}

// CSVLineItemParser is a domain service that turns raw delimited text into
// validated (code, quantity) line items.
//
// Row rules:
//   - Two or more fields: the first is the product code, the second the
//     quantity. The code must be a 13-digit EAN13; the quantity must be a
//     positive integer. Code and quantity are checked independently and each
//     failure emits its own warning.
//   - Exactly one field: a bare EAN13 code is accepted with quantity 1;
//     anything else is rejected with a format warning.
//   - A zero quantity drops the row without a warning. Zeroed lines are how
//     pharmacies cancel a product from an order template.
type CSVLineItemParser struct {
	// Delimiter separates fields within a row. Defaults to ';'.
	Delimiter rune
	// SkipEmptyLines drops blank rows instead of warning about them.
	SkipEmptyLines bool
}

// NewCSVLineItemParser creates a parser with the standard upload format:
// semicolon-delimited, empty lines ignored.
func NewCSVLineItemParser() CSVLineItemParser {
	return CSVLineItemParser{
		Delimiter:      ';',
		SkipEmptyLines: true,
	}
}

// Parse reads the whole raw text and returns the validated items together
// with the accumulated warnings. Only an unreadable file produces an error;
// every per-row problem is reported as a warning and the parse still
// succeeds with the rows that passed.
func (p CSVLineItemParser) Parse(raw string) (ParseResult, error) {
	delimiter := p.Delimiter
	if delimiter == 0 {
		delimiter = ';'
	}

	reader := csv.NewReader(strings.NewReader(raw))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	result := ParseResult{
		RawContent: normalizeContent(records, delimiter),
	}

	lineNumber := 0
	for _, record := range records {
		if isEmptyRecord(record) {
			if p.SkipEmptyLines {
				continue
			}
			lineNumber++
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Line %d: invalid format, expected \"code%cquantity\"", lineNumber, delimiter))
			continue
		}
		lineNumber++

		item, warnings, ok := p.parseRecord(lineNumber, record, delimiter)
		result.Warnings = append(result.Warnings, warnings...)
		if ok {
			result.Items = append(result.Items, item)
		}
	}

	result.UniqueCodeCount = order.DistinctCodeCount(result.Items)
	result.TotalQuantity = order.TotalQuantity(result.Items)
	return result, nil
}

// parseRecord validates a single non-empty row. It returns the parsed item,
// the warnings the row produced, and whether the item belongs in the output.
func (p CSVLineItemParser) parseRecord(lineNumber int, record []string, delimiter rune) (order.LineItem, []string, bool) {
	if len(record) == 1 {
		code := strings.TrimSpace(record[0])
		if !ean13Pattern.MatchString(code) {
			return order.LineItem{}, []string{
				fmt.Sprintf("Line %d: invalid format, single column found", lineNumber),
			}, false
		}

		item, err := order.NewLineItem(code, 1)
		if err != nil {
			return order.LineItem{}, []string{
				fmt.Sprintf("Line %d: invalid format, single column found", lineNumber),
			}, false
		}
		return item, nil, true
	}

	code := strings.TrimSpace(record[0])
	rawQuantity := strings.TrimSpace(record[1])

	var warnings []string
	codeValid := ean13Pattern.MatchString(code)
	if !codeValid {
		warnings = append(warnings, fmt.Sprintf("Line %d: invalid EAN13 code (%s)", lineNumber, code))
	}

	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Line %d: invalid quantity (%s)", lineNumber, rawQuantity))
		return order.LineItem{}, warnings, false
	}

	if !codeValid || quantity <= 0 {
		return order.LineItem{}, warnings, false
	}

	item, err := order.NewLineItem(code, quantity)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Line %d: invalid quantity (%s)", lineNumber, rawQuantity))
		return order.LineItem{}, warnings, false
	}
	return item, warnings, true
}

// normalizeContent re-joins the parsed records so the stored content is
// independent of the uploader's line endings and quoting.
func normalizeContent(records [][]string, delimiter rune) string {
	var b strings.Builder
	for _, record := range records {
		if isEmptyRecord(record) {
			continue
		}
		b.WriteString(strings.Join(record, string(delimiter)))
		b.WriteByte('\n')
	}
	return b.String()
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
