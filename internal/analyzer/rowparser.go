// =============================================================================
// Sales Report Analyzer - Row Parser/Validator
// =============================================================================
//
// This module turns one raw report line into either a validated SalesRecord
// or a RowRejection. Malformed rows are an expected, frequent, recoverable
// condition, so the outcome is a variant pair, never an error: no row's
// processing may throw past the row boundary, and one malformed row must
// never abort processing of subsequent rows.
//
// VALIDATION SEQUENCE (in order, short-circuiting - the first failing rule
// determines the reported reason):
//   1. Blank check: empty or all-whitespace line
//   2. Column split: exactly 3 fields required
//   3. Trim all three fields
//   4. Price parse: fixed period-separated decimal format
//   5. Quantity parse: integer
//   6. Non-negativity: price, then quantity
//   7. Product name policy: blank names rejected unless the store allows them
//
// =============================================================================

package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/sales-report-analyzer/internal/money"
	"github.com/ginjaninja78/sales-report-analyzer/internal/types"
)

// =============================================================================
// ROW OPTIONS
// =============================================================================

// RowOptions controls row validation policy.
type RowOptions struct {
	// Delimiter separates the three fields. Default: ","
	Delimiter string

	// AllowEmptyNames accepts rows whose product name is blank after
	// trimming. The default (false) rejects them, matching the legacy
	// analyzer scripts.
	AllowEmptyNames bool
}

// =============================================================================
// ROW PARSER
// =============================================================================

// ParseRow validates one raw line against the three-column sales contract
// (product name, price, quantity).
//
// PARAMETERS:
//   - rawLine: The line, verbatim.
//   - rowNumber: The 1-based row number, counting the header as row 1.
//   - opts: The validation policy for this store.
//
// RETURNS:
//   - Exactly one of record / rejection non-nil. Never an error.
func ParseRow(rawLine string, rowNumber int, opts RowOptions) (*types.SalesRecord, *types.RowRejection) {
	reject := func(reason types.RejectionReason, detail string) (*types.SalesRecord, *types.RowRejection) {
		return nil, &types.RowRejection{
			RowNumber: rowNumber,
			RawLine:   rawLine,
			Reason:    reason,
			Detail:    detail,
		}
	}

	// 1. Blank check.
	if strings.TrimSpace(rawLine) == "" {
		return reject(types.ReasonEmptyLine, "")
	}

	// 2. Column split. The split is a plain delimiter split, not a quoted
	// CSV parse: the legacy export neither quotes nor embeds delimiters,
	// and the reported column count must match what the file shows.
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = ","
	}
	fields := strings.Split(rawLine, delimiter)
	if len(fields) != 3 {
		return reject(types.ReasonWrongColumnCount, fmt.Sprintf("found %d columns, expected 3", len(fields)))
	}

	// 3. Trim all fields before any further parsing.
	name := strings.TrimSpace(fields[0])
	priceStr := strings.TrimSpace(fields[1])
	quantityStr := strings.TrimSpace(fields[2])

	// 4. Price parse.
	price, err := money.Parse(priceStr)
	if err != nil {
		return reject(types.ReasonInvalidPrice, fmt.Sprintf("price %q is not a valid number", priceStr))
	}

	// 5. Quantity parse.
	quantity, err := strconv.ParseInt(quantityStr, 10, 64)
	if err != nil {
		return reject(types.ReasonInvalidQuantity, fmt.Sprintf("quantity %q is not a valid integer", quantityStr))
	}

	// 6. Non-negativity, price first.
	if price.IsNegative() {
		return reject(types.ReasonNegativePrice, fmt.Sprintf("price %s is negative", price))
	}
	if quantity < 0 {
		return reject(types.ReasonNegativeQuantity, fmt.Sprintf("quantity %d is negative", quantity))
	}

	// 7. Product name policy.
	if name == "" && !opts.AllowEmptyNames {
		return reject(types.ReasonEmptyProductName, "")
	}

	return &types.SalesRecord{
		ProductName: name,
		Price:       price,
		Quantity:    quantity,
		RowNumber:   rowNumber,
	}, nil
}
