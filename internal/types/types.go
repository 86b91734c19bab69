// =============================================================================
// Sales Report Analyzer - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - analyzer
//   - report
//   - cmd
//
// =============================================================================

package types

import (
	"fmt"

	"github.com/ginjaninja78/sales-report-analyzer/internal/money"
)

// =============================================================================
// REJECTION REASONS
// =============================================================================

// RejectionReason identifies why a data row was excluded from the analysis.
// Rejections are expected, recoverable conditions and are modeled as data,
// never as errors.
type RejectionReason string

const (
	// ReasonEmptyLine marks a line that is empty or all-whitespace.
	ReasonEmptyLine RejectionReason = "empty_line"

	// ReasonWrongColumnCount marks a row that does not have exactly three
	// comma-separated fields. The rejection Detail carries the count found.
	ReasonWrongColumnCount RejectionReason = "wrong_column_count"

	// ReasonInvalidPrice marks a price field that does not parse as a
	// period-separated decimal number.
	ReasonInvalidPrice RejectionReason = "invalid_price"

	// ReasonInvalidQuantity marks a quantity field that does not parse as
	// an integer.
	ReasonInvalidQuantity RejectionReason = "invalid_quantity"

	// ReasonNegativePrice marks a price that parsed but is below zero.
	ReasonNegativePrice RejectionReason = "negative_price"

	// ReasonNegativeQuantity marks a quantity that parsed but is below zero.
	ReasonNegativeQuantity RejectionReason = "negative_quantity"

	// ReasonEmptyProductName marks a row whose first field is blank after
	// trimming. Only reported when the store configuration enforces
	// non-empty names (the default).
	ReasonEmptyProductName RejectionReason = "empty_product_name"
)

// =============================================================================
// SALES RECORD
// =============================================================================

// SalesRecord is one validated data row of a sales report. It is constructed
// only by the row parser and is immutable once built.
type SalesRecord struct {
	// ProductName is the trimmed first column.
	ProductName string

	// Price is the unit price, exact decimal.
	Price money.Money

	// Quantity is the number of units sold.
	Quantity int64

	// RowNumber is the 1-based row number in the source file, counting the
	// header as row 1. Kept for reporting.
	RowNumber int
}

// Revenue returns price multiplied by quantity, computed with exact decimal
// arithmetic.
func (r SalesRecord) Revenue() money.Money {
	return r.Price.MulInt(r.Quantity)
}

// =============================================================================
// ROW REJECTION
// =============================================================================

// RowRejection records a data row that failed validation. It is consumed for
// logging and the rejected-rows report only and never affects totals.
type RowRejection struct {
	// RowNumber is the 1-based row number in the source file, counting the
	// header as row 1.
	RowNumber int

	// RawLine is the offending line, verbatim.
	RawLine string

	// Reason is the first validation rule that failed.
	Reason RejectionReason

	// Detail is optional extra context, e.g. the actual column count or
	// the value that failed to parse.
	Detail string
}

// String renders the rejection for logs and error reports.
func (r RowRejection) String() string {
	if r.Detail != "" {
		return fmt.Sprintf("row %d: %s (%s): %q", r.RowNumber, r.Reason, r.Detail, r.RawLine)
	}
	return fmt.Sprintf("row %d: %s: %q", r.RowNumber, r.Reason, r.RawLine)
}

// =============================================================================
// ANALYSIS RESULT
// =============================================================================

// TopProduct is the single highest-revenue row of a report together with its
// computed revenue.
type TopProduct struct {
	Record  SalesRecord
	Revenue money.Money
}

// AnalysisResult is the outcome of analyzing one sales report. It is built
// once per file and immutable afterwards.
type AnalysisResult struct {
	// SourceFile is the path of the analyzed report.
	SourceFile string

	// TotalRevenue is the sum of revenue over all valid rows.
	TotalRevenue money.Money

	// TopProduct is the highest-revenue row. On equal revenue the
	// first-encountered row wins. Nil when the file has no valid rows.
	TopProduct *TopProduct

	// ValidCount is the number of rows that passed validation.
	ValidCount int

	// SkippedCount is the number of data rows rejected by validation.
	SkippedCount int

	// Rejections lists every rejected row in source order.
	Rejections []RowRejection
}
