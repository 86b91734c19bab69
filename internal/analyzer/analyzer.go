// =============================================================================
// Sales Report Analyzer - Aggregator
// =============================================================================
//
// This module folds the row stream of one sales report into an
// AnalysisResult: the exact total revenue, the single highest-revenue row,
// and the skipped-row accounting. Single pass, single goroutine, no state
// shared across invocations.
//
// =============================================================================

package analyzer

import (
	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/sales-report-analyzer/internal/csvreader"
	"github.com/ginjaninja78/sales-report-analyzer/internal/money"
	"github.com/ginjaninja78/sales-report-analyzer/internal/types"
)

// Options controls one analysis pass.
type Options struct {
	// Row is the per-row validation policy.
	Row RowOptions

	// Logger, when set, receives one Warn entry per rejected row with the
	// row number and raw content. Rejections are always collected in the
	// result regardless.
	Logger logrus.FieldLogger
}

// Analyze runs the full pipeline over an already-read row source and
// returns one immutable AnalysisResult.
//
// Invariants:
//   - TotalRevenue sums exactly the rows that were not rejected.
//   - SkippedCount + ValidCount equals the number of data rows.
//   - On equal revenue the first-encountered row stays the top product.
//   - A header-only or empty source yields a zero result, not an error.
func Analyze(src *csvreader.RowSource, opts Options) *types.AnalysisResult {
	result := &types.AnalysisResult{
		SourceFile:   src.SourceFile,
		TotalRevenue: money.Zero(),
	}

	for _, row := range src.Rows {
		record, rejection := ParseRow(row.Text, row.Number, opts.Row)
		if rejection != nil {
			result.SkippedCount++
			result.Rejections = append(result.Rejections, *rejection)

			if opts.Logger != nil {
				opts.Logger.WithFields(logrus.Fields{
					"row":    rejection.RowNumber,
					"reason": rejection.Reason,
				}).Warnf("skipping row: %q", rejection.RawLine)
			}
			continue
		}

		revenue := record.Revenue()
		result.TotalRevenue = result.TotalRevenue.Add(revenue)
		result.ValidCount++

		// Strictly-greater keeps the earliest row on ties.
		if result.TopProduct == nil || revenue.GreaterThan(result.TopProduct.Revenue) {
			result.TopProduct = &types.TopProduct{Record: *record, Revenue: revenue}
		}
	}

	return result
}
