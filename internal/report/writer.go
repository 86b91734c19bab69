// =============================================================================
// Sales Report Analyzer - Report Writer Module
// =============================================================================
//
// This module renders an AnalysisResult into the output formats:
//   - "text":         the banner analysis report the legacy console tool
//                     printed, as a file
//   - "rejects_csv":  one CSV row per rejected input row, for triage
//   - "xlsx_summary": a run-level workbook with one row per analyzed file
//
// Rendering is separated from writing so the CLI can print to the console
// and tests can assert on bytes without touching the filesystem.
//
// =============================================================================

package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-report-analyzer/internal/types"
	"github.com/ginjaninja78/sales-report-analyzer/pkg/utils"
)

// bannerWidth matches the legacy console report.
const bannerWidth = 60

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls where and how reports are written.
type Options struct {
	// OutputDir is the directory report files are written to.
	OutputDir string

	// NameFormat is the file name template. Supported placeholders:
	// {uuid}, {timestamp}, {store}, {source}.
	NameFormat string

	// StoreCode fills the {store} placeholder.
	StoreCode string

	// CurrencySymbol is prefixed to monetary values in the text report.
	// Display only.
	CurrencySymbol string

	// Formats selects the renderings to write ("text", "rejects_csv").
	// The run-level "xlsx_summary" is handled by WriteSummaryWorkbook.
	Formats []string
}

// DefaultOptions returns options that write the text report and the
// rejected-rows CSV into the current directory.
func DefaultOptions() Options {
	return Options{
		OutputDir:      ".",
		NameFormat:     "{source}_{timestamp}",
		CurrencySymbol: "$",
		Formats:        []string{"text", "rejects_csv"},
	}
}

// =============================================================================
// TEXT REPORT
// =============================================================================

// RenderText renders the banner analysis report.
//
// PARAMETERS:
//   - result: The analysis result to render.
//   - currencySymbol: The display prefix for monetary values.
//
// RETURNS:
//   - The report as bytes, ready for a file or the console.
func RenderText(result *types.AnalysisResult, currencySymbol string) []byte {
	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(&b, "Total sales from %s: %s%s\n", result.SourceFile, currencySymbol, result.TotalRevenue)

	if top := result.TopProduct; top != nil {
		b.WriteString("\n" + banner + "\n")
		b.WriteString("TOP-SELLING PRODUCT ANALYSIS\n")
		b.WriteString(banner + "\n\n")
		fmt.Fprintf(&b, "Product Name:      %s\n", top.Record.ProductName)
		fmt.Fprintf(&b, "Unit Price:        %s%s\n", currencySymbol, top.Record.Price)
		fmt.Fprintf(&b, "Quantity Sold:     %d units\n", top.Record.Quantity)
		fmt.Fprintf(&b, "Total Revenue:     %s%s\n", currencySymbol, top.Revenue)
		b.WriteString(banner + "\n")
	} else {
		b.WriteString("Warning: no valid data rows found.\n")
	}

	fmt.Fprintf(&b, "\nValid rows:   %d\n", result.ValidCount)
	fmt.Fprintf(&b, "Skipped rows: %d\n", result.SkippedCount)

	if len(result.Rejections) > 0 {
		b.WriteString("\nSkipped row details:\n")
		for _, rej := range result.Rejections {
			fmt.Fprintf(&b, "  %s\n", rej)
		}
	}

	return []byte(b.String())
}

// =============================================================================
// REJECTED-ROWS CSV
// =============================================================================

// RenderRejectsCSV renders one CSV row per rejected input row.
func RenderRejectsCSV(result *types.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"row_number", "reason", "detail", "raw_line"}}
	for _, rej := range result.Rejections {
		records = append(records, []string{
			strconv.Itoa(rej.RowNumber),
			string(rej.Reason),
			rej.Detail,
			rej.RawLine,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to render rejects CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// Write renders and writes the per-file reports selected in the options.
//
// RETURNS:
//   - The paths of the files written, in format order.
//   - An error if rendering or writing fails.
func Write(result *types.AnalysisResult, opts Options) ([]string, error) {
	var written []string

	params := map[string]string{
		"store":  opts.StoreCode,
		"source": sourceBase(result.SourceFile),
	}

	for _, format := range opts.Formats {
		var (
			data []byte
			ext  string
			err  error
		)

		switch format {
		case "text":
			data = RenderText(result, opts.CurrencySymbol)
			ext = ".txt"

		case "rejects_csv":
			// Nothing to triage, nothing to write.
			if len(result.Rejections) == 0 {
				continue
			}
			data, err = RenderRejectsCSV(result)
			if err != nil {
				return written, err
			}
			ext = "_rejects.csv"

		case "xlsx_summary":
			// Run-level format, written once per run by the caller.
			continue

		default:
			return written, fmt.Errorf("unknown report format: %q", format)
		}

		name := utils.GenerateOutputFileName(opts.NameFormat, params) + ext
		path := filepath.Join(opts.OutputDir, name)

		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s report: %w", format, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// =============================================================================
// RUN SUMMARY WORKBOOK
// =============================================================================

// summaryHeaders is the first row of the summary sheet.
var summaryHeaders = []string{
	"Source File", "Total Revenue", "Top Product", "Top Revenue",
	"Valid Rows", "Skipped Rows",
}

// WriteSummaryWorkbook writes the run-level XLSX summary: one row per
// analyzed file.
//
// PARAMETERS:
//   - path: The workbook path, including the .xlsx extension.
//   - results: The analysis results of the run, in completion order.
//
// RETURNS:
//   - An error if the workbook cannot be built or saved.
func WriteSummaryWorkbook(path string, results []*types.AnalysisResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, header := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build summary header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to build summary header: %w", err)
		}
	}

	for i, result := range results {
		topName := ""
		topRevenue := ""
		if result.TopProduct != nil {
			topName = result.TopProduct.Record.ProductName
			topRevenue = result.TopProduct.Revenue.String()
		}

		values := []string{
			result.SourceFile,
			result.TotalRevenue.String(),
			topName,
			topRevenue,
			strconv.Itoa(result.ValidCount),
			strconv.Itoa(result.SkippedCount),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to build summary row: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to build summary row: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save summary workbook: %w", err)
	}

	return nil
}

// sourceBase strips directory and extension from a source path for the
// {source} placeholder.
func sourceBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
