// =============================================================================
// Sales Report Analyzer - XLSX Reader Module
// =============================================================================
//
// This module reads sales reports delivered as XLSX workbooks instead of
// plain CSV. Cells are re-joined with the store's delimiter so that the row
// parser sees exactly the same "one raw line" contract for both sources,
// including the WrongColumnCount arithmetic.
//
// Row numbers follow the worksheet: 1-based, counting the header as row 1.
//
// =============================================================================

package xlsxreader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-report-analyzer/internal/config"
	"github.com/ginjaninja78/sales-report-analyzer/internal/csvreader"
)

// Read reads an XLSX workbook and returns its numbered data rows.
//
// PARAMETERS:
//   - filePath: The path to the workbook.
//   - settings: The CSV settings from the store configuration. Sheet picks
//     the worksheet (empty means the first sheet); Delimiter is used to
//     re-join cells into raw lines.
//
// RETURNS:
//   - A pointer to the RowSource containing header and data rows.
//   - An error wrapping csvreader.ErrSourceUnavailable if the workbook
//     cannot be opened or read.
func Read(filePath string, settings config.CSVSettings) (*csvreader.RowSource, error) {
	// excelize reports a missing file only at open time; stat first so that
	// "file absent" and "corrupt workbook" surface as the same fatal
	// source-unavailable condition with a useful cause.
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("%w: %v", csvreader.ErrSourceUnavailable, err)
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", csvreader.ErrSourceUnavailable, err)
	}
	defer f.Close()

	sheetName := settings.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", csvreader.ErrSourceUnavailable)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", csvreader.ErrSourceUnavailable, sheetName, err)
	}

	delimiter := settings.Delimiter
	if delimiter == "" {
		delimiter = ","
	}

	src := &csvreader.RowSource{SourceFile: filePath}
	dataStart := settings.DataStartRow
	if dataStart <= 0 {
		headerRows := settings.HeaderRows
		if headerRows <= 0 {
			headerRows = 1
		}
		dataStart = headerRows + 1
	}

	for i, cells := range rows {
		rowNum := i + 1
		text := strings.Join(cells, delimiter)

		if rowNum == 1 {
			src.Header = text
		}
		if rowNum < dataStart {
			continue
		}

		src.Rows = append(src.Rows, csvreader.RawRow{Number: rowNum, Text: text})
	}

	return src, nil
}

// IsWorkbook reports whether a path looks like an XLSX workbook.
func IsWorkbook(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), ".xlsx")
}
