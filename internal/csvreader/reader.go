// =============================================================================
// Sales Report Analyzer - CSV Reader Module
// =============================================================================
//
// This module is responsible for turning a sales report file into a stream of
// raw, numbered lines. It deliberately does NOT split fields: the row
// parser's contract is "one raw line in, verdict out", and splitting belongs
// to the validation sequence where a wrong field count is a reportable
// rejection, not a read error.
//
// FEATURES:
//   - Header handling driven by the store CSVSettings (header rows are
//     discarded unvalidated, never counted as data rows)
//   - 1-based row numbers counting the header as row 1, kept stable for
//     error reporting
//   - A streaming variant for incremental consumption
//   - UTF-8 BOM and CRLF tolerance
//
// ERROR HANDLING:
//   A file that cannot be opened is a fatal "source unavailable" condition,
//   reported via ErrSourceUnavailable. A readable but empty (or header-only)
//   file is NOT an error; it yields an empty row stream.
//
// =============================================================================

package csvreader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/sales-report-analyzer/internal/config"
)

// ErrSourceUnavailable marks a sales report that could not be obtained at
// all (missing or unreadable file). Callers must not conflate this with a
// readable file that happens to contain zero valid rows.
var ErrSourceUnavailable = errors.New("sales report source unavailable")

// =============================================================================
// ROW SOURCE STRUCTURE
// =============================================================================

// RawRow is a single unvalidated line of a sales report.
type RawRow struct {
	// Number is the 1-based row number in the source file, counting the
	// header as row 1.
	Number int

	// Text is the line content, without the trailing newline.
	Text string
}

// RowSource is the materialized line stream of one sales report, header
// already separated out.
type RowSource struct {
	// SourceFile is the path the rows were read from.
	SourceFile string

	// Header is the first header line, verbatim. Kept for display only;
	// the input contract discards it unvalidated.
	Header string

	// Rows contains the data rows in file order.
	Rows []RawRow
}

// =============================================================================
// READER FUNCTIONS
// =============================================================================

// Read reads a sales report file and returns its numbered data rows.
//
// PARAMETERS:
//   - filePath: The path to the sales report.
//   - settings: The CSV settings from the store configuration.
//
// RETURNS:
//   - A pointer to the RowSource containing header and data rows.
//   - An error wrapping ErrSourceUnavailable if the file cannot be opened.
func Read(filePath string, settings config.CSVSettings) (*RowSource, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer file.Close()

	src := &RowSource{SourceFile: filePath}

	scanner := bufio.NewScanner(bufio.NewReader(file))
	dataStart := dataStartRow(settings)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		text := normalizeLine(scanner.Text(), lineNum)

		if lineNum == 1 {
			src.Header = text
		}
		if lineNum < dataStart {
			continue
		}

		src.Rows = append(src.Rows, RawRow{Number: lineNum, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return src, nil
}

// dataStartRow resolves the first data row from the settings, defaulting to
// the line after the header block.
func dataStartRow(settings config.CSVSettings) int {
	if settings.DataStartRow > 0 {
		return settings.DataStartRow
	}
	headerRows := settings.HeaderRows
	if headerRows <= 0 {
		headerRows = 1
	}
	return headerRows + 1
}

// normalizeLine strips the UTF-8 BOM from the first line and a trailing
// carriage return from files with CRLF endings.
func normalizeLine(text string, lineNum int) string {
	if lineNum == 1 {
		text = strings.TrimPrefix(text, "\ufeff")
	}
	return strings.TrimSuffix(text, "\r")
}

// =============================================================================
// STREAMING READER
// =============================================================================

// Scanner provides incremental reading of a sales report. Instead of
// materializing the whole file, it yields rows one at a time.
//
// USAGE:
//   sc, err := NewScanner(filePath, settings)
//   if err != nil {
//       return err
//   }
//   defer sc.Close()
//
//   for sc.Next() {
//       row := sc.Row()
//       // Process the row...
//   }
//
//   if err := sc.Err(); err != nil {
//       return err
//   }
type Scanner struct {
	file      *os.File
	scanner   *bufio.Scanner
	header    string
	row       RawRow
	lineNum   int
	dataStart int
	err       error
}

// NewScanner opens a sales report for streaming. The header block is
// consumed immediately so that Header is available before the first Next.
func NewScanner(filePath string, settings config.CSVSettings) (*Scanner, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	sc := &Scanner{
		file:      file,
		scanner:   bufio.NewScanner(bufio.NewReader(file)),
		dataStart: dataStartRow(settings),
	}

	for sc.lineNum < sc.dataStart-1 {
		if !sc.scanner.Scan() {
			// Header-only or empty file; not an error.
			break
		}
		sc.lineNum++
		text := normalizeLine(sc.scanner.Text(), sc.lineNum)
		if sc.lineNum == 1 {
			sc.header = text
		}
	}

	if err := sc.scanner.Err(); err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return sc, nil
}

// Next advances to the next data row. Returns false when there are no more
// rows or a read error occurred.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.scanner.Scan() {
		s.err = s.scanner.Err()
		return false
	}

	s.lineNum++
	s.row = RawRow{Number: s.lineNum, Text: normalizeLine(s.scanner.Text(), s.lineNum)}
	return true
}

// Row returns the current data row.
func (s *Scanner) Row() RawRow {
	return s.row
}

// Header returns the first header line.
func (s *Scanner) Header() string {
	return s.header
}

// Err returns any error that occurred while reading.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying file.
func (s *Scanner) Close() error {
	return s.file.Close()
}
