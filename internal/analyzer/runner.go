// =============================================================================
// Sales Report Analyzer - File Runner
// =============================================================================
//
// This module orchestrates the analysis pipeline for a single file, from
// reading the source to archiving the processed input.
//
// PIPELINE:
//   1. Read the source rows (CSV or XLSX workbook)
//   2. Run the row parser + aggregator over the data rows
//   3. Render and write the per-file reports
//   4. Archive the processed input
//
// CONCURRENCY:
//   Each file is processed in its own goroutine. The runner holds no state
//   shared between files and is safe to run concurrently.
//
// =============================================================================

package analyzer

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/sales-report-analyzer/internal/config"
	"github.com/ginjaninja78/sales-report-analyzer/internal/csvreader"
	"github.com/ginjaninja78/sales-report-analyzer/internal/report"
	"github.com/ginjaninja78/sales-report-analyzer/internal/types"
	"github.com/ginjaninja78/sales-report-analyzer/internal/xlsxreader"
	"github.com/ginjaninja78/sales-report-analyzer/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFiles are the report files written for this input.
	// Empty if processing failed or on a dry run.
	OutputFiles []string

	// ArchivePath is where the input was moved after success.
	ArchivePath string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed, nil otherwise.
	Error error

	// Analysis is the analysis result, nil when the source could not be
	// read at all.
	Analysis *types.AnalysisResult

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about the processing of one file.
type Stats struct {
	// RowsProcessed is the number of data rows seen.
	RowsProcessed int

	// ValidRows is the number of rows that passed validation.
	ValidRows int

	// SkippedRows is the number of rejected rows.
	SkippedRows int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// RUNNER STRUCTURE
// =============================================================================

// Runner handles the analysis of a single sales report file.
type Runner struct {
	filePath    string
	storeConfig *config.StoreConfig
	mainConfig  *config.MainConfig
	files       *utils.FileManager
	dryRun      bool
	log         logrus.FieldLogger
}

// NewRunner creates a Runner for one input file.
//
// PARAMETERS:
//   - filePath: The path to the input sales report.
//   - storeConfig: The store-specific configuration matched to this file.
//   - mainConfig: The main application configuration.
//   - files: The file manager used for archival.
//   - dryRun: When true, no files are written or moved.
func NewRunner(filePath string, storeConfig *config.StoreConfig, mainConfig *config.MainConfig, files *utils.FileManager, dryRun bool) *Runner {
	return &Runner{
		filePath:    filePath,
		storeConfig: storeConfig,
		mainConfig:  mainConfig,
		files:       files,
		dryRun:      dryRun,
		log: logrus.WithFields(logrus.Fields{
			"file":  filePath,
			"store": storeConfig.StoreCode,
		}),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the analysis pipeline for the file.
func (r *Runner) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: r.filePath,
		Success:  false,
	}

	// =========================================================================
	// STEP 1: READ SOURCE ROWS
	// =========================================================================
	// A missing or unreadable source is the single fatal condition for a
	// file; everything after this point recovers row by row.

	r.log.Info("analyzing sales report")

	src, err := r.readSource()
	if err != nil {
		result.Error = err
		return result
	}

	result.Stats.RowsProcessed = len(src.Rows)
	r.log.Debugf("read %d data rows", len(src.Rows))

	// =========================================================================
	// STEP 2: ANALYZE
	// =========================================================================

	analysis := Analyze(src, Options{
		Row: RowOptions{
			Delimiter:       r.storeConfig.CSVSettings.Delimiter,
			AllowEmptyNames: r.storeConfig.AllowEmptyNames,
		},
		Logger: r.log,
	})

	result.Analysis = analysis
	result.Stats.ValidRows = analysis.ValidCount
	result.Stats.SkippedRows = analysis.SkippedCount
	r.log.Debugf("analysis complete: %d valid, %d skipped, total %s",
		analysis.ValidCount, analysis.SkippedCount, analysis.TotalRevenue)

	// =========================================================================
	// STEP 3: WRITE REPORTS
	// =========================================================================

	if !r.dryRun {
		outputs, err := report.Write(analysis, report.Options{
			OutputDir:      r.mainConfig.OutputDir,
			NameFormat:     r.mainConfig.ReportNameFormat,
			StoreCode:      r.storeConfig.StoreCode,
			CurrencySymbol: r.storeConfig.CurrencySymbol,
			Formats:        r.mainConfig.ReportFormats,
		})
		if err != nil {
			result.Error = fmt.Errorf("failed to write reports: %w", err)
			return result
		}

		result.OutputFiles = outputs
		for _, out := range outputs {
			r.log.Infof("wrote report: %s", out)
		}
	}

	// =========================================================================
	// STEP 4: ARCHIVE INPUT
	// =========================================================================
	// Archival failure is logged but does not fail the analysis.

	if !r.dryRun {
		archivePath, err := r.files.ArchiveInputFile(r.filePath)
		if err != nil {
			r.log.WithError(err).Warn("failed to archive input file")
		} else {
			result.ArchivePath = archivePath
		}
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// readSource reads the input rows, picking the reader by file type.
func (r *Runner) readSource() (*csvreader.RowSource, error) {
	if xlsxreader.IsWorkbook(r.filePath) {
		return xlsxreader.Read(r.filePath, r.storeConfig.CSVSettings)
	}
	return csvreader.Read(r.filePath, r.storeConfig.CSVSettings)
}
