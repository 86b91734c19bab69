// =============================================================================
// Sales Report Analyzer - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, which is the main command for
// processing sales report files. It orchestrates the entire analysis pipeline.
//
// COMMAND USAGE:
//   sales-analyzer analyze [flags]
//
// FLAGS:
//   --dry-run : Simulate processing without writing output files
//   --single  : Process only a single file (specify with --file)
//   --file    : Path to a specific file to process (used with --single)
//   --store   : Process only files for a specific store code
//
// PROCESSING PIPELINE:
//   1. Load configuration files
//   2. Discover report files in the input directory
//   3. Match each file to a store configuration
//   4. For each file (concurrently, bounded by max_concurrency):
//      a. Read the source rows (CSV or XLSX)
//      b. Validate and aggregate the data rows
//      c. Write the revenue reports
//      d. Archive the input file
//   5. Write the run summary and error log
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-report-analyzer/internal/analyzer"
	"github.com/ginjaninja78/sales-report-analyzer/internal/config"
	"github.com/ginjaninja78/sales-report-analyzer/internal/report"
	"github.com/ginjaninja78/sales-report-analyzer/internal/types"
	"github.com/ginjaninja78/sales-report-analyzer/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun simulates processing without writing output files.
var dryRun bool

// singleFile indicates whether to process only a single file.
var singleFile bool

// filePath is the path to a specific file to process (used with --single).
var filePath string

// storeFilter limits processing to files matched to one store code.
var storeFilter string

// =============================================================================
// ANALYZE COMMAND DEFINITION
// =============================================================================

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze sales report files and produce revenue reports",
	Long: `The analyze command scans the input directory for sales report files,
matches them to the appropriate store configuration, validates every data
row, and writes revenue reports.

Files are processed concurrently, bounded by the configured max_concurrency.
Each file is processed independently, and errors in one file do not affect
the processing of others. A malformed row never aborts its file; it is
skipped, counted, and listed in the rejection report.

On successful processing:
  - The revenue reports are placed in the output directory
  - The original file is moved to the input archive
  - A run summary is generated

On error:
  - An error log is created in the output directory
  - The original file remains in the input directory
  - Processing continues for other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Simulate processing without writing output files",
	)

	analyzeCmd.Flags().BoolVar(
		&singleFile,
		"single",
		false,
		"Process only a single file (use with --file)",
	)

	analyzeCmd.Flags().StringVar(
		&filePath,
		"file",
		"",
		"Path to a specific file to process (used with --single)",
	)

	analyzeCmd.Flags().StringVar(
		&storeFilter,
		"store",
		"",
		"Process only files matched to this store code",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runAnalyze is the main function that orchestrates the analysis pipeline.
func runAnalyze() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== Sales Report Analyzer ===")
	fmt.Println("Loading configuration...")

	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	setupLogging(mainConfig.LogLevel)

	storeConfigs, err := config.LoadStoreConfigs(mainConfig.ConfigsDir)
	if err != nil {
		return fmt.Errorf("failed to load store configs: %w", err)
	}

	fmt.Printf("Loaded %d store configuration(s)\n", len(storeConfigs))

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	files := utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir, mainConfig.InputArchiveDir)
	if err := files.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to prepare directories: %w", err)
	}

	var inputFiles []string
	if singleFile {
		if filePath == "" {
			return fmt.Errorf("--single requires --file")
		}
		inputFiles = []string{filePath}
	} else {
		fmt.Println("Discovering input files...")
		inputFiles, err = files.DiscoverInputFiles(".csv", ".xlsx")
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No report files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// Each file runs in its own goroutine. A buffered channel acts as a
	// semaphore bounding the number of files in flight at once.

	fmt.Println("Processing files...")

	var wg sync.WaitGroup
	results := make(chan analyzer.Result, len(inputFiles))
	semaphore := make(chan struct{}, mainConfig.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)

		go func(filePath string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			storeConfig := findMatchingStore(filePath, storeConfigs)
			if storeConfig == nil {
				storeConfig = config.DefaultStoreConfig()
				logrus.WithField("file", filePath).Debug("no store configuration matched, using defaults")
			}

			if storeFilter != "" && storeConfig.StoreCode != storeFilter {
				return
			}

			runner := analyzer.NewRunner(filePath, storeConfig, mainConfig, files, dryRun)
			results <- runner.Run()
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS
	// =========================================================================

	summary := utils.RunSummary{StartTime: startTime}
	var analyses []*types.AnalysisResult
	var errorEntries []utils.ErrorLogEntry

	for result := range results {
		summary.TotalFiles++
		summary.TotalRows += result.Stats.RowsProcessed
		summary.ValidRows += result.Stats.ValidRows
		summary.SkippedRows += result.Stats.SkippedRows

		if result.Success {
			summary.SuccessfulFiles++
			summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
				InputFile:   result.FilePath,
				OutputFiles: result.OutputFiles,
				ArchivePath: result.ArchivePath,
				ValidRows:   result.Stats.ValidRows,
				SkippedRows: result.Stats.SkippedRows,
				ProcessTime: result.Stats.ProcessingTime,
			})
			analyses = append(analyses, result.Analysis)
			fmt.Printf("  + %s: %d valid, %d skipped, total %s\n",
				filepath.Base(result.FilePath),
				result.Stats.ValidRows,
				result.Stats.SkippedRows,
				result.Analysis.TotalRevenue)
		} else {
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    result.FilePath,
				ErrorMessage: result.Error.Error(),
			})
			errorEntries = append(errorEntries, utils.ErrorLogEntry{
				Timestamp:    time.Now(),
				FileName:     filepath.Base(result.FilePath),
				ErrorMessage: result.Error.Error(),
			})
			fmt.Printf("  x %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}

	summary.EndTime = time.Now()

	// =========================================================================
	// STEP 5: WRITE RUN ARTIFACTS AND PRINT SUMMARY
	// =========================================================================

	if !dryRun {
		if hasFormat(mainConfig.ReportFormats, "xlsx_summary") && len(analyses) > 0 {
			workbookPath := filepath.Join(
				mainConfig.OutputDir,
				utils.GenerateOutputFileName("run_summary_{timestamp}", nil)+".xlsx",
			)
			if err := report.WriteSummaryWorkbook(workbookPath, analyses); err != nil {
				logrus.WithError(err).Warn("failed to write summary workbook")
			} else {
				fmt.Printf("Summary workbook: %s\n", workbookPath)
			}
		}

		if len(errorEntries) > 0 {
			if _, err := utils.WriteErrorLog(errorEntries, mainConfig.OutputDir); err != nil {
				logrus.WithError(err).Warn("failed to write error log")
			}
		}

		if _, err := utils.WriteSummaryLog(summary, mainConfig.OutputDir); err != nil {
			logrus.WithError(err).Warn("failed to write summary log")
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", summary.TotalFiles)
	fmt.Printf("Successful:      %d\n", summary.SuccessfulFiles)
	fmt.Printf("Errors:          %d\n", summary.FailedFiles)
	fmt.Printf("Valid rows:      %d\n", summary.ValidRows)
	fmt.Printf("Skipped rows:    %d\n", summary.SkippedRows)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	if summary.FailedFiles > 0 {
		if !dryRun {
			fmt.Println("\nErrors have been logged to the output directory.")
		}
		if !mainConfig.ContinueOnError {
			return fmt.Errorf("%d file(s) failed to process", summary.FailedFiles)
		}
	}

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// findMatchingStore finds the store configuration whose file matching
// patterns cover the given file name. Returns nil when no store matches.
func findMatchingStore(filePath string, storeConfigs map[string]*config.StoreConfig) *config.StoreConfig {
	fileName := filepath.Base(filePath)

	for _, storeConfig := range storeConfigs {
		for _, pattern := range storeConfig.FileMatchingPatterns {
			matched, err := filepath.Match(pattern, fileName)
			if err != nil {
				// Invalid pattern, skip it.
				continue
			}
			if matched {
				return storeConfig
			}
		}
	}

	return nil
}

// hasFormat reports whether the format list contains the given name.
func hasFormat(formats []string, name string) bool {
	for _, f := range formats {
		if f == name {
			return true
		}
	}
	return false
}
