// =============================================================================
// Sales Report Analyzer - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the analyzer, including:
//   - Input discovery and scanning
//   - Input archival (moving processed reports)
//   - Error log and run summary generation
//   - Directory management
//   - Output file naming
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to input_archive after successful analysis
//   - Failed files remain in their original location
//   - Error logs and run summaries are created in the output directory
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the analyzer.
type FileManager struct {
	// InputDir is the directory where input sales reports are placed.
	InputDir string

	// OutputDir is the directory where generated reports are placed.
	OutputDir string

	// InputArchiveDir is the directory for archived input files.
	InputArchiveDir string

	// ArchiveOnSuccess determines whether inputs are archived after
	// successful analysis.
	ArchiveOnSuccess bool
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(inputDir, outputDir, inputArchiveDir string) *FileManager {
	return &FileManager{
		InputDir:         inputDir,
		OutputDir:        outputDir,
		InputArchiveDir:  inputArchiveDir,
		ArchiveOnSuccess: true,
	}
}

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.InputDir,
		fm.OutputDir,
		fm.InputArchiveDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles scans the input directory recursively for sales
// reports with one of the given extensions.
//
// PARAMETERS:
//   - extensions: The extensions to match (e.g., ".csv", ".xlsx").
//                 If empty, defaults to ".csv".
//
// RETURNS:
//   - A slice of file paths in walk order.
//   - An error if the directory cannot be read.
func (fm *FileManager) DiscoverInputFiles(extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = []string{".csv"}
	}

	var files []string

	err := filepath.Walk(fm.InputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range extensions {
			if ext == strings.ToLower(want) {
				files = append(files, path)
				break
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk input directory: %w", err)
	}

	return files, nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveInputFile moves an input file to the archive directory.
//
// PARAMETERS:
//   - filePath: The path to the file to archive.
//
// RETURNS:
//   - The path to the archived file.
//   - An error if archival fails.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	if !fm.ArchiveOnSuccess {
		return filePath, nil
	}

	archivePath := filepath.Join(fm.InputArchiveDir, filepath.Base(filePath))

	if err := os.MkdirAll(fm.InputArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := os.Rename(filePath, archivePath); err != nil {
		// Rename fails across devices; fall back to copy and delete.
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}

	return archivePath, nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates an output file name from a template.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//   - params: A map of additional placeholder values, without braces
//             (e.g., "store" fills "{store}").
//
// RETURNS:
//   - The generated file name, without extension.
//
// EXAMPLE:
//   format: "{store}_{source}_{timestamp}"
//   params: {"store": "north", "source": "sales_jan"}
//   output: "north_sales_jan_20240115_143022"
func GenerateOutputFileName(format string, params map[string]string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}

	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	return result
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// ErrorLogEntry represents a single error log entry.
type ErrorLogEntry struct {
	Timestamp    time.Time
	FileName     string
	ErrorMessage string
}

// WriteErrorLog writes error entries to a log file in the output directory.
//
// PARAMETERS:
//   - entries: The error entries to write.
//   - outputDir: The directory to write the log file.
//
// RETURNS:
//   - The path to the error log file, empty when there was nothing to log.
//   - An error if writing fails.
func WriteErrorLog(entries []ErrorLogEntry, outputDir string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	timestamp := time.Now().Format("20060102_150405")
	logPath := filepath.Join(outputDir, fmt.Sprintf("error_log_%s.txt", timestamp))

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	fmt.Fprintf(writer, "Sales Report Analyzer - Error Log\n"+
		"Generated: %s\n"+
		"Total Errors: %d\n"+
		"================================================================================\n\n",
		time.Now().Format("2006-01-02 15:04:05"),
		len(entries))

	for i, entry := range entries {
		fmt.Fprintf(writer, "Error #%d\n"+
			"  Timestamp: %s\n"+
			"  File:      %s\n"+
			"  Message:   %s\n\n",
			i+1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.FileName,
			entry.ErrorMessage)
	}

	writer.WriteString("================================================================================\n" +
		"End of Error Log\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush error log: %w", err)
	}

	return logPath, nil
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary contains summary information about one analysis run.
type RunSummary struct {
	StartTime       time.Time
	EndTime         time.Time
	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     int
	TotalRows       int
	ValidRows       int
	SkippedRows     int
	ProcessedFiles  []ProcessedFileInfo
	FailedFilesList []FailedFileInfo
}

// ProcessedFileInfo contains information about a successfully analyzed file.
type ProcessedFileInfo struct {
	InputFile   string
	OutputFiles []string
	ArchivePath string
	ValidRows   int
	SkippedRows int
	ProcessTime time.Duration
}

// FailedFileInfo contains information about a failed file.
type FailedFileInfo struct {
	InputFile    string
	ErrorMessage string
}

// WriteSummaryLog writes a run summary to a log file in the output directory.
func WriteSummaryLog(summary RunSummary, outputDir string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	summaryPath := filepath.Join(outputDir, fmt.Sprintf("run_summary_%s.txt", timestamp))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	fmt.Fprintf(writer, "Sales Report Analyzer - Run Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Start Time:   %s\n"+
		"  End Time:     %s\n"+
		"  Duration:     %s\n\n"+
		"Statistics:\n"+
		"  Total Files:  %d\n"+
		"  Successful:   %d\n"+
		"  Failed:       %d\n"+
		"  Total Rows:   %d\n"+
		"  Valid Rows:   %d\n"+
		"  Skipped Rows: %d\n\n",
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.TotalFiles,
		summary.SuccessfulFiles,
		summary.FailedFiles,
		summary.TotalRows,
		summary.ValidRows,
		summary.SkippedRows)

	if len(summary.ProcessedFiles) > 0 {
		writer.WriteString("Successful Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, pf := range summary.ProcessedFiles {
			fmt.Fprintf(writer, "  Input:        %s\n", pf.InputFile)
			for _, out := range pf.OutputFiles {
				fmt.Fprintf(writer, "  Output:       %s\n", out)
			}
			fmt.Fprintf(writer, "  Valid Rows:   %d\n", pf.ValidRows)
			fmt.Fprintf(writer, "  Skipped Rows: %d\n", pf.SkippedRows)
			fmt.Fprintf(writer, "  Process Time: %s\n\n", pf.ProcessTime.String())
		}
	}

	if len(summary.FailedFilesList) > 0 {
		writer.WriteString("Failed Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, ff := range summary.FailedFilesList {
			fmt.Fprintf(writer, "  File:  %s\n", ff.InputFile)
			fmt.Fprintf(writer, "  Error: %s\n\n", ff.ErrorMessage)
		}
	}

	writer.WriteString("================================================================================\n" +
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
