// =============================================================================
// Sales Report Analyzer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'analyze', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-analyzer)
//   ├── analyzeCmd (sales-analyzer analyze)
//   ├── validateCmd (sales-analyzer validate)
//   └── versionCmd (sales-analyzer version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (e.g., --config, --verbose)
//   2. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "sales-analyzer",

	Short: "Sales Report Analyzer - Compute revenue totals from store CSV exports",

	Long: `Sales Report Analyzer is a CLI tool that reads sales report exports
(CSV or XLSX) from legacy store systems, validates every data row, and
produces revenue reports.

Key Features:
  - Row-by-row validation with detailed rejection reporting
  - Exact decimal revenue arithmetic (no float drift)
  - Total revenue and top-selling product per file
  - Store-specific configuration (delimiters, header layout, currency)
  - Concurrent processing of multiple report files
  - Automatic file archival on successful processing

Example Usage:
  sales-analyzer analyze                    # Process all files in the input directory
  sales-analyzer analyze --file report.csv  # Process a single file
  sales-analyzer analyze --config ./my.yaml # Use a custom configuration file
  sales-analyzer validate                   # Validate configuration without processing`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// LOGGING SETUP
// =============================================================================

// setupLogging configures the global logrus logger from the configured level.
// The --verbose flag always forces debug output.
func setupLogging(configuredLevel string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}

	level, err := logrus.ParseLevel(configuredLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
