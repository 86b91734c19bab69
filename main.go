// =============================================================================
// Sales Report Analyzer - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Sales Report Analyzer CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   sales-analyzer analyze       - Analyze all sales reports in the input directory
//   sales-analyzer validate      - Validate configuration files without processing
//   sales-analyzer version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//   - configs/       : Contains store-specific YAML configurations
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/sales-report-analyzer/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
