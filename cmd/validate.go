// =============================================================================
// Sales Report Analyzer - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the main and store
// configuration files without processing any reports.
//
// COMMAND USAGE:
//   sales-analyzer validate
//
// CHECKS:
//   1. The main configuration file loads and passes validation
//   2. Every store configuration file loads
//   3. Every file matching pattern is a valid glob
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-report-analyzer/internal/config"
)

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration files without processing",
	Long: `The validate command loads the main configuration and all store
configurations and reports any problems. No report files are read or
written. The command exits non-zero when any configuration is invalid.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// =============================================================================
// VALIDATION FUNCTION
// =============================================================================

// runValidate loads every configuration file and reports problems.
func runValidate() error {
	fmt.Println("=== Configuration Validation ===")

	var problems []string

	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		problems = append(problems, fmt.Sprintf("main config: %v", err))
	} else {
		fmt.Printf("  + main config: %s\n", cfgFile)

		storeConfigs, err := config.LoadStoreConfigs(mainConfig.ConfigsDir)
		if err != nil {
			problems = append(problems, fmt.Sprintf("store configs: %v", err))
		} else {
			fmt.Printf("  + store configs: %d loaded from %s\n", len(storeConfigs), mainConfig.ConfigsDir)

			for code, storeConfig := range storeConfigs {
				for _, pattern := range storeConfig.FileMatchingPatterns {
					if _, err := filepath.Match(pattern, "probe.csv"); err != nil {
						problems = append(problems, fmt.Sprintf(
							"store %q: invalid file matching pattern %q: %v", code, pattern, err))
					}
				}
				if storeConfig.CSVSettings.Delimiter == "" {
					problems = append(problems, fmt.Sprintf("store %q: empty delimiter", code))
				}
			}
		}
	}

	if len(problems) > 0 {
		fmt.Println("\nProblems found:")
		for _, p := range problems {
			fmt.Printf("  x %s\n", p)
		}
		return fmt.Errorf("configuration validation failed with %d problem(s)", len(problems))
	}

	fmt.Println("\nAll configuration files are valid.")
	return nil
}
