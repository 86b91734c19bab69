// =============================================================================
// Sales Report Analyzer - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing all configuration files.
// It handles both the main application configuration and store-specific
// configurations.
//
// CONFIGURATION FILES:
//   1. Main Config (config.yaml): Global application settings
//   2. Store Configs (configs/*.yaml): Store-specific parsing rules
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Modular: Each store has its own configuration file
//   - Extensible: New stores can be added without code changes
//   - Validated: All configurations are validated on load
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// InputDir is the directory where input sales reports are placed.
	// The application will scan this directory for files to analyze.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated reports are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where processed sales reports are
	// moved. Files are only moved here after successful analysis.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ConfigsDir is the directory containing store-specific configurations.
	// Each YAML file in this directory represents one store's rules.
	// Default: "./configs"
	ConfigsDir string `yaml:"configs_dir"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// ReportNameFormat defines the format for output report file names.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {store}     - Store code
	//   {source}    - Base name of the analyzed file, without extension
	// Default: "{source}_{timestamp}"
	ReportNameFormat string `yaml:"report_name_format"`

	// ReportFormats lists the report renderings to produce per file.
	// Valid values: "text", "rejects_csv", "xlsx_summary"
	// Default: ["text", "rejects_csv"]
	ReportFormats []string `yaml:"report_formats"`

	// MaxConcurrency is the maximum number of files to analyze concurrently.
	// Set to 1 for sequential processing.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError makes a run with failed files still exit zero.
	// All remaining files are always processed either way.
	// Default: false
	ContinueOnError bool `yaml:"continue_on_error"`
}

// =============================================================================
// STORE CONFIGURATION STRUCTURE
// =============================================================================

// StoreConfig holds the configuration for a specific store. Each store can
// have its own rules for file matching, CSV parsing, and name policy.
type StoreConfig struct {
	// StoreName is the human-readable name of the store.
	// This is used in logs and report headings.
	StoreName string `yaml:"store_name"`

	// StoreCode is a short code for the store, usable in output file names.
	StoreCode string `yaml:"store_code"`

	// FileMatchingPatterns is a list of glob patterns to match input files.
	// If a file name matches any of these patterns, this configuration is
	// used. Examples: "store_a_*.csv", "sales_*.xlsx".
	FileMatchingPatterns []string `yaml:"file_matching_patterns"`

	// CSVSettings contains settings for reading the input file.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// CurrencySymbol is prefixed to monetary values in rendered reports.
	// Display only; it never affects parsing or arithmetic.
	// Default: "$"
	CurrencySymbol string `yaml:"currency_symbol"`

	// AllowEmptyNames accepts rows whose product name is blank after
	// trimming. The default (false) rejects them, matching the legacy
	// analyzer scripts.
	AllowEmptyNames bool `yaml:"allow_empty_names"`
}

// CSVSettings contains settings for reading sales report files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of header rows in the file. Header rows are
	// discarded unvalidated and never counted as data rows.
	// Default: 1
	HeaderRows int `yaml:"header_rows"`

	// DataStartRow is the row number where the actual data begins.
	// Row numbering starts at 1, counting the header as row 1.
	// Default: 2 (assuming 1 header row)
	DataStartRow int `yaml:"data_start_row"`

	// Sheet is the worksheet name to read from XLSX workbooks.
	// Empty means the first sheet.
	Sheet string `yaml:"sheet,omitempty"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the main configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read or parsed.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.ConfigsDir == "" {
		config.ConfigsDir = "./configs"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.ReportNameFormat == "" {
		config.ReportNameFormat = "{source}_{timestamp}"
	}
	if len(config.ReportFormats) == 0 {
		config.ReportFormats = []string{"text", "rejects_csv"}
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}
}

// validateMainConfig validates the main configuration and creates any
// missing directories.
func validateMainConfig(config *MainConfig) error {
	dirs := []string{
		config.InputDir,
		config.OutputDir,
		config.InputArchiveDir,
		config.ConfigsDir,
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	for _, format := range config.ReportFormats {
		switch format {
		case "text", "rejects_csv", "xlsx_summary":
		default:
			return fmt.Errorf("unknown report format: %q", format)
		}
	}

	return nil
}

// LoadStoreConfigs loads all store configurations from a directory.
//
// PARAMETERS:
//   - configsDir: The path to the directory containing store configuration files.
//
// RETURNS:
//   - A map of store configurations, keyed by store code.
//   - An error if the directory cannot be read or any file cannot be parsed.
func LoadStoreConfigs(configsDir string) (map[string]*StoreConfig, error) {
	configs := make(map[string]*StoreConfig)

	files, err := filepath.Glob(filepath.Join(configsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}

	// Also check for .yml extension.
	ymlFiles, err := filepath.Glob(filepath.Join(configsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		config, err := loadStoreConfig(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}

		// Use the store code as the key.
		// If no code is specified, use the file name.
		key := config.StoreCode
		if key == "" {
			key = filepath.Base(file)
		}

		configs[key] = config
	}

	return configs, nil
}

// loadStoreConfig loads a single store configuration file.
func loadStoreConfig(filePath string) (*StoreConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config StoreConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	applyStoreConfigDefaults(&config)

	return &config, nil
}

// applyStoreConfigDefaults sets default values for a store configuration.
func applyStoreConfigDefaults(config *StoreConfig) {
	if config.CSVSettings.Delimiter == "" {
		config.CSVSettings.Delimiter = ","
	}
	if config.CSVSettings.HeaderRows == 0 {
		config.CSVSettings.HeaderRows = 1
	}
	if config.CSVSettings.DataStartRow == 0 {
		config.CSVSettings.DataStartRow = config.CSVSettings.HeaderRows + 1
	}
	if config.CurrencySymbol == "" {
		config.CurrencySymbol = "$"
	}
}

// DefaultStoreConfig returns the configuration used when no store-specific
// file matches an input: plain comma-separated layout with one header row.
func DefaultStoreConfig() *StoreConfig {
	config := &StoreConfig{
		StoreName: "Default",
		StoreCode: "default",
	}
	applyStoreConfigDefaults(config)
	return config
}
