// =============================================================================
// Excel Shipment Converter - Conversion Run
// =============================================================================
//
// This file wires the CLI arguments and flags into a converter run:
//
//   1. Load the configuration (absent file -> warning + built-in defaults)
//   2. Run the conversion pipeline
//   3. Print the run summary
//
// A fatal load/parse/write error propagates through RunE and becomes a
// non-zero exit with a diagnostic message.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/excel-shipment-converter/internal/config"
	"github.com/ginjaninja78/excel-shipment-converter/internal/converter"
)

// runConvert executes one conversion for the given file triple.
func runConvert(inputPath, referencePath, outputPath string) error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================
	// The configuration file is optional; its absence is advisory. A file
	// that exists but cannot be parsed is a fatal input error.

	cfg, usedDefaults, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if usedDefaults {
		fmt.Printf("Warning: %s not found. Using default configuration.\n", cfgFile)
	}

	// =========================================================================
	// STEP 2: RUN THE PIPELINE
	// =========================================================================

	conv := converter.New(inputPath, referencePath, outputPath, cfg)
	conv.SetLogger(converter.NewConsoleLogger(verbose))
	if noOpen {
		conv.SetOpenAfterWrite(false)
	}

	result := conv.Run()
	if !result.Success {
		return result.Error
	}

	// =========================================================================
	// STEP 3: PRINT SUMMARY
	// =========================================================================

	fmt.Println("Conversion completed successfully!")
	fmt.Printf("Output file:  %s\n", result.OutputFile)
	fmt.Printf("Summary:      %s\n", result.Summary())

	return nil
}
