// =============================================================================
// Excel Shipment Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Excel Shipment Converter CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   excelconv <input> <reference> <output>  - Convert one shipment workbook
//   excelconv version                       - Display the application version
//
// ARCHITECTURE:
//   - cmd/          : CLI command definitions (Cobra)
//   - internal/     : Core conversion logic (not for external import)
//   - pkg/          : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/excel-shipment-converter/cmd"
)

// main simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
