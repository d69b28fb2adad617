// =============================================================================
// Excel Shipment Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The tool is a
// single-purpose batch converter, so the root command itself performs the
// conversion; the only subcommand is 'version'.
//
// COBRA CLI STRUCTURE:
//   rootCmd (excelconv <input> <reference> <output>)
//   └── versionCmd (excelconv version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// noOpen disables the best-effort auto-open of the output file.
var noOpen bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "excelconv <input> <reference> <output>",
	Short: "Excel Shipment Converter - Translate invoice line items into the customs declaration format",
	Long: `Excel Shipment Converter reads a commercial-invoice workbook of shipment
line items, enriches each row with declaration fields looked up in a
reference workbook by material code, adds constant-valued columns, and
writes a new workbook in the fixed customs declaration column order.

Arguments:
  input      Path to the shipment workbook (invoice export)
  reference  Path to the reference workbook (material master)
  output     Path of the workbook to create

Which columns are preserved, matched, and fixed is controlled by an optional
YAML configuration file; built-in defaults apply when it is absent.

Example Usage:
  excelconv invoice.xlsx materials.xlsx declaration.xlsx
  excelconv --config ./my.yaml invoice.xlsx materials.xlsx declaration.xlsx
  excelconv --no-open invoice.xlsx materials.xlsx declaration.xlsx`,

	Args: cobra.ExactArgs(3),

	// RunE lets Cobra turn a fatal pipeline error into a non-zero exit.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], args[1], args[2])
	},

	SilenceUsage: true,
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: path to the optional conversion configuration.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the conversion configuration file (defaults apply if absent)",
	)

	// --verbose flag: enables debug diagnostics.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	// --no-open flag: skip opening the output file after writing.
	rootCmd.Flags().BoolVar(
		&noOpen,
		"no-open",
		false,
		"Do not open the output file after writing",
	)
}
