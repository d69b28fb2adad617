// =============================================================================
// Excel Shipment Converter - Converter Module
// =============================================================================
//
// This module orchestrates the conversion pipeline for one
// (input, reference, output) triple:
//
//   1. Load the shipment workbook (sheet pick, banner skip, header cleanup)
//   2. Truncate trailing non-data rows via the item-number heuristic
//   3. Load the reference workbook
//   4. Project preserved columns under their translated names
//   5. Join matched columns through the material-code lookup
//   6. Inject fixed-value columns
//   7. Reindex to the canonical declaration column order
//   8. Write the output workbook
//   9. Best-effort: open the output with the default application
//
// The pipeline is strictly linear — no branching back, no retries. Load and
// write failures are fatal; everything else is advisory and surfaces as a
// warning plus a null/absent column in the output.
//
// =============================================================================

package converter

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/excel-shipment-converter/internal/config"
	"github.com/ginjaninja78/excel-shipment-converter/internal/mapping"
	"github.com/ginjaninja78/excel-shipment-converter/internal/xlsxparser"
	"github.com/ginjaninja78/excel-shipment-converter/internal/xlsxwriter"
	"github.com/ginjaninja78/excel-shipment-converter/pkg/utils"
	"github.com/google/uuid"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one conversion run.
type Result struct {
	// RunID uniquely identifies this run in diagnostics.
	RunID string

	// InputFile is the path to the shipment workbook.
	InputFile string

	// ReferenceFile is the path to the reference workbook.
	ReferenceFile string

	// OutputFile is the path to the written workbook.
	// Empty if the run failed before writing.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error holds the fatal error if the run failed, nil otherwise.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about one conversion run.
type ProcessingStats struct {
	// RowsLoaded is the number of data rows loaded from the input workbook.
	RowsLoaded int

	// RowsRetained is the number of rows remaining after the item-number
	// truncation heuristic.
	RowsRetained int

	// ColumnsProjected is the number of preserved columns actually copied.
	ColumnsProjected int

	// ColumnsMatched is the number of matched columns populated via lookup.
	ColumnsMatched int

	// Warnings is the number of advisory diagnostics emitted.
	Warnings int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single shipment workbook.
type Converter struct {
	// inputPath is the path to the shipment workbook.
	inputPath string

	// referencePath is the path to the reference workbook.
	referencePath string

	// outputPath is the path of the workbook to write.
	outputPath string

	// cfg is the conversion configuration (preserved/matched/fixed columns).
	cfg *config.Config

	// colmap is the built-in source<->target column map.
	colmap *mapping.ColumnMap

	// logger receives progress and warning diagnostics.
	logger Logger

	// openAfterWrite opens the output file when the run succeeds.
	openAfterWrite bool
}

// New creates a new Converter.
//
// PARAMETERS:
//   - inputPath: The path to the shipment workbook.
//   - referencePath: The path to the reference workbook.
//   - outputPath: The path of the workbook to write.
//   - cfg: The conversion configuration. Defaults are the caller's concern;
//     the converter never reaches for hidden global state.
func New(inputPath, referencePath, outputPath string, cfg *config.Config) *Converter {
	return &Converter{
		inputPath:      inputPath,
		referencePath:  referencePath,
		outputPath:     outputPath,
		cfg:            cfg,
		colmap:         mapping.Default(),
		logger:         NewConsoleLogger(false),
		openAfterWrite: cfg.OpenAfterWrite(),
	}
}

// SetLogger replaces the diagnostics logger.
func (c *Converter) SetLogger(l Logger) {
	c.logger = l
}

// SetOpenAfterWrite overrides whether the output file is opened after a
// successful run.
func (c *Converter) SetOpenAfterWrite(open bool) {
	c.openAfterWrite = open
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
//
// RETURNS:
//   - A Result describing the outcome. Result.Error is set and
//     Result.Success is false when a fatal step failed.
func (c *Converter) Run() Result {
	startTime := time.Now()
	warnings := newWarningCounter(c.logger)
	result := Result{
		RunID:         uuid.New().String(),
		InputFile:     c.inputPath,
		ReferenceFile: c.referencePath,
		Success:       false,
	}

	// =========================================================================
	// STEP 1: LOAD INPUT WORKBOOK
	// =========================================================================

	c.logger.Info("Reading input file: %s", c.inputPath)

	input, err := xlsxparser.LoadInput(c.inputPath)
	if err != nil {
		result.Error = err
		return result
	}

	result.Stats.RowsLoaded = input.Len()
	c.logger.Debug("Loaded %d rows, columns: %v", input.Len(), input.Columns())

	// =========================================================================
	// STEP 2: TRUNCATE TRAILING NON-DATA ROWS
	// =========================================================================
	// The item-number column is the authoritative signal for which rows are
	// real line items; everything from the first blank item number on is
	// notes, totals, or padding.

	itemColumn := c.colmap.SourceOrLiteral(mapping.ItemNumberColumn)
	if input.HasColumn(itemColumn) {
		retained := truncateAtFirstMissing(input, itemColumn)
		c.logger.Debug("Truncated to %d data rows", retained)
	} else {
		c.logger.Debug("Item-number column '%s' not present, skipping truncation", itemColumn)
	}
	result.Stats.RowsRetained = input.Len()

	// =========================================================================
	// STEP 3: LOAD REFERENCE WORKBOOK
	// =========================================================================

	c.logger.Info("Reading reference file: %s", c.referencePath)

	reference, err := xlsxparser.LoadReference(c.referencePath)
	if err != nil {
		result.Error = err
		return result
	}

	c.logger.Debug("Loaded %d reference rows, columns: %v", reference.Len(), reference.Columns())

	// =========================================================================
	// STEPS 4-7: PROJECT, JOIN, INJECT FIXED, REORDER
	// =========================================================================

	output, stats := assemble(input, reference, c.colmap, c.cfg, warnings)
	result.Stats.ColumnsProjected = stats.ColumnsProjected
	result.Stats.ColumnsMatched = stats.ColumnsMatched

	c.logger.Debug("Final columns: %v", output.Columns())

	// =========================================================================
	// STEP 8: WRITE OUTPUT WORKBOOK
	// =========================================================================

	c.logger.Info("Saving output file: %s", c.outputPath)

	if err := xlsxwriter.Write(c.outputPath, output); err != nil {
		result.Error = err
		return result
	}

	result.OutputFile = c.outputPath

	// =========================================================================
	// STEP 9: BEST-EFFORT AUTO-OPEN
	// =========================================================================
	// Opening the result is a convenience; failure never fails the run.

	if c.openAfterWrite {
		if utils.CanOpenFiles() {
			if err := utils.OpenWithDefaultApp(c.outputPath); err != nil {
				warnings.Warn("Could not open output file: %v", err)
			}
		} else {
			c.logger.Debug("No file opener available, skipping auto-open")
		}
	}

	result.Success = true
	result.Stats.Warnings = warnings.count
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// =============================================================================
// WARNING COUNTER
// =============================================================================

// warningCounter wraps a Logger and counts advisory diagnostics so the run
// summary can report them.
type warningCounter struct {
	logger Logger
	count  int
}

func newWarningCounter(l Logger) *warningCounter {
	return &warningCounter{logger: l}
}

func (w *warningCounter) Warn(msg string, args ...interface{}) {
	w.count++
	w.logger.Warn(msg, args...)
}

// Summary returns a one-line human summary for a result.
func (r Result) Summary() string {
	if !r.Success {
		return fmt.Sprintf("run %s failed: %v", r.RunID, r.Error)
	}
	return fmt.Sprintf("run %s: %d/%d rows, %d projected, %d matched, %d warning(s), %s",
		r.RunID,
		r.Stats.RowsRetained,
		r.Stats.RowsLoaded,
		r.Stats.ColumnsProjected,
		r.Stats.ColumnsMatched,
		r.Stats.Warnings,
		r.Stats.ProcessingTime.Round(time.Millisecond),
	)
}
