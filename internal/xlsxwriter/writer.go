// =============================================================================
// Excel Shipment Converter - XLSX Output Writer
// =============================================================================
//
// This module serializes the assembled output table to a single-sheet xlsx
// workbook:
//   - Row 1 holds the column labels in the table's exact column order.
//   - Data rows follow, one per table row, blank cells for null values.
//   - No synthetic row-index column is emitted.
//
// Any I/O failure while writing is a fatal error and is propagated.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/ginjaninja78/excel-shipment-converter/internal/table"
	"github.com/xuri/excelize/v2"
)

// Write serializes the table to an xlsx workbook at the given path,
// overwriting any existing file.
//
// PARAMETERS:
//   - path: The path of the output workbook.
//   - t: The table to serialize.
//
// RETURNS:
//   - An error if a cell cannot be set or the file cannot be saved.
func Write(path string, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)

	// Header row.
	header := toCellRow(t.Columns())
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	// Data rows. Sheet rows are 1-indexed and row 1 is the header.
	for i, row := range t.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		values := toCellRow(row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save output file: %w", err)
	}

	return nil
}

// toCellRow converts a string row to the interface slice SetSheetRow expects.
func toCellRow(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
