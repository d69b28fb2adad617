// =============================================================================
// Excel Shipment Converter - XLSX Workbook Parser
// =============================================================================
//
// This module loads the two input workbooks into in-memory tables.
//
// INPUT WORKBOOK POLICY (commercial invoice exports):
//   - If the workbook has two or more sheets, read the second sheet; these
//     exports put a cover page on the first sheet. Otherwise read the first.
//   - The first 9 rows are banner/letterhead rows and are skipped; the next
//     row is the header row.
//   - The first data row under the header repeats the header in the source
//     language and is dropped.
//   - Header labels are trimmed of leading/trailing whitespace.
//
// REFERENCE WORKBOOK POLICY (material master):
//   - First sheet, read in full: header on row 1, no skipping, no filtering.
//
// Any open/parse failure is a fatal input error and is propagated; the
// loaders never guess an interpretation for an unreadable workbook.
//
// =============================================================================

package xlsxparser

import (
	"fmt"

	"github.com/ginjaninja78/excel-shipment-converter/internal/table"
	"github.com/xuri/excelize/v2"
)

// headerBannerRows is the number of leading non-data rows in the input
// workbook before the header row.
const headerBannerRows = 9

// =============================================================================
// INPUT LOADER
// =============================================================================

// LoadInput reads the shipment workbook and returns the raw input table.
//
// PARAMETERS:
//   - path: The path to the input workbook.
//
// RETURNS:
//   - The loaded table with trimmed column labels.
//   - An error if the workbook cannot be opened or read.
func LoadInput(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	// Pick the sheet: second if the workbook has at least two, else first.
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("input file has no sheets")
	}
	sheetIndex := 0
	if len(sheets) >= 2 {
		sheetIndex = 1
	}

	rows, err := f.GetRows(sheets[sheetIndex])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheets[sheetIndex], err)
	}

	// Skip the banner rows. If nothing remains there is no header and the
	// table is empty.
	if len(rows) <= headerBannerRows {
		return table.New(), nil
	}

	header := rows[headerBannerRows]
	data := rows[headerBannerRows+1:]

	// Drop the secondary header row if any data remains.
	if len(data) > 0 {
		data = data[1:]
	}

	t := table.FromRows(header, data)
	t.TrimColumnNames()

	return t, nil
}

// =============================================================================
// REFERENCE LOADER
// =============================================================================

// LoadReference reads the reference workbook's first sheet in full.
//
// PARAMETERS:
//   - path: The path to the reference workbook.
//
// RETURNS:
//   - The loaded table. Row 1 is the header; no rows are skipped and no
//     header normalization is applied beyond the parser's native behavior.
//   - An error if the workbook cannot be opened or read.
func LoadReference(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("reference file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet '%s': %w", sheetName, err)
	}

	if len(rows) == 0 {
		return table.New(), nil
	}

	return table.FromRows(rows[0], rows[1:]), nil
}
