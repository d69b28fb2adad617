// =============================================================================
// Excel Shipment Converter - Transformation Steps
// =============================================================================
//
// This module implements the table transformation steps as pure functions
// over the in-memory table model:
//
//   - Truncation: cut the input at the first row whose item number is missing
//   - Projection: copy preserved columns under their translated names
//   - Join: populate matched columns through the material-code lookup
//   - Fixed injection: overwrite configured columns with constants
//   - Reindexing: force the canonical declaration column order
//
// All steps are advisory-failure only: a column that cannot be resolved
// produces a warning and ends up null/absent, never an error.
//
// =============================================================================

package converter

import (
	"sort"
	"strings"

	"github.com/ginjaninja78/excel-shipment-converter/internal/config"
	"github.com/ginjaninja78/excel-shipment-converter/internal/mapping"
	"github.com/ginjaninja78/excel-shipment-converter/internal/table"
)

// warnLogger is the minimal diagnostics surface the transform steps need.
type warnLogger interface {
	Warn(msg string, args ...interface{})
}

// assembleStats reports what the assembly steps actually populated.
type assembleStats struct {
	ColumnsProjected int
	ColumnsMatched   int
}

// =============================================================================
// MISSING-VALUE NORMALIZATION
// =============================================================================

// isMissing reports whether a cell value represents missing data once
// string-normalized: empty, whitespace-only, or the literal token "nan"
// (case-insensitive), which these exports pick up when they round-trip
// through numeric tooling.
func isMissing(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || strings.EqualFold(trimmed, "nan")
}

// =============================================================================
// TRUNCATION
// =============================================================================

// truncateAtFirstMissing normalizes the given column to trimmed text, then
// truncates the table at the first row whose value in that column is
// missing. Rows strictly before that index survive.
//
// RETURNS:
//   - The number of rows retained.
func truncateAtFirstMissing(t *table.Table, column string) int {
	values, ok := t.Column(column)
	if !ok {
		return t.Len()
	}

	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	t.SetColumn(column, values)

	for i, v := range values {
		if isMissing(v) {
			t.Truncate(i)
			break
		}
	}

	return t.Len()
}

// =============================================================================
// PROJECTION
// =============================================================================

// projectPreserved copies each preserved column from the source table into
// the output table under its target label. The source column is found by
// reverse-looking-up the target label in the column map; a preserved name
// with no resolvable source column warns and stays absent.
//
// RETURNS:
//   - The number of columns actually copied.
func projectPreserved(out, in *table.Table, cm *mapping.ColumnMap, preserved []string, log warnLogger) int {
	projected := 0

	for _, target := range preserved {
		source, ok := cm.Source(target)
		if !ok || !in.HasColumn(source) {
			log.Warn("Column '%s' not found in input file", target)
			continue
		}
		values, _ := in.Column(source)
		out.SetColumn(target, values)
		projected++
	}

	return projected
}

// =============================================================================
// LOOKUP JOIN
// =============================================================================

// joinMatched populates the matched output columns by looking up each source
// row's material code in the reference table.
//
// The source-side code column is resolved by reverse-mapping the configured
// target label (falling back to the literal label); the reference-side code
// column is the configured label itself. If either is missing the whole join
// is skipped with a diagnostic identifying which table lacked which column.
//
// Duplicate codes in the reference table resolve last-write-wins; a source
// code absent from the reference yields a null cell.
//
// RETURNS:
//   - The number of matched columns populated.
func joinMatched(out, in, ref *table.Table, cm *mapping.ColumnMap, codeTarget string, matched []string, log warnLogger) int {
	sourceCode := cm.SourceOrLiteral(codeTarget)

	if !in.HasColumn(sourceCode) || !ref.HasColumn(codeTarget) {
		if !in.HasColumn(sourceCode) {
			log.Warn("Material code column '%s' not found in input file", sourceCode)
		}
		if !ref.HasColumn(codeTarget) {
			log.Warn("Material code column '%s' not found in reference file", codeTarget)
		}
		return 0
	}

	codes, _ := in.Column(sourceCode)
	refCodes, _ := ref.Column(codeTarget)

	populated := 0
	for _, name := range matched {
		refValues, ok := ref.Column(name)
		if !ok {
			log.Warn("Matched column '%s' not found in reference file", name)
			continue
		}

		// Code -> value, last-write-wins on duplicate codes.
		lookup := make(map[string]string, len(refCodes))
		for i, code := range refCodes {
			lookup[strings.TrimSpace(code)] = refValues[i]
		}

		values := make([]string, len(codes))
		for i, code := range codes {
			values[i] = lookup[strings.TrimSpace(code)]
		}
		out.SetColumn(name, values)
		populated++
	}

	return populated
}

// =============================================================================
// FIXED-VALUE INJECTION
// =============================================================================

// injectFixed sets every row of each configured column to its constant
// value, overwriting anything computed earlier for that name. Columns are
// applied in sorted name order so runs are deterministic.
func injectFixed(out *table.Table, fixed map[string]string) {
	names := make([]string, 0, len(fixed))
	for name := range fixed {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		out.Fill(name, fixed[name])
	}
}

// =============================================================================
// ASSEMBLY
// =============================================================================

// assemble runs projection, join, fixed injection and canonical reindexing
// over an already loaded and filtered input table.
//
// RETURNS:
//   - The output table in the canonical declaration column order.
//   - Statistics about what the steps populated.
func assemble(in, ref *table.Table, cm *mapping.ColumnMap, cfg *config.Config, log warnLogger) (*table.Table, assembleStats) {
	out := table.NewWithLength(in.Len())
	stats := assembleStats{}

	stats.ColumnsProjected = projectPreserved(out, in, cm, cfg.PreservedColumns, log)
	stats.ColumnsMatched = joinMatched(out, in, ref, cm, cfg.MaterialCodeColumn, cfg.MatchedColumns, log)
	injectFixed(out, cfg.FixedColumns)

	return out.Reindex(mapping.CanonicalColumns), stats
}
