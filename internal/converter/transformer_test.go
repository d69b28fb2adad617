package converter

import (
	"fmt"
	"testing"

	"github.com/ginjaninja78/excel-shipment-converter/internal/config"
	"github.com/ginjaninja78/excel-shipment-converter/internal/mapping"
	"github.com/ginjaninja78/excel-shipment-converter/internal/table"
	"github.com/stretchr/testify/assert"
)

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	warnings []string
}

func (r *recordingLogger) Warn(msg string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(msg, args...))
}

// inputTable builds a minimal shipment table.
func inputTable() *table.Table {
	return table.FromRows(
		[]string{"NO.", "Material NO.", "DESCRIPTION", "Qty"},
		[][]string{
			{"1", "M001", "Widget", "10"},
			{"2", "M002", "Gadget", "5"},
			{"3", "M404", "Gizmo", "7"},
		},
	)
}

// referenceTable builds a minimal material master table.
func referenceTable() *table.Table {
	return table.FromRows(
		[]string{"商品编号", "申报要素", "境内货源地"},
		[][]string{
			{"M001", "elements-1", "深圳"},
			{"M002", "elements-2-old", "东莞"},
			{"M002", "elements-2", "广州"},
		},
	)
}

// =============================================================================
// MISSING-VALUE NORMALIZATION
// =============================================================================

func TestIsMissing(t *testing.T) {
	assert.True(t, isMissing(""))
	assert.True(t, isMissing("   "))
	assert.True(t, isMissing("\t"))
	assert.True(t, isMissing("nan"))
	assert.True(t, isMissing("NaN"))
	assert.True(t, isMissing(" nan "))
	assert.False(t, isMissing("0"))
	assert.False(t, isMissing("1"))
	assert.False(t, isMissing("nano"))
}

// =============================================================================
// TRUNCATION
// =============================================================================

func TestTruncateAtFirstMissing(t *testing.T) {
	tbl := table.FromRows(
		[]string{"NO.", "DESCRIPTION"},
		[][]string{
			{"1", "keep"},
			{"2", "keep"},
			{"", "totals"},
			{"4", "stray"},
		},
	)

	retained := truncateAtFirstMissing(tbl, "NO.")

	assert.Equal(t, 2, retained)
	assert.Equal(t, 2, tbl.Len())
	desc, _ := tbl.Column("DESCRIPTION")
	assert.Equal(t, []string{"keep", "keep"}, desc)
}

func TestTruncateAtWhitespaceAndNan(t *testing.T) {
	tbl := table.FromRows(
		[]string{"NO."},
		[][]string{{"1"}, {" "}, {"3"}},
	)
	assert.Equal(t, 1, truncateAtFirstMissing(tbl, "NO."))

	tbl = table.FromRows(
		[]string{"NO."},
		[][]string{{"1"}, {"2"}, {"nan"}},
	)
	assert.Equal(t, 2, truncateAtFirstMissing(tbl, "NO."))
}

func TestTruncateNormalizesItemNumbers(t *testing.T) {
	tbl := table.FromRows(
		[]string{"NO."},
		[][]string{{" 1 "}, {"2"}},
	)

	truncateAtFirstMissing(tbl, "NO.")

	values, _ := tbl.Column("NO.")
	assert.Equal(t, []string{"1", "2"}, values)
}

func TestTruncateMissingColumnIsNoOp(t *testing.T) {
	tbl := table.FromRows([]string{"DESCRIPTION"}, [][]string{{"a"}, {""}, {"c"}})

	assert.Equal(t, 3, truncateAtFirstMissing(tbl, "NO."))
	assert.Equal(t, 3, tbl.Len())
}

// =============================================================================
// PROJECTION
// =============================================================================

func TestProjectPreservedCopiesMappedColumns(t *testing.T) {
	in := inputTable()
	out := table.NewWithLength(in.Len())
	log := &recordingLogger{}

	projected := projectPreserved(out, in, mapping.Default(), []string{"项号", "品名"}, log)

	assert.Equal(t, 2, projected)
	assert.Empty(t, log.warnings)

	item, ok := out.Column("项号")
	assert.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, item)

	name, ok := out.Column("品名")
	assert.True(t, ok)
	assert.Equal(t, []string{"Widget", "Gadget", "Gizmo"}, name)
}

func TestProjectPreservedUnresolvableColumnWarnsAndStaysAbsent(t *testing.T) {
	in := inputTable()
	out := table.NewWithLength(in.Len())
	log := &recordingLogger{}

	// 净重 maps to "net weight", which the input table lacks; 币制 has no
	// mapping at all.
	projected := projectPreserved(out, in, mapping.Default(), []string{"净重", "币制"}, log)

	assert.Equal(t, 0, projected)
	assert.Len(t, log.warnings, 2)
	assert.Contains(t, log.warnings[0], "净重")
	assert.False(t, out.HasColumn("净重"))
	assert.False(t, out.HasColumn("币制"))
}

// =============================================================================
// LOOKUP JOIN
// =============================================================================

func TestJoinMatchedPopulatesFromReference(t *testing.T) {
	in := inputTable()
	ref := referenceTable()
	out := table.NewWithLength(in.Len())
	log := &recordingLogger{}

	populated := joinMatched(out, in, ref, mapping.Default(), "商品编号", []string{"申报要素", "境内货源地"}, log)

	assert.Equal(t, 2, populated)
	assert.Empty(t, log.warnings)

	elements, _ := out.Column("申报要素")
	// M002 is duplicated in the reference; the last occurrence wins.
	// M404 is absent from the reference; its cell is null.
	assert.Equal(t, []string{"elements-1", "elements-2", ""}, elements)

	origin, _ := out.Column("境内货源地")
	assert.Equal(t, []string{"深圳", "广州", ""}, origin)
}

func TestJoinMatchedColumnMissingFromReference(t *testing.T) {
	in := inputTable()
	ref := referenceTable()
	out := table.NewWithLength(in.Len())
	log := &recordingLogger{}

	populated := joinMatched(out, in, ref, mapping.Default(), "商品编号", []string{"申报要素", "不存在"}, log)

	assert.Equal(t, 1, populated)
	assert.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "不存在")
	assert.True(t, out.HasColumn("申报要素"))
	assert.False(t, out.HasColumn("不存在"))
}

func TestJoinSkippedWhenSourceCodeColumnMissing(t *testing.T) {
	in := table.FromRows([]string{"NO."}, [][]string{{"1"}})
	ref := referenceTable()
	out := table.NewWithLength(in.Len())
	log := &recordingLogger{}

	populated := joinMatched(out, in, ref, mapping.Default(), "商品编号", []string{"申报要素"}, log)

	assert.Equal(t, 0, populated)
	assert.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "input file")
	assert.False(t, out.HasColumn("申报要素"))
}

func TestJoinSkippedWhenReferenceCodeColumnMissing(t *testing.T) {
	in := inputTable()
	ref := table.FromRows([]string{"申报要素"}, [][]string{{"x"}})
	out := table.NewWithLength(in.Len())
	log := &recordingLogger{}

	populated := joinMatched(out, in, ref, mapping.Default(), "商品编号", []string{"申报要素"}, log)

	assert.Equal(t, 0, populated)
	assert.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "reference file")
}

func TestJoinNormalizesCodesBeforeMatching(t *testing.T) {
	in := table.FromRows(
		[]string{"Material NO."},
		[][]string{{" M001 "}},
	)
	ref := table.FromRows(
		[]string{"商品编号", "申报要素"},
		[][]string{{"M001", "elements-1"}},
	)
	out := table.NewWithLength(in.Len())

	joinMatched(out, in, ref, mapping.Default(), "商品编号", []string{"申报要素"}, &recordingLogger{})

	elements, _ := out.Column("申报要素")
	assert.Equal(t, []string{"elements-1"}, elements)
}

// =============================================================================
// FIXED-VALUE INJECTION
// =============================================================================

func TestInjectFixedOverwrites(t *testing.T) {
	out := table.NewWithLength(2)
	out.SetColumn("币制", []string{"JPY", "EUR"})

	injectFixed(out, map[string]string{"币制": "USD", "征免": "照章征税"})

	currency, _ := out.Column("币制")
	assert.Equal(t, []string{"USD", "USD"}, currency)

	tax, _ := out.Column("征免")
	assert.Equal(t, []string{"照章征税", "照章征税"}, tax)
}

// =============================================================================
// ASSEMBLY
// =============================================================================

func TestAssembleCanonicalShape(t *testing.T) {
	cfg := config.Default()
	log := &recordingLogger{}

	out, stats := assemble(inputTable(), referenceTable(), mapping.Default(), cfg, log)

	// Exactly the canonical 15 columns, in order, regardless of which steps
	// populated what.
	assert.Equal(t, mapping.CanonicalColumns, out.Columns())
	assert.Equal(t, 3, out.Len())

	// Preserved columns that resolved.
	item, _ := out.Column("项号")
	assert.Equal(t, []string{"1", "2", "3"}, item)

	// Preserved columns that did not resolve surface as all-blank.
	weight, _ := out.Column("净重")
	assert.Equal(t, []string{"", "", ""}, weight)

	// Matched columns came from the reference.
	elements, _ := out.Column("申报要素")
	assert.Equal(t, []string{"elements-1", "elements-2", ""}, elements)

	// Fixed columns hold their constants on every row.
	currency, _ := out.Column("币制")
	assert.Equal(t, []string{"USD", "USD", "USD"}, currency)

	// Only 项号, 品名 and 数量 have source columns in this input.
	assert.Equal(t, 3, stats.ColumnsProjected)
	assert.Equal(t, 2, stats.ColumnsMatched)
	assert.Len(t, log.warnings, 5)
}

func TestAssembleFixedBeatsProjectedCollision(t *testing.T) {
	cfg := &config.Config{
		PreservedColumns:   []string{"数量"},
		MaterialCodeColumn: "商品编号",
		MatchedColumns:     []string{},
		FixedColumns:       map[string]string{"数量": "0"},
	}

	out, _ := assemble(inputTable(), referenceTable(), mapping.Default(), cfg, &recordingLogger{})

	qty, _ := out.Column("数量")
	assert.Equal(t, []string{"0", "0", "0"}, qty)
}

func TestAssembleExtraColumnsDropped(t *testing.T) {
	cfg := &config.Config{
		PreservedColumns:   []string{},
		MaterialCodeColumn: "商品编号",
		MatchedColumns:     []string{},
		FixedColumns:       map[string]string{"非法列": "x"},
	}

	out, _ := assemble(inputTable(), referenceTable(), mapping.Default(), cfg, &recordingLogger{})

	assert.Equal(t, mapping.CanonicalColumns, out.Columns())
	assert.False(t, out.HasColumn("非法列"))
}
