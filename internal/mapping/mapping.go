// =============================================================================
// Excel Shipment Converter - Column Mapping
// =============================================================================
//
// This package holds the static bilingual column map used to translate the
// invoice headers of the source workbook (English) into the customs
// declaration headers of the output workbook (Chinese), plus the canonical
// output column order.
//
// The map is a fixed, two-way association: a forward index (source label ->
// target label) and a reverse index (target label -> source label), both
// built once at construction. It is deliberately NOT part of the external
// configuration surface — the declaration schema does not vary per shipment.
//
// =============================================================================

package mapping

// =============================================================================
// CANONICAL OUTPUT ORDER
// =============================================================================

// CanonicalColumns is the exact column sequence of the output workbook.
// Length and order are invariant across all runs.
var CanonicalColumns = []string{
	"项号",         // Item number
	"商品编号",       // Product code
	"品名",         // Product name
	"型号",         // Model number
	"申报要素",       // Declaration elements
	"数量",         // Quantity
	"单位",         // Unit
	"单价",         // Unit price
	"总价",         // Total price
	"币制",         // Currency
	"原产国（地区）",    // Country (region) of origin
	"最终目的国（地区）",  // Final destination country (region)
	"境内货源地",      // Domestic source
	"征免",         // Tax exemption
	"净重",         // Net weight
}

// ItemNumberColumn is the target label of the item-number column.
// Its source counterpart carries the truncation signal for trailing
// notes/totals rows.
const ItemNumberColumn = "项号"

// =============================================================================
// COLUMN MAP STRUCTURE
// =============================================================================

// Pair is a single source->target column association.
type Pair struct {
	Source string
	Target string
}

// ColumnMap is a bidirectional source<->target column label association.
type ColumnMap struct {
	// forward maps a source label to its target label.
	forward map[string]string

	// reverse maps a target label back to its source label.
	reverse map[string]string

	// sources holds the source labels in definition order.
	sources []string
}

// NewColumnMap builds a ColumnMap from ordered pairs.
// On duplicate labels the last pair wins in both directions.
func NewColumnMap(pairs []Pair) *ColumnMap {
	m := &ColumnMap{
		forward: make(map[string]string, len(pairs)),
		reverse: make(map[string]string, len(pairs)),
		sources: make([]string, 0, len(pairs)),
	}
	for _, p := range pairs {
		if _, seen := m.forward[p.Source]; !seen {
			m.sources = append(m.sources, p.Source)
		}
		m.forward[p.Source] = p.Target
		m.reverse[p.Target] = p.Source
	}
	return m
}

// Default returns the built-in invoice->declaration column map.
func Default() *ColumnMap {
	return NewColumnMap([]Pair{
		{Source: "NO.", Target: "项号"},
		{Source: "Material NO.", Target: "商品编号"},
		{Source: "DESCRIPTION", Target: "品名"},
		{Source: "Model NO.", Target: "型号"},
		{Source: "Qty", Target: "数量"},
		{Source: "Unit", Target: "单位"},
		{Source: "Unit Price", Target: "单价"},
		{Source: "Amount", Target: "总价"},
		{Source: "net weight", Target: "净重"},
	})
}

// =============================================================================
// LOOKUPS
// =============================================================================

// Target returns the target label for a source label.
func (m *ColumnMap) Target(source string) (string, bool) {
	target, ok := m.forward[source]
	return target, ok
}

// Source returns the source label for a target label.
func (m *ColumnMap) Source(target string) (string, bool) {
	source, ok := m.reverse[target]
	return source, ok
}

// SourceOrLiteral returns the source label for a target label, falling back
// to the target label itself when no mapping exists. Used when a configured
// label may name a source column directly.
func (m *ColumnMap) SourceOrLiteral(target string) string {
	if source, ok := m.reverse[target]; ok {
		return source
	}
	return target
}

// Sources returns the source labels in definition order.
func (m *ColumnMap) Sources() []string {
	out := make([]string, len(m.sources))
	copy(out, m.sources)
	return out
}
