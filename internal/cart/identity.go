package cart

import (
	"sort"
	"strings"

	"menu-ordering-service/internal/catalog"
)

// LineID derives the deterministic composite identity of a cart line
// from its base product id(s), chosen size, and selected option labels.
// Base ids are sorted so combining flavor A+B and B+A yield the same
// key, options are sorted so selection order is irrelevant, and absent
// fields are simply omitted. Every call site must build identities
// through this function; identical tuples always produce byte-identical
// keys, which is what enables quantity merging in the Engine.
func LineID(productIDs []string, size string, options []string) string {
	ids := make([]string, len(productIDs))
	copy(ids, productIDs)
	sort.Strings(ids)

	parts := []string{strings.Join(ids, "+")}
	if size != "" {
		parts = append(parts, size)
	}
	if len(options) > 0 {
		opts := make([]string, len(options))
		copy(opts, options)
		sort.Strings(opts)
		parts = append(parts, strings.Join(opts, ","))
	}
	return strings.Join(parts, "::")
}

// DisplayName builds the human-readable label of a simple line:
// the product name, the size in parentheses, and the chosen options.
func DisplayName(p *catalog.Product, size string, options []string) string {
	var b strings.Builder
	b.WriteString(p.Name)
	if size != "" {
		b.WriteString(" (")
		b.WriteString(size)
		b.WriteString(")")
	}
	if len(options) > 0 {
		opts := make([]string, len(options))
		copy(opts, options)
		sort.Strings(opts)
		b.WriteString(": ")
		b.WriteString(strings.Join(opts, ", "))
	}
	return b.String()
}

// CombinedDisplayName labels a half-and-half line. Flavor names keep
// their selection order and drop the leading "Pizza " to read naturally:
// "Combinada (Mediana): Hawaiana / Pollo".
func CombinedDisplayName(a, b *catalog.Product, size string) string {
	flavors := strings.TrimPrefix(a.Name, "Pizza ") + " / " + strings.TrimPrefix(b.Name, "Pizza ")
	return "Combinada (" + size + "): " + flavors
}
