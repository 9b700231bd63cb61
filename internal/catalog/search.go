package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining diacritical marks after NFD
// decomposition, so "Jamón" and "jamon" compare equal.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and drops accents for matching purposes.
func Normalize(text string) string {
	out, _, err := transform.String(stripAccents, strings.ToLower(text))
	if err != nil {
		return strings.ToLower(text)
	}
	return out
}

// MatchesQuery reports whether every word of query occurs in text,
// ignoring case and accents. An empty query matches everything.
func MatchesQuery(text, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	target := Normalize(text)
	for _, word := range strings.Fields(Normalize(query)) {
		if !strings.Contains(target, word) {
			return false
		}
	}
	return true
}

// Search returns every product whose name or description matches the
// query, in catalog order.
func (c *Catalog) Search(query string) []*Product {
	var results []*Product
	for si := range c.sections {
		sec := &c.sections[si]
		for bi := range sec.Subcategories {
			sub := &sec.Subcategories[bi]
			for ci := range sub.Categories {
				cat := &sub.Categories[ci]
				for pi := range cat.Products {
					p := &cat.Products[pi]
					if MatchesQuery(p.Name, query) || MatchesQuery(p.Description, query) {
						results = append(results, p)
					}
				}
			}
		}
	}
	return results
}
