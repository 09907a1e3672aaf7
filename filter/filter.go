// Package filter selects decoded MyShows items with expr-lang expressions.
//
// Every top-level field of an item is a variable, so a catalogue entry can
// be filtered with expressions like
//
//	rating >= 4 and year > 2010 and lower(title) contains "star"
//	hasGenre(18) and daysSince(parseDate(started)) < 365
//
// Items without a parseable date fail daysSince and do not match.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

var defaultCompiler = NewExprCompiler()

// CompileFilter compiles an expression with the package's shared, cached
// compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Select returns the items matching f, preserving order
func Select(f Filter, items []Item) []Item {
	return lo.Filter(items, func(item Item, _ int) bool {
		return f.Match(item)
	})
}

// DecodeItems turns a raw JSON array, or a single object, into items.
// Array elements that are not objects are skipped.
func DecodeItems(raw json.RawMessage) ([]Item, error) {
	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		var single Item
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, fmt.Errorf("failed to decode items: %w", err)
		}
		return []Item{single}, nil
	}

	return lo.FilterMap(values, func(v any, _ int) (Item, bool) {
		item, ok := v.(map[string]any)
		return item, ok
	}), nil
}
