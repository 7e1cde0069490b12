package products

import "strings"

// Filter is a pure function of (items, spec): case-insensitive substring
// match over name, brand and description OR'd together, AND'd with an
// exact category match when one is set. Repeated application over the
// same cache yields the same result.
func Filter(items []Product, spec FilterSpec) []Product {
	if spec.Zero() {
		return items
	}

	needle := strings.ToLower(strings.TrimSpace(spec.Search))
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if spec.CategoryID != "" && p.CategoryID != spec.CategoryID {
			continue
		}
		if needle != "" && !matches(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
