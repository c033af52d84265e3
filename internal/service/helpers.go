package service

import "strings"

// normalizeTagNames trims whitespace and drops empties and duplicates,
// preserving first-seen order.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
