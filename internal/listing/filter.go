package listing

import (
	"fmt"
	"strings"
)

// Filter returns the items where at least one of fields contains term,
// ignoring case. A blank term returns items unchanged.
func Filter[T any](items []T, term string, fields []string, get Getter[T]) []T {
	if strings.TrimSpace(term) == "" {
		return items
	}

	needle := strings.ToLower(strings.TrimSpace(term))

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAny(item, needle, fields, get) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matchesAny[T any](item T, needle string, fields []string, get Getter[T]) bool {
	for _, field := range fields {
		value, ok := get(item, field)
		if !ok || value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(stringOf(value)), needle) {
			return true
		}
	}
	return false
}

// stringOf renders a field value the way users see it.
func stringOf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
