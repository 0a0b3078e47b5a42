package listing

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Direction is the sort order of a list column.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort expression errors.
var (
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// String implements fmt.Stringer.
func (d Direction) String() string { return string(d) }

// ParseDirection parses "asc" or "desc", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, s)
	}
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// An empty string means "no sort" and yields an empty field.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field string, dir Direction, err error) {
	if strings.TrimSpace(expr) == "" {
		return "", Ascending, nil
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field = strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", ErrEmptySortField
	}

	dir = Ascending
	if len(parts) == sortPartsMax {
		if dir, err = ParseDirection(parts[1]); err != nil {
			return "", "", err
		}
	}
	return field, dir, nil
}

// Sort returns a stably sorted copy of items ordered by field.
// An empty field returns items unchanged.
//
// Items whose field is absent compare greater than any present value, and
// Descending negates the whole comparison. Absent values therefore come
// last when ascending and first when descending.
func Sort[T any](items []T, field string, dir Direction, get Getter[T]) []T {
	if field == "" {
		return items
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		c := compareField(a, b, field, get)
		if dir == Descending {
			return -c
		}
		return c
	})
	return sorted
}

func compareField[T any](a, b T, field string, get Getter[T]) int {
	va, okA := get(a, field)
	vb, okB := get(b, field)
	okA = okA && va != nil
	okB = okB && vb != nil

	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return CompareValues(va, vb)
}

// CompareValues orders two present values by their natural order: strings
// lexicographically, numbers numerically, and any type with a
// Compare(other T) int method (time.Time, product.Date) through that
// method. Values of different or unknown kinds compare by their string forms.
func CompareValues(a, b any) int {
	if x, ok := a.(string); ok {
		if y, okB := b.(string); okB {
			return cmp.Compare(x, y)
		}
	}
	if c, ok := compareByMethod(a, b); ok {
		return c
	}
	if fa, ok := toFloat(a); ok {
		if fb, okB := toFloat(b); okB {
			return cmp.Compare(fa, fb)
		}
	}
	return cmp.Compare(stringOf(a), stringOf(b))
}

// compareByMethod calls a.Compare(b) when a has such a method accepting b.
func compareByMethod(a, b any) (int, bool) {
	m := reflect.ValueOf(a).MethodByName("Compare")
	if !m.IsValid() {
		return 0, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return 0, false
	}
	bv := reflect.ValueOf(b)
	if !bv.Type().AssignableTo(mt.In(0)) {
		return 0, false
	}
	return int(m.Call([]reflect.Value{bv})[0].Int()), true
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // Only numeric kinds are converted.
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
