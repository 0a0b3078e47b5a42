// Package listing provides the in-memory list transformations behind every
// product view.
//
// This package contains three independent, pure stages:
//   - Filter: case-insensitive substring search over named fields
//   - Sort: stable ordering by one field and a Direction
//   - Paginate: slicing one page out of an ordered sequence, plus Meta
//
// Each stage reads item fields through a Getter, so the same code serves
// any record type. None of the stages mutate their input.
package listing

// Getter returns the named field of item and whether it holds a value.
// Absent values never match a filter and sort after present ones.
type Getter[T any] func(item T, field string) (any, bool)
