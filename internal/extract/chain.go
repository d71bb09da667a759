// Package extract derives article fields from a fetched page. Every field is
// produced by an ordered list of pure extractors; the first non-empty result
// wins and total failure yields the zero value.
package extract

// FirstNonEmpty runs extractors in order and returns the first non-zero result.
func FirstNonEmpty[T comparable](extractors ...func() T) T {
	var zero T
	for _, fn := range extractors {
		if v := fn(); v != zero {
			return v
		}
	}
	return zero
}

// FirstNonEmptySlice is FirstNonEmpty for slice results.
func FirstNonEmptySlice[T any](extractors ...func() []T) []T {
	for _, fn := range extractors {
		if v := fn(); len(v) > 0 {
			return v
		}
	}
	return nil
}
