package egeria

import "fmt"

// Sentinels the platform conventions use for "nothing there"
const (
	// NoElementsFound is the text of an empty query result
	NoElementsFound = "No elements found"
	// NoGUIDReturned is returned by create calls whose response carries no guid
	NoGUIDReturned = "NO_GUID_RETURNED"
)

// Result is the outcome of a successful query. Every query has three outcomes: an
// error, an empty Result (the platform found nothing), or a Result holding a value.
type Result[T any] struct {
	value T
	found bool
}

// Found wraps v in a non-empty Result
func Found[T any](v T) Result[T] {
	return Result[T]{value: v, found: true}
}

// Empty returns a Result holding nothing
func Empty[T any]() Result[T] {
	return Result[T]{}
}

// Get returns the value and whether there is one
func (r Result[T]) Get() (T, bool) {
	return r.value, r.found
}

// Found reports whether the result holds a value
func (r Result[T]) Found() bool {
	return r.found
}

// Value returns the value, or the zero value of T when the result is empty
func (r Result[T]) Value() T {
	return r.value
}

// String returns NoElementsFound for an empty result
func (r Result[T]) String() string {
	if !r.found {
		return NoElementsFound
	}
	return fmt.Sprint(r.value)
}
