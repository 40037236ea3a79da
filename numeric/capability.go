// Package numeric: capability probing.
// The probe is an interface assertion resolved at binding time — a value
// either implements the capability or it does not; nothing is inspected
// per call beyond the assertion itself.
package numeric

// Sized is the capability of reporting a total element count. Collection-like
// values in this module (e.g. *matrix.Matrix) implement it; plain scalars and
// slices do not.
type Sized interface {
	// Size returns the total number of elements held by the value.
	Size() int
}

// HasSize reports whether v carries the Sized capability.
// Complexity: O(1) — a single interface assertion.
func HasSize(v any) bool {
	_, ok := v.(Sized)

	return ok
}
