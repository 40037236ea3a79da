// Package matrix: element-type constraint.
package matrix

import "golang.org/x/exp/constraints"

// Numeric is the compile-time predicate gating Matrix element types: any
// type whose underlying type is a fixed-width integer or a float, i.e. a
// type closed under +, -, *, / with results convertible back to itself.
//
// Instantiating Matrix (or any algebra function) with a type outside this
// set is a compile error — there is no runtime check and no runtime error
// path for constraint violations.
type Numeric interface {
	constraints.Integer | constraints.Float
}
