package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/fixmat/numeric"
)

// ExampleFibonacci demonstrates the iterative sequence helper.
func ExampleFibonacci() {
	v, _ := numeric.Fibonacci(10)
	fmt.Println(v)
	// Output:
	// 55
}

// ExampleApproxEqual demonstrates the two-sided epsilon comparison.
func ExampleApproxEqual() {
	fmt.Println(numeric.ApproxEqual(1.0, 1.0+1e-12, numeric.DefaultEpsilon))
	fmt.Println(numeric.ApproxEqual(1.0, 1.1, numeric.DefaultEpsilon))
	// Output:
	// true
	// false
}

// ExampleSum demonstrates left-to-right variadic accumulation.
func ExampleSum() {
	fmt.Println(numeric.Sum(1, 2, 3, 4, 5))
	// Output:
	// 15
}
