package interval_test

import (
	"fmt"

	"github.com/katalvlaran/ivl/interval"
)

// ExamplePoint demonstrates exactness of point arithmetic: operations on
// exact inputs stay exact, with zero width.
func ExamplePoint() {
	sum := interval.Point(5).Add(interval.Point(3))
	fmt.Println(sum, sum.Width())
	// Output: 8 0
}

// ExampleMeasured demonstrates rigorous bounding of a rounded input:
// 0.1 is not representable in binary, so it enters as a one-ULP-wide pad
// and every product soundly contains the true decimal value.
func ExampleMeasured() {
	tenth := interval.Measured(0.1)
	product := interval.Point(3).Mul(tenth)
	fmt.Println(product.Contains(0.3))
	// Output: true
}

// ExampleInterval_Div demonstrates the zero-divisor policy: 0/0 has no
// certain result and comes back as the Empty sentinel.
func ExampleInterval_Div() {
	a, _ := interval.New(-1, 1)
	fmt.Println(a.Div(a))
	// Output: [empty]
}

// ExampleInterval_Sqrt demonstrates the undefined-result sentinel for a
// partially negative radicand.
func ExampleInterval_Sqrt() {
	i, _ := interval.New(-4, 9)
	fmt.Println(i.Sqrt().IsEmpty())
	// Output: true
}
