package isqrt_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/checkpoint/isqrt"
)

// ExampleRoot shows branching on the two failure kinds.
func ExampleRoot() {
	for _, n := range []int{10_000, 2, 0} {
		r, err := isqrt.Root(n)
		switch {
		case errors.Is(err, isqrt.ErrOutOfBounds):
			fmt.Println(n, "out of bounds")
		case errors.Is(err, isqrt.ErrNoRoot):
			fmt.Println(n, "no root")
		default:
			fmt.Println(n, "->", r)
		}
	}
	// Output:
	// 10000 -> 100
	// 2 no root
	// 0 out of bounds
}

// ExampleDescribe prints the sentences a caller would show to a user.
func ExampleDescribe() {
	fmt.Println(isqrt.Describe(81))
	fmt.Println(isqrt.Describe(3))
	fmt.Println(isqrt.Describe(10_001))
	// Output:
	// The square root of 81 is 9
	// Your number's square root isn't an integer.
	// Your number is out of bounds.
}
