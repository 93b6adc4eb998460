// Package lucky filters, sorts and labels "lucky" numbers: the odd values
// of an input list, in ascending order.
package lucky

import (
	"fmt"
	"slices"
)

// Numbers returns the odd values of in, sorted ascending.
// in is not modified.
func Numbers(in []int) []int {
	out := make([]int, 0, len(in))
	for _, n := range in {
		if n%2 != 0 {
			out = append(out, n)
		}
	}
	slices.Sort(out)

	return out
}

// Lines maps each value of Numbers(in) to "<n> is a lucky number!".
func Lines(in []int) []string {
	nums := Numbers(in)
	out := make([]string, len(nums))
	for i, n := range nums {
		out[i] = fmt.Sprintf("%d is a lucky number!", n)
	}

	return out
}
