// Package isqrt finds exact integer square roots over a small, fixed domain.
//
// 🚀 What is it?
//
//	Root accepts an integer from 1 through 10 000 and returns its integer
//	square root, without calling math.Sqrt. Inputs outside the domain and
//	inputs that are not perfect squares are reported as distinct errors.
//
// ✨ Key features:
//   - range check before any search (out-of-bounds always wins)
//   - fixed probe limit of 100 candidates (100² = MaxInput)
//   - sentinel errors usable with errors.Is
//   - Describe/Message helpers producing the user-facing sentences
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/checkpoint/isqrt"
//
//	r, err := isqrt.Root(81)
//	switch {
//	case errors.Is(err, isqrt.ErrOutOfBounds):
//	  // n < 1 or n > 10000
//	case errors.Is(err, isqrt.ErrNoRoot):
//	  // n is not a perfect square
//	default:
//	  fmt.Println(r) // 9
//	}
//
// Performance:
//
//   - Time:   O(ProbeLimit), independent of n
//   - Memory: O(1)
package isqrt
