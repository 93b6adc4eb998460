// Package pick returns a random integer from an optional list, falling back
// to the range [FallbackMin, FallbackMax] when the list is nil or empty.
package pick

import "math/rand/v2"

// Fallback range used when there is nothing to pick from.
const (
	FallbackMin = 1
	FallbackMax = 100
)

// Source is the randomness Pick draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Pick returns a random element of xs, or a random integer in
// [FallbackMin, FallbackMax] if xs is nil or empty.
// A nil src uses the package-level generator.
func Pick(src Source, xs []int) int {
	if src == nil {
		src = globalSource{}
	}
	if len(xs) == 0 {
		return FallbackMin + src.IntN(FallbackMax-FallbackMin+1)
	}

	return xs[src.IntN(len(xs))]
}
