package pick_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/checkpoint/pick"
	"github.com/stretchr/testify/assert"
)

// fixed always returns the same index, clamped to n-1.
type fixed int

func (f fixed) IntN(n int) int { return min(int(f), n-1) }

func TestPick_FromSlice(t *testing.T) {
	xs := []int{10, 20, 30}
	assert.Equal(t, 10, pick.Pick(fixed(0), xs))
	assert.Equal(t, 30, pick.Pick(fixed(2), xs))
}

func TestPick_FallbackBounds(t *testing.T) {
	assert.Equal(t, pick.FallbackMin, pick.Pick(fixed(0), nil))
	assert.Equal(t, pick.FallbackMax, pick.Pick(fixed(1000), []int{}))
}

// TestPick_Random draws repeatedly from a seeded generator and checks
// membership; a nil source must behave the same way.
func TestPick_Random(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	xs := []int{0, 1}
	for i := 0; i < 200; i++ {
		assert.Contains(t, xs, pick.Pick(r, xs))

		v := pick.Pick(r, nil)
		assert.GreaterOrEqual(t, v, pick.FallbackMin)
		assert.LessOrEqual(t, v, pick.FallbackMax)

		g := pick.Pick(nil, nil)
		assert.GreaterOrEqual(t, g, pick.FallbackMin)
		assert.LessOrEqual(t, g, pick.FallbackMax)
	}
}
