package bit

import (
	"math/bits"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func collect(t *testing.T, k, n int) []uint32 {
	c, err := NewCombination(k, n)
	require.NoError(t, err)

	var masks []uint32
	for c.Next() {
		masks = append(masks, c.Mask())
	}
	return masks
}

func TestCombinationSmall(t *testing.T) {
	assert.Equal(t, []uint32{0x1, 0x2, 0x4, 0x8}, collect(t, 1, 4))
	assert.Equal(t, []uint32{0x3, 0x5, 0x6, 0x9, 0xa, 0xc}, collect(t, 2, 4))
	assert.Equal(t, []uint32{0x7, 0xb, 0xd, 0xe}, collect(t, 3, 4))
	assert.Equal(t, []uint32{0xf}, collect(t, 4, 4))
	assert.Equal(t, []uint32{0x0}, collect(t, 0, 4))
	assert.Equal(t, []uint32{0x0}, collect(t, 0, 0))
}

func TestCombinationErrorPatterns(t *testing.T) {
	for k, want := range []int{1, 24, 276, 2024, 10626} {
		c, err := NewCombination(k, 24)
		require.NoError(t, err)
		require.Equal(t, want, c.Count())

		var (
			count int
			last  uint32
		)
		for c.Next() {
			mask := c.Mask()
			require.Equal(t, k, bits.OnesCount32(mask), "mask %#06x", mask)
			require.Zero(t, mask&^0xffffff, "mask %#06x outside of 24 bits", mask)
			if count > 0 {
				require.Greater(t, mask, last)
			}
			last = mask
			count++
		}
		assert.Equal(t, want, count, "%d-bit patterns", k)
		assert.False(t, c.Next(), "exhausted combination restarted")
	}
}

func TestCombinationFullWidth(t *testing.T) {
	masks := collect(t, 31, 32)
	require.Len(t, masks, 32)
	assert.Equal(t, uint32(0x7fffffff), masks[0])
	assert.Equal(t, uint32(0xfffffffe), masks[31])
	assert.Equal(t, []uint32{0xffffffff}, collect(t, 32, 32))
}

func TestCombinationReset(t *testing.T) {
	c, err := NewCombination(2, 3)
	require.NoError(t, err)
	for c.Next() {
	}
	c.Reset()
	require.True(t, c.Next())
	require.Equal(t, uint32(0x3), c.Mask())
}

func TestCombinationInvalid(t *testing.T) {
	for _, test := range []struct{ k, n int }{
		{-1, 24}, {25, 24}, {1, 33}, {0, -1},
	} {
		_, err := NewCombination(test.k, test.n)
		assert.Error(t, err, "k=%d n=%d", test.k, test.n)
	}
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1, Binomial(24, 0))
	assert.Equal(t, 2024, Binomial(24, 3))
	assert.Equal(t, 2704156, Binomial(24, 12))
	assert.Equal(t, 0, Binomial(3, 4))
}

// The masks are the same sets as combin generates, in numeric order.
func TestCombinationMatchesCombin(t *testing.T) {
	for k := 1; k <= 4; k++ {
		var (
			want []uint32
			gen  = combin.NewCombinationGenerator(24, k)
			idx  = make([]int, k)
		)
		for gen.Next() {
			var mask uint32
			for _, i := range gen.Combination(idx) {
				mask |= 1 << uint(i)
			}
			want = append(want, mask)
		}
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

		require.Equal(t, want, collect(t, k, 24), "%d of 24 bits", k)
		require.Equal(t, combin.Binomial(24, k), Binomial(24, k))
	}
}
