package bit

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// Combination enumerates every mask with exactly k of the lower n bits set,
// in increasing numeric order. Unlike combin.CombinationGenerator it yields
// the masks directly, without an index slice per combination:
//
//	c, _ := NewCombination(2, 24)
//	for c.Next() {
//		pattern := c.Mask()
//	}
type Combination struct {
	k, n    int
	mask    uint64
	limit   uint64
	started bool
	done    bool
}

// NewCombination returns a Combination for k set bits in an n-bit field.
func NewCombination(k, n int) (*Combination, error) {
	if n < 0 || n > 32 {
		return nil, errors.Errorf("bit: field width %d out of range [0, 32]", n)
	}
	if k < 0 || k > n {
		return nil, errors.Errorf("bit: can't set %d bits in a %d-bit field", k, n)
	}
	return &Combination{
		k:     k,
		n:     n,
		limit: uint64(1) << uint(n),
	}, nil
}

// Next advances to the next mask and reports whether there is one.
func (c *Combination) Next() bool {
	switch {
	case c.done:
		return false
	case !c.started:
		c.started = true
		c.mask = uint64(1)<<uint(c.k) - 1
		return true
	case c.k == 0:
		// The empty mask is the only combination.
		c.done = true
		return false
	}

	// Next higher number with the same number of ones (Gosper's hack).
	var (
		lowest = c.mask & -c.mask
		ripple = c.mask + lowest
	)
	c.mask = ripple | ((ripple^c.mask)>>2)/lowest
	if c.mask >= c.limit {
		c.done = true
		return false
	}
	return true
}

// Mask returns the current mask. It is only valid after Next returned true.
func (c *Combination) Mask() uint32 {
	return uint32(c.mask)
}

// Reset rewinds the Combination to before the first mask.
func (c *Combination) Reset() {
	c.started = false
	c.done = false
	c.mask = 0
}

// Count returns the total number of masks, the binomial coefficient n over k.
func (c *Combination) Count() int {
	return Binomial(c.n, c.k)
}

// Binomial returns n over k, or 0 if k is outside [0, n].
func Binomial(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return combin.Binomial(n, k)
}
