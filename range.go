package slump

import (
	"fmt"
	"math/big"
)

// Intn returns a uniform value in [0, n) for n > 0. It is the one-argument
// form of Randrange.
func (r *Rand) Intn(n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: empty range [0, %d)", ErrInvalidArgument, n)
	}
	v, err := r.Below(uint64(n))
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// Randrange returns a uniform value in [start, stop). The range must be
// non-empty.
func (r *Rand) Randrange(start, stop int64) (int64, error) {
	if stop <= start {
		return 0, fmt.Errorf("%w: empty range [%d, %d)", ErrInvalidArgument, start, stop)
	}
	// Two's-complement subtraction yields the exact unsigned width for any
	// int64 pair, and the wrap-around on the way back is equally exact.
	width := uint64(stop) - uint64(start)
	v, err := r.Below(width)
	if err != nil {
		return 0, err
	}
	return start + int64(v), nil
}

// RandrangeStep returns a uniform value from the stepped range start,
// start+step, start+2*step, ... strictly before stop (for positive step;
// strictly after stop for negative step). A zero step or an empty range
// fails with ErrInvalidArgument before any entropy is consumed.
func (r *Rand) RandrangeStep(start, stop, step int64) (int64, error) {
	switch {
	case step == 0:
		return 0, fmt.Errorf("%w: zero step for Randrange", ErrInvalidArgument)
	case step == 1:
		return r.Randrange(start, stop)
	}
	// Count the representable values. The intermediate width can exceed
	// int64, so the count is computed exactly in big integers and the draw
	// delegated to the arbitrary-width sampler.
	width := new(big.Int).Sub(big.NewInt(stop), big.NewInt(start))
	n := new(big.Int)
	if step > 0 {
		n.Add(width, big.NewInt(step-1))
	} else {
		n.Add(width, big.NewInt(step+1))
	}
	n.Quo(n, big.NewInt(step))
	if n.Sign() <= 0 {
		return 0, fmt.Errorf("%w: empty range [%d, %d) step %d", ErrInvalidArgument, start, stop, step)
	}
	i, err := r.BigBelow(n)
	if err != nil {
		return 0, err
	}
	res := i.Mul(i, big.NewInt(step))
	res.Add(res, big.NewInt(start))
	// Every value of the stepped range lies between start and stop, so the
	// result is guaranteed to fit back into an int64.
	return res.Int64(), nil
}

// Randint returns a uniform value in [low, high], inclusive on both ends.
// The degenerate range low == high always returns low.
func (r *Rand) Randint(low, high int64) (int64, error) {
	if low > high {
		return 0, fmt.Errorf("%w: empty range [%d, %d]", ErrInvalidArgument, low, high)
	}
	width := uint64(high) - uint64(low) + 1
	if width == 0 {
		// The full int64 span wraps the unsigned width to zero; a plain
		// 64-bit draw covers it uniformly.
		v, err := r.Bits(maxBits)
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	}
	v, err := r.Below(width)
	if err != nil {
		return 0, err
	}
	return low + int64(v), nil
}
