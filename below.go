package slump

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Below returns an unbiased uniform value in [0, n) for n > 0.
//
// It rejection-samples: draw the minimal bit width k such that 2^k >= n and
// redraw while the result lands in [n, 2^k). Each attempt accepts with
// probability n/2^k > 1/2, so the expected number of draws is below two and
// the result carries no modulo bias. Redraws are an invisible part of normal
// operation, not failures.
func (r *Rand) Below(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: Below requires n > 0", ErrInvalidArgument)
	}
	// Exact integer bit length; 2^k > n-1 therefore 2^k >= n. For n == 1
	// this is zero bits and the draw is 0 without consuming entropy.
	k := bits.Len64(n - 1)
	for {
		v, err := r.Bits(k)
		if err != nil {
			return 0, err
		}
		if v < n {
			return v, nil
		}
	}
}

// BigBelow is the arbitrary-width form of Below: an unbiased uniform value
// in [0, n) for any n > 0.
func (r *Rand) BigBelow(n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: BigBelow requires n > 0", ErrInvalidArgument)
	}
	k := new(big.Int).Sub(n, big.NewInt(1)).BitLen()
	for {
		v, err := r.BigBits(k)
		if err != nil {
			return nil, err
		}
		if v.Cmp(n) < 0 {
			return v, nil
		}
	}
}
