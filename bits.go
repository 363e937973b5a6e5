package slump

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// maxBits is the widest draw Bits can service in a fixed-width integer.
// Wider requests go through BigBits.
const maxBits = 64

// Bits returns a non-negative integer of exactly bitlen random bits. It
// draws ceil(bitlen/8) bytes from the source, masks the excess high bits of
// the most significant byte and interprets the result as a big-endian
// unsigned integer.
//
// A bitlen of zero returns 0 and consumes no entropy. A bitlen outside
// [0, 64] fails with ErrInvalidArgument; use BigBits for wider draws.
func (r *Rand) Bits(bitlen int) (uint64, error) {
	if bitlen < 0 || bitlen > maxBits {
		return 0, fmt.Errorf("%w: bit length %d outside [0, %d]", ErrInvalidArgument, bitlen, maxBits)
	}
	if bitlen == 0 {
		return 0, nil
	}
	var buf [8]byte
	b := buf[8-(bitlen+7)/8:]
	if err := r.fill(b); err != nil {
		return 0, err
	}
	maskTopByte(b, bitlen)
	return binary.BigEndian.Uint64(buf[:]), nil
}

// BigBits is the arbitrary-width form of Bits. It services any non-negative
// bitlen and returns the draw as a big.Int.
func (r *Rand) BigBits(bitlen int) (*big.Int, error) {
	if bitlen < 0 {
		return nil, fmt.Errorf("%w: negative bit length %d", ErrInvalidArgument, bitlen)
	}
	if bitlen == 0 {
		return new(big.Int), nil
	}
	b := make([]byte, (bitlen+7)/8)
	if err := r.fill(b); err != nil {
		return nil, err
	}
	maskTopByte(b, bitlen)
	return new(big.Int).SetBytes(b), nil
}

// maskTopByte zeroes the bits of b[0] above the bitlen boundary. The low
// bits are kept so the value stays big-endian aligned.
func maskTopByte(b []byte, bitlen int) {
	if rem := bitlen % 8; rem != 0 {
		b[0] &= 0xff >> (8 - rem)
	}
}
