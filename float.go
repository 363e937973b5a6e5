package slump

import "encoding/binary"

// Float64 returns a uniform float64 in the half-open interval [0, 1).
//
// Eight raw bytes are split into two 32-bit words; the high word keeps 27
// bits and the low word 26, forming a 53-bit mantissa that is scaled by
// 2^-53. Every representable double in [0, 1) with full 53-bit precision is
// reachable and the result can never round up to 1.0.
func (r *Rand) Float64() (float64, error) {
	var b [8]byte
	if err := r.fill(b[:]); err != nil {
		return 0, err
	}
	hi := binary.BigEndian.Uint32(b[:4]) >> 5
	lo := binary.BigEndian.Uint32(b[4:]) >> 6
	return (float64(hi)*(1<<26) + float64(lo)) / (1 << 53), nil
}
