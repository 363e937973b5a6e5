// Package slump shapes the output of a cryptographically secure byte source
// into a general-purpose uniform-random API: unbiased integers over arbitrary
// ranges, uniform floats, random selection, in-place shuffling and sampling
// without replacement. All integer draws are built on rejection sampling over
// exact bit widths, so no operation carries modulo bias or floating-point
// bias.
//
// Usage example:
//
//	r := slump.New()
//	n, err := r.Randint(1, 6)
//	if err != nil {
//		panic(err)
//	}
//	fmt.Println("rolled", n)
//
//	deck := []string{"north", "south", "east", "west"}
//	if err := slump.Shuffle(r, deck); err != nil {
//		panic(err)
//	}
//	winners, err := slump.Sample(r, deck, 2)
//	if err != nil {
//		panic(err)
//	}
//	fmt.Println(winners)
//
// The package-level functions operate on a process-wide generator backed by
// the operating system CSPRNG. Generators are not seedable and expose no
// internal state; see Seed, GetState and SetState for the exact contract.
package slump

import (
	"encoding/binary"
	"errors"
	"fmt"

	"pkt.systems/slump/entropy"
)

var (
	// ErrInvalidArgument reports a malformed request: an empty range, a zero
	// step, a negative bit length or an out-of-bounds sample size.
	ErrInvalidArgument = errors.New("slump: invalid argument")

	// ErrUnsupported reports an attempt to read or write generator state,
	// which a non-reproducible secure generator cannot honour.
	ErrUnsupported = errors.New("slump: operation not supported")
)

// Rand draws from an entropy.Source and converts its raw bytes into unbiased
// values. The zero value is not usable; construct instances with New. A Rand
// holds no mutable state of its own, so it is safe for concurrent use
// whenever its source is.
type Rand struct {
	src entropy.Source
}

// Option configures a Rand during construction.
type Option func(*Rand)

// WithSource selects the entropy source backing the generator. The default
// is entropy.System.
func WithSource(src entropy.Source) Option {
	return func(r *Rand) {
		if src != nil {
			r.src = src
		}
	}
}

// New returns a generator backed by the operating system CSPRNG unless an
// alternative source is supplied via WithSource.
func New(opts ...Option) *Rand {
	r := &Rand{src: entropy.System()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var std = New()

// Default returns the process-wide generator used by the package-level
// functions. It is backed by the system source and safe for concurrent use.
func Default() *Rand { return std }

// fill draws len(p) bytes from the source. Source failures are fatal to the
// calling operation and surface verbatim; masking them could silently
// degrade randomness quality.
func (r *Rand) fill(p []byte) error {
	if err := r.src.Fill(p); err != nil {
		return fmt.Errorf("slump: entropy source: %w", err)
	}
	return nil
}

// Uint32 returns a uniform random uint32.
func (r *Rand) Uint32() (uint32, error) {
	var b [4]byte
	if err := r.fill(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// Uint64 returns a uniform random uint64.
func (r *Rand) Uint64() (uint64, error) {
	var b [8]byte
	if err := r.fill(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// Bytes returns n uniformly random bytes.
func (r *Rand) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", ErrInvalidArgument, n)
	}
	b := make([]byte, n)
	if err := r.fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Read fills p with uniformly random bytes, satisfying io.Reader.
func (r *Rand) Read(p []byte) (int, error) {
	if err := r.fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Package-level bindings on the default generator, in the manner of
// math/rand's top-level functions.

// Bits draws bitlen random bits from the default generator.
func Bits(bitlen int) (uint64, error) { return std.Bits(bitlen) }

// Below returns a uniform value in [0, n) from the default generator.
func Below(n uint64) (uint64, error) { return std.Below(n) }

// Intn returns a uniform value in [0, n) from the default generator.
func Intn(n int64) (int64, error) { return std.Intn(n) }

// Randrange returns a uniform value in [start, stop) from the default
// generator.
func Randrange(start, stop int64) (int64, error) { return std.Randrange(start, stop) }

// RandrangeStep returns a uniform value from the stepped range
// start, start+step, ... strictly before stop, using the default generator.
func RandrangeStep(start, stop, step int64) (int64, error) {
	return std.RandrangeStep(start, stop, step)
}

// Randint returns a uniform value in [low, high] from the default generator.
func Randint(low, high int64) (int64, error) { return std.Randint(low, high) }

// Float64 returns a uniform float64 in [0, 1) from the default generator.
func Float64() (float64, error) { return std.Float64() }

// Uint32 returns a uniform uint32 from the default generator.
func Uint32() (uint32, error) { return std.Uint32() }

// Uint64 returns a uniform uint64 from the default generator.
func Uint64() (uint64, error) { return std.Uint64() }

// Bytes returns n uniformly random bytes from the default generator.
func Bytes(n int) ([]byte, error) { return std.Bytes(n) }

// Seed is accepted and silently ignored, matching the contract of a
// non-reproducible secure generator. See (*Rand).Seed.
func Seed(seed int64) { std.Seed(seed) }
