// Package entropy defines the byte-level boundary between the slump core and
// whatever produces its randomness. A Source hands out uniformly distributed
// bytes on demand and nothing else; all shaping of those bytes into integers,
// floats and selections happens above this package.
package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Source provides uniformly distributed random bytes on demand.
//
// Fill must overwrite p completely or return an error; partial fills are not
// allowed, and on error the contents of p must not be used. Implementations
// must be safe for concurrent use.
type Source interface {
	Fill(p []byte) error
}

// System returns the operating system CSPRNG as a Source. It is stateless
// from the caller's perspective and safe for concurrent use.
func System() Source { return systemSource{} }

type systemSource struct{}

func (systemSource) Fill(p []byte) error {
	if _, err := io.ReadFull(rand.Reader, p); err != nil {
		return fmt.Errorf("entropy: system source: %w", err)
	}
	return nil
}

// FromReader adapts an io.Reader into a Source. Short reads surface as
// errors; the reader is expected to behave like a CSPRNG stream.
func FromReader(r io.Reader) Source { return readerSource{r: r} }

type readerSource struct {
	r io.Reader
}

func (s readerSource) Fill(p []byte) error {
	if _, err := io.ReadFull(s.r, p); err != nil {
		return fmt.Errorf("entropy: reader source: %w", err)
	}
	return nil
}

// Reader exposes a Source through the io.Reader interface, for APIs that
// consume randomness as a stream.
func Reader(src Source) io.Reader { return sourceReader{src: src} }

type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	if err := r.src.Fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
