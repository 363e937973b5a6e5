package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

const (
	// defaultRekeyBytes is the amount of keystream emitted before the
	// ChaCha20 source throws away its key and fetches a fresh one from the
	// system CSPRNG.
	defaultRekeyBytes = 1 << 20

	minRekeyBytes = 1 << 10
)

// ChaChaOption configures a ChaCha20 source.
type ChaChaOption func(*chachaSource)

// WithRekeyBytes controls how much keystream is emitted per key before the
// source rekeys from the system CSPRNG. Values below 1 KiB panic.
func WithRekeyBytes(n int) ChaChaOption {
	return func(s *chachaSource) {
		if n < minRekeyBytes {
			panic(fmt.Sprintf("entropy: rekey interval must be >= %d bytes", minRekeyBytes))
		}
		s.rekeyAfter = n
	}
}

// ChaCha20 returns a Source that expands system entropy through a ChaCha20
// keystream, rekeying from the system CSPRNG at a fixed byte interval. It
// trades a small window of computational (rather than information-theoretic)
// security for much higher throughput than reading the kernel per draw.
//
// The source cannot be keyed or reseeded by the caller; key material only
// ever comes from the system CSPRNG, so output is never reproducible.
func ChaCha20(opts ...ChaChaOption) (Source, error) {
	s := &chachaSource{rekeyAfter: defaultRekeyBytes}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.rekey(); err != nil {
		return nil, err
	}
	return s, nil
}

type chachaSource struct {
	mu         sync.Mutex
	stream     *chacha20.Cipher
	remain     int
	rekeyAfter int
}

func (s *chachaSource) rekey() error {
	var key [chacha20.KeySize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return fmt.Errorf("entropy: chacha20 rekey: %w", err)
	}
	// The nonce can stay zero: each key is fresh and used for a single
	// bounded keystream, so no (key, nonce) pair ever repeats.
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return fmt.Errorf("entropy: chacha20 rekey: %w", err)
	}
	for i := range key {
		key[i] = 0
	}
	s.stream = stream
	s.remain = s.rekeyAfter
	return nil
}

func (s *chachaSource) Fill(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(p) > 0 {
		if s.remain == 0 {
			if err := s.rekey(); err != nil {
				return err
			}
		}
		n := len(p)
		if n > s.remain {
			n = s.remain
		}
		chunk := p[:n]
		clear(chunk)
		s.stream.XORKeyStream(chunk, chunk)
		s.remain -= n
		p = p[n:]
	}
	return nil
}
