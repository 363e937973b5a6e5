// Package hexid mints short random hexadecimal identifiers for the CLI.
package hexid

import (
	"encoding/hex"
	"fmt"

	"pkt.systems/slump/entropy"
)

// New returns a random identifier of nbytes entropy bytes rendered as 2*nbytes
// hex characters, drawn from src (the system CSPRNG when nil).
func New(src entropy.Source, nbytes int) (string, error) {
	if nbytes <= 0 {
		return "", fmt.Errorf("hexid: byte count must be > 0, got %d", nbytes)
	}
	if src == nil {
		src = entropy.System()
	}
	b := make([]byte, nbytes)
	if err := src.Fill(b); err != nil {
		return "", fmt.Errorf("hexid: %w", err)
	}
	return hex.EncodeToString(b), nil
}
