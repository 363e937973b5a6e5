package slump

import "fmt"

// Seed is accepted and silently ignored. The entropy source cannot be
// repositioned, and failing loudly would break drop-in use at call sites
// that defensively seed a generic generator.
func (r *Rand) Seed(seed int64) {}

// GetState always fails with ErrUnsupported: the generator has no
// observable internal state to export.
func (r *Rand) GetState() ([]byte, error) {
	return nil, fmt.Errorf("%w: generator state is not observable", ErrUnsupported)
}

// SetState always fails with ErrUnsupported: the generator cannot be
// restored to a prior state.
func (r *Rand) SetState(state []byte) error {
	return fmt.Errorf("%w: generator state is not restorable", ErrUnsupported)
}
