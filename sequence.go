package slump

import "fmt"

// Choice returns a uniformly chosen element of seq. It fails with
// ErrInvalidArgument when seq is empty. A nil r uses the default generator.
func Choice[T any](r *Rand, seq []T) (T, error) {
	var zero T
	if r == nil {
		r = std
	}
	if len(seq) == 0 {
		return zero, fmt.Errorf("%w: Choice on empty sequence", ErrInvalidArgument)
	}
	j, err := r.Below(uint64(len(seq)))
	if err != nil {
		return zero, err
	}
	return seq[j], nil
}

// Shuffle permutes seq in place with a Fisher-Yates walk from the last index
// down to 1, producing a uniformly random permutation. The generator owns
// the entropy path exclusively; there is no way to substitute another
// randomness source. A nil r uses the default generator.
func Shuffle[T any](r *Rand, seq []T) error {
	if r == nil {
		r = std
	}
	for i := len(seq) - 1; i >= 1; i-- {
		j, err := r.Below(uint64(i + 1))
		if err != nil {
			return err
		}
		seq[i], seq[j] = seq[j], seq[i]
	}
	return nil
}

// Perm returns a uniformly random permutation of the integers [0, n).
func (r *Rand) Perm(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative permutation size %d", ErrInvalidArgument, n)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	if err := Shuffle(r, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Sample draws k elements from population without replacement and returns
// them as a new slice; the population is left untouched. The result is in
// selection order: every prefix of it is itself a valid uniform sample of
// that prefix length, so callers can partition winners by slicing.
//
// Elements need not be unique; repeated elements each count as a separate
// possible selection. A nil r uses the default generator. k outside [0, n]
// fails with ErrInvalidArgument.
//
// Sampling without replacement tracks either the remaining pool or the
// previous selections. For populations small enough that a working copy is
// cheaper than a k-element set, the pool-swap strategy copies the population
// and swaps consumed slots to the shrinking end, never redrawing. For large
// populations with small k, a set of chosen indices plus occasional
// reselection is cheaper. The crossover follows the footprint heuristic in
// sampleSetSize.
func Sample[T any](r *Rand, population []T, k int) ([]T, error) {
	if r == nil {
		r = std
	}
	n := len(population)
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: sample size %d outside [0, %d]", ErrInvalidArgument, k, n)
	}
	result := make([]T, k)
	if n <= sampleSetSize(k) {
		pool := make([]T, n)
		copy(pool, population)
		for i := 0; i < k; i++ {
			// Invariant: not-yet-selected elements occupy pool[0 : n-i].
			j, err := r.Below(uint64(n - i))
			if err != nil {
				return nil, err
			}
			result[i] = pool[j]
			pool[j] = pool[n-i-1]
		}
		return result, nil
	}
	selected := make(map[int]struct{}, k)
	for i := 0; i < k; i++ {
		j, err := r.Below(uint64(n))
		if err != nil {
			return nil, err
		}
		for {
			if _, taken := selected[int(j)]; !taken {
				break
			}
			if j, err = r.Below(uint64(n)); err != nil {
				return nil, err
			}
		}
		selected[int(j)] = struct{}{}
		result[i] = population[j]
	}
	return result, nil
}

// SampleMap draws k distinct keys from m in selection order. Maps are the
// keyed-population case: index-based exclusion does not apply to unordered
// keys, so the keys are materialized once and consumed with the pool-swap
// strategy regardless of size.
func SampleMap[K comparable, V any](r *Rand, m map[K]V, k int) ([]K, error) {
	if r == nil {
		r = std
	}
	n := len(m)
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: sample size %d outside [0, %d]", ErrInvalidArgument, k, n)
	}
	pool := make([]K, 0, n)
	for key := range m {
		pool = append(pool, key)
	}
	result := make([]K, k)
	for i := 0; i < k; i++ {
		j, err := r.Below(uint64(n - i))
		if err != nil {
			return nil, err
		}
		result[i] = pool[j]
		pool[j] = pool[n-i-1]
	}
	return result, nil
}

// sampleSetSize estimates the population size below which the pool-swap
// strategy beats index-set tracking: roughly 21 slots of fixed overhead plus
// a hash table sized at the smallest power of four holding 3k entries.
func sampleSetSize(k int) int {
	size := 21
	if k > 5 {
		table := 4
		for table < 3*k {
			table *= 4
		}
		size += table
	}
	return size
}
