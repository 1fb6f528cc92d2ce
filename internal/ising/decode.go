package ising

import (
	"math/cmplx"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Decode selects the most probable basis state of a statevector and
// returns the 0/1 label of each of the n qubits (little-endian).
// Ties break toward the lowest basis index, so decoding is
// deterministic and idempotent even for degenerate states.
func Decode(psi []complex128, n int) ([]int, error) {
	if len(psi) != 1<<uint(n) {
		return nil, errors.Errorf("ising: state has %d amplitudes, want %d", len(psi), 1<<uint(n))
	}
	best := 0
	bestProb := -1.0
	for j, a := range psi {
		p := cmplx.Abs(a)
		p *= p
		if p > bestProb {
			bestProb = p
			best = j
		}
	}
	return Bits(best, n), nil
}

// DecodeCounts picks the most frequent bitstring from sampled counts
// keyed by basis index. Ties break toward the lowest index.
func DecodeCounts(counts map[int]int, n int) ([]int, error) {
	if len(counts) == 0 {
		return nil, errors.New("ising: empty counts")
	}
	indices := lo.Keys(counts)
	best := lo.MinBy(indices, func(a, b int) bool {
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return a < b
	})
	return Bits(best, n), nil
}

// Bits expands a basis index into n little-endian bits.
func Bits(index, n int) []int {
	bits := make([]int, n)
	for i := 0; i < n; i++ {
		bits[i] = (index >> uint(i)) & 1
	}
	return bits
}

// Index folds little-endian bits back into a basis index.
func Index(bits []int) int {
	idx := 0
	for i, b := range bits {
		if b != 0 {
			idx |= 1 << uint(i)
		}
	}
	return idx
}

// Partition splits node indices by their cut side.
func Partition(side []int) (zero, one []int) {
	for i, s := range side {
		if s == 0 {
			zero = append(zero, i)
		} else {
			one = append(one, i)
		}
	}
	return zero, one
}
