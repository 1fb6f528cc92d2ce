// Package sim is a small statevector simulator: the gate set, the
// parameterized ansatz circuits the variational solver optimizes
// over, and OpenQASM export.
package sim

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// StateVector holds 2^n complex amplitudes, little-endian: qubit q
// is bit q of the basis index.
type StateVector struct {
	numQubits int
	amps      []complex128
}

// NewStateVector prepares |0...0> on n qubits.
func NewStateVector(n int) *StateVector {
	amps := make([]complex128, 1<<uint(n))
	amps[0] = 1
	return &StateVector{numQubits: n, amps: amps}
}

// NumQubits reports the qubit count.
func (s *StateVector) NumQubits() int { return s.numQubits }

// Amplitudes returns the amplitude slice. Callers must not mutate it.
func (s *StateVector) Amplitudes() []complex128 { return s.amps }

// Clone deep-copies the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &StateVector{numQubits: s.numQubits, amps: amps}
}

// applySingle applies the 2x2 matrix {{a,b},{c,d}} to the target qubit.
func (s *StateVector) applySingle(target int, a, b, c, d complex128) {
	mask := 1 << uint(target)
	for i := range s.amps {
		if i&mask != 0 {
			continue
		}
		j := i | mask
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = a*a0 + b*a1
		s.amps[j] = c*a0 + d*a1
	}
}

// H applies the Hadamard gate.
func (s *StateVector) H(target int) {
	inv := complex(1/math.Sqrt2, 0)
	s.applySingle(target, inv, inv, inv, -inv)
}

// X applies the Pauli-X gate.
func (s *StateVector) X(target int) { s.applySingle(target, 0, 1, 1, 0) }

// Y applies the Pauli-Y gate.
func (s *StateVector) Y(target int) { s.applySingle(target, 0, -1i, 1i, 0) }

// Z applies the Pauli-Z gate.
func (s *StateVector) Z(target int) { s.applySingle(target, 1, 0, 0, -1) }

// RX rotates the target qubit about the X axis by theta.
func (s *StateVector) RX(target int, theta float64) {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(0, -math.Sin(theta/2))
	s.applySingle(target, cos, sin, sin, cos)
}

// RY rotates the target qubit about the Y axis by theta.
func (s *StateVector) RY(target int, theta float64) {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)
	s.applySingle(target, cos, -sin, sin, cos)
}

// RZ rotates the target qubit about the Z axis by theta.
func (s *StateVector) RZ(target int, theta float64) {
	e0 := cmplx.Exp(complex(0, -theta/2))
	e1 := cmplx.Exp(complex(0, theta/2))
	s.applySingle(target, e0, 0, 0, e1)
}

// CNOT applies a controlled-X from control to target.
func (s *StateVector) CNOT(control, target int) {
	cmask := 1 << uint(control)
	tmask := 1 << uint(target)
	for i := range s.amps {
		if i&cmask == 0 || i&tmask != 0 {
			continue
		}
		j := i | tmask
		s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
	}
}

// CZ applies a controlled-Z between two qubits.
func (s *StateVector) CZ(a, b int) {
	amask := 1 << uint(a)
	bmask := 1 << uint(b)
	for i := range s.amps {
		if i&amask != 0 && i&bmask != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// Probabilities returns |amplitude|^2 per basis index.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		m := cmplx.Abs(a)
		probs[i] = m * m
	}
	return probs
}

// Sample draws shot measurement outcomes in the computational basis
// using the supplied seeded source, returning counts per basis index.
func (s *StateVector) Sample(rng *rand.Rand, shots int) (map[int]int, error) {
	if shots <= 0 {
		return nil, errors.Errorf("sim: invalid shot count %d", shots)
	}
	probs := s.Probabilities()
	cdf := make([]float64, len(probs))
	var sum float64
	for i, p := range probs {
		sum += p
		cdf[i] = sum
	}
	if math.Abs(sum-1) > 1e-6 {
		return nil, errors.Errorf("sim: state is not normalized (total probability %f)", sum)
	}

	counts := make(map[int]int)
	for k := 0; k < shots; k++ {
		r := rng.Float64() * sum
		idx := sort.SearchFloat64s(cdf, r)
		if idx >= len(cdf) {
			idx = len(cdf) - 1
		}
		counts[idx]++
	}
	return counts, nil
}
