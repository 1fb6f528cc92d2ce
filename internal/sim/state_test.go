package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertState(t *testing.T, want []complex128, s *StateVector) {
	t.Helper()
	got := s.Amplitudes()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-12, "amp %d real", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-12, "amp %d imag", i)
	}
}

func TestXFlipsQubit(t *testing.T) {
	s := NewStateVector(2)
	s.X(1)
	assertState(t, []complex128{0, 0, 1, 0}, s)
}

func TestHadamardSuperposition(t *testing.T) {
	s := NewStateVector(1)
	s.H(0)
	inv := complex(1/math.Sqrt2, 0)
	assertState(t, []complex128{inv, inv}, s)

	// H is its own inverse.
	s.H(0)
	assertState(t, []complex128{1, 0}, s)
}

func TestYPhases(t *testing.T) {
	s := NewStateVector(1)
	s.Y(0)
	assertState(t, []complex128{0, 1i}, s)
	s.Y(0)
	assertState(t, []complex128{1, 0}, s)
}

func TestBellState(t *testing.T) {
	s := NewStateVector(2)
	s.H(0)
	s.CNOT(0, 1)
	inv := complex(1/math.Sqrt2, 0)
	assertState(t, []complex128{inv, 0, 0, inv}, s)
}

func TestCZPhase(t *testing.T) {
	s := NewStateVector(2)
	s.X(0)
	s.X(1)
	s.CZ(0, 1)
	assertState(t, []complex128{0, 0, 0, -1}, s)
}

func TestRYRotation(t *testing.T) {
	// RY(pi) maps |0> to |1> up to global sign conventions.
	s := NewStateVector(1)
	s.RY(0, math.Pi)
	probs := s.Probabilities()
	assert.InDelta(t, 0.0, probs[0], 1e-12)
	assert.InDelta(t, 1.0, probs[1], 1e-12)

	// RY(pi/2) gives equal probabilities.
	s = NewStateVector(1)
	s.RY(0, math.Pi/2)
	probs = s.Probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[1], 1e-12)
}

func TestRZLeavesProbabilities(t *testing.T) {
	s := NewStateVector(1)
	s.H(0)
	s.RZ(0, 1.234)
	probs := s.Probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[1], 1e-12)
}

func TestSampleCountsAndDeterminism(t *testing.T) {
	s := NewStateVector(2)
	s.H(0)
	s.CNOT(0, 1)

	counts, err := s.Sample(rand.New(rand.NewSource(5)), 1000)
	require.NoError(t, err)

	total := 0
	for idx, c := range counts {
		total += c
		assert.Contains(t, []int{0, 3}, idx)
	}
	assert.Equal(t, 1000, total)

	again, err := s.Sample(rand.New(rand.NewSource(5)), 1000)
	require.NoError(t, err)
	assert.Equal(t, counts, again)
}

func TestSampleRejectsBadShots(t *testing.T) {
	s := NewStateVector(1)
	_, err := s.Sample(rand.New(rand.NewSource(1)), 0)
	assert.Error(t, err)
}
