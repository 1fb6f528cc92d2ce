package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseSingleQubit(t *testing.T) {
	z := New(1).Add(1, map[int]Pauli{0: Z})
	m, err := z.Dense()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.At(0, 0), 1e-12)
	assert.InDelta(t, -1.0, m.At(1, 1), 1e-12)
	assert.InDelta(t, 0.0, m.At(0, 1), 1e-12)

	x := New(1).Add(0.5, map[int]Pauli{0: X})
	m, err = x.Dense()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, m.At(0, 1), 1e-12)
}

func TestDenseTwoQubitZZ(t *testing.T) {
	op := New(2).Add(1, map[int]Pauli{0: Z, 1: Z})
	m, err := op.Dense()
	require.NoError(t, err)
	want := []float64{1, -1, -1, 1}
	for j := 0; j < 4; j++ {
		assert.InDelta(t, want[j], m.At(j, j), 1e-12, "diag %d", j)
	}
}

func TestDenseRejectsNonHermitian(t *testing.T) {
	op := New(1).Add(1i, map[int]Pauli{0: Z})
	_, err := op.Dense()
	assert.Error(t, err)
}

func TestDenseRejectsTooManyQubits(t *testing.T) {
	op := New(MaxDenseQubits+1).Add(1, map[int]Pauli{0: Z})
	_, err := op.Dense()
	assert.Error(t, err)
}
