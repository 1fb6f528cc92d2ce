package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteGHZ(t *testing.T) {
	c := &Circuit{
		NumQubits: 3,
		Gates: []Gate{
			{Name: "h", Qubits: []int{0}},
			{Name: "cx", Qubits: []int{0, 1}},
			{Name: "cx", Qubits: []int{1, 2}},
		},
	}
	state, err := c.Execute()
	require.NoError(t, err)

	probs := state.Probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[7], 1e-12)
}

func TestExecuteRejectsUnknownGate(t *testing.T) {
	c := &Circuit{NumQubits: 1, Gates: []Gate{{Name: "toffoli", Qubits: []int{0}}}}
	_, err := c.Execute()
	assert.Error(t, err)
}

func TestExecuteRejectsOutOfRangeQubit(t *testing.T) {
	c := &Circuit{NumQubits: 2, Gates: []Gate{{Name: "x", Qubits: []int{2}}}}
	_, err := c.Execute()
	assert.Error(t, err)
}

func TestExecuteRejectsBadArity(t *testing.T) {
	c := &Circuit{NumQubits: 2, Gates: []Gate{{Name: "cx", Qubits: []int{0}}}}
	_, err := c.Execute()
	assert.Error(t, err)

	c = &Circuit{NumQubits: 1, Gates: []Gate{{Name: "ry", Qubits: []int{0}}}}
	_, err = c.Execute()
	assert.Error(t, err)
}

func TestExecuteRotationAngle(t *testing.T) {
	theta := 2 * math.Asin(math.Sqrt(0.3))
	c := &Circuit{NumQubits: 1, Gates: []Gate{{Name: "ry", Qubits: []int{0}, Params: []float64{theta}}}}
	state, err := c.Execute()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, state.Probabilities()[1], 1e-9)
}
