package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnsatzValidation(t *testing.T) {
	_, err := NewAnsatz("bogus", 2, 1, EntangleLinear)
	assert.Error(t, err)

	_, err = NewAnsatz(AnsatzRY, 0, 1, EntangleLinear)
	assert.Error(t, err)

	_, err = NewAnsatz(AnsatzRY, 2, -1, EntangleLinear)
	assert.Error(t, err)

	_, err = NewAnsatz(AnsatzRY, 2, 1, "star")
	assert.Error(t, err)

	// Empty entanglement defaults to linear.
	a, err := NewAnsatz(AnsatzRY, 2, 1, "")
	require.NoError(t, err)
	assert.Equal(t, EntangleLinear, a.Entanglement)
}

func TestNumParams(t *testing.T) {
	a, err := NewAnsatz(AnsatzRY, 4, 2, EntangleLinear)
	require.NoError(t, err)
	assert.Equal(t, 12, a.NumParams()) // (2+1) layers * 4 qubits

	a, err = NewAnsatz(AnsatzHardwareEfficient, 4, 2, EntangleLinear)
	require.NoError(t, err)
	assert.Equal(t, 24, a.NumParams()) // two rotations per qubit
}

func TestBuildRejectsWrongParamCount(t *testing.T) {
	a, err := NewAnsatz(AnsatzRY, 3, 1, EntangleLinear)
	require.NoError(t, err)
	_, err = a.Build(make([]float64, 5))
	assert.Error(t, err)
}

func TestBuildRYStructure(t *testing.T) {
	a, err := NewAnsatz(AnsatzRY, 3, 1, EntangleLinear)
	require.NoError(t, err)
	c, err := a.Build(make([]float64, a.NumParams()))
	require.NoError(t, err)

	// 3 rotations, 2 cz, 3 rotations.
	require.Len(t, c.Gates, 8)
	for i := 0; i < 3; i++ {
		assert.Equal(t, "ry", c.Gates[i].Name)
	}
	assert.Equal(t, "cz", c.Gates[3].Name)
	assert.Equal(t, "cz", c.Gates[4].Name)

	// Zero parameters leave |000> untouched.
	state, err := c.Execute()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(state.Amplitudes()[0]), 1e-12)
}

func TestBuildCircularEntanglement(t *testing.T) {
	a, err := NewAnsatz(AnsatzHardwareEfficient, 3, 1, EntangleCircular)
	require.NoError(t, err)
	c, err := a.Build(make([]float64, a.NumParams()))
	require.NoError(t, err)

	wrap := 0
	for _, g := range c.Gates {
		if g.Name == "cx" && g.Qubits[0] == 2 && g.Qubits[1] == 0 {
			wrap++
		}
	}
	assert.Equal(t, 1, wrap)
}

func TestAnsatzCircuitExecutes(t *testing.T) {
	a, err := NewAnsatz(AnsatzHardwareEfficient, 4, 2, EntangleLinear)
	require.NoError(t, err)

	params := make([]float64, a.NumParams())
	for i := range params {
		params[i] = 0.1 * float64(i+1)
	}
	c, err := a.Build(params)
	require.NoError(t, err)

	state, err := c.Execute()
	require.NoError(t, err)

	var norm float64
	for _, p := range state.Probabilities() {
		norm += p
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}
