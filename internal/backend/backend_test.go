package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/IsingEngine/internal/sim"
)

func bellCircuit() *sim.Circuit {
	return &sim.Circuit{
		NumQubits: 2,
		Gates: []sim.Gate{
			{Name: "h", Qubits: []int{0}},
			{Name: "cx", Qubits: []int{0, 1}},
		},
	}
}

func TestSimulatorSample(t *testing.T) {
	b := NewSimulator(8, 1)
	assert.Equal(t, "local-sim", b.Name())
	assert.True(t, b.IsSimulator())
	assert.Equal(t, 8, b.MaxQubits())

	counts, err := b.Sample(context.Background(), bellCircuit(), 500)
	require.NoError(t, err)

	total := 0
	for idx, c := range counts {
		total += c
		assert.Contains(t, []int{0, 3}, idx)
	}
	assert.Equal(t, 500, total)
}

func TestSimulatorRejectsTooManyQubits(t *testing.T) {
	b := NewSimulator(1, 1)
	_, err := b.Sample(context.Background(), bellCircuit(), 10)
	assert.Error(t, err)
}

func TestSimulatorHonorsContext(t *testing.T) {
	b := NewSimulator(8, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Sample(ctx, bellCircuit(), 10)
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(NewSimulator(4, 1))

	b, ok := r.Get("local-sim")
	require.True(t, ok)
	assert.Equal(t, "local-sim", b.Name())

	_, ok = r.Get("ibmq")
	assert.False(t, ok)

	assert.Equal(t, []string{"local-sim"}, r.List())
}
