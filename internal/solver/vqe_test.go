package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/IsingEngine/internal/backend"
	"github.com/perclft/IsingEngine/internal/graph"
	"github.com/perclft/IsingEngine/internal/ising"
)

func twoNodeProblem(t *testing.T) Problem {
	t.Helper()
	g, err := graph.FromEdges(2, []graph.Edge{{I: 0, J: 1, Weight: 1}})
	require.NoError(t, err)
	h, offset := ising.Hamiltonian(g)
	return Problem{Hamiltonian: h, Offset: offset}
}

func TestVQENeverBeatsExact(t *testing.T) {
	p, _ := maxcutProblem(t, 4, 2)
	exactRes, err := (&Exact{}).Solve(context.Background(), p)
	require.NoError(t, err)

	opts := DefaultVQEOptions()
	opts.MaxIterations = 60
	opts.Shots = 0
	v := NewVQE(opts, nil)

	res, err := v.Solve(context.Background(), p)
	require.NoError(t, err)

	// A variational expectation value is bounded below by the true
	// ground energy.
	assert.GreaterOrEqual(t, res.Energy, exactRes.Energy-1e-9)
	assert.InDelta(t, res.Energy+p.Offset, res.Total, 1e-12)
	assert.Len(t, res.Bitstring, 4)
	assert.NotEmpty(t, res.Parameters)
	assert.Positive(t, res.Evaluations)
}

func TestVQEConvergesOnTwoNodes(t *testing.T) {
	p := twoNodeProblem(t)

	opts := DefaultVQEOptions()
	opts.Depth = 1
	opts.MaxIterations = 400
	opts.Shots = 0
	v := NewVQE(opts, nil)

	res, err := v.Solve(context.Background(), p)
	require.NoError(t, err)

	// Exact minimum is -0.5 (total -1, the full cut).
	assert.InDelta(t, -0.5, res.Energy, 0.3)
	assert.Less(t, res.Total, -0.5)
}

func TestVQESPSA(t *testing.T) {
	p := twoNodeProblem(t)

	opts := DefaultVQEOptions()
	opts.Optimizer = OptimizerSPSA
	opts.Depth = 1
	opts.MaxIterations = 500
	opts.Shots = 0
	v := NewVQE(opts, nil)

	res, err := v.Solve(context.Background(), p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Energy, -0.5-1e-9)
	assert.LessOrEqual(t, res.Energy, 0.5+1e-9)
}

func TestVQEDeterministicWithSeed(t *testing.T) {
	p := twoNodeProblem(t)

	opts := DefaultVQEOptions()
	opts.MaxIterations = 50
	opts.Shots = 0
	opts.Seed = 11

	a, err := NewVQE(opts, nil).Solve(context.Background(), p)
	require.NoError(t, err)
	b, err := NewVQE(opts, nil).Solve(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, a.Energy, b.Energy)
	assert.Equal(t, a.Parameters, b.Parameters)
}

func TestVQESamplesBitstringFromBackend(t *testing.T) {
	p := twoNodeProblem(t)

	opts := DefaultVQEOptions()
	opts.MaxIterations = 200
	opts.Shots = 256
	v := NewVQE(opts, backend.NewSimulator(2, 3))

	res, err := v.Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, res.Bitstring, 2)
}

func TestVQEUnknownOptimizer(t *testing.T) {
	p := twoNodeProblem(t)
	opts := DefaultVQEOptions()
	opts.Optimizer = "adam"
	_, err := NewVQE(opts, nil).Solve(context.Background(), p)
	assert.Error(t, err)
}

func TestVQEHonorsContext(t *testing.T) {
	p := twoNodeProblem(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewVQE(DefaultVQEOptions(), nil).Solve(ctx, p)
	assert.Error(t, err)
}
