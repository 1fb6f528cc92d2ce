package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/IsingEngine/internal/api"
	"github.com/perclft/IsingEngine/internal/backend"
)

func testEngine() *Engine {
	backends := backend.NewRegistry()
	backends.Register(backend.NewSimulator(10, 1))
	return New(backends)
}

func TestBuildGraphFromEdges(t *testing.T) {
	g, err := BuildGraph(&api.GraphSpec{
		NumNodes: 3,
		Edges:    []api.Edge{{From: 0, To: 2, Weight: 1.5}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.InDelta(t, 1.5, g.Weight(0, 2), 1e-12)
}

func TestBuildGraphRandomDeterministic(t *testing.T) {
	spec := &api.GraphSpec{NumNodes: 6, Random: true, Seed: 4}
	a, err := BuildGraph(spec)
	require.NoError(t, err)
	b, err := BuildGraph(spec)
	require.NoError(t, err)
	assert.Equal(t, a.Matrix(), b.Matrix())
}

func TestBuildProblemChemistry(t *testing.T) {
	p, g, err := BuildProblem(&api.JobRequest{Kind: api.KindChemistry, Molecule: "H2_equilibrium"})
	require.NoError(t, err)
	assert.Nil(t, g)
	assert.Equal(t, 4, p.Hamiltonian.NumQubits())
	assert.InDelta(t, 0.713754, p.Offset, 1e-6)

	_, _, err = BuildProblem(&api.JobRequest{Kind: api.KindChemistry, Molecule: "unknown"})
	assert.Error(t, err)
}

func TestSolveMaxCutExact(t *testing.T) {
	req := &api.JobRequest{
		Kind: api.KindMaxCut,
		Graph: &api.GraphSpec{
			NumNodes: 4,
			Edges: []api.Edge{
				{From: 0, To: 1, Weight: 1},
				{From: 1, To: 2, Weight: 1},
				{From: 2, To: 3, Weight: 1},
				{From: 3, To: 0, Weight: 1},
			},
		},
		Solver: api.SolverSpec{Name: "exact"},
	}
	res, err := testEngine().Solve(context.Background(), req)
	require.NoError(t, err)

	// The 4-cycle's maximum cut takes all four edges.
	assert.Equal(t, "exact", res.Solver)
	assert.InDelta(t, 4.0, res.CutValue, 1e-9)
	assert.InDelta(t, -4.0, res.Total, 1e-9)
}

func TestSolveMaxCutVQE(t *testing.T) {
	req := &api.JobRequest{
		Kind:  api.KindMaxCut,
		Graph: &api.GraphSpec{NumNodes: 2, Edges: []api.Edge{{From: 0, To: 1, Weight: 1}}},
		Solver: api.SolverSpec{
			Name:          "vqe",
			Depth:         1,
			MaxIterations: 200,
			Seed:          3,
		},
	}
	res, err := testEngine().Solve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "vqe", res.Solver)
	assert.Len(t, res.Bitstring, 2)
	assert.NotEmpty(t, res.Parameters)
	assert.GreaterOrEqual(t, res.Energy, -0.5-1e-9)
}

func TestSolveRejectsUnknownBackend(t *testing.T) {
	req := &api.JobRequest{
		Kind:    api.KindMaxCut,
		Graph:   &api.GraphSpec{NumNodes: 2, Edges: []api.Edge{{From: 0, To: 1, Weight: 1}}},
		Solver:  api.SolverSpec{Name: "vqe"},
		Backend: "ibmq",
	}
	_, err := testEngine().Solve(context.Background(), req)
	assert.Error(t, err)
}
