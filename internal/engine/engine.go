// Package engine turns a job request into a Hamiltonian, runs the
// requested solver, and packages the result. The scheduler worker and
// the one-shot CLIs share this pipeline.
package engine

import (
	"context"

	"github.com/pkg/errors"

	"github.com/perclft/IsingEngine/internal/api"
	"github.com/perclft/IsingEngine/internal/backend"
	"github.com/perclft/IsingEngine/internal/chemistry"
	"github.com/perclft/IsingEngine/internal/graph"
	"github.com/perclft/IsingEngine/internal/ising"
	"github.com/perclft/IsingEngine/internal/sim"
	"github.com/perclft/IsingEngine/internal/solver"
)

const (
	defaultRandomDensity = 0.5
	defaultWeightMin     = 0.5
	defaultWeightMax     = 2.0
)

// Engine solves job requests against a backend registry.
type Engine struct {
	backends *backend.Registry
}

func New(backends *backend.Registry) *Engine {
	return &Engine{backends: backends}
}

// BuildGraph materializes the graph described by a request.
func BuildGraph(spec *api.GraphSpec) (*graph.Weighted, error) {
	if spec == nil {
		return nil, errors.New("engine: missing graph spec")
	}
	if spec.Random {
		density := spec.Density
		if density <= 0 {
			density = defaultRandomDensity
		}
		return graph.Random(spec.NumNodes, density, defaultWeightMin, defaultWeightMax, spec.Seed)
	}
	edges := make([]graph.Edge, len(spec.Edges))
	for i, e := range spec.Edges {
		edges[i] = graph.Edge{I: e.From, J: e.To, Weight: e.Weight}
	}
	return graph.FromEdges(spec.NumNodes, edges)
}

// BuildProblem maps a request onto a Pauli Hamiltonian with its
// constant offset. For Max-Cut the offset makes Total equal to the
// negated cut value; for chemistry it is the nuclear repulsion.
func BuildProblem(req *api.JobRequest) (solver.Problem, *graph.Weighted, error) {
	switch req.Kind {
	case api.KindMaxCut:
		g, err := BuildGraph(req.Graph)
		if err != nil {
			return solver.Problem{}, nil, err
		}
		h, offset := ising.Hamiltonian(g)
		return solver.Problem{Hamiltonian: h, Offset: offset}, g, nil
	case api.KindChemistry:
		qh, err := chemistry.BuildHamiltonian(req.Molecule)
		if err != nil {
			return solver.Problem{}, nil, err
		}
		return solver.Problem{Hamiltonian: qh.Operator, Offset: qh.NuclearRepulsion}, nil, nil
	}
	return solver.Problem{}, nil, errors.Errorf("engine: unknown problem kind %q", req.Kind)
}

// buildSolver picks and configures the solver for a request.
func (e *Engine) buildSolver(req *api.JobRequest) (solver.Solver, error) {
	switch req.Solver.Name {
	case "", "exact":
		return &solver.Exact{}, nil
	case "vqe":
		opts := solver.DefaultVQEOptions()
		if req.Solver.Ansatz != "" {
			opts.Ansatz = sim.AnsatzKind(req.Solver.Ansatz)
		}
		if req.Solver.Depth > 0 {
			opts.Depth = req.Solver.Depth
		}
		if req.Solver.Entanglement != "" {
			opts.Entanglement = sim.Entanglement(req.Solver.Entanglement)
		}
		if req.Solver.Optimizer != "" {
			opts.Optimizer = solver.OptimizerKind(req.Solver.Optimizer)
		}
		if req.Solver.MaxIterations > 0 {
			opts.MaxIterations = req.Solver.MaxIterations
		}
		if req.Solver.Tolerance > 0 {
			opts.Tolerance = req.Solver.Tolerance
		}
		if req.Solver.Shots > 0 {
			opts.Shots = req.Solver.Shots
		}
		if req.Solver.Seed != 0 {
			opts.Seed = req.Solver.Seed
		}
		name := req.Backend
		if name == "" {
			name = "local-sim"
		}
		b, ok := e.backends.Get(name)
		if !ok {
			return nil, errors.Errorf("engine: unknown backend %q", name)
		}
		return solver.NewVQE(opts, b), nil
	}
	return nil, errors.Errorf("engine: unknown solver %q", req.Solver.Name)
}

// Solve runs the full pipeline for one request.
func (e *Engine) Solve(ctx context.Context, req *api.JobRequest) (*api.JobResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	problem, g, err := BuildProblem(req)
	if err != nil {
		return nil, err
	}
	s, err := e.buildSolver(req)
	if err != nil {
		return nil, err
	}
	res, err := s.Solve(ctx, problem)
	if err != nil {
		return nil, err
	}

	out := &api.JobResult{
		Solver:      res.Solver,
		Energy:      res.Energy,
		Total:       res.Total,
		Bitstring:   res.Bitstring,
		Parameters:  res.Parameters,
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		ElapsedMS:   res.Elapsed.Milliseconds(),
	}
	if g != nil {
		cut, err := g.CutValue(res.Bitstring)
		if err != nil {
			return nil, err
		}
		out.CutValue = cut
	}
	return out, nil
}
