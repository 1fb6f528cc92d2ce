package solver

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/optimize"

	"github.com/perclft/IsingEngine/internal/backend"
	"github.com/perclft/IsingEngine/internal/ising"
	"github.com/perclft/IsingEngine/internal/sim"
)

// OptimizerKind selects the classical optimizer driving the
// variational loop.
type OptimizerKind string

const (
	OptimizerNelderMead OptimizerKind = "nelder-mead"
	OptimizerSPSA       OptimizerKind = "spsa"
)

// VQEOptions are the variational solver's hyperparameters.
type VQEOptions struct {
	Ansatz        sim.AnsatzKind   `json:"ansatz"`
	Depth         int              `json:"depth"`
	Entanglement  sim.Entanglement `json:"entanglement"`
	Optimizer     OptimizerKind    `json:"optimizer"`
	MaxIterations int              `json:"max_iterations"`
	Tolerance     float64          `json:"tolerance"`
	Shots         int              `json:"shots"`
	Seed          int64            `json:"seed"`
}

// DefaultVQEOptions mirror the hyperparameters the notebooks used.
func DefaultVQEOptions() VQEOptions {
	return VQEOptions{
		Ansatz:        sim.AnsatzRY,
		Depth:         2,
		Entanglement:  sim.EntangleLinear,
		Optimizer:     OptimizerNelderMead,
		MaxIterations: 300,
		Tolerance:     1e-6,
		Shots:         1024,
		Seed:          1,
	}
}

// VQE approximates the lowest eigenvalue by optimizing a
// parameterized circuit against the Hamiltonian expectation value.
// The expectation is evaluated exactly on the statevector; shots
// only affect sampling of the reported bitstring.
type VQE struct {
	Options VQEOptions
	Backend backend.Backend
}

// NewVQE builds a variational solver over the given backend.
func NewVQE(opts VQEOptions, b backend.Backend) *VQE {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultVQEOptions().MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultVQEOptions().Tolerance
	}
	if opts.Ansatz == "" {
		opts.Ansatz = sim.AnsatzRY
	}
	if opts.Optimizer == "" {
		opts.Optimizer = OptimizerNelderMead
	}
	return &VQE{Options: opts, Backend: b}
}

func (v *VQE) Name() string { return "vqe" }

// Solve runs the variational loop.
func (v *VQE) Solve(ctx context.Context, p Problem) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	n := p.Hamiltonian.NumQubits()

	ansatz, err := sim.NewAnsatz(v.Options.Ansatz, n, v.Options.Depth, v.Options.Entanglement)
	if err != nil {
		return nil, err
	}

	evaluations := 0
	objective := func(params []float64) float64 {
		evaluations++
		circuit, err := ansatz.Build(params)
		if err != nil {
			return math.Inf(1)
		}
		state, err := circuit.Execute()
		if err != nil {
			return math.Inf(1)
		}
		e, err := p.Hamiltonian.Expectation(state.Amplitudes())
		if err != nil {
			return math.Inf(1)
		}
		return e
	}

	rng := rand.New(rand.NewSource(v.Options.Seed))
	params := make([]float64, ansatz.NumParams())
	for i := range params {
		params[i] = rng.Float64() * 2 * math.Pi
	}

	var (
		bestParams []float64
		bestEnergy float64
		iterations int
	)
	switch v.Options.Optimizer {
	case OptimizerNelderMead:
		bestParams, bestEnergy, iterations, err = v.minimizeNelderMead(objective, params)
	case OptimizerSPSA:
		bestParams, bestEnergy, iterations, err = v.minimizeSPSA(ctx, objective, params, rng)
	default:
		return nil, errors.Errorf("solver: unknown optimizer %q", v.Options.Optimizer)
	}
	if err != nil {
		return nil, err
	}

	circuit, err := ansatz.Build(bestParams)
	if err != nil {
		return nil, err
	}
	bits, err := v.decode(ctx, circuit, n)
	if err != nil {
		return nil, err
	}

	return &Result{
		Solver:      v.Name(),
		Energy:      bestEnergy,
		Total:       bestEnergy + p.Offset,
		Bitstring:   bits,
		Parameters:  bestParams,
		Iterations:  iterations,
		Evaluations: evaluations,
		Elapsed:     time.Since(start),
	}, nil
}

// decode picks the reported bitstring: the most frequent sample when
// shots are configured, otherwise the most probable basis state.
func (v *VQE) decode(ctx context.Context, circuit *sim.Circuit, n int) ([]int, error) {
	if v.Options.Shots > 0 && v.Backend != nil {
		counts, err := v.Backend.Sample(ctx, circuit, v.Options.Shots)
		if err != nil {
			return nil, err
		}
		return ising.DecodeCounts(counts, n)
	}
	state, err := circuit.Execute()
	if err != nil {
		return nil, err
	}
	return ising.Decode(state.Amplitudes(), n)
}

func (v *VQE) minimizeNelderMead(objective func([]float64) float64, init []float64) ([]float64, float64, int, error) {
	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		MajorIterations: v.Options.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   v.Options.Tolerance,
			Iterations: 30,
		},
	}
	res, err := optimize.Minimize(problem, init, settings, &optimize.NelderMead{})
	if res == nil {
		return nil, 0, 0, errors.Wrap(err, "solver: nelder-mead")
	}
	// Hitting the iteration budget is an acceptable outcome; the
	// best point found is still the answer.
	return res.X, res.F, res.Stats.MajorIterations, nil
}

// minimizeSPSA is simultaneous perturbation stochastic approximation
// with the standard gain schedules. Two evaluations per iteration
// regardless of dimension.
func (v *VQE) minimizeSPSA(ctx context.Context, objective func([]float64) float64, init []float64, rng *rand.Rand) ([]float64, float64, int, error) {
	const (
		a     = 0.2
		c     = 0.1
		bigA  = 10.0
		alpha = 0.602
		gamma = 0.101
	)

	x := make([]float64, len(init))
	copy(x, init)
	best := make([]float64, len(init))
	copy(best, init)
	bestF := objective(best)

	stale := 0
	iter := 0
	for ; iter < v.Options.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, 0, err
		}
		ak := a / math.Pow(float64(iter)+1+bigA, alpha)
		ck := c / math.Pow(float64(iter)+1, gamma)

		delta := make([]float64, len(x))
		plus := make([]float64, len(x))
		minus := make([]float64, len(x))
		for i := range x {
			if rng.Intn(2) == 0 {
				delta[i] = 1
			} else {
				delta[i] = -1
			}
			plus[i] = x[i] + ck*delta[i]
			minus[i] = x[i] - ck*delta[i]
		}

		diff := (objective(plus) - objective(minus)) / (2 * ck)
		for i := range x {
			x[i] -= ak * diff * delta[i]
		}

		f := objective(x)
		if f < bestF-v.Options.Tolerance {
			bestF = f
			copy(best, x)
			stale = 0
		} else {
			stale++
			if stale >= 30 {
				iter++
				break
			}
		}
	}
	return best, bestF, iter, nil
}
