package backend

import (
	"context"
	"math/rand"
	"sync"

	"github.com/pkg/errors"

	"github.com/perclft/IsingEngine/internal/sim"
)

// Simulator is the local statevector backend. Sampling is seeded so
// runs reproduce exactly.
type Simulator struct {
	maxQubits int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator returns a local simulator backend with the given
// qubit ceiling (memory-bound) and sampling seed.
func NewSimulator(maxQubits int, seed int64) *Simulator {
	return &Simulator{
		maxQubits: maxQubits,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (s *Simulator) Name() string      { return "local-sim" }
func (s *Simulator) MaxQubits() int    { return s.maxQubits }
func (s *Simulator) IsSimulator() bool { return true }

// Sample executes the circuit and draws shot measurements from the
// final state.
func (s *Simulator) Sample(ctx context.Context, circuit *sim.Circuit, shots int) (map[int]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if circuit.NumQubits > s.maxQubits {
		return nil, errors.Errorf("backend: circuit needs %d qubits, simulator caps at %d", circuit.NumQubits, s.maxQubits)
	}
	state, err := circuit.Execute()
	if err != nil {
		return nil, errors.Wrap(err, "backend: executing circuit")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return state.Sample(s.rng, shots)
}
