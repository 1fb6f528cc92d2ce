package sim

import (
	"github.com/pkg/errors"
)

// AnsatzKind selects the parameterized circuit family used by the
// variational solver.
type AnsatzKind string

const (
	// AnsatzRY is alternating RY rotation layers with CZ entangling
	// ladders between them.
	AnsatzRY AnsatzKind = "ry"
	// AnsatzHardwareEfficient adds an RZ rotation after each RY,
	// with CNOT ladders between layers.
	AnsatzHardwareEfficient AnsatzKind = "hardware_efficient"
)

// Entanglement selects the two-qubit coupling pattern of a layer.
type Entanglement string

const (
	EntangleLinear   Entanglement = "linear"
	EntangleCircular Entanglement = "circular"
)

// Ansatz is a parameterized circuit template.
type Ansatz struct {
	Kind         AnsatzKind
	NumQubits    int
	Depth        int // number of entangling layers
	Entanglement Entanglement
}

// NewAnsatz validates and builds an ansatz template.
func NewAnsatz(kind AnsatzKind, numQubits, depth int, ent Entanglement) (*Ansatz, error) {
	if numQubits <= 0 {
		return nil, errors.Errorf("sim: invalid qubit count %d", numQubits)
	}
	if depth < 0 {
		return nil, errors.Errorf("sim: invalid ansatz depth %d", depth)
	}
	switch kind {
	case AnsatzRY, AnsatzHardwareEfficient:
	default:
		return nil, errors.Errorf("sim: unknown ansatz kind %q", kind)
	}
	switch ent {
	case EntangleLinear, EntangleCircular:
	case "":
		ent = EntangleLinear
	default:
		return nil, errors.Errorf("sim: unknown entanglement %q", ent)
	}
	return &Ansatz{Kind: kind, NumQubits: numQubits, Depth: depth, Entanglement: ent}, nil
}

// rotationsPerQubit is the parameter count each rotation layer
// spends on one qubit.
func (a *Ansatz) rotationsPerQubit() int {
	if a.Kind == AnsatzHardwareEfficient {
		return 2
	}
	return 1
}

// NumParams is the total parameter count: depth+1 rotation layers.
func (a *Ansatz) NumParams() int {
	return (a.Depth + 1) * a.NumQubits * a.rotationsPerQubit()
}

// Build instantiates the template with concrete parameters.
func (a *Ansatz) Build(params []float64) (*Circuit, error) {
	if len(params) != a.NumParams() {
		return nil, errors.Errorf("sim: ansatz needs %d params, got %d", a.NumParams(), len(params))
	}
	c := &Circuit{NumQubits: a.NumQubits}
	next := 0
	rotate := func() {
		for q := 0; q < a.NumQubits; q++ {
			c.Gates = append(c.Gates, Gate{Name: "ry", Qubits: []int{q}, Params: []float64{params[next]}})
			next++
			if a.Kind == AnsatzHardwareEfficient {
				c.Gates = append(c.Gates, Gate{Name: "rz", Qubits: []int{q}, Params: []float64{params[next]}})
				next++
			}
		}
	}
	entangler := "cz"
	if a.Kind == AnsatzHardwareEfficient {
		entangler = "cx"
	}
	entangle := func() {
		for q := 0; q+1 < a.NumQubits; q++ {
			c.Gates = append(c.Gates, Gate{Name: entangler, Qubits: []int{q, q + 1}})
		}
		if a.Entanglement == EntangleCircular && a.NumQubits > 2 {
			c.Gates = append(c.Gates, Gate{Name: entangler, Qubits: []int{a.NumQubits - 1, 0}})
		}
	}

	rotate()
	for layer := 0; layer < a.Depth; layer++ {
		entangle()
		rotate()
	}
	return c, nil
}
