package sim

import (
	"github.com/pkg/errors"
)

// Gate is a named circuit operation, in the order qubits then params.
type Gate struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params,omitempty"`
}

// Circuit is an ordered gate list on a fixed qubit count.
type Circuit struct {
	NumQubits int    `json:"num_qubits"`
	Gates     []Gate `json:"gates"`
}

// Execute runs the circuit on |0...0> and returns the final state.
func (c *Circuit) Execute() (*StateVector, error) {
	if c.NumQubits <= 0 {
		return nil, errors.Errorf("sim: invalid qubit count %d", c.NumQubits)
	}
	state := NewStateVector(c.NumQubits)
	for gi, g := range c.Gates {
		for _, q := range g.Qubits {
			if q < 0 || q >= c.NumQubits {
				return nil, errors.Errorf("sim: gate %d (%s): qubit %d out of range", gi, g.Name, q)
			}
		}
		if err := checkArity(g); err != nil {
			return nil, errors.Wrapf(err, "sim: gate %d", gi)
		}
		switch g.Name {
		case "h":
			state.H(g.Qubits[0])
		case "x":
			state.X(g.Qubits[0])
		case "y":
			state.Y(g.Qubits[0])
		case "z":
			state.Z(g.Qubits[0])
		case "rx":
			state.RX(g.Qubits[0], g.Params[0])
		case "ry":
			state.RY(g.Qubits[0], g.Params[0])
		case "rz":
			state.RZ(g.Qubits[0], g.Params[0])
		case "cx":
			state.CNOT(g.Qubits[0], g.Qubits[1])
		case "cz":
			state.CZ(g.Qubits[0], g.Qubits[1])
		default:
			return nil, errors.Errorf("sim: gate %d: unknown gate %q", gi, g.Name)
		}
	}
	return state, nil
}

func checkArity(g Gate) error {
	var qubits, params int
	switch g.Name {
	case "h", "x", "y", "z":
		qubits, params = 1, 0
	case "rx", "ry", "rz":
		qubits, params = 1, 1
	case "cx", "cz":
		qubits, params = 2, 0
	default:
		return nil // unknown gates are reported by Execute
	}
	if len(g.Qubits) != qubits || len(g.Params) != params {
		return errors.Errorf("%s: want %d qubits and %d params, got %d and %d",
			g.Name, qubits, params, len(g.Qubits), len(g.Params))
	}
	return nil
}
