package sim

import (
	"fmt"
	"strings"
)

// ToQASM renders the circuit as OpenQASM 2.0, with a measurement of
// every qubit at the end when measure is true.
func ToQASM(c *Circuit, measure bool) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	if measure {
		fmt.Fprintf(&sb, "creg c[%d];\n", c.NumQubits)
	}
	sb.WriteString("\n")

	for _, g := range c.Gates {
		if len(g.Params) > 0 {
			params := make([]string, len(g.Params))
			for i, p := range g.Params {
				params[i] = fmt.Sprintf("%g", p)
			}
			fmt.Fprintf(&sb, "%s(%s)", g.Name, strings.Join(params, ","))
		} else {
			sb.WriteString(g.Name)
		}
		qubits := make([]string, len(g.Qubits))
		for i, q := range g.Qubits {
			qubits[i] = fmt.Sprintf("q[%d]", q)
		}
		fmt.Fprintf(&sb, " %s;\n", strings.Join(qubits, ","))
	}

	if measure {
		sb.WriteString("\n")
		for q := 0; q < c.NumQubits; q++ {
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", q, q)
		}
	}
	return sb.String()
}
