package mcx

import (
	"fmt"
	"strings"
)

// QASM renders the circuit as OpenQASM 2.0. Export only: the engine's
// input is the call contract, never QASM text. Synthesized circuits carry
// no measurements, so no classical register is declared.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", max(c.NumQubits, 1))

	for _, g := range c.Gates {
		writeGateQASM(&sb, g, c.NumQubits)
	}
	return sb.String()
}

func writeGateQASM(sb *strings.Builder, g Gate, numQubits int) {
	switch g.Kind {
	case KindBarrier:
		qubits := make([]string, numQubits)
		for q := range qubits {
			qubits[q] = fmt.Sprintf("q[%d]", q)
		}
		fmt.Fprintf(sb, "barrier %s;\n", strings.Join(qubits, ", "))

	case KindCCX:
		fmt.Fprintf(sb, "ccx q[%d], q[%d], q[%d];\n", g.Controls[0], g.Controls[1], g.Target)

	case KindMCX:
		// qelib has no generic mcx; emit the named gate the way larger
		// front ends spell it, operands controls-then-target.
		fmt.Fprintf(sb, "mcx ")
		for _, c := range g.Controls {
			fmt.Fprintf(sb, "q[%d], ", c)
		}
		fmt.Fprintf(sb, "q[%d];\n", g.Target)

	case KindCX:
		fmt.Fprintf(sb, "cx q[%d], q[%d];\n", g.Controls[0], g.Target)
	case KindCZ:
		fmt.Fprintf(sb, "cz q[%d], q[%d];\n", g.Controls[0], g.Target)
	case KindCP:
		fmt.Fprintf(sb, "cu1(%s) q[%d], q[%d];\n", FormatParam(g.Param), g.Controls[0], g.Target)
	case KindCRX:
		fmt.Fprintf(sb, "crx(%s) q[%d], q[%d];\n", FormatParam(g.Param), g.Controls[0], g.Target)

	case KindP:
		fmt.Fprintf(sb, "u1(%s) q[%d];\n", FormatParam(g.Param), g.Target)
	case KindRZ:
		fmt.Fprintf(sb, "rz(%s) q[%d];\n", FormatParam(g.Param), g.Target)

	default:
		fmt.Fprintf(sb, "%s q[%d];\n", g.Kind, g.Target)
	}
}
