package library

import (
	"github.com/MaxMood96/qiskit-terra/circuit"
	"github.com/MaxMood96/qiskit-terra/gates"
)

// Clifford6_1 returns the two-qubit Clifford template 6_1:
//
//	     ┌───┐     ┌───┐┌───┐
//	q_0: ┤ H ├──■──┤ H ├┤ X ├
//	     ├───┤┌─┴─┐├───┤└─┬─┘
//	q_1: ┤ H ├┤ X ├┤ H ├──■──
//	     └───┘└───┘└───┘
func Clifford6_1() *circuit.Circuit {
	c := circuit.New(2, 0)
	mustGate(c, gates.H, 0)
	mustGate(c, gates.H, 1)
	mustCX(c, 0, 1)
	mustGate(c, gates.H, 0)
	mustGate(c, gates.H, 1)
	mustCX(c, 1, 0)
	return c
}

// The template shapes are fixed, so append errors can only come from a bug
// in the template itself.
func mustGate(c *circuit.Circuit, g gates.Gate, q uint32) {
	if err := c.Gate(g, []uint32{q}, nil); err != nil {
		panic(err)
	}
}

func mustCX(c *circuit.Circuit, control, target uint32) {
	if err := c.Gate(gates.CX, []uint32{control, target}, nil); err != nil {
		panic(err)
	}
}
