package qiskit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxMood96/qiskit-terra/gates"
)

func TestBellPair(t *testing.T) {
	c := NewCircuit(0, 0)
	require.NoError(t, c.AddQuantumRegister(NewQuantumRegister(2, "q")))
	require.NoError(t, c.AddClassicalRegister(NewClassicalRegister(2, "c")))

	require.NoError(t, c.Gate(gates.H, []uint32{0}, nil))
	require.NoError(t, c.Gate(gates.CX, []uint32{0, 1}, nil))
	require.NoError(t, c.Measure(0, 0))
	require.NoError(t, c.Measure(1, 1))

	assert.Equal(t, uint32(2), c.NumQubits())
	assert.Equal(t, uint32(2), c.NumClbits())
	assert.Equal(t, 4, c.NumInstructions())
	assert.Equal(t, map[string]uint64{"h": 1, "cx": 1, "measure": 2}, c.CountOps().Map())
	assert.Equal(t, 3, c.Depth())
}
