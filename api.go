// Package qiskit exposes the top-level entry points of the quantum circuit
// intermediate representation: circuit construction, register creation and
// the gate enumeration. The heavy lifting lives in the circuit, gates and
// quantum packages; this package only re-exports the common surface so
// most callers need a single import.
package qiskit

import (
	"github.com/MaxMood96/qiskit-terra/circuit"
	"github.com/MaxMood96/qiskit-terra/gates"
)

// Circuit is the aggregate root of the IR.
type Circuit = circuit.Circuit

// CircuitInstruction is a caller-owned instruction snapshot.
type CircuitInstruction = circuit.CircuitInstruction

// Gate identifies a standard gate kind.
type Gate = gates.Gate

// OpCounts is the result of Circuit.CountOps.
type OpCounts = circuit.OpCounts

// NewCircuit returns a circuit with the given initial qubit and clbit
// counts, no registers and no instructions.
func NewCircuit(numQubits, numClbits uint32) *Circuit {
	return circuit.New(numQubits, numClbits)
}

// NewQuantumRegister returns a named quantum register of the given size,
// ready to be attached with Circuit.AddQuantumRegister.
func NewQuantumRegister(size uint32, name string) *circuit.QuantumRegister {
	return circuit.NewQuantumRegister(size, name)
}

// NewClassicalRegister returns a named classical register of the given
// size, ready to be attached with Circuit.AddClassicalRegister.
func NewClassicalRegister(size uint32, name string) *circuit.ClassicalRegister {
	return circuit.NewClassicalRegister(size, name)
}
