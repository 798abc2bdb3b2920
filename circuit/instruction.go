package circuit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/MaxMood96/qiskit-terra/gates"
	"github.com/MaxMood96/qiskit-terra/quantum"
)

// opKind discriminates the instruction variants stored in a circuit.
type opKind uint8

const (
	opGate opKind = iota
	opMeasure
	opReset
	opBarrier
	opDelay
	opUnitary
)

// DelayUnit selects the unit a delay duration is expressed in.
type DelayUnit uint8

const (
	DelayS DelayUnit = iota
	DelayMS
	DelayUS
	DelayNS
	DelayPS
	// DelayDT is in units of device cycles.
	DelayDT
)

func (u DelayUnit) valid() bool {
	return u <= DelayDT
}

func (u DelayUnit) String() string {
	switch u {
	case DelayS:
		return "s"
	case DelayMS:
		return "ms"
	case DelayUS:
		return "us"
	case DelayNS:
		return "ns"
	case DelayPS:
		return "ps"
	case DelayDT:
		return "dt"
	}
	return "unknown"
}

// instruction is one stored operation. It is a tagged variant: fixed-arity
// gates carry short qubit/param slices, while barrier and unitary carry
// variable-length payloads. Slices are owned by the circuit and never
// shared with callers or copies.
type instruction struct {
	kind   opKind
	gate   gates.Gate // valid for opGate only
	qubits []uint32
	clbits []uint32
	params []float64   // delay stores its duration as params[0]
	unit   DelayUnit   // valid for opDelay only
	matrix *mat.CDense // valid for opUnitary only
}

func newGateInstruction(g gates.Gate, qubits []uint32, params []float64) instruction {
	return instruction{
		kind:   opGate,
		gate:   g,
		qubits: cloneU32(qubits),
		params: cloneF64(params),
	}
}

func newMeasureInstruction(qubit, clbit uint32) instruction {
	return instruction{
		kind:   opMeasure,
		qubits: []uint32{qubit},
		clbits: []uint32{clbit},
	}
}

func newResetInstruction(qubit uint32) instruction {
	return instruction{
		kind:   opReset,
		qubits: []uint32{qubit},
	}
}

func newBarrierInstruction(qubits []uint32) instruction {
	return instruction{
		kind:   opBarrier,
		qubits: cloneU32(qubits),
	}
}

func newDelayInstruction(qubit uint32, duration float64, unit DelayUnit) instruction {
	return instruction{
		kind:   opDelay,
		qubits: []uint32{qubit},
		params: []float64{duration},
		unit:   unit,
	}
}

func newUnitaryInstruction(matrix *mat.CDense, qubits []uint32) instruction {
	return instruction{
		kind:   opUnitary,
		qubits: cloneU32(qubits),
		matrix: quantum.Clone(matrix),
	}
}

// name returns the canonical lowercase name of the instruction.
func (in *instruction) name() string {
	switch in.kind {
	case opGate:
		return in.gate.Name()
	case opMeasure:
		return "measure"
	case opReset:
		return "reset"
	case opBarrier:
		return "barrier"
	case opDelay:
		return "delay"
	case opUnitary:
		return "unitary"
	}
	return "unknown"
}

// clone deep-copies the instruction, including the matrix payload.
func (in *instruction) clone() instruction {
	return instruction{
		kind:   in.kind,
		gate:   in.gate,
		qubits: cloneU32(in.qubits),
		clbits: cloneU32(in.clbits),
		params: cloneF64(in.params),
		unit:   in.unit,
		matrix: quantum.Clone(in.matrix),
	}
}

// CircuitInstruction is a caller-owned snapshot of one stored instruction.
// It aliases no circuit storage; mutating or clearing it never affects the
// circuit it was read from.
type CircuitInstruction struct {
	Name      string
	Qubits    []uint32
	Clbits    []uint32
	Params    []float64
	DelayUnit DelayUnit
	Matrix    *mat.CDense
}

// NumQubits returns the number of qubits the instruction acts on.
func (ci *CircuitInstruction) NumQubits() int { return len(ci.Qubits) }

// NumClbits returns the number of clbits the instruction writes.
func (ci *CircuitInstruction) NumClbits() int { return len(ci.Clbits) }

// NumParams returns the number of scalar parameters.
func (ci *CircuitInstruction) NumParams() int { return len(ci.Params) }

// Clear releases the snapshot's payload. The snapshot must not be used
// afterwards; the circuit it was read from is unaffected.
func (ci *CircuitInstruction) Clear() {
	ci.Name = ""
	ci.Qubits = nil
	ci.Clbits = nil
	ci.Params = nil
	ci.Matrix = nil
}

// snapshot builds the caller-owned view of the instruction.
func (in *instruction) snapshot() *CircuitInstruction {
	return &CircuitInstruction{
		Name:      in.name(),
		Qubits:    cloneU32(in.qubits),
		Clbits:    cloneU32(in.clbits),
		Params:    cloneF64(in.params),
		DelayUnit: in.unit,
		Matrix:    quantum.Clone(in.matrix),
	}
}

func cloneU32(s []uint32) []uint32 {
	if len(s) == 0 {
		return nil
	}
	out := make([]uint32, len(s))
	copy(out, s)
	return out
}

func cloneF64(s []float64) []float64 {
	if len(s) == 0 {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
