// Package circuit implements the in-memory representation of quantum
// circuits: qubits, clbits, named registers and the ordered instruction
// sequence, with append-time validation and deterministic introspection.
//
// A Circuit is not safe for uncoordinated concurrent mutation. Distinct
// circuits, including a circuit and its Copy, are fully independent.
package circuit

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// Circuit is the aggregate root. It exclusively owns its registers and
// instruction sequence.
type Circuit struct {
	numQubits    uint32
	numClbits    uint32
	qregs        []registerSpan
	cregs        []registerSpan
	instructions []instruction
}

// New returns a circuit with the given initial qubit and clbit counts, no
// registers and no instructions. Both counts may be zero.
func New(numQubits, numClbits uint32) *Circuit {
	return &Circuit{
		numQubits: numQubits,
		numClbits: numClbits,
	}
}

// NumQubits returns the current number of qubits.
func (c *Circuit) NumQubits() uint32 { return c.numQubits }

// NumClbits returns the current number of clbits.
func (c *Circuit) NumClbits() uint32 { return c.numClbits }

// NumInstructions returns the number of stored instructions.
func (c *Circuit) NumInstructions() int { return len(c.instructions) }

// AddQuantumRegister appends the register's qubits after all existing
// qubits and records the grouping. Existing instructions are unaffected.
func (c *Circuit) AddQuantumRegister(r *QuantumRegister) error {
	if uint64(c.numQubits)+uint64(r.size) > math.MaxUint32 {
		return fmt.Errorf("%w: register %q of size %d would overflow the qubit index space", ErrCapacityExceeded, r.name, r.size)
	}
	c.qregs = append(c.qregs, registerSpan{name: r.name, start: c.numQubits, size: r.size})
	c.numQubits += r.size
	log.WithFields(log.Fields{"register": r.name, "size": r.size, "qubits": c.numQubits}).
		Debug("added quantum register")
	return nil
}

// AddClassicalRegister appends the register's clbits after all existing
// clbits and records the grouping.
func (c *Circuit) AddClassicalRegister(r *ClassicalRegister) error {
	if uint64(c.numClbits)+uint64(r.size) > math.MaxUint32 {
		return fmt.Errorf("%w: register %q of size %d would overflow the clbit index space", ErrCapacityExceeded, r.name, r.size)
	}
	c.cregs = append(c.cregs, registerSpan{name: r.name, start: c.numClbits, size: r.size})
	c.numClbits += r.size
	log.WithFields(log.Fields{"register": r.name, "size": r.size, "clbits": c.numClbits}).
		Debug("added classical register")
	return nil
}

// QuantumRegisters returns the quantum registers attached to the circuit,
// in attachment order.
func (c *Circuit) QuantumRegisters() []RegisterInfo {
	return registerInfos(c.qregs)
}

// ClassicalRegisters returns the classical registers attached to the
// circuit, in attachment order.
func (c *Circuit) ClassicalRegisters() []RegisterInfo {
	return registerInfos(c.cregs)
}

func registerInfos(spans []registerSpan) []RegisterInfo {
	out := make([]RegisterInfo, len(spans))
	for i, s := range spans {
		out[i] = RegisterInfo{Name: s.name, Start: s.start, Size: s.size}
	}
	return out
}

// Instruction returns a caller-owned snapshot of the instruction at the
// given position. The snapshot aliases no circuit storage and should be
// released with Clear when no longer needed.
func (c *Circuit) Instruction(i int) (*CircuitInstruction, error) {
	if i < 0 || i >= len(c.instructions) {
		return nil, fmt.Errorf("%w: instruction %d of %d", ErrIndexOutOfRange, i, len(c.instructions))
	}
	return c.instructions[i].snapshot(), nil
}

// Copy returns a deep, independent clone. Subsequent mutation of either
// circuit is invisible to the other.
func (c *Circuit) Copy() *Circuit {
	out := &Circuit{
		numQubits: c.numQubits,
		numClbits: c.numClbits,
	}
	if len(c.qregs) > 0 {
		out.qregs = make([]registerSpan, len(c.qregs))
		copy(out.qregs, c.qregs)
	}
	if len(c.cregs) > 0 {
		out.cregs = make([]registerSpan, len(c.cregs))
		copy(out.cregs, c.cregs)
	}
	if len(c.instructions) > 0 {
		out.instructions = make([]instruction, len(c.instructions))
		for i := range c.instructions {
			out.instructions[i] = c.instructions[i].clone()
		}
	}
	log.WithFields(log.Fields{"qubits": c.numQubits, "instructions": len(c.instructions)}).
		Debug("copied circuit")
	return out
}

// Depth returns the length of the longest instruction chain over any bit,
// i.e. the number of layers the circuit occupies when instructions sharing
// no bits are packed together.
func (c *Circuit) Depth() int {
	if len(c.instructions) == 0 {
		return 0
	}
	qLevel := make([]int, c.numQubits)
	cLevel := make([]int, c.numClbits)
	depth := 0
	for i := range c.instructions {
		in := &c.instructions[i]
		level := 0
		for _, q := range in.qubits {
			if qLevel[q] > level {
				level = qLevel[q]
			}
		}
		for _, cb := range in.clbits {
			if cLevel[cb] > level {
				level = cLevel[cb]
			}
		}
		level++
		for _, q := range in.qubits {
			qLevel[q] = level
		}
		for _, cb := range in.clbits {
			cLevel[cb] = level
		}
		if level > depth {
			depth = level
		}
	}
	return depth
}
