package circuit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/mat"

	"github.com/MaxMood96/qiskit-terra/gates"
	"github.com/MaxMood96/qiskit-terra/quantum"
)

// All append entry points validate before mutating, so a rejected append
// leaves the circuit exactly as it was.

// Gate appends a standard gate. The qubit and parameter counts must match
// the gate's metadata exactly; a nil params slice is valid for
// parameter-free gates.
func (c *Circuit) Gate(g gates.Gate, qubits []uint32, params []float64) error {
	if !g.Valid() {
		return fmt.Errorf("%w: gate id %d", ErrRuntime, g)
	}
	if uint32(len(qubits)) != g.NumQubits() {
		return fmt.Errorf("%w: gate %s takes %d qubits, got %d", ErrArityMismatch, g.Name(), g.NumQubits(), len(qubits))
	}
	if uint32(len(params)) != g.NumParams() {
		return fmt.Errorf("%w: gate %s takes %d params, got %d", ErrArityMismatch, g.Name(), g.NumParams(), len(params))
	}
	if err := c.checkQubits(qubits); err != nil {
		return err
	}
	c.instructions = append(c.instructions, newGateInstruction(g, qubits, params))
	return nil
}

// Measure appends a measurement of qubit into clbit.
func (c *Circuit) Measure(qubit, clbit uint32) error {
	if qubit >= c.numQubits {
		return fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, qubit, c.numQubits)
	}
	if clbit >= c.numClbits {
		return fmt.Errorf("%w: clbit %d of %d", ErrIndexOutOfRange, clbit, c.numClbits)
	}
	c.instructions = append(c.instructions, newMeasureInstruction(qubit, clbit))
	return nil
}

// Reset appends a reset of the given qubit.
func (c *Circuit) Reset(qubit uint32) error {
	if qubit >= c.numQubits {
		return fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, qubit, c.numQubits)
	}
	c.instructions = append(c.instructions, newResetInstruction(qubit))
	return nil
}

// Barrier appends a scheduling boundary over the given qubits. The qubit
// list must be non-empty and free of duplicates.
func (c *Circuit) Barrier(qubits []uint32) error {
	if len(qubits) == 0 {
		return fmt.Errorf("%w: barrier needs at least one qubit", ErrArityMismatch)
	}
	if err := c.checkQubits(qubits); err != nil {
		return err
	}
	c.instructions = append(c.instructions, newBarrierInstruction(qubits))
	return nil
}

// Delay appends a delay of the given duration on one qubit. The duration
// and unit are stored verbatim; no unit conversion happens here.
func (c *Circuit) Delay(qubit uint32, duration float64, unit DelayUnit) error {
	if qubit >= c.numQubits {
		return fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, qubit, c.numQubits)
	}
	if !unit.valid() {
		return fmt.Errorf("%w: malformed delay unit %d", ErrRuntime, unit)
	}
	c.instructions = append(c.instructions, newDelayInstruction(qubit, duration, unit))
	return nil
}

// Unitary appends an arbitrary unitary over n qubits. The matrix must be
// 2^n x 2^n. With check set, the matrix must satisfy the unitarity
// condition within quantum.DefaultTolerance or the append is rejected and
// the circuit is left unchanged.
func (c *Circuit) Unitary(matrix *mat.CDense, qubits []uint32, check bool) error {
	return c.UnitaryWithTolerance(matrix, qubits, check, quantum.DefaultTolerance)
}

// UnitaryWithTolerance is Unitary with an explicit unitarity tolerance.
func (c *Circuit) UnitaryWithTolerance(matrix *mat.CDense, qubits []uint32, check bool, tol float64) error {
	if len(qubits) == 0 {
		return fmt.Errorf("%w: unitary needs at least one qubit", ErrArityMismatch)
	}
	if matrix == nil {
		return fmt.Errorf("%w: nil matrix", ErrRuntime)
	}
	dim := quantum.DimForQubits(uint32(len(qubits)))
	r, cols := matrix.Dims()
	if dim == 0 || r != dim || cols != dim {
		return fmt.Errorf("%w: %d qubits require a %dx%d matrix, got %dx%d", ErrArityMismatch, len(qubits), dim, dim, r, cols)
	}
	if err := c.checkQubits(qubits); err != nil {
		return err
	}
	if check && !quantum.IsUnitary(matrix, tol) {
		return fmt.Errorf("%w: matrix is not unitary within tolerance %g", ErrExpectedUnitary, tol)
	}
	c.instructions = append(c.instructions, newUnitaryInstruction(matrix, qubits))
	return nil
}

// checkQubits rejects out-of-range and duplicate qubit indices. The seen
// set is a bitset over the circuit's qubit index space.
func (c *Circuit) checkQubits(qubits []uint32) error {
	if len(qubits) == 1 {
		if qubits[0] >= c.numQubits {
			return fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, qubits[0], c.numQubits)
		}
		return nil
	}
	seen := bitset.New(uint(c.numQubits))
	for _, q := range qubits {
		if q >= c.numQubits {
			return fmt.Errorf("%w: qubit %d of %d", ErrIndexOutOfRange, q, c.numQubits)
		}
		if seen.Test(uint(q)) {
			return fmt.Errorf("%w: duplicate qubit %d", ErrRuntime, q)
		}
		seen.Set(uint(q))
	}
	return nil
}
