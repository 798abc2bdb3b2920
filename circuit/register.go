package circuit

// QuantumRegister is a named grouping of qubits. It is created standalone
// and attached to a circuit with AddQuantumRegister, which appends its bits
// after all existing qubits.
type QuantumRegister struct {
	name string
	size uint32
}

// NewQuantumRegister returns a quantum register of the given size.
func NewQuantumRegister(size uint32, name string) *QuantumRegister {
	return &QuantumRegister{name: name, size: size}
}

// Name returns the register's name.
func (r *QuantumRegister) Name() string { return r.name }

// Size returns the number of qubits in the register.
func (r *QuantumRegister) Size() uint32 { return r.size }

// ClassicalRegister is a named grouping of clbits.
type ClassicalRegister struct {
	name string
	size uint32
}

// NewClassicalRegister returns a classical register of the given size.
func NewClassicalRegister(size uint32, name string) *ClassicalRegister {
	return &ClassicalRegister{name: name, size: size}
}

// Name returns the register's name.
func (r *ClassicalRegister) Name() string { return r.name }

// Size returns the number of clbits in the register.
func (r *ClassicalRegister) Size() uint32 { return r.size }

// registerSpan records a register attached to a circuit together with the
// index range it covers. The circuit owns its spans; they are copied, not
// shared, on Copy.
type registerSpan struct {
	name  string
	start uint32
	size  uint32
}

// RegisterInfo describes a register attached to a circuit.
type RegisterInfo struct {
	Name  string
	Start uint32
	Size  uint32
}
