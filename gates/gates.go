// Package gates defines the closed enumeration of standard gates and their
// fixed qubit/parameter arities. The metadata tables are process-wide
// constants; they carry no per-circuit state.
package gates

// Gate identifies one standard gate kind.
type Gate uint8

const (
	GlobalPhase Gate = iota
	H
	I
	X
	Y
	Z
	Phase
	R
	RX
	RY
	RZ
	S
	Sdg
	SX
	SXdg
	T
	Tdg
	U
	U1
	U2
	U3
	CH
	CX
	CY
	CZ
	DCX
	ECR
	Swap
	ISwap
	CPhase
	CRX
	CRY
	CRZ
	CS
	CSdg
	CSX
	CU
	CU1
	CU3
	RXX
	RYY
	RZZ
	RZX
	XXMinusYY
	XXPlusYY
	CCX
	CCZ
	CSwap
	RCCX
	C3X
	C3SX
	RC3X
)

// NumGates is the size of the gate enumeration.
const NumGates = 52

// gateMeta is one row of the static metadata table.
type gateMeta struct {
	name      string
	numQubits uint32
	numParams uint32
}

var gateTable = [NumGates]gateMeta{
	GlobalPhase: {"global_phase", 0, 1},
	H:           {"h", 1, 0},
	I:           {"id", 1, 0},
	X:           {"x", 1, 0},
	Y:           {"y", 1, 0},
	Z:           {"z", 1, 0},
	Phase:       {"p", 1, 1},
	R:           {"r", 1, 2},
	RX:          {"rx", 1, 1},
	RY:          {"ry", 1, 1},
	RZ:          {"rz", 1, 1},
	S:           {"s", 1, 0},
	Sdg:         {"sdg", 1, 0},
	SX:          {"sx", 1, 0},
	SXdg:        {"sxdg", 1, 0},
	T:           {"t", 1, 0},
	Tdg:         {"tdg", 1, 0},
	U:           {"u", 1, 3},
	U1:          {"u1", 1, 1},
	U2:          {"u2", 1, 2},
	U3:          {"u3", 1, 3},
	CH:          {"ch", 2, 0},
	CX:          {"cx", 2, 0},
	CY:          {"cy", 2, 0},
	CZ:          {"cz", 2, 0},
	DCX:         {"dcx", 2, 0},
	ECR:         {"ecr", 2, 0},
	Swap:        {"swap", 2, 0},
	ISwap:       {"iswap", 2, 0},
	CPhase:      {"cp", 2, 1},
	CRX:         {"crx", 2, 1},
	CRY:         {"cry", 2, 1},
	CRZ:         {"crz", 2, 1},
	CS:          {"cs", 2, 0},
	CSdg:        {"csdg", 2, 0},
	CSX:         {"csx", 2, 0},
	CU:          {"cu", 2, 4},
	CU1:         {"cu1", 2, 1},
	CU3:         {"cu3", 2, 3},
	RXX:         {"rxx", 2, 1},
	RYY:         {"ryy", 2, 1},
	RZZ:         {"rzz", 2, 1},
	RZX:         {"rzx", 2, 1},
	XXMinusYY:   {"xx_minus_yy", 2, 2},
	XXPlusYY:    {"xx_plus_yy", 2, 2},
	CCX:         {"ccx", 3, 0},
	CCZ:         {"ccz", 3, 0},
	CSwap:       {"cswap", 3, 0},
	RCCX:        {"rccx", 3, 0},
	C3X:         {"mcx", 4, 0},
	C3SX:        {"c3sx", 4, 0},
	RC3X:        {"rcccx", 4, 0},
}

// Valid reports whether g is a member of the enumeration.
func (g Gate) Valid() bool {
	return g < NumGates
}

// Name returns the canonical lowercase name of the gate.
func (g Gate) Name() string {
	if !g.Valid() {
		return "unknown"
	}
	return gateTable[g].name
}

// NumQubits returns the fixed number of qubits the gate acts on.
func (g Gate) NumQubits() uint32 {
	if !g.Valid() {
		return 0
	}
	return gateTable[g].numQubits
}

// NumParams returns the fixed number of scalar parameters the gate takes.
func (g Gate) NumParams() uint32 {
	if !g.Valid() {
		return 0
	}
	return gateTable[g].numParams
}
