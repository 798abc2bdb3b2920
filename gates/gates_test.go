package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateNumQubits(t *testing.T) {
	for g := Gate(0); g < NumGates; g++ {
		var want uint32
		switch {
		case g == GlobalPhase:
			want = 0
		case g < CH:
			want = 1
		case g <= XXPlusYY:
			want = 2
		case g <= RCCX:
			want = 3
		default:
			want = 4
		}
		assert.Equal(t, want, g.NumQubits(), "gate %s", g.Name())
	}
}

func TestGateNumParams(t *testing.T) {
	zeroParam := map[Gate]bool{
		H: true, I: true, X: true, Y: true, Z: true,
		S: true, Sdg: true, SX: true, SXdg: true, T: true, Tdg: true,
		CH: true, CX: true, CY: true, CZ: true, DCX: true, ECR: true,
		Swap: true, ISwap: true, CS: true, CSdg: true, CSX: true,
		CCX: true, CCZ: true, CSwap: true, RCCX: true,
		C3X: true, C3SX: true, RC3X: true,
	}
	oneParam := map[Gate]bool{
		GlobalPhase: true, Phase: true, RX: true, RY: true, RZ: true,
		U1: true, CPhase: true, CRX: true, CRY: true, CRZ: true, CU1: true,
		RXX: true, RYY: true, RZZ: true, RZX: true,
	}
	twoParam := map[Gate]bool{R: true, U2: true, XXMinusYY: true, XXPlusYY: true}

	for g := Gate(0); g < NumGates; g++ {
		var want uint32
		switch {
		case zeroParam[g]:
			want = 0
		case oneParam[g]:
			want = 1
		case twoParam[g]:
			want = 2
		case g == CU:
			// cu takes theta, phi, lambda, gamma
			want = 4
		default:
			want = 3
		}
		assert.Equal(t, want, g.NumParams(), "gate %s", g.Name())
	}
}

func TestGateNames(t *testing.T) {
	seen := make(map[string]Gate, NumGates)
	for g := Gate(0); g < NumGates; g++ {
		name := g.Name()
		require.NotEmpty(t, name)
		require.NotEqual(t, "unknown", name)
		prev, dup := seen[name]
		require.False(t, dup, "gates %d and %d share name %q", prev, g, name)
		seen[name] = g
	}

	assert.Equal(t, "h", H.Name())
	assert.Equal(t, "cx", CX.Name())
	assert.Equal(t, "id", I.Name())
	assert.Equal(t, "p", Phase.Name())
	assert.Equal(t, "mcx", C3X.Name())
	assert.Equal(t, "xx_minus_yy", XXMinusYY.Name())
}

func TestInvalidGate(t *testing.T) {
	g := Gate(NumGates)
	assert.False(t, g.Valid())
	assert.Equal(t, "unknown", g.Name())
	assert.Equal(t, uint32(0), g.NumQubits())
	assert.Equal(t, uint32(0), g.NumParams())
}
