// Package library builds commonly used circuits on top of the circuit
// package: data-preparation feature maps and small named templates.
package library

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/MaxMood96/qiskit-terra/circuit"
	"github.com/MaxMood96/qiskit-terra/gates"
)

// Entanglement selects which qubit pairs the two-local interactions of a
// feature map couple.
type Entanglement uint8

const (
	// EntangleFull couples every pair (i, j) with i < j.
	EntangleFull Entanglement = iota
	// EntangleLinear couples neighbouring pairs (i, i+1) only.
	EntangleLinear
)

func (e Entanglement) pairs(n int) [][2]uint32 {
	var out [][2]uint32
	switch e {
	case EntangleFull:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				out = append(out, [2]uint32{uint32(i), uint32(j)})
			}
		}
	case EntangleLinear:
		for i := 0; i+1 < n; i++ {
			out = append(out, [2]uint32{uint32(i), uint32(i + 1)})
		}
	}
	return out
}

// ZZFeatureMap builds a second-order Pauli-Z expansion over the given
// feature values: per repetition a Hadamard layer, a p(2*x[i]) phase layer
// and one cx / p(2*(pi-x[i])*(pi-x[j])) / cx block per entangled pair.
// At least two features are required, since the map is built from 2-local
// interactions.
func ZZFeatureMap(features []float64, reps int, entanglement Entanglement, insertBarriers bool) (*circuit.Circuit, error) {
	n := len(features)
	if n < 2 {
		return nil, fmt.Errorf("zz feature map needs at least 2 features, got %d", n)
	}
	if reps < 1 {
		return nil, fmt.Errorf("zz feature map needs at least 1 repetition, got %d", reps)
	}
	pairs := entanglement.pairs(n)
	if len(pairs) == 0 {
		return nil, fmt.Errorf("unknown entanglement %d", entanglement)
	}

	c := circuit.New(uint32(n), 0)
	allQubits := make([]uint32, n)
	for i := range allQubits {
		allQubits[i] = uint32(i)
	}

	for rep := 0; rep < reps; rep++ {
		for _, q := range allQubits {
			if err := c.Gate(gates.H, []uint32{q}, nil); err != nil {
				return nil, err
			}
		}
		if insertBarriers {
			if err := c.Barrier(allQubits); err != nil {
				return nil, err
			}
		}
		for i, q := range allQubits {
			if err := c.Gate(gates.Phase, []uint32{q}, []float64{2 * features[i]}); err != nil {
				return nil, err
			}
		}
		for _, pair := range pairs {
			i, j := pair[0], pair[1]
			angle := 2 * (math.Pi - features[i]) * (math.Pi - features[j])
			if err := c.Gate(gates.CX, []uint32{i, j}, nil); err != nil {
				return nil, err
			}
			if err := c.Gate(gates.Phase, []uint32{j}, []float64{angle}); err != nil {
				return nil, err
			}
			if err := c.Gate(gates.CX, []uint32{i, j}, nil); err != nil {
				return nil, err
			}
		}
		if insertBarriers && rep+1 < reps {
			if err := c.Barrier(allQubits); err != nil {
				return nil, err
			}
		}
	}

	log.WithFields(log.Fields{"features": n, "reps": reps, "instructions": c.NumInstructions()}).
		Debug("built zz feature map")
	return c, nil
}
