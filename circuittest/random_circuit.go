// Package circuittest generates random but always-valid circuits for
// property tests of the circuit package.
package circuittest

import (
	"math/rand"

	"github.com/MaxMood96/qiskit-terra/circuit"
	"github.com/MaxMood96/qiskit-terra/gates"
)

// Config bounds the shape of a generated circuit.
type Config struct {
	Seed      int64
	NumQubits randRange
	NumClbits randRange
	NumInsn   randRange
	// weights out of 100; anything above MeasurePercent is a standard gate
	BarrierPercent int
	ResetPercent   int
	DelayPercent   int
	MeasurePercent int
}

type randRange struct {
	L int
	R int
}

// Range returns the inclusive range [l, r].
func Range(l, r int) randRange {
	return randRange{L: l, R: r}
}

func (rr randRange) sample(r *rand.Rand) int {
	return r.Intn(rr.R-rr.L+1) + rr.L
}

// oneQubitGates and twoQubitGates are the pools Random draws from.
var oneQubitGates = []gates.Gate{gates.H, gates.X, gates.Y, gates.Z, gates.S, gates.T, gates.RX, gates.RZ, gates.U}
var twoQubitGates = []gates.Gate{gates.CX, gates.CZ, gates.Swap, gates.CPhase, gates.RZZ}

// Random builds a circuit whose shape is drawn from conf. Every append is
// valid by construction; Random panics if the circuit rejects one, since
// that indicates a generator bug.
func Random(conf *Config) *circuit.Circuit {
	rnd := rand.New(rand.NewSource(conf.Seed))
	nq := uint32(conf.NumQubits.sample(rnd))
	nc := uint32(conf.NumClbits.sample(rnd))
	c := circuit.New(nq, nc)
	n := conf.NumInsn.sample(rnd)
	for i := 0; i < n; i++ {
		p := rnd.Intn(100)
		var err error
		switch {
		case p < conf.BarrierPercent:
			err = c.Barrier(randSubset(rnd, nq))
		case p < conf.ResetPercent:
			err = c.Reset(uint32(rnd.Intn(int(nq))))
		case p < conf.DelayPercent:
			err = c.Delay(uint32(rnd.Intn(int(nq))), rnd.Float64(), circuit.DelayDT)
		case p < conf.MeasurePercent && nc > 0:
			err = c.Measure(uint32(rnd.Intn(int(nq))), uint32(rnd.Intn(int(nc))))
		default:
			err = randGate(rnd, c, nq)
		}
		if err != nil {
			panic(err)
		}
	}
	return c
}

func randGate(rnd *rand.Rand, c *circuit.Circuit, nq uint32) error {
	if nq >= 2 && rnd.Intn(2) == 0 {
		g := twoQubitGates[rnd.Intn(len(twoQubitGates))]
		q0 := uint32(rnd.Intn(int(nq)))
		q1 := uint32(rnd.Intn(int(nq) - 1))
		if q1 >= q0 {
			q1++
		}
		return c.Gate(g, []uint32{q0, q1}, randParams(rnd, g))
	}
	g := oneQubitGates[rnd.Intn(len(oneQubitGates))]
	return c.Gate(g, []uint32{uint32(rnd.Intn(int(nq)))}, randParams(rnd, g))
}

func randParams(rnd *rand.Rand, g gates.Gate) []float64 {
	n := g.NumParams()
	if n == 0 {
		return nil
	}
	params := make([]float64, n)
	for i := range params {
		params[i] = rnd.Float64() * 6.28
	}
	return params
}

// randSubset returns a non-empty duplicate-free qubit subset.
func randSubset(rnd *rand.Rand, nq uint32) []uint32 {
	k := 1 + rnd.Intn(int(nq))
	perm := rnd.Perm(int(nq))
	out := make([]uint32, k)
	for i := 0; i < k; i++ {
		out[i] = uint32(perm[i])
	}
	return out
}
