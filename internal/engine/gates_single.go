package engine

import (
	"math"
	"math/cmplx"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// pauliXGate implements PauliX: swaps the two amplitudes of the target
// wire.
type pauliXGate struct{}

func (pauliXGate) Label() string        { return "PauliX" }
func (pauliXGate) Arity() int           { return 1 }
func (pauliXGate) Matrix() []complex128 { return []complex128{0, 1, 1, 0} }
func (pauliXGate) Apply(state []complex128, idx []int) {
	state[idx[0]], state[idx[1]] = state[idx[1]], state[idx[0]]
}

// pauliYGate implements PauliY: scale-and-swap with ±i.
type pauliYGate struct{}

func (pauliYGate) Label() string        { return "PauliY" }
func (pauliYGate) Arity() int           { return 1 }
func (pauliYGate) Matrix() []complex128 { return []complex128{0, -1i, 1i, 0} }
func (pauliYGate) Apply(state []complex128, idx []int) {
	v0 := state[idx[0]]
	state[idx[0]] = -1i * state[idx[1]]
	state[idx[1]] = 1i * v0
}

// pauliZGate implements PauliZ: negates the amplitude at the index-1 slot.
type pauliZGate struct{}

func (pauliZGate) Label() string        { return "PauliZ" }
func (pauliZGate) Arity() int           { return 1 }
func (pauliZGate) Matrix() []complex128 { return []complex128{1, 0, 0, -1} }
func (pauliZGate) Apply(state []complex128, idx []int) {
	state[idx[1]] *= -1
}

// hadamardGate implements Hadamard: a 2x2 mix with 1/sqrt2.
type hadamardGate struct{}

func (hadamardGate) Label() string { return "Hadamard" }
func (hadamardGate) Arity() int    { return 1 }
func (hadamardGate) Matrix() []complex128 {
	return []complex128{invSqrt2, invSqrt2, invSqrt2, -invSqrt2}
}
func (hadamardGate) Apply(state []complex128, idx []int) {
	v0, v1 := state[idx[0]], state[idx[1]]
	state[idx[0]] = invSqrt2 * (v0 + v1)
	state[idx[1]] = invSqrt2 * (v0 - v1)
}

// sGate implements S: multiplies the index-1 slot by i.
type sGate struct{}

func (sGate) Label() string        { return "S" }
func (sGate) Arity() int           { return 1 }
func (sGate) Matrix() []complex128 { return []complex128{1, 0, 0, 1i} }
func (sGate) Apply(state []complex128, idx []int) {
	state[idx[1]] *= 1i
}

// tShift is e^{iπ/4}, the T gate's phase factor.
var tShift = cmplx.Exp(complex(0, math.Pi/4))

// tGate implements T: multiplies the index-1 slot by e^{iπ/4}.
type tGate struct{}

func (tGate) Label() string        { return "T" }
func (tGate) Arity() int           { return 1 }
func (tGate) Matrix() []complex128 { return []complex128{1, 0, 0, tShift} }
func (tGate) Apply(state []complex128, idx []int) {
	state[idx[1]] *= tShift
}

// rxGate implements RX(θ): full 2x2 apply with cos(θ/2), -i sin(θ/2).
type rxGate struct {
	c, js complex128
}

func newRXGate(theta float64) rxGate {
	return rxGate{
		c:  complex(math.Cos(theta/2), 0),
		js: complex(0, -math.Sin(theta/2)),
	}
}

func (rxGate) Label() string { return "RX" }
func (rxGate) Arity() int    { return 1 }
func (g rxGate) Matrix() []complex128 {
	return []complex128{g.c, g.js, g.js, g.c}
}
func (g rxGate) Apply(state []complex128, idx []int) {
	v0, v1 := state[idx[0]], state[idx[1]]
	state[idx[0]] = g.c*v0 + g.js*v1
	state[idx[1]] = g.js*v0 + g.c*v1
}

// ryGate implements RY(θ): full 2x2 apply with cos, sin.
type ryGate struct {
	c, s complex128
}

func newRYGate(theta float64) ryGate {
	return ryGate{
		c: complex(math.Cos(theta/2), 0),
		s: complex(math.Sin(theta/2), 0),
	}
}

func (ryGate) Label() string { return "RY" }
func (ryGate) Arity() int    { return 1 }
func (g ryGate) Matrix() []complex128 {
	return []complex128{g.c, -g.s, g.s, g.c}
}
func (g ryGate) Apply(state []complex128, idx []int) {
	v0, v1 := state[idx[0]], state[idx[1]]
	state[idx[0]] = g.c*v0 - g.s*v1
	state[idx[1]] = g.s*v0 + g.c*v1
}

// rzGate implements RZ(θ): diagonal, multiplies slots by e^{∓iθ/2}.
type rzGate struct {
	first, second complex128
}

func newRZGate(theta float64) rzGate {
	return rzGate{
		first:  cmplx.Exp(complex(0, -theta/2)),
		second: cmplx.Exp(complex(0, theta/2)),
	}
}

func (rzGate) Label() string { return "RZ" }
func (rzGate) Arity() int    { return 1 }
func (g rzGate) Matrix() []complex128 {
	return []complex128{g.first, 0, 0, g.second}
}
func (g rzGate) Apply(state []complex128, idx []int) {
	state[idx[0]] *= g.first
	state[idx[1]] *= g.second
}

// phaseShiftGate implements PhaseShift(φ): diagonal, multiplies index-1 by
// e^{iφ}.
type phaseShiftGate struct {
	shift complex128
}

func newPhaseShiftGate(phi float64) phaseShiftGate {
	return phaseShiftGate{shift: cmplx.Exp(complex(0, phi))}
}

func (phaseShiftGate) Label() string { return "PhaseShift" }
func (phaseShiftGate) Arity() int    { return 1 }
func (g phaseShiftGate) Matrix() []complex128 {
	return []complex128{1, 0, 0, g.shift}
}
func (g phaseShiftGate) Apply(state []complex128, idx []int) {
	state[idx[1]] *= g.shift
}

// rotGate implements Rot(φ,θ,ω): the full ZYZ Euler product. It has no
// sparsity to exploit, so Apply falls back to the generic matrix path.
type rotGate struct {
	matrix []complex128
}

func newRotGate(phi, theta, omega float64) rotGate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	r1 := c * cmplx.Exp(complex(0, (-phi-omega)/2))
	r2 := -s * cmplx.Exp(complex(0, (phi-omega)/2))
	r3 := s * cmplx.Exp(complex(0, (-phi+omega)/2))
	r4 := c * cmplx.Exp(complex(0, (phi+omega)/2))
	return rotGate{matrix: []complex128{r1, r2, r3, r4}}
}

func (rotGate) Label() string          { return "Rot" }
func (rotGate) Arity() int             { return 1 }
func (g rotGate) Matrix() []complex128 { return g.matrix }
func (g rotGate) Apply(state []complex128, idx []int) {
	genericApply(g.matrix, state, idx)
}
