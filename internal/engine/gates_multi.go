package engine

// cnotGate implements CNOT: swaps slots 2 and 3 of the 4-amplitude block.
type cnotGate struct{}

var cnotMatrix = swapRows(identityMatrix(4), 4, 2, 3)

func (cnotGate) Label() string        { return "CNOT" }
func (cnotGate) Arity() int           { return 2 }
func (cnotGate) Matrix() []complex128 { return cnotMatrix }
func (cnotGate) Apply(state []complex128, idx []int) {
	state[idx[2]], state[idx[3]] = state[idx[3]], state[idx[2]]
}

// swapGate implements SWAP: swaps slots 1 and 2.
type swapGate struct{}

var swapMatrix = swapRows(identityMatrix(4), 4, 1, 2)

func (swapGate) Label() string        { return "SWAP" }
func (swapGate) Arity() int           { return 2 }
func (swapGate) Matrix() []complex128 { return swapMatrix }
func (swapGate) Apply(state []complex128, idx []int) {
	state[idx[1]], state[idx[2]] = state[idx[2]], state[idx[1]]
}

// czGate implements CZ: negates slot 3.
type czGate struct{}

var czMatrix = negateEntry(identityMatrix(4), 4, 3)

func (czGate) Label() string        { return "CZ" }
func (czGate) Arity() int           { return 2 }
func (czGate) Matrix() []complex128 { return czMatrix }
func (czGate) Apply(state []complex128, idx []int) {
	state[idx[3]] *= -1
}

// crxGate implements CRX(θ): applies the RX kernel to slots {2,3} only.
type crxGate struct {
	c, js  complex128
	matrix []complex128
}

func newCRXGate(theta float64) crxGate {
	inner := newRXGate(theta)
	return crxGate{
		c:      inner.c,
		js:     inner.js,
		matrix: setBlock(identityMatrix(4), 4, 2, 2, inner.Matrix()),
	}
}

func (crxGate) Label() string          { return "CRX" }
func (crxGate) Arity() int             { return 2 }
func (g crxGate) Matrix() []complex128 { return g.matrix }
func (g crxGate) Apply(state []complex128, idx []int) {
	v0, v1 := state[idx[2]], state[idx[3]]
	state[idx[2]] = g.c*v0 + g.js*v1
	state[idx[3]] = g.js*v0 + g.c*v1
}

// cryGate implements CRY(θ): applies the RY kernel to slots {2,3} only.
type cryGate struct {
	c, s   complex128
	matrix []complex128
}

func newCRYGate(theta float64) cryGate {
	inner := newRYGate(theta)
	return cryGate{
		c:      inner.c,
		s:      inner.s,
		matrix: setBlock(identityMatrix(4), 4, 2, 2, inner.Matrix()),
	}
}

func (cryGate) Label() string          { return "CRY" }
func (cryGate) Arity() int             { return 2 }
func (g cryGate) Matrix() []complex128 { return g.matrix }
func (g cryGate) Apply(state []complex128, idx []int) {
	v0, v1 := state[idx[2]], state[idx[3]]
	state[idx[2]] = g.c*v0 - g.s*v1
	state[idx[3]] = g.s*v0 + g.c*v1
}

// crzGate implements CRZ(θ): applies the RZ kernel to slots {2,3} only.
type crzGate struct {
	first, second complex128
	matrix        []complex128
}

func newCRZGate(theta float64) crzGate {
	inner := newRZGate(theta)
	return crzGate{
		first:  inner.first,
		second: inner.second,
		matrix: setBlock(identityMatrix(4), 4, 2, 2, inner.Matrix()),
	}
}

func (crzGate) Label() string          { return "CRZ" }
func (crzGate) Arity() int             { return 2 }
func (g crzGate) Matrix() []complex128 { return g.matrix }
func (g crzGate) Apply(state []complex128, idx []int) {
	state[idx[2]] *= g.first
	state[idx[3]] *= g.second
}

// crotGate implements CRot(φ,θ,ω): applies the Rot kernel to slots {2,3}
// only. Like Rot, it has no exploitable sparsity within that block, so
// Apply falls back to the generic matrix path over the full 4-amplitude
// slice (the top-left identity block leaves slots 0 and 1 untouched).
type crotGate struct {
	matrix []complex128
}

func newCRotGate(phi, theta, omega float64) crotGate {
	inner := newRotGate(phi, theta, omega)
	return crotGate{matrix: setBlock(identityMatrix(4), 4, 2, 2, inner.Matrix())}
}

func (crotGate) Label() string          { return "CRot" }
func (crotGate) Arity() int             { return 2 }
func (g crotGate) Matrix() []complex128 { return g.matrix }
func (g crotGate) Apply(state []complex128, idx []int) {
	genericApply(g.matrix, state, idx)
}

// toffoliGate implements Toffoli (CCNOT): swaps slots 6 and 7.
type toffoliGate struct{}

var toffoliMatrix = swapRows(identityMatrix(8), 8, 6, 7)

func (toffoliGate) Label() string        { return "Toffoli" }
func (toffoliGate) Arity() int           { return 3 }
func (toffoliGate) Matrix() []complex128 { return toffoliMatrix }
func (toffoliGate) Apply(state []complex128, idx []int) {
	state[idx[6]], state[idx[7]] = state[idx[7]], state[idx[6]]
}

// cswapGate implements CSWAP (Fredkin): swaps slots 5 and 6.
type cswapGate struct{}

var cswapMatrix = swapRows(identityMatrix(8), 8, 5, 6)

func (cswapGate) Label() string        { return "CSWAP" }
func (cswapGate) Arity() int           { return 3 }
func (cswapGate) Matrix() []complex128 { return cswapMatrix }
func (cswapGate) Apply(state []complex128, idx []int) {
	state[idx[5]], state[idx[6]] = state[idx[6]], state[idx[5]]
}
