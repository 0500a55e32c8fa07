package engine

// Gate is the capability set every catalogued gate satisfies: a stable
// label, a fixed arity, a dense unitary matrix for auditing/testing/generic
// fallback, and a specialized in-place kernel. The parameter count is not
// part of this interface; each catalogue constructor checks it.
//
// A Gate value is immutable once constructed and is discarded once the
// operation that built it has been applied.
type Gate interface {
	// Label returns the gate's dispatch-table key.
	Label() string

	// Arity returns the number of wires the gate acts on (k).
	Arity() int

	// Matrix returns the dense 2^k×2^k row-major unitary the gate
	// implements. Row i corresponds to local basis state i (MSB-first
	// over the gate's wire ordering).
	Matrix() []complex128

	// Apply mutates state in place at the 2^k offsets in idx, which have
	// already been translated to absolute positions in the buffer. idx[i]
	// holds the position of local basis state i.
	Apply(state []complex128, idx []int)
}

// genericApply implements the fallback gather/apply/scatter path shared by
// every gate: v[i] = state[idx[i]] (gather), then
// state[idx[i]] = Σ_j matrix[i·2^k+j]·v[j] (scatter). The gather phase must
// run to completion before any scatter write — interleaving them would read
// an already-overwritten amplitude on any non-diagonal, non-permutation
// gate.
func genericApply(matrix []complex128, state []complex128, idx []int) {
	var scratch [8]complex128
	k := len(idx)
	v := scratch[:k]

	for i, pos := range idx {
		v[i] = state[pos]
	}

	for i, pos := range idx {
		var acc complex128
		base := i * k
		for j := 0; j < k; j++ {
			acc += matrix[base+j] * v[j]
		}
		state[pos] = acc
	}
}
