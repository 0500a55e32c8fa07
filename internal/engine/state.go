package engine

// NewZeroState allocates a length-2^n amplitude buffer initialized to the
// computational basis state |0...0>.
func NewZeroState(n int) []complex128 {
	state := make([]complex128, 1<<n)
	state[0] = 1
	return state
}

// Norm2 returns the squared L2 norm of state, Σ|a_i|^2. A unitary Apply
// sequence leaves this at 1 (within floating-point tolerance) for any
// normalized input.
func Norm2(state []complex128) float64 {
	var sum float64
	for _, a := range state {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}

// Probabilities returns |a_i|^2 for every amplitude in state.
func Probabilities(state []complex128) []float64 {
	p := make([]float64, len(state))
	for i, a := range state {
		p[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return p
}

// WireProbability returns P(wire == 1), summing |a_i|^2 over every basis
// state whose bit for wire (big-endian: wire 0 is the MSB of the n-bit
// index) is set.
func WireProbability(state []complex128, n, wire int) float64 {
	bit := 1 << (n - 1 - wire)
	var sum float64
	for i, a := range state {
		if i&bit != 0 {
			sum += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return sum
}
