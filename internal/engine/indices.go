package engine

import "fmt"

// GetIndicesExcluding returns the ascending sequence of wire indices in
// [0, n) that do not appear in excluded. Duplicates in excluded are
// tolerated (treated as a set union). It fails if any entry of excluded
// falls outside [0, n).
func GetIndicesExcluding(excluded []int, n int) ([]int, error) {
	skip := make([]bool, n)
	for _, w := range excluded {
		if w < 0 || w >= n {
			return nil, fmt.Errorf("GetIndicesExcluding: wire %d: %w", w, ErrWireOutOfRange)
		}
		skip[w] = true
	}

	result := make([]int, 0, n-countSet(skip))
	for w := 0; w < n; w++ {
		if !skip[w] {
			result = append(result, w)
		}
	}
	return result, nil
}

func countSet(skip []bool) int {
	c := 0
	for _, b := range skip {
		if b {
			c++
		}
	}
	return c
}

// GenerateBitPatterns returns the 2^len(wires) base offsets obtained by
// placing every binary pattern over the given wire positions (big-endian:
// wire 0 is the most significant bit of the n-bit index) while zeroing all
// other bits. Output index p, with binary representation b_{k-1}...b_0,
// maps to Σ_j b_j·2^(n-1-wires[k-1-j]) — wires are consumed last-to-first as
// p's bits go least-to-most significant. This ordering is what lets the
// generic gather step assign local basis state i (MSB-first over the wire
// list) to row i of a gate's matrix.
func GenerateBitPatterns(wires []int, n int) []int {
	k := len(wires)
	size := 1 << k
	result := make([]int, size)
	for p := 0; p < size; p++ {
		val := 0
		for j := 0; j < k; j++ {
			if (p>>j)&1 != 0 {
				val |= 1 << (n - 1 - wires[k-1-j])
			}
		}
		result[p] = val
	}
	return result
}
