package engine

import "fmt"

// Operation is one entry in an apply call's operation list: a gate label,
// the ordered wires it acts on, and its parameter list.
type Operation struct {
	Label  string
	Wires  []int
	Params []float64
}

// Apply mutates state in place by applying ops in order. state must have
// length exactly 2^n. Operations are applied strictly left to right; a
// validation failure aborts the call immediately, leaving state mutated
// only by the operations that fully completed before the failing one.
func Apply(state []complex128, n int, ops []Operation) error {
	if len(state) != 1<<n {
		return fmt.Errorf("Apply: buffer length %d, want %d: %w", len(state), 1<<n, ErrBadBufferLength)
	}

	for i, op := range ops {
		if err := applyOne(state, n, op); err != nil {
			return fmt.Errorf("Apply: operation %d (%s): %w", i, op.Label, err)
		}
	}
	return nil
}

func applyOne(state []complex128, n int, op Operation) error {
	info, err := lookup(op.Label)
	if err != nil {
		return err
	}

	if len(op.Wires) != info.arity {
		return fmt.Errorf("%s: want %d wire(s), got %d: %w", op.Label, info.arity, len(op.Wires), ErrBadWireCount)
	}
	if err := validateWires(op.Wires, n); err != nil {
		return err
	}

	gate, err := info.construct(op.Params)
	if err != nil {
		return err
	}

	kernelOffsets := GenerateBitPatterns(op.Wires, n)
	complementWires, err := GetIndicesExcluding(op.Wires, n)
	if err != nil {
		return err
	}
	complementOffsets := GenerateBitPatterns(complementWires, n)

	idx := make([]int, len(kernelOffsets))
	for _, c := range complementOffsets {
		for i, k := range kernelOffsets {
			idx[i] = c + k
		}
		gate.Apply(state, idx)
	}
	return nil
}

// validateWires checks that every wire lies in [0, n) and that no wire
// appears twice.
func validateWires(wires []int, n int) error {
	seen := make(map[int]bool, len(wires))
	for _, w := range wires {
		if w < 0 || w >= n {
			return fmt.Errorf("wire %d not in [0,%d): %w", w, n, ErrWireOutOfRange)
		}
		if seen[w] {
			return fmt.Errorf("wire %d: %w", w, ErrDuplicateWire)
		}
		seen[w] = true
	}
	return nil
}
