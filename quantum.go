package main

import (
	"math"
	"math/cmplx"
	"slices"

	"qtermcirq/internal/engine"
)

// StateVector is the rendering-facing view of a simulated circuit: the
// amplitude buffer produced by the engine plus the qubit count needed to
// interpret it.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// translateGate maps one circuit Gate to zero or one engine operation.
// Gate types with no catalogue equivalent report ok == false; the
// caller skips them rather than failing the whole simulation, since a
// partially-unsupported circuit still has a well-defined unitary prefix.
func translateGate(g Gate) (engine.Operation, bool) {
	switch g.Type {
	case "H":
		return engine.Operation{Label: "Hadamard", Wires: []int{g.Target}}, true
	case "X":
		return engine.Operation{Label: "PauliX", Wires: []int{g.Target}}, true
	case "Y":
		return engine.Operation{Label: "PauliY", Wires: []int{g.Target}}, true
	case "Z":
		return engine.Operation{Label: "PauliZ", Wires: []int{g.Target}}, true
	case "S":
		if g.IsDagger {
			return engine.Operation{Label: "PhaseShift", Wires: []int{g.Target}, Params: []float64{-math.Pi / 2}}, true
		}
		return engine.Operation{Label: "S", Wires: []int{g.Target}}, true
	case "T":
		if g.IsDagger {
			return engine.Operation{Label: "PhaseShift", Wires: []int{g.Target}, Params: []float64{-math.Pi / 4}}, true
		}
		return engine.Operation{Label: "T", Wires: []int{g.Target}}, true
	case "RX":
		return engine.Operation{Label: "RX", Wires: []int{g.Target}, Params: firstParam(g.Params)}, true
	case "RY":
		return engine.Operation{Label: "RY", Wires: []int{g.Target}, Params: firstParam(g.Params)}, true
	case "RZ":
		return engine.Operation{Label: "RZ", Wires: []int{g.Target}, Params: firstParam(g.Params)}, true
	case "P", "U1":
		return engine.Operation{Label: "PhaseShift", Wires: []int{g.Target}, Params: firstParam(g.Params)}, true
	case "CX":
		if g.Control < 0 {
			return engine.Operation{}, false
		}
		return engine.Operation{Label: "CNOT", Wires: []int{g.Control, g.Target}}, true
	case "CZ":
		if g.Control < 0 {
			return engine.Operation{}, false
		}
		return engine.Operation{Label: "CZ", Wires: []int{g.Control, g.Target}}, true
	case "SWAP":
		if g.Control < 0 {
			return engine.Operation{}, false
		}
		return engine.Operation{Label: "SWAP", Wires: []int{g.Control, g.Target}}, true
	case "CRX":
		if g.Control < 0 {
			return engine.Operation{}, false
		}
		return engine.Operation{Label: "CRX", Wires: []int{g.Control, g.Target}, Params: firstParam(g.Params)}, true
	case "CRY":
		if g.Control < 0 {
			return engine.Operation{}, false
		}
		return engine.Operation{Label: "CRY", Wires: []int{g.Control, g.Target}, Params: firstParam(g.Params)}, true
	case "CRZ":
		if g.Control < 0 {
			return engine.Operation{}, false
		}
		return engine.Operation{Label: "CRZ", Wires: []int{g.Control, g.Target}, Params: firstParam(g.Params)}, true
	case "CCX", "TOFFOLI":
		if len(g.Controls) != 2 {
			return engine.Operation{}, false
		}
		return engine.Operation{Label: "Toffoli", Wires: []int{g.Controls[0], g.Controls[1], g.Target}}, true
	case "CSWAP", "FREDKIN":
		if len(g.Controls) != 2 {
			return engine.Operation{}, false
		}
		return engine.Operation{Label: "CSWAP", Wires: []int{g.Controls[0], g.Controls[1], g.Target}}, true
	default:
		// I, SX, SY, SZ, U2, U3, CH, CP, CU1, and any other label the
		// catalogue does not cover.
		return engine.Operation{}, false
	}
}

func firstParam(params []float64) []float64 {
	if len(params) == 0 {
		return []float64{0}
	}
	return params[:1]
}

// SimulateCircuit runs every gate up to and including upToStep (or the
// whole circuit if upToStep < 0) through the engine and returns the
// resulting state. Gates translateGate cannot express are skipped; the
// rest are applied in step order via a single engine.Apply call so a
// validation failure on one op does not leave the state half a step
// flushed.
func SimulateCircuit(circuit *Circuit, upToStep int) (*StateVector, error) {
	numQubits := max(circuit.NumQubits, 1)

	gates := make([]Gate, len(circuit.Gates))
	copy(gates, circuit.Gates)
	slices.SortStableFunc(gates, func(a, b Gate) int { return a.Step - b.Step })

	ops := make([]engine.Operation, 0, len(gates))
	for _, g := range gates {
		if upToStep >= 0 && g.Step > upToStep {
			continue
		}
		if op, ok := translateGate(g); ok {
			ops = append(ops, op)
		}
	}

	state := engine.NewZeroState(numQubits)
	if err := engine.Apply(state, numQubits, ops); err != nil {
		return nil, err
	}
	return &StateVector{Amplitudes: state, NumQubits: numQubits}, nil
}

// QubitProbability is the marginal P(wire==0)/P(wire==1) for one qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// GetQubitProbabilities returns the per-qubit marginal distribution
// implied by the state, in circuit wire order.
func (s *StateVector) GetQubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	for q := 0; q < s.NumQubits; q++ {
		p1 := engine.WireProbability(s.Amplitudes, s.NumQubits, q)
		probs[q] = QubitProbability{Prob0: 1 - p1, Prob1: p1}
	}
	return probs
}

// QSphereState is one nonzero basis amplitude, annotated with the
// information the Q-sphere view renders: its probability, global phase,
// and Hamming weight.
type QSphereState struct {
	BasisState int
	Amplitude  complex128
	Prob       float64
	Phase      float64
	Hamming    int
}

// GetQSphereStates returns every basis state with non-negligible
// probability mass.
func (s *StateVector) GetQSphereStates() []QSphereState {
	probs := engine.Probabilities(s.Amplitudes)
	states := make([]QSphereState, 0, len(probs))
	for i, p := range probs {
		if p <= 1e-10 {
			continue
		}
		states = append(states, QSphereState{
			BasisState: i,
			Amplitude:  s.Amplitudes[i],
			Prob:       p,
			Phase:      cmplx.Phase(s.Amplitudes[i]),
			Hamming:    bitsCount(i),
		})
	}
	return states
}

func bitsCount(x int) int {
	count := 0
	for x > 0 {
		count += x & 1
		x >>= 1
	}
	return count
}
