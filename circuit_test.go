package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanPlaceGateAtDetectsCollision(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	c.AddGate("H", 0, 0)

	require.False(t, c.CanPlaceGateAt(0, []int{0}))
	require.True(t, c.CanPlaceGateAt(0, []int{1}))
	require.True(t, c.CanPlaceGateAt(1, []int{0}))
}

func TestCanPlaceGateAtChecksEveryWire(t *testing.T) {
	c := &Circuit{NumQubits: 3}
	c.AddMultiControlGate("CCX", 2, 0, []int{0, 1})

	require.False(t, c.CanPlaceGateAt(0, []int{1}))
	require.False(t, c.CanPlaceGateAt(0, []int{2}))
	require.True(t, c.CanPlaceGateAt(1, []int{0, 1, 2}))
}

func TestRemoveGateAtClearsAllReferencedWires(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	c.AddGate("CX", 1, 0, 0)

	c.RemoveGateAt(0, 0)
	require.Empty(t, c.Gates)
}

func TestQASMRoundTrip(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	c.AddGate("H", 0, 0)
	c.AddGate("CX", 1, 1, 0)

	qasm := c.ToQASM()

	got := &Circuit{}
	require.NoError(t, got.ParseQASM(qasm))
	require.Equal(t, 2, got.NumQubits)
	require.Len(t, got.Gates, 2)
	require.Equal(t, "H", got.Gates[0].Type)
	require.Equal(t, "CX", got.Gates[1].Type)
	require.Equal(t, 0, got.Gates[1].Control)
	require.Equal(t, 1, got.Gates[1].Target)
}

func TestQASMRoundTripParameterizedAndDagger(t *testing.T) {
	c := &Circuit{NumQubits: 1}
	c.AddParameterizedGate("RX", 0, 0, []float64{math.Pi / 2})
	c.AddDaggerGate("S", 0, 1)

	got := &Circuit{}
	require.NoError(t, got.ParseQASM(c.ToQASM()))
	require.Len(t, got.Gates, 2)
	require.InDelta(t, math.Pi/2, got.Gates[0].Params[0], 1e-9)
	require.True(t, got.Gates[1].IsDagger)
	require.Equal(t, "S", got.Gates[1].Type)
}

func TestSimulateCircuitProducesBellState(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	c.AddGate("H", 0, 0)
	c.AddGate("CX", 1, 1, 0)

	sv, err := SimulateCircuit(c, -1)
	require.NoError(t, err)
	require.Len(t, sv.Amplitudes, 4)

	inv := complex(1/math.Sqrt2, 0)
	require.InDelta(t, real(inv), real(sv.Amplitudes[0]), 1e-9)
	require.InDelta(t, real(inv), real(sv.Amplitudes[3]), 1e-9)
	require.InDelta(t, 0, real(sv.Amplitudes[1]), 1e-9)
	require.InDelta(t, 0, real(sv.Amplitudes[2]), 1e-9)
}

func TestSimulateCircuitRespectsUpToStep(t *testing.T) {
	c := &Circuit{NumQubits: 1}
	c.AddGate("X", 0, 0)
	c.AddGate("X", 0, 1)

	sv, err := SimulateCircuit(c, 0)
	require.NoError(t, err)
	require.InDelta(t, 1, real(sv.Amplitudes[1]), 1e-9)
}

func TestSimulateCircuitSkipsUntranslatableGates(t *testing.T) {
	c := &Circuit{NumQubits: 1}
	c.Gates = append(c.Gates, Gate{Type: "U3", Target: 0, Control: -1})
	c.AddGate("X", 0, 1)

	sv, err := SimulateCircuit(c, -1)
	require.NoError(t, err)
	require.InDelta(t, 1, real(sv.Amplitudes[1]), 1e-9)
}

func TestSimulateCircuitToffoli(t *testing.T) {
	c := &Circuit{NumQubits: 3}
	c.AddGate("X", 0, 0)
	c.AddGate("X", 1, 1)
	c.AddMultiControlGate("CCX", 2, 2, []int{0, 1})

	sv, err := SimulateCircuit(c, -1)
	require.NoError(t, err)
	require.InDelta(t, 1, real(sv.Amplitudes[7]), 1e-9)
}

func TestGetQubitProbabilitiesAfterHadamard(t *testing.T) {
	c := &Circuit{NumQubits: 1}
	c.AddGate("H", 0, 0)

	sv, err := SimulateCircuit(c, -1)
	require.NoError(t, err)
	probs := sv.GetQubitProbabilities()
	require.Len(t, probs, 1)
	require.InDelta(t, 0.5, probs[0].Prob0, 1e-9)
	require.InDelta(t, 0.5, probs[0].Prob1, 1e-9)
}
