package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"qtermcirq/internal/engine"
)

// EngineSuite exercises Apply against the named end-to-end scenarios and
// the invariants every operation sequence must preserve.
type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) requireAmplitude(state []complex128, index int, want complex128) {
	require.InDelta(s.T(), real(want), real(state[index]), 1e-9, "real part at index %d", index)
	require.InDelta(s.T(), imag(want), imag(state[index]), 1e-9, "imag part at index %d", index)
}

func (s *EngineSuite) requireNormPreserved(state []complex128) {
	require.InDelta(s.T(), 1.0, engine.Norm2(state), 1e-9)
}

func (s *EngineSuite) TestBellState() {
	state := engine.NewZeroState(2)
	err := engine.Apply(state, 2, []engine.Operation{
		{Label: "Hadamard", Wires: []int{0}},
		{Label: "CNOT", Wires: []int{0, 1}},
	})
	require.NoError(s.T(), err)

	inv := complex(1/math.Sqrt2, 0)
	s.requireAmplitude(state, 0, inv)
	s.requireAmplitude(state, 1, 0)
	s.requireAmplitude(state, 2, 0)
	s.requireAmplitude(state, 3, inv)
	s.requireNormPreserved(state)
}

func (s *EngineSuite) TestGHZ3() {
	state := engine.NewZeroState(3)
	err := engine.Apply(state, 3, []engine.Operation{
		{Label: "Hadamard", Wires: []int{0}},
		{Label: "CNOT", Wires: []int{0, 1}},
		{Label: "CNOT", Wires: []int{0, 2}},
	})
	require.NoError(s.T(), err)

	inv := complex(1/math.Sqrt2, 0)
	s.requireAmplitude(state, 0, inv)
	s.requireAmplitude(state, 7, inv)
	for i := 1; i < 7; i++ {
		s.requireAmplitude(state, i, 0)
	}
	s.requireNormPreserved(state)
}

func (s *EngineSuite) TestPhaseEcho() {
	state := engine.NewZeroState(1)
	err := engine.Apply(state, 1, []engine.Operation{
		{Label: "Hadamard", Wires: []int{0}},
	})
	require.NoError(s.T(), err)
	afterHadamard := append([]complex128(nil), state...)

	err = engine.Apply(state, 1, []engine.Operation{
		{Label: "T", Wires: []int{0}},
		{Label: "PhaseShift", Wires: []int{0}, Params: []float64{-math.Pi / 4}},
	})
	require.NoError(s.T(), err)

	s.requireAmplitude(state, 0, afterHadamard[0])
	s.requireAmplitude(state, 1, afterHadamard[1])
}

func (s *EngineSuite) TestSWAPCheck() {
	state := engine.NewZeroState(2)
	err := engine.Apply(state, 2, []engine.Operation{
		{Label: "PauliX", Wires: []int{0}},
	})
	require.NoError(s.T(), err)
	s.requireAmplitude(state, 2, 1) // |10>

	err = engine.Apply(state, 2, []engine.Operation{
		{Label: "SWAP", Wires: []int{0, 1}},
	})
	require.NoError(s.T(), err)
	s.requireAmplitude(state, 1, 1) // |01>
	s.requireAmplitude(state, 2, 0)
}

func (s *EngineSuite) TestToffoliOnOneOneZero() {
	state := engine.NewZeroState(3)
	err := engine.Apply(state, 3, []engine.Operation{
		{Label: "PauliX", Wires: []int{0}},
		{Label: "PauliX", Wires: []int{1}},
	})
	require.NoError(s.T(), err)
	s.requireAmplitude(state, 6, 1) // |110>

	err = engine.Apply(state, 3, []engine.Operation{
		{Label: "Toffoli", Wires: []int{0, 1, 2}},
	})
	require.NoError(s.T(), err)
	s.requireAmplitude(state, 7, 1) // |111>
	s.requireAmplitude(state, 6, 0)
}

func (s *EngineSuite) TestWireOrderSensitivity() {
	controlFirst := engine.NewZeroState(2)
	require.NoError(s.T(), engine.Apply(controlFirst, 2, []engine.Operation{
		{Label: "PauliX", Wires: []int{0}},
		{Label: "CNOT", Wires: []int{0, 1}},
	}))
	s.requireAmplitude(controlFirst, 3, 1) // |11>: wire0 controls, wire1 flips

	controlSecond := engine.NewZeroState(2)
	require.NoError(s.T(), engine.Apply(controlSecond, 2, []engine.Operation{
		{Label: "PauliX", Wires: []int{0}},
		{Label: "CNOT", Wires: []int{1, 0}},
	}))
	s.requireAmplitude(controlSecond, 2, 1) // |10>: wire1 controls and is 0, no flip
}

func (s *EngineSuite) TestRotationRoundTrip() {
	state := engine.NewZeroState(2)
	require.NoError(s.T(), engine.Apply(state, 2, []engine.Operation{
		{Label: "Hadamard", Wires: []int{0}},
		{Label: "CNOT", Wires: []int{0, 1}},
	}))
	before := append([]complex128(nil), state...)

	require.NoError(s.T(), engine.Apply(state, 2, []engine.Operation{
		{Label: "RX", Wires: []int{0}, Params: []float64{0.83}},
		{Label: "RX", Wires: []int{0}, Params: []float64{-0.83}},
		{Label: "RY", Wires: []int{1}, Params: []float64{1.21}},
		{Label: "RY", Wires: []int{1}, Params: []float64{-1.21}},
	}))

	for i := range state {
		s.requireAmplitude(state, i, before[i])
	}
}

func (s *EngineSuite) TestSFourthPowerIsIdentity() {
	state := engine.NewZeroState(1)
	require.NoError(s.T(), engine.Apply(state, 1, []engine.Operation{{Label: "Hadamard", Wires: []int{0}}}))
	before := append([]complex128(nil), state...)

	ops := make([]engine.Operation, 4)
	for i := range ops {
		ops[i] = engine.Operation{Label: "S", Wires: []int{0}}
	}
	require.NoError(s.T(), engine.Apply(state, 1, ops))

	for i := range state {
		s.requireAmplitude(state, i, before[i])
	}
}

func (s *EngineSuite) TestEmptyOperationListIsNoOp() {
	state := engine.NewZeroState(3)
	before := append([]complex128(nil), state...)
	require.NoError(s.T(), engine.Apply(state, 3, nil))
	require.Equal(s.T(), before, state)
}

func (s *EngineSuite) TestSingleQubitExactMatVec() {
	state := engine.NewZeroState(1)
	require.NoError(s.T(), engine.Apply(state, 1, []engine.Operation{{Label: "PauliX", Wires: []int{0}}}))
	s.requireAmplitude(state, 0, 0)
	s.requireAmplitude(state, 1, 1)
}

func (s *EngineSuite) TestLargeRegisterSingleHadamard() {
	const n = 25
	state := engine.NewZeroState(n)
	require.NoError(s.T(), engine.Apply(state, n, []engine.Operation{{Label: "Hadamard", Wires: []int{12}}}))
	require.Len(s.T(), state, 1<<n)
	s.requireNormPreserved(state)
}

func (s *EngineSuite) TestErrorTaxonomy() {
	n := 2

	_, err := engine.GetIndicesExcluding([]int{9}, n)
	require.True(s.T(), errors.Is(err, engine.ErrWireOutOfRange))

	state := engine.NewZeroState(n)

	err = engine.Apply(state, n, []engine.Operation{{Label: "Frobnicate", Wires: []int{0}}})
	require.True(s.T(), errors.Is(err, engine.ErrUnknownGate))

	err = engine.Apply(state, n, []engine.Operation{{Label: "Hadamard", Wires: []int{0, 1}}})
	require.True(s.T(), errors.Is(err, engine.ErrBadWireCount))

	err = engine.Apply(state, n, []engine.Operation{{Label: "CNOT", Wires: []int{0, 0}}})
	require.True(s.T(), errors.Is(err, engine.ErrDuplicateWire))

	err = engine.Apply(state, n, []engine.Operation{{Label: "Hadamard", Wires: []int{5}}})
	require.True(s.T(), errors.Is(err, engine.ErrWireOutOfRange))

	err = engine.Apply(state, n, []engine.Operation{{Label: "RX", Wires: []int{0}, Params: []float64{0.1, 0.2}}})
	require.True(s.T(), errors.Is(err, engine.ErrBadParameterCount))

	badBuffer := make([]complex128, 3)
	err = engine.Apply(badBuffer, n, nil)
	require.True(s.T(), errors.Is(err, engine.ErrBadBufferLength))
}

func (s *EngineSuite) TestFailedOperationLeavesPriorWorkIntact() {
	state := engine.NewZeroState(1)
	err := engine.Apply(state, 1, []engine.Operation{
		{Label: "PauliX", Wires: []int{0}},
		{Label: "Frobnicate", Wires: []int{0}},
	})
	require.Error(s.T(), err)
	s.requireAmplitude(state, 0, 0)
	s.requireAmplitude(state, 1, 1)
}
