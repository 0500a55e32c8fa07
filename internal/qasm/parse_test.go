package qasm_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"qtermcirq/internal/engine"
	"qtermcirq/internal/qasm"
)

const bellSource = `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];
creg c[2];

h q[0];
cx q[0],q[1];
`

func TestParseBellProgram(t *testing.T) {
	prog, skipped, err := qasm.Parse(strings.NewReader(bellSource))
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Equal(t, 2, prog.NumQubits)
	require.Equal(t, []engine.Operation{
		{Label: "Hadamard", Wires: []int{0}},
		{Label: "CNOT", Wires: []int{0, 1}},
	}, prog.Ops)
}

func TestParseSkipsUnsupportedLines(t *testing.T) {
	src := `qreg q[1];
barrier q[0];
measure q[0] -> c[0];
u3(0.1, 0.2, 0.3) q[0];
`
	prog, skipped, err := qasm.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Empty(t, prog.Ops)
	require.Len(t, skipped, 2) // barrier is swallowed outright; measure and u3 are reported
	require.Contains(t, skipped[0], "measure")
	require.Contains(t, skipped[1], "u3")
}

func TestParseParameterizedAndDaggerGates(t *testing.T) {
	src := `qreg q[1];
rx(0.5) q[0];
sdg q[0];
tdg q[0];
`
	prog, _, err := qasm.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, prog.Ops, 3)
	require.Equal(t, "RX", prog.Ops[0].Label)
	require.Equal(t, []float64{0.5}, prog.Ops[0].Params)
	require.Equal(t, "PhaseShift", prog.Ops[1].Label)
	require.Equal(t, "PhaseShift", prog.Ops[2].Label)
}

func TestParseThreeWireGates(t *testing.T) {
	src := `qreg q[3];
ccx q[0],q[1],q[2];
`
	prog, skipped, err := qasm.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Equal(t, []engine.Operation{{Label: "Toffoli", Wires: []int{0, 1, 2}}}, prog.Ops)
}

func TestParseRejectsBadParameter(t *testing.T) {
	src := `qreg q[1];
rx(not-a-number) q[0];
`
	_, _, err := qasm.Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestParsePiExpressionParameters(t *testing.T) {
	src := `qreg q[2];
rx(pi/2) q[0];
crz(-3*pi/4) q[0],q[1];
`
	prog, skipped, err := qasm.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Len(t, prog.Ops, 2)
	require.InDelta(t, math.Pi/2, prog.Ops[0].Params[0], 1e-12)
	require.InDelta(t, -3*math.Pi/4, prog.Ops[1].Params[0], 1e-12)
}
