package main

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing. The grammar covers bare gates and
// gates with a single parameter on one, two or three wires, plus the S†/T†
// adjoint convenience gates folded into PhaseShift at the adapter. The
// three-parameter Rot and CRot gates of the engine's catalogue cannot be
// expressed in it.
var (
	singleGateRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	singleGateParamRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	twoQubitParamRegex   = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	threeQubitRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\],\s*q\[(\d+)\];?$`)
	qregRegex            = regexp.MustCompile(`qreg\s+(\w+)\[(\d+)\]`)
)

// Gate represents a quantum gate placed on the circuit. Target/Control and
// the Controls pair cover every arity the engine catalogue exposes: a bare
// single-qubit gate (Target only), a controlled two-qubit gate (Control +
// Target), or a three-qubit gate like Toffoli/CSWAP (Controls + Target).
type Gate struct {
	Type     string
	Target   int
	Control  int   // -1 if not a controlled gate
	Controls []int // two entries for three-qubit gates (CCX, CSWAP)
	Step     int
	Params   []float64
	IsDagger bool // true for S†/T†
}

// Circuit holds the quantum circuit state.
type Circuit struct {
	NumQubits int
	Gates     []Gate
	MaxSteps  int
}

// AddGate appends a bare or singly-controlled gate to the circuit.
func (c *Circuit) AddGate(gateType string, target, step int, control ...int) {
	ctrl := -1
	if len(control) > 0 {
		ctrl = control[0]
	}
	c.Gates = append(c.Gates, Gate{Type: gateType, Target: target, Control: ctrl, Step: step})
	c.bumpSteps(step)
}

// AddParameterizedGate appends a parameterized gate, optionally controlled.
func (c *Circuit) AddParameterizedGate(gateType string, target, step int, params []float64, control ...int) {
	ctrl := -1
	if len(control) > 0 {
		ctrl = control[0]
	}
	c.Gates = append(c.Gates, Gate{Type: gateType, Target: target, Control: ctrl, Step: step, Params: params})
	c.bumpSteps(step)
}

// AddMultiControlGate appends a three-qubit gate (Toffoli, CSWAP): two
// control wires plus one target wire.
func (c *Circuit) AddMultiControlGate(gateType string, target, step int, controls []int) {
	c.Gates = append(c.Gates, Gate{Type: gateType, Target: target, Control: -1, Controls: controls, Step: step})
	c.bumpSteps(step)
}

// AddDaggerGate appends a dagger (adjoint) gate, e.g. S† or T†.
func (c *Circuit) AddDaggerGate(gateType string, target, step int) {
	c.Gates = append(c.Gates, Gate{Type: gateType, Target: target, Control: -1, Step: step, IsDagger: true})
	c.bumpSteps(step)
}

func (c *Circuit) bumpSteps(step int) {
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// gateReferences reports whether the gate references the given qubit.
func (g Gate) gateReferences(qubit int) bool {
	if g.Target == qubit || g.Control == qubit {
		return true
	}
	return slices.Contains(g.Controls, qubit)
}

// RemoveGateAt removes any gate at the given step and qubit.
func (c *Circuit) RemoveGateAt(step, qubit int) {
	c.Gates = slices.DeleteFunc(c.Gates, func(g Gate) bool {
		return g.Step == step && g.gateReferences(qubit)
	})
}

// RemoveGatesOnQubit removes all gates that reference the given qubit index.
func (c *Circuit) RemoveGatesOnQubit(qubit int) {
	c.Gates = slices.DeleteFunc(c.Gates, func(g Gate) bool {
		return g.gateReferences(qubit)
	})
}

// GetGateAt returns the gate at the given step and qubit, or nil.
func (c *Circuit) GetGateAt(step, qubit int) *Gate {
	for i := range c.Gates {
		g := &c.Gates[i]
		if g.Step == step && g.gateReferences(qubit) {
			return g
		}
	}
	return nil
}

// CanPlaceGateAt reports whether none of the given qubits are already used
// by another gate at the given step.
func (c *Circuit) CanPlaceGateAt(step int, qubits []int) bool {
	for _, q := range qubits {
		if c.GetGateAt(step, q) != nil {
			return false
		}
	}
	return true
}

// qasmMnemonic lowercases a gate type, folding the dagger suffix in.
func qasmMnemonic(g Gate) string {
	name := strings.ToLower(g.Type)
	if g.IsDagger {
		name += "dg"
	}
	return name
}

// ToQASM generates QASM 2.0 output from the circuit.
func (c *Circuit) ToQASM() string {
	maxQubit := -1
	for _, gate := range c.Gates {
		maxQubit = max(maxQubit, gate.Target, gate.Control)
		for _, ctrl := range gate.Controls {
			maxQubit = max(maxQubit, ctrl)
		}
	}
	numQubits := max(maxQubit+1, c.NumQubits, 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", numQubits)

	for step := range c.MaxSteps {
		for _, gate := range c.Gates {
			if gate.Step != step {
				continue
			}
			switch {
			case len(gate.Controls) >= 2:
				fmt.Fprintf(&sb, "%s q[%d], q[%d], q[%d];\n", qasmMnemonic(gate), gate.Controls[0], gate.Controls[1], gate.Target)
			case gate.Control >= 0 && len(gate.Params) > 0:
				fmt.Fprintf(&sb, "%s(%s) q[%d], q[%d];\n", qasmMnemonic(gate), formatParam(gate.Params[0]), gate.Control, gate.Target)
			case gate.Control >= 0:
				fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", qasmMnemonic(gate), gate.Control, gate.Target)
			case len(gate.Params) > 0:
				fmt.Fprintf(&sb, "%s(%s) q[%d];\n", qasmMnemonic(gate), formatParam(gate.Params[0]), gate.Target)
			default:
				fmt.Fprintf(&sb, "%s q[%d];\n", qasmMnemonic(gate), gate.Target)
			}
		}
	}

	return sb.String()
}

// ParseQASM parses QASM text and rebuilds the circuit from it.
func (c *Circuit) ParseQASM(qasm string) error {
	c.Gates = nil
	c.MaxSteps = 0
	step := 0

	for _, line := range strings.Split(qasm, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") ||
			strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			if matches := qregRegex.FindStringSubmatch(line); len(matches) > 2 {
				n, _ := strconv.Atoi(matches[2])
				c.NumQubits = n
			}
			continue
		}

		if matches := threeQubitRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			q1, q2, q3 := atoi(matches[2]), atoi(matches[3]), atoi(matches[4])
			c.AddMultiControlGate(gateType, q3, step, []int{q1, q2})
			step++
			continue
		}
		if matches := twoQubitParamRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			param, _ := parseParamExpr(matches[2])
			q1, q2 := atoi(matches[3]), atoi(matches[4])
			c.AddParameterizedGate(gateType, q2, step, []float64{param}, q1)
			step++
			continue
		}
		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			q1, q2 := atoi(matches[2]), atoi(matches[3])
			c.AddGate(gateType, q2, step, q1)
			step++
			continue
		}
		if matches := singleGateParamRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			param, _ := parseParamExpr(matches[2])
			target := atoi(matches[3])
			c.AddParameterizedGate(gateType, target, step, []float64{param})
			step++
			continue
		}
		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			gateType := strings.ToUpper(matches[1])
			target := atoi(matches[2])
			if dagger := strings.HasSuffix(gateType, "DG"); dagger {
				c.AddDaggerGate(strings.TrimSuffix(gateType, "DG"), target, step)
			} else {
				c.AddGate(gateType, target, step)
			}
			step++
			continue
		}
	}

	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// getStepWidth returns the cell width needed for the given step.
func (c *Circuit) getStepWidth(step int) int {
	maxW := 3 // minimum cell width
	for _, g := range c.Gates {
		if g.Step != step {
			continue
		}
		name := gateDisplayName(g.Type)
		if cw := cellWidthForName(name); cw > maxW {
			maxW = cw
		}
	}
	return maxW
}

// getStepWidths returns cell widths for steps in [startStep, startStep+count).
func (c *Circuit) getStepWidths(startStep, count int) []int {
	widths := make([]int, count)
	for i := range count {
		widths[i] = c.getStepWidth(startStep + i)
	}
	return widths
}

// cellInfo describes what occupies a single cell in the circuit grid.
type cellInfo struct {
	gate        *Gate
	isControl   bool
	isTarget    bool
	vertAbove   bool
	vertBelow   bool
	passThrough bool
}

// getCellInfo returns rendering information for the cell at (step, qubit).
func (c *Circuit) getCellInfo(step, qubit int) cellInfo {
	var info cellInfo

	gate := c.GetGateAt(step, qubit)
	if gate != nil {
		info.gate = gate
		info.isControl = gate.Control == qubit || slices.Contains(gate.Controls, qubit)
		info.isTarget = gate.Target == qubit && (gate.Control >= 0 || len(gate.Controls) > 0)
	}

	for _, g := range c.Gates {
		if g.Step != step {
			continue
		}

		var minQ, maxQ int
		switch {
		case len(g.Controls) > 0:
			minQ, maxQ = g.Target, g.Target
			for _, ctrl := range g.Controls {
				minQ = min(minQ, ctrl)
				maxQ = max(maxQ, ctrl)
			}
		case g.Control >= 0:
			minQ, maxQ = min(g.Control, g.Target), max(g.Control, g.Target)
		default:
			continue
		}

		if qubit >= minQ && qubit <= maxQ {
			if qubit > minQ {
				info.vertAbove = true
			}
			if qubit < maxQ {
				info.vertBelow = true
			}
			if qubit > minQ && qubit < maxQ && info.gate == nil {
				info.passThrough = true
			}
		}
	}

	return info
}

// cellWidthForName returns the cell width needed for a gate name.
func cellWidthForName(name string) int {
	if len(name) <= 1 {
		return 3
	}
	return len(name) + 2
}
