// Package qasm parses a restricted subset of OPENQASM 2.0 — the gate
// vocabulary of the engine's closed catalogue, except the three-parameter
// Rot and CRot gates, which it does not recognize — into a flat operation
// list ready for engine.Apply. It is the CLI host's entry point; the TUI
// host instead derives operations from its own Circuit model (see the root
// package's quantum.go).
package qasm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"qtermcirq/internal/engine"
)

var (
	qregRegex       = regexp.MustCompile(`qreg\s+\w+\[(\d+)\]`)
	singleRegex     = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	singleParamRe   = regexp.MustCompile(`^(\w+)\s*\(\s*([^)]+)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	twoQubitParamRe = regexp.MustCompile(`^(\w+)\s*\(\s*([^)]+)\s*\)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	threeQubitRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\],\s*q\[(\d+)\];?$`)

	// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, -pi, -3*pi/4
	piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)
)

// parseParam parses a QASM parameter expression: a plain number or a pi
// expression ("pi", "pi/2", "3*pi/4", "-pi", ...), the same vocabulary the
// TUI host writes into saved circuits via its own parameter formatter.
func parseParam(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, nil
	}
	m := piExprRegex.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, fmt.Errorf("not a number or pi expression: %q", s)
	}
	coeff := 1.0
	if m[2] != "" {
		var err error
		if coeff, err = strconv.ParseFloat(m[2], 64); err != nil {
			return 0, fmt.Errorf("bad pi coefficient in %q: %w", s, err)
		}
	}
	result := coeff * math.Pi
	if m[3] != "" {
		denom, err := strconv.ParseFloat(m[3], 64)
		if err != nil || denom == 0 {
			return 0, fmt.Errorf("bad pi denominator in %q", s)
		}
		result /= denom
	}
	if m[1] == "-" {
		result = -result
	}
	return result, nil
}

// Program is a fully translated QASM source: the qubit count declared by
// its qreg statement and the operation list ready for engine.Apply.
type Program struct {
	NumQubits int
	Ops       []engine.Operation
}

// Parse reads QASM source from r and translates every recognized gate
// line into an engine.Operation. Lines whose gate has no catalogue
// equivalent (measurement, reset, classical control, and the handful of
// QASM gates outside the closed catalogue) are reported back via skipped
// rather than silently dropped. creg and barrier lines are dropped
// without being reported.
func Parse(r io.Reader) (Program, []string, error) {
	prog := Program{NumQubits: 1}
	var skipped []string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") ||
			strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") ||
			strings.HasPrefix(line, "creg") || strings.HasPrefix(line, "barrier") {
			continue
		}
		if m := qregRegex.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return Program{}, nil, fmt.Errorf("qasm:%d: bad qreg size: %w", lineNo, err)
			}
			prog.NumQubits = n
			continue
		}

		op, ok, err := parseLine(line)
		if err != nil {
			return Program{}, nil, fmt.Errorf("qasm:%d: %w", lineNo, err)
		}
		if !ok {
			skipped = append(skipped, fmt.Sprintf("%d: %s", lineNo, line))
			continue
		}
		prog.Ops = append(prog.Ops, op)
	}
	if err := scanner.Err(); err != nil {
		return Program{}, nil, err
	}
	return prog, skipped, nil
}

func parseLine(line string) (engine.Operation, bool, error) {
	if m := threeQubitRegex.FindStringSubmatch(line); m != nil {
		label, ok := threeWireLabel(strings.ToUpper(m[1]))
		if !ok {
			return engine.Operation{}, false, nil
		}
		q1, q2, q3 := atoi(m[2]), atoi(m[3]), atoi(m[4])
		return engine.Operation{Label: label, Wires: []int{q1, q2, q3}}, true, nil
	}
	if m := twoQubitParamRe.FindStringSubmatch(line); m != nil {
		label, ok := twoWireLabel(strings.ToUpper(m[1]))
		if !ok {
			return engine.Operation{}, false, nil
		}
		param, err := parseParam(m[2])
		if err != nil {
			return engine.Operation{}, false, fmt.Errorf("bad parameter: %w", err)
		}
		q1, q2 := atoi(m[3]), atoi(m[4])
		return engine.Operation{Label: label, Wires: []int{q1, q2}, Params: []float64{param}}, true, nil
	}
	if m := twoQubitRegex.FindStringSubmatch(line); m != nil {
		label, ok := twoWireLabel(strings.ToUpper(m[1]))
		if !ok {
			return engine.Operation{}, false, nil
		}
		q1, q2 := atoi(m[2]), atoi(m[3])
		return engine.Operation{Label: label, Wires: []int{q1, q2}}, true, nil
	}
	if m := singleParamRe.FindStringSubmatch(line); m != nil {
		label, ok := singleWireLabel(strings.ToUpper(m[1]), false)
		if !ok {
			return engine.Operation{}, false, nil
		}
		param, err := parseParam(m[2])
		if err != nil {
			return engine.Operation{}, false, fmt.Errorf("bad parameter: %w", err)
		}
		target := atoi(m[3])
		return engine.Operation{Label: label, Wires: []int{target}, Params: []float64{param}}, true, nil
	}
	if m := singleRegex.FindStringSubmatch(line); m != nil {
		raw := strings.ToUpper(m[1])
		dagger := strings.HasSuffix(raw, "DG")
		base := strings.TrimSuffix(raw, "DG")
		label, params, ok := singleWireLabelDagger(base, dagger)
		if !ok {
			return engine.Operation{}, false, nil
		}
		target := atoi(m[2])
		return engine.Operation{Label: label, Wires: []int{target}, Params: params}, true, nil
	}
	return engine.Operation{}, false, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func singleWireLabel(gate string, dagger bool) (string, bool) {
	label, _, ok := singleWireLabelDagger(gate, dagger)
	return label, ok
}

// singleWireLabelDagger resolves a single-qubit QASM gate name, bare or
// parameterized, to its catalogue label, folding S†/T† into the
// catalogue's PhaseShift gate the way the root package's adapter does.
// Only the S†/T† fold returns parameters; for every other gate the
// parameter list is nil.
func singleWireLabelDagger(gate string, dagger bool) (string, []float64, bool) {
	switch gate {
	case "H":
		return "Hadamard", nil, true
	case "X":
		return "PauliX", nil, true
	case "Y":
		return "PauliY", nil, true
	case "Z":
		return "PauliZ", nil, true
	case "S":
		if dagger {
			return "PhaseShift", []float64{-math.Pi / 2}, true
		}
		return "S", nil, true
	case "T":
		if dagger {
			return "PhaseShift", []float64{-math.Pi / 4}, true
		}
		return "T", nil, true
	case "RX":
		return "RX", nil, true
	case "RY":
		return "RY", nil, true
	case "RZ", "P", "U1":
		if gate == "RZ" {
			return "RZ", nil, true
		}
		return "PhaseShift", nil, true
	default:
		return "", nil, false
	}
}

func twoWireLabel(gate string) (string, bool) {
	switch gate {
	case "CX":
		return "CNOT", true
	case "CZ":
		return "CZ", true
	case "SWAP":
		return "SWAP", true
	case "CRX":
		return "CRX", true
	case "CRY":
		return "CRY", true
	case "CRZ":
		return "CRZ", true
	default:
		return "", false
	}
}

func threeWireLabel(gate string) (string, bool) {
	switch gate {
	case "CCX", "TOFFOLI":
		return "Toffoli", true
	case "CSWAP", "FREDKIN":
		return "CSWAP", true
	default:
		return "", false
	}
}
