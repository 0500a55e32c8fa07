// Command qtermcirq runs quantum circuits described in QASM headlessly,
// without the interactive TUI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"qtermcirq/internal/engine"
	"qtermcirq/internal/qasm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qtermcirq",
		Short: "Headless runner for the qtermcirq state-vector kernel",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var showAmplitudes bool

	cmd := &cobra.Command{
		Use:   "run <file.qasm>",
		Short: "Simulate a QASM program and print its final state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, skipped, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			for _, s := range skipped {
				log.Printf("qtermcirq: skipping unsupported line %s", s)
			}

			state := engine.NewZeroState(prog.NumQubits)
			if err := engine.Apply(state, prog.NumQubits, prog.Ops); err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			printProbabilities(cmd, prog.NumQubits, state)
			if showAmplitudes {
				printAmplitudes(cmd, state)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showAmplitudes, "amplitudes", false, "also print every nonzero basis amplitude")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.qasm>",
		Short: "Check a QASM program against the gate catalogue without printing state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, skipped, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			state := engine.NewZeroState(prog.NumQubits)
			if err := engine.Apply(state, prog.NumQubits, prog.Ops); err != nil {
				return fmt.Errorf("invalid: %w", err)
			}
			for _, s := range skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped (no catalogue equivalent): %s\n", s)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d qubit(s), %d operation(s)\n", prog.NumQubits, len(prog.Ops))
			return nil
		},
	}
}

func loadProgram(path string) (qasm.Program, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return qasm.Program{}, nil, err
	}
	defer f.Close()
	return qasm.Parse(f)
}

func printProbabilities(cmd *cobra.Command, n int, state []complex128) {
	out := cmd.OutOrStdout()
	for q := 0; q < n; q++ {
		fmt.Fprintf(out, "q%d: P(1)=%.6f\n", q, engine.WireProbability(state, n, q))
	}
}

func printAmplitudes(cmd *cobra.Command, state []complex128) {
	out := cmd.OutOrStdout()
	for i, a := range state {
		if real(a)*real(a)+imag(a)*imag(a) <= 1e-12 {
			continue
		}
		fmt.Fprintf(out, "|%0*b>: %.6f%+.6fi\n", bitsWidth(len(state)), i, real(a), imag(a))
	}
}

func bitsWidth(dim int) int {
	w := 0
	for d := dim; d > 1; d >>= 1 {
		w++
	}
	return w
}
