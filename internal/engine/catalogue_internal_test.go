package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// paramsFor returns a representative, non-degenerate parameter list for a
// gate's constructor, sized to its declared parameter count.
func paramsFor(count int) []float64 {
	switch count {
	case 0:
		return nil
	case 1:
		return []float64{0.7}
	case 3:
		return []float64{0.3, 0.9, 1.4}
	default:
		panic("paramsFor: unsupported parameter count")
	}
}

func paramCountFor(label string) int {
	switch label {
	case "RX", "RY", "RZ", "PhaseShift", "CRX", "CRY", "CRZ":
		return 1
	case "Rot", "CRot":
		return 3
	default:
		return 0
	}
}

// TestSpecializedMatchesGeneric builds every catalogued gate and checks that
// its specialized Apply agrees with applying its own Matrix() through the
// generic gather/apply/scatter path, on a fresh block of 2^k distinct
// amplitudes addressed in identity order (idx[i] == i).
func TestSpecializedMatchesGeneric(t *testing.T) {
	for label, info := range catalogue {
		label, info := label, info
		t.Run(label, func(t *testing.T) {
			gate, err := info.construct(paramsFor(paramCountFor(label)))
			require.NoError(t, err)

			k := info.arity
			dim := 1 << k
			idx := make([]int, dim)
			for i := range idx {
				idx[i] = i
			}

			base := make([]complex128, dim)
			for i := range base {
				base[i] = complex(math.Sin(float64(i+1)), math.Cos(float64(i+1)))
			}

			specialized := append([]complex128(nil), base...)
			generic := append([]complex128(nil), base...)

			gate.Apply(specialized, idx)
			genericApply(gate.Matrix(), generic, idx)

			for i := range specialized {
				require.InDelta(t, real(generic[i]), real(specialized[i]), 1e-9, "real part at slot %d", i)
				require.InDelta(t, imag(generic[i]), imag(specialized[i]), 1e-9, "imag part at slot %d", i)
			}
		})
	}
}

func TestLookupUnknownGate(t *testing.T) {
	_, err := lookup("Frobnicate")
	require.True(t, errors.Is(err, ErrUnknownGate))
}

func TestCatalogueRejectsBadParameterCount(t *testing.T) {
	info, err := lookup("RX")
	require.NoError(t, err)

	_, err = info.construct(nil)
	require.True(t, errors.Is(err, ErrBadParameterCount))

	_, err = info.construct([]float64{0.1, 0.2})
	require.True(t, errors.Is(err, ErrBadParameterCount))
}

func TestCatalogueArities(t *testing.T) {
	want := map[string]int{
		"PauliX": 1, "PauliY": 1, "PauliZ": 1, "Hadamard": 1, "S": 1, "T": 1,
		"RX": 1, "RY": 1, "RZ": 1, "PhaseShift": 1, "Rot": 1,
		"CNOT": 2, "SWAP": 2, "CZ": 2, "CRX": 2, "CRY": 2, "CRZ": 2, "CRot": 2,
		"Toffoli": 3, "CSWAP": 3,
	}
	require.Len(t, catalogue, len(want))
	for label, arity := range want {
		info, ok := catalogue[label]
		require.True(t, ok, "missing catalogue entry for %s", label)
		require.Equal(t, arity, info.arity, "arity for %s", label)
	}
}
