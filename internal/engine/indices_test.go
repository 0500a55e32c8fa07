package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"qtermcirq/internal/engine"
)

func TestGetIndicesExcludingWorkedExample(t *testing.T) {
	got, err := engine.GetIndicesExcluding([]int{1, 3}, 5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4}, got)
}

func TestGetIndicesExcludingEmpty(t *testing.T) {
	got, err := engine.GetIndicesExcluding(nil, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestGetIndicesExcludingAll(t *testing.T) {
	got, err := engine.GetIndicesExcluding([]int{0, 1, 2}, 3)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetIndicesExcludingOutOfRange(t *testing.T) {
	_, err := engine.GetIndicesExcluding([]int{5}, 3)
	require.True(t, errors.Is(err, engine.ErrWireOutOfRange))
}

func TestGetIndicesExcludingToleratesDuplicates(t *testing.T) {
	got, err := engine.GetIndicesExcluding([]int{1, 1}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, got)
}

func TestGenerateBitPatternsSingleWire(t *testing.T) {
	// n=3, wire 1: offsets should be {0, 2} (bit for wire 1 is 1<<(3-1-1)=2).
	got := engine.GenerateBitPatterns([]int{1}, 3)
	require.Equal(t, []int{0, 2}, got)
}

func TestGenerateBitPatternsTwoWires(t *testing.T) {
	// n=3, wires {0,2}: bit for wire 0 is 1<<2=4, bit for wire 2 is 1<<0=1.
	// p=0 -> 0, p=1 -> wire2 bit set -> 1, p=2 -> wire0 bit set -> 4, p=3 -> 5.
	got := engine.GenerateBitPatterns([]int{0, 2}, 3)
	require.Equal(t, []int{0, 1, 4, 5}, got)
}

func TestGenerateBitPatternsFullWidth(t *testing.T) {
	got := engine.GenerateBitPatterns([]int{0, 1}, 2)
	require.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestGenerateBitPatternsEmptyWires(t *testing.T) {
	got := engine.GenerateBitPatterns(nil, 4)
	require.Equal(t, []int{0}, got)
}
