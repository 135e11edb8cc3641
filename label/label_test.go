package label_test

import (
	"testing"

	"github.com/gopherrouting/ddpp/label"
	"github.com/gopherrouting/ddpp/spectrum"
	"github.com/stretchr/testify/require"
)

func TestLabel_DominatesRequiresBothDimensions(t *testing.T) {
	better := label.New(1, spectrum.NewCU(0, 10))
	worse := label.New(2, spectrum.NewCU(2, 6))
	require.True(t, better.Dominates(worse))
	require.False(t, worse.Dominates(better))
}

func TestLabel_DominatesFailsOnNarrowerCostButSmallerCU(t *testing.T) {
	a := label.New(1, spectrum.NewCU(0, 4))
	b := label.New(2, spectrum.NewCU(0, 10))
	require.False(t, a.Dominates(b))
	require.False(t, b.Dominates(a))
}

func TestLabel_DominanceTransitivity(t *testing.T) {
	l1 := label.New(1, spectrum.NewCU(0, 10))
	l2 := label.New(2, spectrum.NewCU(2, 8))
	l3 := label.New(3, spectrum.NewCU(4, 6))
	require.True(t, l1.Dominates(l2))
	require.True(t, l2.Dominates(l3))
	require.True(t, l1.Dominates(l3))
}

func TestPair_DominanceTransitivity(t *testing.T) {
	mk := func(c1, c2 float64) label.Pair {
		return label.NewPair(label.New(c1, spectrum.NewCU(0, 10)), label.New(c2, spectrum.NewCU(0, 10)))
	}
	p1, p2, p3 := mk(1, 1), mk(2, 2), mk(3, 3)
	require.True(t, p1.Dominates(p2))
	require.True(t, p2.Dominates(p3))
	require.True(t, p1.Dominates(p3))
}

func TestPair_Swap(t *testing.T) {
	l1 := label.New(1, spectrum.NewCU(0, 4))
	l2 := label.New(2, spectrum.NewCU(4, 8))
	p := label.NewPair(l1, l2)
	require.Equal(t, label.NewPair(l2, l1), p.Swap())
}
