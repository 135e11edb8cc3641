package spectrum_test

import (
	"testing"

	"github.com/gopherrouting/ddpp/spectrum"
	"github.com/stretchr/testify/require"
)

func TestSU_InsertCoalescesAdjacent(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 2), spectrum.NewCU(2, 4))
	require.Equal(t, 1, su.Size())
	require.Equal(t, []spectrum.CU{spectrum.NewCU(0, 4)}, su.Intervals())
}

func TestSU_InsertKeepsGapsSeparate(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 2), spectrum.NewCU(3, 5))
	require.Equal(t, 2, su.Size())
}

func TestSU_InsertEmptyIsNoOp(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 2))
	su.Insert(spectrum.CU{})
	require.Equal(t, 1, su.Size())
}

func TestSU_InsertOutOfOrder(t *testing.T) {
	var su spectrum.SU
	su.Insert(spectrum.NewCU(10, 12))
	su.Insert(spectrum.NewCU(0, 2))
	su.Insert(spectrum.NewCU(5, 7))
	require.Equal(t, []spectrum.CU{
		spectrum.NewCU(0, 2),
		spectrum.NewCU(5, 7),
		spectrum.NewCU(10, 12),
	}, su.Intervals())
}

func TestSU_RemoveSplitsInterval(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 10))
	su.Remove(spectrum.NewCU(4, 6))
	require.Equal(t, []spectrum.CU{
		spectrum.NewCU(0, 4),
		spectrum.NewCU(6, 10),
	}, su.Intervals())
}

func TestSU_RemoveConsumesWhole(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 4))
	su.Remove(spectrum.NewCU(0, 4))
	require.Equal(t, 0, su.Size())
}

func TestSU_RemoveEmptyIsNoOp(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 4))
	su.Remove(spectrum.CU{})
	require.Equal(t, 1, su.Size())
}

func TestSU_RemoveNarrowerThan(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 1), spectrum.NewCU(5, 9))
	su.RemoveNarrowerThan(2)
	require.Equal(t, []spectrum.CU{spectrum.NewCU(5, 9)}, su.Intervals())
}

func TestIntersection_SUxSU(t *testing.T) {
	a := spectrum.NewSU(spectrum.NewCU(0, 4), spectrum.NewCU(8, 12))
	b := spectrum.NewSU(spectrum.NewCU(2, 10))
	got := spectrum.Intersection(a, b)
	require.Equal(t, []spectrum.CU{
		spectrum.NewCU(2, 4),
		spectrum.NewCU(8, 10),
	}, got.Intervals())
}

func TestIntersection_WithEmptyYieldsEmpty(t *testing.T) {
	a := spectrum.NewSU(spectrum.NewCU(0, 4))
	var b spectrum.SU
	require.Equal(t, 0, spectrum.Intersection(a, b).Size())
}

func TestIntersection_Idempotent(t *testing.T) {
	a := spectrum.NewSU(spectrum.NewCU(0, 4), spectrum.NewCU(6, 8))
	require.Equal(t, a.Intervals(), spectrum.Intersection(a, a).Intervals())
}

func TestIntersection_Commutative(t *testing.T) {
	a := spectrum.NewSU(spectrum.NewCU(0, 4), spectrum.NewCU(6, 9))
	b := spectrum.NewSU(spectrum.NewCU(2, 7))
	require.Equal(t, spectrum.Intersection(a, b).Intervals(), spectrum.Intersection(b, a).Intervals())
}

func TestSU_IntersectCU_OutsideAllIntervalsIsEmpty(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 4))
	got := su.IntersectCU(spectrum.NewCU(10, 20))
	require.Equal(t, 0, got.Size())
}

func TestSU_IntersectCU_Clips(t *testing.T) {
	su := spectrum.NewSU(spectrum.NewCU(0, 10))
	got := su.IntersectCU(spectrum.NewCU(3, 7))
	require.Equal(t, []spectrum.CU{spectrum.NewCU(3, 7)}, got.Intervals())
}

func TestContainmentMonotonicity(t *testing.T) {
	a := spectrum.NewCU(0, 10)
	b := spectrum.NewCU(2, 6)
	require.True(t, a.Includes(b))
	require.Equal(t, b, a.Intersect(b))
}

func TestSU_ClosureUnderRandomOps(t *testing.T) {
	var su spectrum.SU
	ops := []spectrum.CU{
		spectrum.NewCU(0, 20),
		spectrum.NewCU(5, 8),
		spectrum.NewCU(12, 16),
		spectrum.NewCU(2, 3),
	}
	for _, c := range ops {
		su.Insert(c)
		intervals := su.Intervals()
		for i := 1; i < len(intervals); i++ {
			require.Less(t, intervals[i-1].Max, intervals[i].Min, "intervals must not be adjacent or overlapping")
			require.Less(t, intervals[i-1].Min, intervals[i].Min, "intervals must be sorted")
		}
		for _, iv := range intervals {
			require.False(t, iv.Empty())
		}
	}
	for _, c := range ops {
		su.Remove(c)
		for _, iv := range su.Intervals() {
			require.False(t, iv.Empty())
		}
	}
}
