package spectrum

import "sort"

// SU is a sorted set of pairwise-disjoint, non-adjacent CUs: the set of
// free slot-ranges on an edge or a path. The zero value is the empty SU.
//
// Invariants, maintained by every exported mutator:
//
//	(I1) adjacent intervals (a.Max == b.Min) are merged into one;
//	(I2) no stored interval is empty;
//	(I3) Intervals() yields intervals in ascending order of Min.
type SU struct {
	ivals []CU
}

// NewSU builds an SU from the given CUs, normalizing them to satisfy the
// invariants (sorting, merging adjacent intervals, dropping empties).
func NewSU(cus ...CU) SU {
	var su SU
	for _, c := range cus {
		su.Insert(c)
	}
	return su
}

// Intervals returns the stored intervals in ascending order. The caller
// must not mutate the returned slice.
func (su SU) Intervals() []CU {
	return su.ivals
}

// Size returns the number of disjoint intervals, a common "fragmentation"
// metric for spectrum availability.
func (su SU) Size() int {
	return len(su.ivals)
}

// Min returns the smallest CU (by Min) in su and reports whether su is
// non-empty.
func (su SU) Min() (CU, bool) {
	if len(su.ivals) == 0 {
		return CU{}, false
	}
	return su.ivals[0], true
}

// Insert adds c to su, coalescing any intervals that become adjacent. An
// empty c is a no-op.
func (su *SU) Insert(c CU) {
	if c.Empty() {
		return
	}

	all := make([]CU, 0, len(su.ivals)+1)
	all = append(all, su.ivals...)
	all = append(all, c)
	sort.Slice(all, func(i, j int) bool { return all[i].Min < all[j].Min })

	out := make([]CU, 0, len(all))
	cur := all[0]
	for _, next := range all[1:] {
		if next.Min <= cur.Max {
			if next.Max > cur.Max {
				cur.Max = next.Max
			}
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	su.ivals = out
}

// Remove cuts a hole shaped like r out of su. Every stored interval that
// overlaps r is trimmed to at most two remaining pieces (or removed
// entirely if r fully covers it). An empty r is a no-op.
func (su *SU) Remove(r CU) {
	if r.Empty() || len(su.ivals) == 0 {
		return
	}

	out := make([]CU, 0, len(su.ivals)+1)
	for _, existing := range su.ivals {
		overlap := existing.Intersect(r)
		if overlap.Empty() {
			out = append(out, existing)
			continue
		}
		if left := (CU{Min: existing.Min, Max: overlap.Min}); !left.Empty() {
			out = append(out, left)
		}
		if right := (CU{Min: overlap.Max, Max: existing.Max}); !right.Empty() {
			out = append(out, right)
		}
	}
	su.ivals = out
}

// RemoveNarrowerThan drops every stored interval whose width is below w.
// It is used to filter out spectrum fragments that cannot host the number
// of units a candidate path requires.
func (su *SU) RemoveNarrowerThan(w int) {
	if w <= 0 {
		return
	}
	out := su.ivals[:0:0]
	for _, c := range su.ivals {
		if c.Width() >= w {
			out = append(out, c)
		}
	}
	su.ivals = out
}

// Intersection returns the pairwise overlap of a and b.
func Intersection(a, b SU) SU {
	var out SU
	i, j := 0, 0
	for i < len(a.ivals) && j < len(b.ivals) {
		x, y := a.ivals[i], b.ivals[j]
		overlap := x.Intersect(y)
		if !overlap.Empty() {
			out.ivals = append(out.ivals, overlap)
		}
		if x.Max < y.Max {
			i++
		} else {
			j++
		}
	}
	return out
}

// IntersectCU clips every interval of su to c, the SU×CU form of
// Intersection.
func (su SU) IntersectCU(c CU) SU {
	var out SU
	for _, existing := range su.ivals {
		overlap := existing.Intersect(c)
		if !overlap.Empty() {
			out.ivals = append(out.ivals, overlap)
		}
	}
	return out
}

// Includes reports whether su fully contains c: some stored interval
// covers c end to end.
func (su SU) Includes(c CU) bool {
	for _, existing := range su.ivals {
		if existing.Includes(c) {
			return true
		}
	}
	return false
}
