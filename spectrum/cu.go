package spectrum

// CU is a half-open interval [Min, Max) of contiguous spectrum slot
// indices. A CU with Min == Max is empty.
type CU struct {
	Min, Max int
}

// NewCU returns the CU [min, max). Callers must ensure min <= max; a CU
// with min > max behaves as an empty interval for every operation below.
func NewCU(min, max int) CU {
	return CU{Min: min, Max: max}
}

// Empty reports whether c has zero width.
func (c CU) Empty() bool {
	return c.Min >= c.Max
}

// Width returns the number of slots covered by c. A malformed interval
// (Min > Max) reports width 0, matching Empty.
func (c CU) Width() int {
	if c.Min >= c.Max {
		return 0
	}
	return c.Max - c.Min
}

// Includes reports whether c fully contains other. An empty other is
// trivially included in any CU, including an empty one, wherever its Min
// lies; this mirrors the label-dominance rule that an empty candidate CU
// is always covered.
func (c CU) Includes(other CU) bool {
	if other.Empty() {
		return true
	}
	if c.Empty() {
		return false
	}
	return c.Min <= other.Min && other.Max <= c.Max
}

// Intersect returns the overlap between c and other. The result is the
// empty CU (zero value semantics: Min==Max==0 is not guaranteed, only
// Empty() is) when the two intervals are disjoint.
func (c CU) Intersect(other CU) CU {
	if c.Empty() || other.Empty() {
		return CU{}
	}
	min := c.Min
	if other.Min > min {
		min = other.Min
	}
	max := c.Max
	if other.Max < max {
		max = other.Max
	}
	if min >= max {
		return CU{}
	}
	return CU{Min: min, Max: max}
}
