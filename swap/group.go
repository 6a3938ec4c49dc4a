package swap

// Group is a contiguous run of bits.
type Group struct {
	Start uint
	Len   uint
}

// End returns the index of the last bit of the group.
// It must not be called on an empty group.
func (g Group) End() uint {
	return g.Start + g.Len - 1
}

// Overlaps reports whether g and o share at least one bit.
func (g Group) Overlaps(o Group) bool {
	return g.End() >= o.Start && g.End() <= o.End() ||
		o.End() >= g.Start && o.End() <= g.End()
}

// groupChecks are applied in order, each to both groups, before the overlap
// check. A group may not reach the last bit: start+len == width is rejected.
var groupChecks = []struct {
	err    error
	failed func(g Group, width uint) bool
}{
	{ErrOutOfRange, func(g Group, width uint) bool { return g.Start >= width }},
	{ErrDoesNotFit, func(g Group, width uint) bool { return g.Len >= width }},
	{ErrZeroLength, func(g Group, width uint) bool { return g.Len == 0 }},
	{ErrDoesNotFit, func(g Group, width uint) bool { return g.Start+g.Len >= width }},
}
