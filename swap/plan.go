package swap

import (
	"github.com/spacemeshos/bitswap/bitbuf"
)

const (
	SegmentGap    = "gap"
	SegmentFirst  = "first"
	SegmentSecond = "second"
)

// Move relocates Len bits starting at From to start at To.
type Move struct {
	Segment string
	From    uint
	To      uint
	Len     uint
}

// Plan is the sequence of moves exchanging two groups while keeping the gap
// between them. Moves read from the source buffer and write into a copy, so
// their order does not matter.
type Plan struct {
	Lower Group
	Upper Group
	Moves []Move
}

// NewPlan builds the moves for two valid, disjoint groups given in any order.
func NewPlan(first, second Group) Plan {
	if first.Start > second.Start {
		first, second = second, first
	}

	gapStart := first.Start + first.Len
	return Plan{
		Lower: first,
		Upper: second,
		Moves: []Move{
			// The gap shifts by the length difference of the groups.
			{Segment: SegmentGap, From: gapStart, To: first.Start + second.Len, Len: second.Start - gapStart},
			{Segment: SegmentFirst, From: first.Start, To: second.Start + second.Len - first.Len, Len: first.Len},
			{Segment: SegmentSecond, From: second.Start, To: first.Start, Len: second.Len},
		},
	}
}

// GapOffset returns the signed length difference of the groups, i.e. how far
// left the gap moves.
func (p Plan) GapOffset() int {
	return int(p.Lower.Len) - int(p.Upper.Len)
}

// Span returns the half-open bit range touched by the plan.
func (p Plan) Span() (lo, hi uint) {
	return p.Lower.Start, p.Upper.Start + p.Upper.Len
}

// Apply returns a copy of src with every move applied. src is left intact.
func (p Plan) Apply(src bitbuf.Buffer) bitbuf.Buffer {
	dst := src
	for _, m := range p.Moves {
		for i := uint(0); i < m.Len; i++ {
			dst.MustSetBit(m.To+i, src.MustBit(m.From+i))
		}
	}
	return dst
}
