// Package swap exchanges two disjoint bit groups of a numeric representation,
// closing the gap between them: the result is as if both groups were cut out
// and reinserted in swapped order, with the bits between them kept in place
// relative to their neighbours.
package swap

import (
	"github.com/spacemeshos/bitswap/bitbuf"
)

// Request is a swap of two groups of Buffer.
type Request struct {
	Buffer bitbuf.Buffer
	First  Group
	Second Group
}

// Validate returns the first violated precondition of the request, as a
// *GroupError wrapping ErrOutOfRange, ErrDoesNotFit, ErrZeroLength or ErrOverlap.
func (r Request) Validate() error {
	width := r.Buffer.Width()

	named := []struct {
		name  string
		group Group
	}{
		{SegmentFirst, r.First},
		{SegmentSecond, r.Second},
	}
	for _, check := range groupChecks {
		for _, n := range named {
			if check.failed(n.group, width) {
				return &GroupError{Group: n.name, Start: n.group.Start, Len: n.group.Len, Width: width, Err: check.err}
			}
		}
	}

	if r.First.Overlaps(r.Second) {
		return &GroupError{Group: "both", Start: r.First.Start, Len: r.First.Len, Width: width, Err: ErrOverlap}
	}
	return nil
}

// Plan validates the request and returns its moves.
func (r Request) Plan() (Plan, error) {
	if err := r.Validate(); err != nil {
		return Plan{}, err
	}
	return NewPlan(r.First, r.Second), nil
}

// Execute validates the request and returns the swapped buffer.
// On error the returned buffer is the zero value.
func (r Request) Execute() (bitbuf.Buffer, error) {
	plan, err := r.Plan()
	if err != nil {
		return bitbuf.Buffer{}, err
	}
	return plan.Apply(r.Buffer), nil
}

// Groups swaps the group of firstLen bits at firstStart with the group of
// secondLen bits at secondStart.
func Groups(buf bitbuf.Buffer, firstStart, firstLen, secondStart, secondLen uint) (bitbuf.Buffer, error) {
	return Request{
		Buffer: buf,
		First:  Group{Start: firstStart, Len: firstLen},
		Second: Group{Start: secondStart, Len: secondLen},
	}.Execute()
}
