package swap

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("first index of group is out of range")
	ErrZeroLength = errors.New("size of group is zero")
	ErrDoesNotFit = errors.New("group does not fit into type size")
	ErrOverlap    = errors.New("groups intersect")
)

// GroupError describes a rejected swap request. Err is one of the
// package sentinel errors.
type GroupError struct {
	Group string
	Start uint
	Len   uint
	Width uint
	Err   error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("%v: %s group [start %d, length %d], width %d", e.Err, e.Group, e.Start, e.Len, e.Width)
}

func (e *GroupError) Unwrap() error {
	return e.Err
}
