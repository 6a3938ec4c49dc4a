// Package session implements the interactive editing session as a pure state
// machine. Transition consumes one line of input and returns the next state
// together with the effects to render; all terminal I/O lives in Runner.
package session

import (
	"fmt"

	"github.com/spacemeshos/bitswap/bitbuf"
	"github.com/spacemeshos/bitswap/swap"
)

type Stage int

var stages = []string{
	"CHOOSE_TYPE",
	"INPUT_VALUE",
	"CHOOSE_OPERATION",
	"INPUT_PARAMS",
	"DONE",
}

const (
	StageChooseType Stage = 1 + iota
	StageInputValue
	StageChooseOperation
	StageInputParams
	StageDone
)

func (s Stage) String() string {
	if s < StageChooseType || s > StageDone {
		return "UNKNOWN"
	}
	return stages[s-1]
}

// State is the whole session state. Value is only meaningful from
// StageChooseOperation on.
type State struct {
	Stage Stage
	Kind  bitbuf.Kind
	Value bitbuf.Buffer
}

// Initial returns the starting state. A non-zero kind skips the type choice.
func Initial(kind bitbuf.Kind) State {
	if kind == 0 {
		return State{Stage: StageChooseType}
	}
	return State{Stage: StageInputValue, Kind: kind}
}

// Prompt returns the prompt asking for the input of the current stage.
func (s State) Prompt() Prompt {
	switch s.Stage {
	case StageChooseType:
		return Prompt{Text: "Enter number type: i (integer) or r (real), q to quit\n>"}
	case StageInputValue:
		return Prompt{Text: fmt.Sprintf("Enter %s number, .. to go back\n%s>", s.Kind, s.Kind)}
	case StageChooseOperation:
		return Prompt{Text: fmt.Sprintf("Enter operation: s (swap groups), p (print), .. to go back\n%s>", s.Kind)}
	case StageInputParams:
		return Prompt{Text: "Enter groups: first start, first length, second start, second length\nswap>"}
	default:
		return Prompt{}
	}
}

// Effect is an output requested by a transition.
type Effect interface {
	effect()
}

// Prompt asks for the next line of input.
type Prompt struct {
	Text string
}

// ShowValue displays a value and its binary representation.
type ShowValue struct {
	Kind  bitbuf.Kind
	Value bitbuf.Buffer
}

// ShowSwap displays the outcome of a group swap.
type ShowSwap struct {
	Kind   bitbuf.Kind
	Before bitbuf.Buffer
	After  bitbuf.Buffer
	Plan   swap.Plan
}

// Failure reports rejected input. The session stays at the same stage.
type Failure struct {
	Err error
}

func (Prompt) effect()    {}
func (ShowValue) effect() {}
func (ShowSwap) effect()  {}
func (Failure) effect()   {}
