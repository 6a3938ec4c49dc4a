package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spacemeshos/bitswap/bitbuf"
	"github.com/spacemeshos/bitswap/swap"
)

const (
	inputBack  = ".."
	inputQuit  = "q"
	inputSwap  = "s"
	inputPrint = "p"

	numParams = 4
)

var (
	ErrUnknownType      = errors.New("unknown type of number")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrBadParams        = errors.New("expected four non-negative integers")
)

// Transition consumes one line of input. Blank lines are ignored. Unless the
// session is done, the returned effects end with the prompt of the next stage.
func Transition(s State, input string) (State, []Effect) {
	input = strings.TrimSpace(input)
	if input == "" || s.Stage == StageDone {
		return s, nil
	}

	next, effects := step(s, input)
	if next.Stage != StageDone {
		effects = append(effects, next.Prompt())
	}
	return next, effects
}

func step(s State, input string) (State, []Effect) {
	switch s.Stage {
	case StageChooseType:
		if input == inputQuit {
			return State{Stage: StageDone}, nil
		}
		kind, ok := bitbuf.KindFromString(input)
		if !ok {
			return s, fail(fmt.Errorf("%w: %q", ErrUnknownType, input))
		}
		return State{Stage: StageInputValue, Kind: kind}, nil

	case StageInputValue:
		if input == inputBack {
			return State{Stage: StageChooseType}, nil
		}
		value, err := bitbuf.Parse(s.Kind, input)
		if err != nil {
			return s, fail(err)
		}
		next := State{Stage: StageChooseOperation, Kind: s.Kind, Value: value}
		return next, []Effect{ShowValue{Kind: s.Kind, Value: value}}

	case StageChooseOperation:
		switch input {
		case inputBack:
			return State{Stage: StageInputValue, Kind: s.Kind}, nil
		case inputSwap:
			s.Stage = StageInputParams
			return s, nil
		case inputPrint:
			return s, []Effect{ShowValue{Kind: s.Kind, Value: s.Value}}
		default:
			return s, fail(fmt.Errorf("%w: %q", ErrUnknownOperation, input))
		}

	case StageInputParams:
		if input == inputBack {
			s.Stage = StageChooseOperation
			return s, nil
		}
		first, second, err := ParseGroups(strings.Fields(input))
		if err != nil {
			return s, fail(err)
		}
		req := swap.Request{Buffer: s.Value, First: first, Second: second}
		plan, err := req.Plan()
		if err != nil {
			return s, fail(err)
		}
		after := plan.Apply(s.Value)
		next := State{Stage: StageChooseOperation, Kind: s.Kind, Value: after}
		return next, []Effect{ShowSwap{Kind: s.Kind, Before: s.Value, After: after, Plan: plan}}
	}

	return s, nil
}

// ParseGroups parses first start, first length, second start and second
// length, in that order, as non-negative decimal integers.
func ParseGroups(fields []string) (first, second swap.Group, err error) {
	if len(fields) != numParams {
		return first, second, fmt.Errorf("%w, got %d values", ErrBadParams, len(fields))
	}

	var params [numParams]uint
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 0)
		if err != nil {
			return first, second, fmt.Errorf("%w: %q", ErrBadParams, f)
		}
		params[i] = uint(v)
	}

	first = swap.Group{Start: params[0], Len: params[1]}
	second = swap.Group{Start: params[2], Len: params[3]}
	return first, second, nil
}

func fail(err error) []Effect {
	return []Effect{Failure{Err: err}}
}
