package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/bitswap/bitbuf"
)

type option struct {
	logger *zap.Logger
	kind   bitbuf.Kind
	ruler  bool
	plan   bool
}

func (o *option) validate() error {
	if o.logger == nil {
		return errors.New("`logger` is required")
	}
	if o.kind != 0 && o.kind.Width() == 0 {
		return fmt.Errorf("invalid number kind %d", int(o.kind))
	}
	return nil
}

type OptionFunc func(*option) error

// WithLogger sets the logger for the session.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		o.logger = logger
		return nil
	}
}

// WithKind preselects the number type, starting the session at value input.
func WithKind(kind bitbuf.Kind) OptionFunc {
	return func(o *option) error {
		o.kind = kind
		return nil
	}
}

// WithRuler enables printing the bit index ruler below values.
func WithRuler(enabled bool) OptionFunc {
	return func(o *option) error {
		o.ruler = enabled
		return nil
	}
}

// WithPlan enables printing the move table after each swap.
func WithPlan(enabled bool) OptionFunc {
	return func(o *option) error {
		o.plan = enabled
		return nil
	}
}
