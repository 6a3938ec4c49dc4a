package session

import (
	"bufio"
	"context"
	"io"

	"go.uber.org/zap"
)

// Runner drives a session over a line-oriented reader and writer.
type Runner struct {
	in      io.Reader
	printer *Printer
	logger  *zap.Logger
	initial State
}

func NewRunner(in io.Reader, out io.Writer, opts ...OptionFunc) (*Runner, error) {
	options := &option{
		logger: zap.NewNop(),
		ruler:  true,
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, err
	}

	return &Runner{
		in:      in,
		printer: NewPrinter(out, options.ruler, options.plan),
		logger:  options.logger,
		initial: Initial(options.kind),
	}, nil
}

// Run reads input until EOF, the user quits or ctx is done.
// Canceling ctx returns at once, even while waiting for a line.
func (r *Runner) Run(ctx context.Context) error {
	state := r.initial
	if err := r.printer.Render(state.Prompt()); err != nil {
		return err
	}

	scanCtx, stop := context.WithCancel(ctx)
	defer stop()

	lines, errc := r.scan(scanCtx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var text string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			text = line
		}

		next, effects := Transition(state, text)
		if next.Stage != state.Stage {
			r.logger.Debug("session stage changed",
				zap.Stringer("from", state.Stage),
				zap.Stringer("to", next.Stage),
				zap.Stringer("kind", next.Kind),
			)
		}

		for _, e := range effects {
			r.observe(state, e)
			if err := r.printer.Render(e); err != nil {
				return err
			}
		}

		state = next
		if state.Stage == StageDone {
			r.logger.Info("session finished")
			return nil
		}
	}
}

// scan feeds input lines to the returned channel. The channel is closed
// once input ends or ctx is done; errc then holds the reason.
// A read blocked on the underlying reader ends only when that reader does.
func (r *Runner) scan(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

func (r *Runner) observe(state State, e Effect) {
	switch e := e.(type) {
	case Failure:
		r.logger.Info("input rejected", zap.Stringer("stage", state.Stage), zap.Error(e.Err))
	case ShowSwap:
		r.logger.Debug("groups swapped",
			zap.Uint("lower_start", e.Plan.Lower.Start),
			zap.Uint("lower_len", e.Plan.Lower.Len),
			zap.Uint("upper_start", e.Plan.Upper.Start),
			zap.Uint("upper_len", e.Plan.Upper.Len),
			zap.Stringer("before", e.Before),
			zap.Stringer("after", e.After),
		)
	}
}
