package session

import (
	"fmt"
	"io"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"

	"github.com/spacemeshos/bitswap/bitbuf"
	"github.com/spacemeshos/bitswap/swap"
)

// Printer renders effects as text.
type Printer struct {
	out   io.Writer
	ruler bool
	plan  bool
}

func NewPrinter(out io.Writer, ruler, plan bool) *Printer {
	return &Printer{out: out, ruler: ruler, plan: plan}
}

// Render writes a single effect.
func (p *Printer) Render(e Effect) error {
	switch e := e.(type) {
	case Prompt:
		_, err := io.WriteString(p.out, e.Text)
		return err
	case ShowValue:
		return p.PrintValue(e.Kind, e.Value)
	case ShowSwap:
		return p.PrintSwap(e.Kind, e.Before, e.After, e.Plan)
	case Failure:
		return p.PrintError(e.Err)
	default:
		return fmt.Errorf("unknown effect %T", e)
	}
}

// PrintValue writes the decimal value, its bits and, if enabled, the ruler.
func (p *Printer) PrintValue(kind bitbuf.Kind, value bitbuf.Buffer) error {
	text, err := kind.Text(value)
	if err != nil {
		return err
	}

	width := value.Width()
	size := bytefmt.ByteSize(uint64(width / bitbuf.BitsInByte))
	if _, err := fmt.Fprintf(p.out, "%s %s (%d bits, %s)\n", kind, text, width, size); err != nil {
		return err
	}
	return value.Format(p.out, p.ruler)
}

// PrintSwap writes the value before and after a swap, and the plan if enabled.
func (p *Printer) PrintSwap(kind bitbuf.Kind, before, after bitbuf.Buffer, plan swap.Plan) error {
	if _, err := fmt.Fprintln(p.out, "before:"); err != nil {
		return err
	}
	if err := p.PrintValue(kind, before); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.out, "after:"); err != nil {
		return err
	}
	if err := p.PrintValue(kind, after); err != nil {
		return err
	}
	if !p.plan {
		return nil
	}
	return p.PrintPlan(plan)
}

// PrintPlan writes the moves of a plan as a table.
func (p *Printer) PrintPlan(plan swap.Plan) error {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"segment", "from", "to", "length"})
	for _, m := range plan.Moves {
		table.Append([]string{
			m.Segment,
			strconv.FormatUint(uint64(m.From), 10),
			strconv.FormatUint(uint64(m.To), 10),
			strconv.FormatUint(uint64(m.Len), 10),
		})
	}
	table.Render()

	_, err := fmt.Fprintf(p.out, "gap offset: %d\n", plan.GapOffset())
	return err
}

func (p *Printer) PrintError(err error) error {
	_, werr := fmt.Fprintf(p.out, "Error: %v\n", err)
	return werr
}
