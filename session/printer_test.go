package session

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitswap/bitbuf"
	"github.com/spacemeshos/bitswap/swap"
)

func TestPrinterValue(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, true, false)

	require.NoError(t, p.Render(ShowValue{Kind: bitbuf.KindInteger, Value: bitbuf.FromInteger(-1)}))
	require.Equal(t,
		"integer -1 (32 bits, 4B)\n"+
			"11111111111111111111111111111111\n"+
			bitbuf.Ruler(bitbuf.Int32Width)+"\n",
		out.String())
}

func TestPrinterSwapPlan(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false, true)

	plan := swap.NewPlan(swap.Group{Start: 0, Len: 4}, swap.Group{Start: 8, Len: 2})
	before := bitbuf.FromInteger(0x0F)
	require.NoError(t, p.Render(ShowSwap{Kind: bitbuf.KindInteger, Before: before, After: plan.Apply(before), Plan: plan}))

	text := out.String()
	require.Contains(t, text, "before:\ninteger 15 (32 bits, 4B)\n")
	require.Contains(t, text, "after:\ninteger 960 (32 bits, 4B)\n")
	require.Contains(t, text, "SEGMENT")
	require.Contains(t, text, "second")
	require.Contains(t, text, "gap offset: 2\n")
}

func TestPrinterError(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false, false)

	require.NoError(t, p.Render(Failure{Err: errors.New("boom")}))
	require.NoError(t, p.Render(Prompt{Text: "swap>"}))
	require.Equal(t, "Error: boom\nswap>", out.String())
}
