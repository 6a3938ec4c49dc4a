package session

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/bitswap/bitbuf"
)

func TestRunner(t *testing.T) {
	input := strings.Join([]string{
		"x",
		"i",
		"67109958",
		"s",
		"5 3 6 2",
		"1 5 9 6",
		"..",
		"..",
		"q",
		"i",
	}, "\n")

	var out bytes.Buffer
	r, err := NewRunner(strings.NewReader(input), &out,
		WithLogger(zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))),
		WithRuler(false),
	)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))

	text := out.String()
	require.True(t, strings.HasPrefix(text, "Enter number type"))
	require.Contains(t, text, `Error: unknown type of number: "x"`)
	require.Contains(t, text, "integer 67109958 (32 bits, 4B)\n00000100000000000000010001000110\n")
	require.Contains(t, text, "Error: groups intersect")
	require.Contains(t, text, "after:\ninteger 67112068 (32 bits, 4B)\n00000100000000000000110010000100\n")
	require.True(t, strings.HasSuffix(text, "Enter number type: i (integer) or r (real), q to quit\n>"))
	require.NotContains(t, text, "33222222222211111111110000000000")
}

func TestRunnerPreselectedKind(t *testing.T) {
	var out bytes.Buffer
	r, err := NewRunner(strings.NewReader("-2.5\ns\n64 4 0 2\n"), &out,
		WithKind(bitbuf.KindExtended),
		WithPlan(true),
	)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))

	text := out.String()
	require.True(t, strings.HasPrefix(text, "Enter real number"))
	require.Contains(t, text, "real -2.5 (80 bits, 10B)\n")
	require.Contains(t, text, bitbuf.Ruler(bitbuf.ExtendedWidth))
	require.Contains(t, text, "SEGMENT")
	require.Contains(t, text, "gap offset: -2")
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewRunner(strings.NewReader("i\n"), &bytes.Buffer{})
	require.NoError(t, err)
	require.ErrorIs(t, r.Run(ctx), context.Canceled)
}

func TestRunnerCanceledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	r, err := NewRunner(pr, &out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		require.FailNow(t, "Run did not return after cancel")
	}
	require.Equal(t, Initial(0).Prompt().Text, out.String())
}

func TestRunnerOptions(t *testing.T) {
	_, err := NewRunner(strings.NewReader(""), &bytes.Buffer{}, WithLogger(nil))
	require.Error(t, err)

	_, err = NewRunner(strings.NewReader(""), &bytes.Buffer{}, WithKind(bitbuf.Kind(7)))
	require.Error(t, err)
}
