package bitstream_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitswap/bitstream"
)

const (
	Zero = bitstream.Zero
	One  = bitstream.One
)

var (
	NewWriter = bitstream.NewWriter
	NewReader = bitstream.NewReader
)

func TestBits(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)

	req.NoError(w.WriteBits(0xDEADBEEFCAFEBABE, 64))
	req.NoError(w.WriteBits(0x3FFF, 15))
	req.NoError(w.WriteBit(One))
	req.Equal([]byte{0xBE, 0xBA, 0xFE, 0xCA, 0xEF, 0xBE, 0xAD, 0xDE, 0xFF, 0xBF}, buf.Bytes())

	r := NewReader(buf)
	val, err := r.ReadBits(64)
	req.NoError(err)
	req.Equal(uint64(0xDEADBEEFCAFEBABE), val)
	val, err = r.ReadBits(15)
	req.NoError(err)
	req.Equal(uint64(0x3FFF), val)
	bit, err := r.ReadBit()
	req.NoError(err)
	req.Equal(One, bit)

	_, err = r.ReadBit()
	req.Equal(io.EOF, err)
}

func TestBits_Mixed(t *testing.T) {
	req := require.New(t)

	for i := uint64(1); i < 1<<12; i++ {
		buf := bytes.NewBuffer(nil)
		w := NewWriter(buf)
		r := NewReader(buf)

		// Write 3 arbitrary bits.
		req.NoError(w.WriteBit(One))
		req.NoError(w.WriteBit(Zero))
		req.NoError(w.WriteBit(One))

		req.NoError(w.WriteBits(i, 12))
		req.NoError(w.WriteByte(0xA5))
		req.NoError(w.Flush(Zero))

		bit, err := r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)
		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(Zero, bit)
		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		num, err := r.ReadBits(12)
		req.NoError(err)
		req.Equal(i, num)

		b, err := r.ReadBits(8)
		req.NoError(err)
		req.Equal(uint64(0xA5), b)
	}
}

func TestString(t *testing.T) {
	req := require.New(t)

	s := "a string"
	br := NewReader(strings.NewReader(s))
	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)

	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		req.NoError(err)
		req.NoError(bw.WriteBit(bit))
	}

	req.Equal(s, buf.String())
}

func TestFlush(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)
	for i := 0; i < 4; i++ {
		req.NoError(bw.WriteBit(One))
	}
	req.NoError(bw.Flush(One))
	req.NoError(bw.WriteByte(0xAA))

	req.Equal([]byte{0xFF, 0xAA}, buf.Bytes())
}

func TestEOF(t *testing.T) {
	req := require.New(t)

	_, err := NewReader(bytes.NewReader(nil)).ReadBit()
	req.Equal(io.EOF, err)
	_, err = NewReader(bytes.NewReader(nil)).ReadBits(8)
	req.Equal(io.EOF, err)

	_, err = NewReader(bytes.NewReader([]byte{0x01})).ReadBits(9)
	req.Equal(io.ErrUnexpectedEOF, err)
}

func TestBadWriter(t *testing.T) {
	req := require.New(t)

	bw := NewWriter(&badWriter{})
	for i := 0; i < 7; i++ {
		req.NoError(bw.WriteBit(One))
	}
	req.Equal(ErrBadWriter, bw.WriteBit(One))

	bw = NewWriter(&badWriter{})
	req.Equal(ErrBadWriter, bw.WriteBits(256, 16))
}

type badWriter struct{}

var ErrBadWriter = errors.New("bad writer")

func (w *badWriter) Write(p []byte) (n int, err error) {
	return 0, ErrBadWriter
}
