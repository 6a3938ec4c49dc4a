package bitstream

import (
	"io"
)

// BitReader reads bits from an io.Reader.
type BitReader struct {
	stream    io.Reader
	pending   [1]byte
	alignment uint8
}

// NewReader returns a new instance of BitReader.
func NewReader(r io.Reader) *BitReader {
	b := new(BitReader)
	b.stream = r
	b.alignment = 8
	return b
}

// ReadBits reads the next numBits (up to 64) from the stream, LS bit first,
// regardless of the alignment. io.EOF is returned only if no bit was read;
// a stream ending mid-value yields io.ErrUnexpectedEOF.
func (br *BitReader) ReadBits(numBits int) (uint64, error) {
	var val uint64

	for i := 0; i < numBits; i++ {
		bit, err := br.ReadBit()
		if err == io.EOF && i > 0 {
			return 0, io.ErrUnexpectedEOF
		}
		if err != nil {
			return 0, err
		}

		if bit {
			val |= 1 << uint(i)
		}
	}

	return val, nil
}

// ReadBit reads the next single bit from the stream, LSB first.
func (br *BitReader) ReadBit() (Bit, error) {
	if br.alignment == 8 {
		if _, err := io.ReadFull(br.stream, br.pending[:]); err != nil {
			return Zero, err
		}
		br.alignment = 0
	}
	br.alignment++

	// Read LS bit.
	lsb := Bit(br.pending[0]&1 == 1)

	// Remove LS bit.
	br.pending[0] >>= 1

	return lsb, nil
}
