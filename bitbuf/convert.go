package bitbuf

import (
	"bytes"
	"fmt"

	"github.com/spacemeshos/bitswap/bitstream"
)

// Layout of the x87 extended precision format, LS field first.
const (
	mantissaBits = 64
	exponentBits = 15
	signBits     = 1
)

// FromInteger returns the two's complement storage of v.
func FromInteger(v int32) Buffer {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	// Writes to a bytes.Buffer do not fail.
	_ = w.WriteBits(uint64(uint32(v)), int(Int32Width))
	_ = w.Flush(bitstream.Zero)

	b, _ := FromBytes(buf.Bytes())
	return b
}

// Int32 interprets the buffer as the storage of a 32-bit signed integer.
func (b Buffer) Int32() (int32, error) {
	if b.width != Int32Width {
		return 0, fmt.Errorf("%w: int32 needs %d bits, buffer has %d", ErrWidth, Int32Width, b.width)
	}

	r := bitstream.NewReader(bytes.NewReader(b.Bytes()))
	v, err := r.ReadBits(int(Int32Width))
	if err != nil {
		return 0, err
	}
	return int32(uint32(v)), nil
}

// FromExtended returns the 80-bit storage of x: mantissa in bits 0..63,
// biased exponent in bits 64..78 and sign in bit 79.
func FromExtended(x Extended) Buffer {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)

	var sign uint64
	if x.Sign {
		sign = 1
	}
	_ = w.WriteBits(x.Mantissa, mantissaBits)
	_ = w.WriteBits(uint64(x.Exponent), exponentBits)
	_ = w.WriteBits(sign, signBits)
	_ = w.Flush(bitstream.Zero)

	b, _ := FromBytes(buf.Bytes())
	return b
}

// Extended interprets the buffer as the storage of an 80-bit extended float.
func (b Buffer) Extended() (Extended, error) {
	if b.width != ExtendedWidth {
		return Extended{}, fmt.Errorf("%w: extended float needs %d bits, buffer has %d", ErrWidth, ExtendedWidth, b.width)
	}

	r := bitstream.NewReader(bytes.NewReader(b.Bytes()))
	mantissa, err := r.ReadBits(mantissaBits)
	if err != nil {
		return Extended{}, err
	}
	exponent, err := r.ReadBits(exponentBits)
	if err != nil {
		return Extended{}, err
	}
	sign, err := r.ReadBits(signBits)
	if err != nil {
		return Extended{}, err
	}

	return Extended{
		Sign:     sign == 1,
		Exponent: uint16(exponent),
		Mantissa: mantissa,
	}, nil
}
