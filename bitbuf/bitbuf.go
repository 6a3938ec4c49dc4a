// Package bitbuf provides a fixed-size, width-tagged bit buffer holding the
// raw storage of a numeric value, together with single-bit accessors and the
// conversions between numeric types and their storage.
//
// Bit 0 is the least-significant bit of byte 0, i.e. the storage is
// little-endian. A Buffer is a value: copying it copies its bits.
package bitbuf

import (
	"errors"
	"fmt"
)

const (
	BitsInByte = 8

	// MaxBytes is the storage size of the widest supported representation.
	MaxBytes = 10

	Int32Width    uint = 32
	ExtendedWidth uint = 80
)

var (
	ErrOutOfRange = errors.New("bit position out of range")
	ErrWidth      = errors.New("unsupported width")
)

// Buffer is a width-tagged view over a fixed-size byte array.
type Buffer struct {
	data  [MaxBytes]byte
	width uint
}

// New returns a zeroed buffer of the given width in bits.
// The width must be a positive multiple of 8, not greater than MaxBytes*8.
func New(width uint) (Buffer, error) {
	if width == 0 || width%BitsInByte != 0 || width > MaxBytes*BitsInByte {
		return Buffer{}, fmt.Errorf("%w: %d bits", ErrWidth, width)
	}
	return Buffer{width: width}, nil
}

// FromBytes returns a buffer holding a copy of data, with a width of len(data)*8.
func FromBytes(data []byte) (Buffer, error) {
	b, err := New(uint(len(data)) * BitsInByte)
	if err != nil {
		return Buffer{}, err
	}
	copy(b.data[:], data)
	return b, nil
}

// Width returns the number of bits in the buffer.
func (b Buffer) Width() uint {
	return b.width
}

// Bytes returns a copy of the buffer storage.
func (b Buffer) Bytes() []byte {
	out := make([]byte, b.width/BitsInByte)
	copy(out, b.data[:])
	return out
}

// Bit reports whether the bit at pos is set.
func (b Buffer) Bit(pos uint) (bool, error) {
	if pos >= b.width {
		return false, fmt.Errorf("%w: %d, width %d", ErrOutOfRange, pos, b.width)
	}
	return b.bit(pos), nil
}

// SetBit sets or clears the bit at pos.
func (b *Buffer) SetBit(pos uint, val bool) error {
	if pos >= b.width {
		return fmt.Errorf("%w: %d, width %d", ErrOutOfRange, pos, b.width)
	}
	b.setBit(pos, val)
	return nil
}

// MustBit is like Bit but panics if pos is out of range.
func (b Buffer) MustBit(pos uint) bool {
	v, err := b.Bit(pos)
	if err != nil {
		panic(err)
	}
	return v
}

// MustSetBit is like SetBit but panics if pos is out of range.
func (b *Buffer) MustSetBit(pos uint, val bool) {
	if err := b.SetBit(pos, val); err != nil {
		panic(err)
	}
}

func (b Buffer) bit(pos uint) bool {
	mask := byte(1) << (pos % BitsInByte)
	return b.data[pos/BitsInByte]&mask != 0
}

func (b *Buffer) setBit(pos uint, val bool) {
	mask := byte(1) << (pos % BitsInByte)
	if val {
		b.data[pos/BitsInByte] |= mask
	} else {
		b.data[pos/BitsInByte] &^= mask
	}
}
