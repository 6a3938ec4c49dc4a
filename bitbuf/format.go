package bitbuf

import (
	"fmt"
	"io"
	"strings"
)

// String returns the bits of the buffer as '0'/'1' characters, MS bit first.
func (b Buffer) String() string {
	var sb strings.Builder
	sb.Grow(int(b.width))
	for pos := int(b.width) - 1; pos >= 0; pos-- {
		if b.bit(uint(pos)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Ruler returns the two-row column index aligned with String: the tens digit
// row, then the units digit row, both counting down from width-1 to 0.
func Ruler(width uint) string {
	var tens, units strings.Builder
	for pos := int(width) - 1; pos >= 0; pos-- {
		tens.WriteByte(byte('0' + pos/10%10))
		units.WriteByte(byte('0' + pos%10))
	}
	return tens.String() + "\n" + units.String()
}

// Format writes the bits of the buffer, followed by the ruler if requested.
func (b Buffer) Format(w io.Writer, ruler bool) error {
	if _, err := fmt.Fprintln(w, b.String()); err != nil {
		return err
	}
	if !ruler {
		return nil
	}
	_, err := fmt.Fprintln(w, Ruler(b.width))
	return err
}
