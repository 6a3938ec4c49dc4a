// Package bitstream provides wrappers for io.Writer and io.Reader to allow
// bit-granularity access to the stream, following the LSB pattern, where
// least-significant bits are written/read first.
//
// It is used to lay out numeric values field by field (e.g. the mantissa,
// exponent and sign of an extended float) without caring for byte boundaries.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
