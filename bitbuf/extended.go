package bitbuf

import (
	"errors"
	"math/big"
)

const (
	extendedBias    = 16383
	extendedMaxExp  = 1<<exponentBits - 1
	extendedPrec    = mantissaBits
	parsePrec       = 4 * mantissaBits
	integerBit      = uint64(1) << 63
	quietNaNPattern = uint64(3) << 62

	// Denormals are mantissa * 2^(1 - bias - 63).
	denormalShift = extendedBias - 1 + mantissaBits - 1
)

var ErrOverflow = errors.New("value out of extended float range")

// Extended holds the fields of an x87 80-bit extended precision float.
// The mantissa carries an explicit integer bit (bit 63).
type Extended struct {
	Sign     bool
	Exponent uint16
	Mantissa uint64
}

// NaN returns the default quiet NaN.
func NaN() Extended {
	return Extended{Exponent: extendedMaxExp, Mantissa: quietNaNPattern}
}

// IsNaN reports whether x is a NaN.
func (x Extended) IsNaN() bool {
	return x.Exponent == extendedMaxExp && x.Mantissa != integerBit
}

// IsInf reports whether x is an infinity.
func (x Extended) IsInf() bool {
	return x.Exponent == extendedMaxExp && x.Mantissa == integerBit
}

// ExtendedFromFloat rounds f to the extended format.
// Values too large for it yield ErrOverflow.
func ExtendedFromFloat(f *big.Float) (Extended, error) {
	x := Extended{Sign: f.Signbit()}

	if f.IsInf() {
		x.Exponent = extendedMaxExp
		x.Mantissa = integerBit
		return x, nil
	}
	if f.Sign() == 0 {
		return x, nil
	}

	abs := new(big.Float).Abs(f)
	if abs.MantExp(nil)-1+extendedBias < 1 {
		x.Mantissa = roundToEven(new(big.Float).SetMantExp(abs, denormalShift))
		if x.Mantissa >= integerBit {
			// Rounded up into the smallest normal.
			x.Exponent = 1
		}
		return x, nil
	}

	// mant * 2^exp, 0.5 <= mant < 1.
	rounded := new(big.Float).SetPrec(extendedPrec).SetMode(big.ToNearestEven).Set(abs)
	mant := new(big.Float)
	biased := rounded.MantExp(mant) - 1 + extendedBias
	if biased >= extendedMaxExp {
		return Extended{}, ErrOverflow
	}

	m, _ := mant.SetMantExp(mant, mantissaBits).Uint64()
	x.Exponent = uint16(biased)
	x.Mantissa = m
	return x, nil
}

// roundToEven rounds the non-negative f to the nearest integer, ties to even.
// f must be below 2^64.
func roundToEven(f *big.Float) uint64 {
	n, _ := f.Uint64()
	frac := new(big.Float).Sub(f, new(big.Float).SetUint64(n))

	switch frac.Cmp(big.NewFloat(0.5)) {
	case 1:
		n++
	case 0:
		n += n & 1
	}
	return n
}

// Float returns the value of x. ok is false for NaN, which big.Float cannot hold.
func (x Extended) Float() (f *big.Float, ok bool) {
	if x.IsNaN() {
		return nil, false
	}

	f = new(big.Float).SetPrec(extendedPrec)
	switch {
	case x.IsInf():
		f.SetInf(x.Sign)
		return f, true
	case x.Exponent == 0:
		f.SetUint64(x.Mantissa)
		f.SetMantExp(f, -denormalShift)
	default:
		f.SetUint64(x.Mantissa)
		f.SetMantExp(f, int(x.Exponent)-extendedBias-(mantissaBits-1))
	}

	if x.Sign {
		f.Neg(f)
	}
	return f, true
}

func (x Extended) String() string {
	f, ok := x.Float()
	if !ok {
		return "nan"
	}
	return f.Text('g', -1)
}
