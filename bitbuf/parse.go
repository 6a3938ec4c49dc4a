package bitbuf

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ParseError reports a text that is not a valid number of the requested kind.
type ParseError struct {
	Input string
	Kind  Kind
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("incorrect %s number %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses s as a decimal number of the given kind and returns its storage.
func Parse(kind Kind, s string) (Buffer, error) {
	switch kind {
	case KindInteger:
		return ParseInteger(s)
	case KindExtended:
		return ParseExtended(s)
	default:
		return Buffer{}, fmt.Errorf("unknown number kind %d", int(kind))
	}
}

// ParseInteger parses a decimal 32-bit signed integer.
func ParseInteger(s string) (Buffer, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Buffer{}, &ParseError{Input: s, Kind: KindInteger, Err: err}
	}
	return FromInteger(int32(v)), nil
}

// ParseExtended parses a decimal floating-point number, rounding it to the
// 80-bit extended format. "inf" and "nan" are accepted, with an optional sign.
func ParseExtended(s string) (Buffer, error) {
	s = strings.TrimSpace(s)

	unsigned := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		unsigned = s[1:]
	}
	if strings.EqualFold(unsigned, "nan") {
		x := NaN()
		x.Sign = s[0] == '-'
		return FromExtended(x), nil
	}

	f, _, err := big.ParseFloat(s, 10, parsePrec, big.ToNearestEven)
	if err != nil {
		return Buffer{}, &ParseError{Input: s, Kind: KindExtended, Err: err}
	}

	x, err := ExtendedFromFloat(f)
	if err != nil {
		return Buffer{}, &ParseError{Input: s, Kind: KindExtended, Err: err}
	}
	return FromExtended(x), nil
}
