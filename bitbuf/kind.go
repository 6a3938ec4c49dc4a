package bitbuf

import (
	"fmt"
	"strconv"
)

// Kind identifies the numeric type whose storage a Buffer holds.
type Kind int

var kinds = []string{
	"integer",
	"real",
}

const (
	KindInteger Kind = 1 + iota
	KindExtended
)

func (k Kind) String() string {
	if k < KindInteger || k > KindExtended {
		return "unknown"
	}
	return kinds[k-1]
}

// Width returns the representation width of the kind, in bits.
func (k Kind) Width() uint {
	switch k {
	case KindInteger:
		return Int32Width
	case KindExtended:
		return ExtendedWidth
	default:
		return 0
	}
}

// Text returns the decimal text of the value stored in b.
func (k Kind) Text(b Buffer) (string, error) {
	switch k {
	case KindInteger:
		v, err := b.Int32()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	case KindExtended:
		x, err := b.Extended()
		if err != nil {
			return "", err
		}
		return x.String(), nil
	default:
		return "", fmt.Errorf("unknown number kind %d", int(k))
	}
}

// KindFromString maps the short type names used on input ("i", "r") and
// the long ones ("integer", "real") to a Kind.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "i", "integer":
		return KindInteger, true
	case "r", "real":
		return KindExtended, true
	default:
		return 0, false
	}
}
