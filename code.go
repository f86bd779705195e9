package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest code, in bits, that a Code can hold.  It is one
// less than the width of Bits so that 1<<MaxCodeSize still fits in a uint64.
const MaxCodeSize = 63

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit; higher bits are zero.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", str[i], str)
		}
	}
	return hc, nil
}

// Append returns a Code that is one bit longer than hc, ending in bit.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Bit returns the i'th bit of hc, counting from the first bit at i=0.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix returns true iff prefix is a prefix of hc.  Every Code is a
// prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
