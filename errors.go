package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by BuildTree when the frequency table has no
// symbols with a non-zero count.
var ErrEmptyInput = errors.New("huffman: no symbols to build a tree from")

// ErrDegenerateTree is returned when a tree or a set of codes cannot be
// turned into a usable prefix code.
var ErrDegenerateTree = errors.New("huffman: degenerate Huffman tree")

// UnknownSymbolError is returned by Pack when the input contains a byte that
// has no entry in the CodeTable.
type UnknownSymbolError struct {
	Symbol Symbol
	Offset int
}

func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: no code for symbol %d at offset %d", err.Symbol, err.Offset)
}

// InvalidPaddingError is returned by Decode when the padding bit count is not
// in the range 0 .. 7, or exceeds the number of bits in the buffer.
type InvalidPaddingError struct {
	Padding int
	Length  int
}

func (err *InvalidPaddingError) Error() string {
	return fmt.Sprintf("huffman: invalid padding of %d bits for a %d-byte buffer", err.Padding, err.Length)
}

// MalformedDataError is returned by Decode when the packed bits do not
// describe a whole number of codes in the tree.
type MalformedDataError struct {
	// BitOffset is the index of the offending bit, counted from the start
	// of the buffer.
	BitOffset int

	// Reason is a short human-readable description.
	Reason string
}

func (err *MalformedDataError) Error() string {
	return fmt.Sprintf("huffman: malformed data at bit %d: %s", err.BitOffset, err.Reason)
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*InvalidPaddingError)(nil)
	_ error = (*MalformedDataError)(nil)
)
