package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol to its Code.  Symbols that are absent have a
// Code of size 0.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	if ct.codes[symbol].Size == 0 {
		ct.count++
	}
	ct.codes[symbol] = hc
	if ct.count == 1 || ct.minSize > hc.Size {
		ct.minSize = hc.Size
	}
	if ct.count == 1 || ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
}

// Lookup returns the Code for symbol, or false if symbol has no code.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Encode returns the Code for symbol.  The Code has size 0 if symbol has no
// code.
func (ct *CodeTable) Encode(symbol Symbol) Code {
	return ct.codes[symbol]
}

// Len returns the number of symbols that have a code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.  This array can be transmitted to another party and passed to
// CanonicalCodes to reconstruct a canonical code on the receiving end.
//
func (ct *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range ct.codes {
		out[symbol] = ct.codes[symbol].Size
	}
	return out
}

// BitLength returns the number of bits needed to encode an input with the
// given symbol frequencies, before padding.
func (ct *CodeTable) BitLength(table FrequencyTable) uint64 {
	var sum uint64
	for symbol, freq := range table {
		sum = saturatingAdd(sum, freq*uint64(ct.codes[symbol].Size))
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := range ct.codes {
		hc := ct.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (ct *CodeTable) DebugString() string {
	var buf bytes.Buffer
	_, _ = ct.Dump(&buf)
	return buf.String()
}

// String returns a brief description of the CodeTable.
func (ct *CodeTable) String() string {
	return fmt.Sprintf("(Huffman code with %d symbols, with coded lengths of %d .. %d bits)", ct.count, ct.minSize, ct.maxSize)
}

var _ fmt.Stringer = (*CodeTable)(nil)
