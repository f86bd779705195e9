package huffman

import (
	"bytes"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Pack encodes data with the given codes.  The codes are concatenated
// first-bit-first, starting at the most significant bit of each byte, and the
// final byte is filled out with zero bits.  The number of zero bits added,
// 0 through 7, is returned alongside the packed bytes; it is not stored in
// the packed bytes themselves.
//
// Pack fails with *UnknownSymbolError if data contains a byte that has no
// code.
//
func Pack(data []byte, codes *CodeTable) (packed []byte, padding int, err error) {
	var buf bytes.Buffer
	buf.Grow(packedSizeHint(data, codes))

	w := bitio.NewWriter(&buf)
	for offset, b := range data {
		hc, found := codes.Lookup(Symbol(b))
		if !found {
			return nil, 0, &UnknownSymbolError{Symbol: Symbol(b), Offset: offset}
		}
		w.TryWriteBits(hc.Bits, hc.Size)
	}

	skipped, alignErr := w.Align()
	if w.TryError == nil {
		w.TryError = alignErr
	}
	assert.Assertf(w.TryError == nil, "writing to bytes.Buffer failed: %v", w.TryError)
	assert.Assertf(skipped < 8, "padding %d out of range", skipped)

	return buf.Bytes(), int(skipped), nil
}

func packedSizeHint(data []byte, codes *CodeTable) int {
	return (len(data)*int(codes.MinSize()) + 7) / 8
}
