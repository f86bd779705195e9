package container

import (
	"encoding/binary"
	"fmt"

	huffman "github.com/chronos-tachyon/bytehuff"
)

// Lengths is a TableFormat that stores only the code length of each symbol.
// The encoder uses the canonical code with the same lengths as the Huffman
// tree, and the receiver rebuilds it with huffman.CanonicalCodes.  This is
// usually smaller than Frequencies.
//
// Table layout: a uvarint count, then count pairs of (symbol byte, code
// length byte) in strictly ascending symbol order.
var Lengths TableFormat = lengthFormat{}

type lengthFormat struct{}

func (lengthFormat) ID() byte     { return 2 }
func (lengthFormat) Name() string { return "lengths" }

func (lengthFormat) Prepare(freqs huffman.FrequencyTable) (*huffman.Tree, error) {
	t, err := huffman.BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	canon, _, err := huffman.Canonicalize(t)
	return canon, err
}

func (lengthFormat) MarshalTable(_ huffman.FrequencyTable, codes *huffman.CodeTable) ([]byte, error) {
	if codes.Len() == 0 {
		return nil, fmt.Errorf("%w: no codes", ErrBadTable)
	}
	sizes := codes.SizeBySymbol()
	out := make([]byte, 0, binary.MaxVarintLen16+2*codes.Len())
	out = binary.AppendUvarint(out, uint64(codes.Len()))
	for symbol, size := range sizes {
		if size != 0 {
			out = append(out, byte(symbol), size)
		}
	}
	return out, nil
}

func (lengthFormat) UnmarshalTable(data []byte) (*huffman.Tree, error) {
	p := tableParser{data: data}
	count := p.count()

	sizes := make([]byte, huffman.NumSymbols)
	for i := uint64(0); i < count && p.err == nil; i++ {
		symbol := p.symbol(i)
		size := p.readByte()
		if p.err == nil && size == 0 {
			p.fail("zero code length for symbol %d", symbol)
		}
		sizes[symbol] = size
	}
	if err := p.finish(); err != nil {
		return nil, err
	}

	codes, err := huffman.CanonicalCodes(sizes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTable, err)
	}
	return huffman.NewTreeFromCodes(&codes)
}
