package container

import (
	"encoding/binary"
	"fmt"

	huffman "github.com/chronos-tachyon/bytehuff"
)

// Frequencies is a TableFormat that stores the symbol frequencies.  The
// receiver rebuilds the tree with huffman.BuildTree, which always produces
// the same tree for the same frequencies.
//
// Table layout: a uvarint count, then count pairs of (symbol byte, uvarint
// frequency) in strictly ascending symbol order.
var Frequencies TableFormat = frequencyFormat{}

type frequencyFormat struct{}

func (frequencyFormat) ID() byte     { return 1 }
func (frequencyFormat) Name() string { return "frequencies" }

func (frequencyFormat) Prepare(freqs huffman.FrequencyTable) (*huffman.Tree, error) {
	return huffman.BuildTree(freqs)
}

func (frequencyFormat) MarshalTable(freqs huffman.FrequencyTable, _ *huffman.CodeTable) ([]byte, error) {
	symbols := freqs.Symbols()
	out := make([]byte, 0, binary.MaxVarintLen16+len(symbols)*(1+binary.MaxVarintLen64))
	out = binary.AppendUvarint(out, uint64(len(symbols)))
	for _, symbol := range symbols {
		out = append(out, byte(symbol))
		out = binary.AppendUvarint(out, freqs.Freq(symbol))
	}
	return out, nil
}

func (frequencyFormat) UnmarshalTable(data []byte) (*huffman.Tree, error) {
	p := tableParser{data: data}
	count := p.count()

	var freqs huffman.FrequencyTable
	for i := uint64(0); i < count && p.err == nil; i++ {
		symbol := p.symbol(i)
		freq := p.uvarint()
		if p.err == nil && freq == 0 {
			p.fail("zero frequency for symbol %d", symbol)
		}
		freqs[symbol] = freq
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return huffman.BuildTree(freqs)
}

// tableParser holds the parsing state shared by the table formats.  Once
// err is set, every method is a no-op.
type tableParser struct {
	data []byte
	err  error
	last int
}

func (p *tableParser) fail(format string, args ...interface{}) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: "+format, append([]interface{}{ErrBadTable}, args...)...)
	}
}

func (p *tableParser) uvarint() uint64 {
	if p.err != nil {
		return 0
	}
	v, n := binary.Uvarint(p.data)
	if n <= 0 {
		p.fail("bad uvarint")
		return 0
	}
	p.data = p.data[n:]
	return v
}

func (p *tableParser) readByte() byte {
	if p.err != nil {
		return 0
	}
	if len(p.data) == 0 {
		p.fail("truncated")
		return 0
	}
	b := p.data[0]
	p.data = p.data[1:]
	return b
}

func (p *tableParser) count() uint64 {
	count := p.uvarint()
	if p.err == nil && (count == 0 || count > huffman.NumSymbols) {
		p.fail("symbol count %d out of range", count)
	}
	p.last = -1
	return count
}

// symbol reads the i'th symbol and checks that symbols are ascending.
func (p *tableParser) symbol(i uint64) huffman.Symbol {
	b := p.readByte()
	if p.err == nil && int(b) <= p.last {
		p.fail("symbol %d at index %d is out of order", b, i)
	}
	p.last = int(b)
	return huffman.Symbol(b)
}

func (p *tableParser) finish() error {
	if p.err == nil && len(p.data) != 0 {
		p.fail("%d trailing bytes", len(p.data))
	}
	return p.err
}
