package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable maps each Symbol to the number of times it occurs in some
// input.  Symbols with a count of 0 are absent from the input.
type FrequencyTable [NumSymbols]uint64

// Count scans data and returns its FrequencyTable.  An empty input produces
// an empty table.
func Count(data []byte) FrequencyTable {
	var table FrequencyTable
	for _, b := range data {
		table[b]++
	}
	return table
}

// Freq returns the number of occurrences of symbol.
func (table *FrequencyTable) Freq(symbol Symbol) uint64 {
	return table[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (table *FrequencyTable) Len() int {
	var n int
	for _, freq := range table {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (table *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range table {
		sum = saturatingAdd(sum, freq)
	}
	return sum
}

// IsEmpty returns true iff no symbol has a non-zero count.
func (table *FrequencyTable) IsEmpty() bool {
	return table.Len() == 0
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (table *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, table.Len())
	for symbol, freq := range table {
		if freq != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\tFreq(%d) = %d\n", symbol, table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the table.
func (table FrequencyTable) String() string {
	return fmt.Sprintf("(frequency table with %d symbols, %d total)", table.Len(), table.Total())
}

var _ fmt.Stringer = FrequencyTable{}

// Counter accumulates a FrequencyTable from data written to it, for inputs
// that arrive in pieces.  The zero value is ready to use.
type Counter struct {
	table FrequencyTable
}

// Write counts every byte in p.  It never fails.
func (c *Counter) Write(p []byte) (int, error) {
	for _, b := range p {
		c.table[b]++
	}
	return len(p), nil
}

// Table returns a copy of the counts accumulated so far.
func (c *Counter) Table() FrequencyTable {
	return c.table
}

// Reset discards all accumulated counts.
func (c *Counter) Reset() {
	c.table = FrequencyTable{}
}

var _ io.Writer = (*Counter)(nil)
