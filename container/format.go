package container

import (
	"fmt"
	"sort"
	"strings"

	huffman "github.com/chronos-tachyon/bytehuff"
)

// TableFormat is the contract for shipping a Huffman tree alongside the
// packed data.  A TableFormat chooses the tree used for encoding, so that it
// can guarantee UnmarshalTable rebuilds exactly that tree.
type TableFormat interface {
	// ID is the byte that identifies this format in a frame header.
	ID() byte

	// Name is the human-readable name of this format.
	Name() string

	// Prepare builds the encoding tree for data with the given
	// frequencies.
	Prepare(freqs huffman.FrequencyTable) (*huffman.Tree, error)

	// MarshalTable serializes the tree returned by Prepare.  The codes are
	// those assigned to that tree.
	MarshalTable(freqs huffman.FrequencyTable, codes *huffman.CodeTable) ([]byte, error)

	// UnmarshalTable rebuilds the tree from the output of MarshalTable.
	UnmarshalTable(data []byte) (*huffman.Tree, error)
}

var formatsByID = map[byte]TableFormat{}
var formatsByName = map[string]TableFormat{}

func register(format TableFormat) {
	formatsByID[format.ID()] = format
	formatsByName[format.Name()] = format
}

func init() {
	register(Frequencies)
	register(Lengths)
}

// FormatByID returns the TableFormat with the given ID.
func FormatByID(id byte) (TableFormat, error) {
	if format, found := formatsByID[id]; found {
		return format, nil
	}
	return nil, fmt.Errorf("%w: id %d", ErrUnknownFormat, id)
}

// FormatByName returns the TableFormat with the given name.
func FormatByName(name string) (TableFormat, error) {
	if format, found := formatsByName[strings.ToLower(name)]; found {
		return format, nil
	}
	return nil, fmt.Errorf("%w: %q, expected one of %s", ErrUnknownFormat, name, strings.Join(FormatNames(), ", "))
}

// FormatNames returns the names of all known formats, sorted.
func FormatNames() []string {
	out := make([]string, 0, len(formatsByName))
	for name := range formatsByName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
