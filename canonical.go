package huffman

import (
	"fmt"
	"sort"
)

// CanonicalCodes constructs the canonical Huffman code for the given bit
// lengths, one per Symbol, per the algorithm in RFC 1951 Section 3.2.2.
// Symbols with an assigned bit length of 0 are omitted from the code
// entirely.
//
// Not all inputs are valid for constructing a canonical Huffman code.  In
// particular, this function will reject lengths that would leave some bit
// sequences undecodable or that would assign more codes than a given length
// allows.  Degenerate codes consisting of 0 valid symbols or 1 valid symbol
// (of length 1) are permitted, however, as there is no way to construct a
// non-degenerate Huffman code for such cases.
//
func CanonicalCodes(sizes []byte) (CodeTable, error) {
	var ct CodeTable
	if len(sizes) > NumSymbols {
		return ct, fmt.Errorf("%w: got %d bit lengths, max %d", ErrDegenerateTree, len(sizes), NumSymbols)
	}

	// Step 1: validate the bit lengths.

	var countArray [MaxCodeSize + 1]uint64
	var numSymbolsWithNonZeroSizes uint32
	var maxSize byte
	for _, size := range sizes {
		if size == 0 {
			continue
		}

		// forbid codes with sizes greater than MaxCodeSize
		if size > MaxCodeSize {
			return ct, fmt.Errorf("%w: invalid bit length: got %d, max %d", ErrDegenerateTree, size, MaxCodeSize)
		}
		if maxSize < size {
			maxSize = size
		}
		countArray[size]++
		numSymbolsWithNonZeroSizes++
	}

	// permit degenerate code with 0 symbols
	if numSymbolsWithNonZeroSizes == 0 {
		return ct, nil
	}

	// Walk down the levels of the tree, counting the codes still unused at
	// each level.  A complete code has used all of them by the last level.
	avail := uint64(1)
	for size := byte(1); size <= maxSize; size++ {
		avail <<= 1
		if countArray[size] > avail {
			return ct, fmt.Errorf("%w: oversubscribed at bit length %d", ErrDegenerateTree, size)
		}
		avail -= countArray[size]
	}

	// permit degenerate code with 1 symbol
	// forbid all other degenerate codes
	if numSymbolsWithNonZeroSizes == 1 && maxSize == 1 {
		// pass
	} else if avail != 0 {
		return ct, fmt.Errorf("%w: incomplete code, %d of %d codes of length %d unused", ErrDegenerateTree, avail, uint64(1)<<maxSize, maxSize)
	}

	// Step 2: sort the symbols by (size, Symbol) ascending.

	sorted := make(bySize, 0, numSymbolsWithNonZeroSizes)
	for symbol, size := range sizes {
		if size != 0 {
			sorted = append(sorted, symbolAndSize{Symbol(symbol), size})
		}
	}
	sorted.Sort()

	// Step 3: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		ct.set(item.symbol, MakeCode(item.size, nextCode))
		nextCode++
	}

	return ct, nil
}

// NewTreeFromCodes builds the decoding tree for a prefix-free set of codes.
// The result has one leaf per coded symbol; every node has zero weight.  An
// incomplete set of codes yields internal nodes with a NoNode child.
//
// As a special case, a table whose only code is "0" produces a tree that
// consists of a single leaf, mirroring BuildTree and AssignCodes.
//
// NewTreeFromCodes fails with ErrEmptyInput if the table is empty, and with
// ErrDegenerateTree if one code is a prefix of another.
//
func NewTreeFromCodes(codes *CodeTable) (*Tree, error) {
	if codes.Len() == 0 {
		return nil, ErrEmptyInput
	}

	if codes.Len() == 1 {
		for symbol := range codes.codes {
			if hc := codes.codes[symbol]; hc.Size != 0 && hc == MakeCode(1, 0) {
				t := &Tree{nodes: make([]Node, 0, 1)}
				t.root = t.addLeaf(Symbol(symbol), 0)
				return t, nil
			}
		}
	}

	t := &Tree{nodes: make([]Node, 0, 2*codes.Len()-1)}
	t.root = t.addInternal(NoNode, NoNode, 0)

	for symbol := range codes.codes {
		hc := codes.codes[symbol]
		if hc.Size == 0 {
			continue
		}

		current := t.root
		for i := byte(0); i < hc.Size; i++ {
			if t.nodes[current].IsLeaf() {
				return nil, fmt.Errorf("%w: code %s for symbol %d extends the code of symbol %d", ErrDegenerateTree, hc, symbol, t.nodes[current].Symbol)
			}

			bit := hc.Bit(i)
			next := t.nodes[current].Child(bit)
			last := (i+1 == hc.Size)
			switch {
			case next == NoNode && last:
				next = t.addLeaf(Symbol(symbol), 0)
				t.setChild(current, bit, next)
			case next == NoNode:
				next = t.addInternal(NoNode, NoNode, 0)
				t.setChild(current, bit, next)
			case last:
				return nil, fmt.Errorf("%w: code %s for symbol %d collides with another code", ErrDegenerateTree, hc, symbol)
			}
			current = next
		}
	}

	return t, nil
}

// Canonicalize returns a tree with the same leaf depths as t whose codes are
// canonical, along with those codes.  The canonical codes can be rebuilt by a
// receiver from CodeTable.SizeBySymbol alone.
func Canonicalize(t *Tree) (*Tree, CodeTable, error) {
	codes, err := AssignCodes(t)
	if err != nil {
		return nil, CodeTable{}, err
	}
	canon, err := CanonicalCodes(codes.SizeBySymbol())
	if err != nil {
		return nil, CodeTable{}, err
	}
	out, err := NewTreeFromCodes(&canon)
	if err != nil {
		return nil, CodeTable{}, err
	}
	return out, canon, nil
}

func (t *Tree) setChild(parent NodeID, bit uint, child NodeID) {
	if bit == 0 {
		t.nodes[parent].Left = child
	} else {
		t.nodes[parent].Right = child
	}
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
