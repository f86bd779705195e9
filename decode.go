package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// Decode reverses Pack.  The last padding bits of packed are discarded, and
// the remaining bits are used to walk the tree from the root: a 0 bit moves
// to the left child and a 1 bit to the right child.  Each leaf reached emits
// its symbol and returns the walk to the root.
//
// If the root of the tree is itself a leaf, every code is the single bit 0.
//
// Decode fails with *InvalidPaddingError if padding is outside 0 .. 7 or
// longer than packed, and with *MalformedDataError if a bit selects a child
// that does not exist or if the bits end in the middle of a code.  The tree
// is never modified, so a single tree may be shared by concurrent callers.
//
func Decode(packed []byte, padding int, t *Tree) ([]byte, error) {
	if padding < 0 || padding > 7 || (padding != 0 && len(packed) == 0) {
		return nil, &InvalidPaddingError{Padding: padding, Length: len(packed)}
	}

	numBits := len(packed)*8 - padding
	if numBits == 0 {
		return []byte{}, nil
	}
	if t == nil || len(t.nodes) == 0 {
		return nil, &MalformedDataError{BitOffset: 0, Reason: "no tree to decode with"}
	}

	r := bitio.NewReader(bytes.NewReader(packed))
	rootNode := t.nodes[t.root]

	if rootNode.IsLeaf() {
		out := make([]byte, 0, numBits)
		for i := 0; i < numBits; i++ {
			if r.TryReadBool() {
				return nil, &MalformedDataError{BitOffset: i, Reason: "1 bit in single-symbol code"}
			}
			out = append(out, byte(rootNode.Symbol))
		}
		return out, r.TryError
	}

	out := make([]byte, 0, numBits/int(minDepthHint(t)))
	current := t.root
	for i := 0; i < numBits; i++ {
		var bit uint
		if r.TryReadBool() {
			bit = 1
		}

		next := t.nodes[current].Child(bit)
		if next == NoNode {
			return nil, &MalformedDataError{BitOffset: i, Reason: "no child for bit in tree"}
		}

		n := t.nodes[next]
		if n.IsLeaf() {
			out = append(out, byte(n.Symbol))
			current = t.root
		} else {
			current = next
		}
	}
	if r.TryError != nil {
		return nil, r.TryError
	}
	if current != t.root {
		return nil, &MalformedDataError{BitOffset: numBits, Reason: "data ends in the middle of a code"}
	}
	return out, nil
}

// minDepthHint returns the depth of the shallowest leaf, which bounds the
// number of symbols that can be decoded from a given number of bits.
func minDepthHint(t *Tree) uint {
	depth := uint(1)
	level := []NodeID{t.root}
	for len(level) != 0 {
		var next []NodeID
		for _, id := range level {
			n := t.nodes[id]
			for _, child := range [2]NodeID{n.Left, n.Right} {
				if child == NoNode {
					continue
				}
				if t.nodes[child].IsLeaf() {
					return depth
				}
				next = append(next, child)
			}
		}
		level = next
		depth++
	}
	return depth
}
