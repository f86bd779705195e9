package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeKind distinguishes leaves from internal nodes.
type NodeKind byte

const (
	// KindInternal marks a node with two children and no symbol.
	KindInternal NodeKind = iota

	// KindLeaf marks a node that carries a Symbol and has no children.
	KindLeaf
)

// String returns "leaf" or "internal".
func (kind NodeKind) String() string {
	if kind == KindLeaf {
		return "leaf"
	}
	return "internal"
}

// NodeID is the index of a Node within its Tree.
type NodeID int32

// NoNode is the NodeID of a missing child.
const NoNode = NodeID(-1)

// Node is a single node of a Tree.
type Node struct {
	// Weight is the aggregate frequency of the leaves below this node.  It
	// is only meaningful for trees produced by BuildTree.
	Weight uint64

	// Left and Right are the children of an internal node.  Leaves have
	// NoNode for both.  A child may also be NoNode in a tree built from an
	// incomplete set of codes.
	Left  NodeID
	Right NodeID

	// Symbol is the symbol carried by a leaf.
	Symbol Symbol

	// Kind tells whether this node is a leaf or an internal node.
	Kind NodeKind
}

// IsLeaf returns true iff this node is a leaf.
func (n Node) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// Child returns the child selected by bit: Left for 0, Right for 1.
func (n Node) Child(bit uint) NodeID {
	if bit == 0 {
		return n.Left
	}
	return n.Right
}

// Tree is a binary prefix-code tree stored as an arena of nodes.  Internal
// nodes own their children exclusively; there is no sharing and there are no
// cycles.  A Tree is immutable once constructed and is safe for concurrent
// readers.
type Tree struct {
	nodes  []Node
	root   NodeID
	leaves int
}

// Root returns the NodeID of the root node, or NoNode if the tree is empty.
// Only BuildTree and NewTreeFromCodes produce non-empty trees.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return t.root
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) Node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of distinct
// symbols the tree can decode.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// Weight returns the weight of the root node, or 0 if the tree is empty.
func (t *Tree) Weight() uint64 {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.nodes[t.root].Weight
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, listing the nodes in arena order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.leaves)
	for id, n := range t.nodes {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\t%d: leaf{symbol: %d, weight: %d}\n", id, n.Symbol, n.Weight)
		} else {
			fmt.Fprintf(&buf, "\t%d: internal{left: %d, right: %d, weight: %d}\n", id, n.Left, n.Right, n.Weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (t *Tree) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

// String returns a brief description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d leaves, %d nodes)", t.leaves, len(t.nodes))
}

var _ fmt.Stringer = (*Tree)(nil)

func (t *Tree) addLeaf(symbol Symbol, weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Weight: weight, Left: NoNode, Right: NoNode, Symbol: symbol, Kind: KindLeaf})
	t.leaves++
	return id
}

func (t *Tree) addInternal(left NodeID, right NodeID, weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Weight: weight, Left: left, Right: right, Kind: KindInternal})
	return id
}
