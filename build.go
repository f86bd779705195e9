package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs a Huffman tree from a frequency table by repeatedly
// merging the two lowest-weight nodes.
//
// The first node popped from the minheap becomes the left child, and the
// second becomes the right child.  Ties between equal weights are broken by
// arena position: leaves are added in ascending Symbol order, and each merged
// node is added after every node that already exists.  The tree shape is
// therefore a pure function of the table.
//
// A table with exactly one symbol produces a tree consisting of a single
// leaf.  An empty table produces ErrEmptyInput.
//
func BuildTree(table FrequencyTable) (*Tree, error) {
	numLeaves := table.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{nodes: make([]Node, 0, 2*numLeaves-1)}

	// Step 1: one leaf per symbol present in the input, plus a minheap
	// that refers to them.

	h := freqHeap{list: make([]idAndFreq, 0, numLeaves)}
	for symbol, freq := range table {
		if freq == 0 {
			continue
		}
		id := t.addLeaf(Symbol(symbol), freq)
		h.list = append(h.list, idAndFreq{id, freq})
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.

	for h.Len() > 1 {
		a := heap.Pop(&h).(idAndFreq)
		b := heap.Pop(&h).(idAndFreq)
		freqSum := saturatingAdd(a.freq, b.freq)
		id := t.addInternal(a.id, b.id, freqSum)
		heap.Push(&h, idAndFreq{id, freqSum})
	}

	root := heap.Pop(&h).(idAndFreq)
	t.root = root.id

	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree has %d nodes, expected %d", len(t.nodes), 2*numLeaves-1)
	assert.Assertf(int(t.root) == len(t.nodes)-1, "root %d is not the last node", t.root)
	return t, nil
}

// type idAndFreq + type freqHeap {{{

type idAndFreq struct {
	id   NodeID
	freq uint64
}

type freqHeap struct {
	list []idAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.id < b.id
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(idAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
