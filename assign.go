package huffman

import (
	"fmt"
)

// AssignCodes walks the tree and returns the code for every leaf: each step
// to a left child appends a 0 bit, and each step to a right child appends a
// 1 bit.
//
// A tree that consists of a single leaf has no edges to walk, so its sole
// symbol is assigned the 1-bit code "0".
//
// AssignCodes fails with ErrDegenerateTree if the tree is empty or if some
// leaf is deeper than MaxCodeSize.
//
func AssignCodes(t *Tree) (CodeTable, error) {
	var ct CodeTable
	if t == nil || len(t.nodes) == 0 {
		return ct, fmt.Errorf("%w: tree has no nodes", ErrDegenerateTree)
	}

	rootNode := t.nodes[t.root]
	if rootNode.IsLeaf() {
		ct.set(rootNode.Symbol, MakeCode(1, 0))
		return ct, nil
	}

	// Use a stack to walk the tree.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed; leaves are recorded as soon as they
	// are seen.  The code of the top item is the path from the root.

	type stackItem struct {
		id   NodeID
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.leaves))+1)
	stack = append(stack, stackItem{id: t.root})

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		if x == 2 {
			stack = stack[:len(stack)-1]
			continue
		}

		bit := uint(x)
		child := t.nodes[top.id].Child(bit)
		if child == NoNode {
			continue
		}
		if top.code.Size >= MaxCodeSize {
			return CodeTable{}, fmt.Errorf("%w: codes are longer than %d bits", ErrDegenerateTree, MaxCodeSize)
		}
		code := top.code.Append(bit)

		n := t.nodes[child]
		if n.IsLeaf() {
			ct.set(n.Symbol, code)
			continue
		}
		stack = append(stack, stackItem{id: child, code: code})
	}

	return ct, nil
}
