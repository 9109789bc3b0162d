package tst

import (
	"cmp"

	"github.com/khalid-nowaf/ternary/pkg/trifurcate"
)

// Node is a single node of a ternary search tree.
type Node[S cmp.Ordered, V any] struct {
	symbol  S
	payload *V          // set iff a stored key ends at this node
	parent  *Node[S, V] // not owned, nil for the root
	less    *Node[S, V]
	equal   *Node[S, V]
	greater *Node[S, V]
}

// Symbol returns the symbol the node stands for.
func (n *Node[S, V]) Symbol() S {
	return n.symbol
}

// Payload returns the value stored at this node, or nil if no key ends here.
func (n *Node[S, V]) Payload() *V {
	return n.payload
}

func (n *Node[S, V]) HasPayload() bool {
	return n.payload != nil
}

// Parent returns the node holding n in one of its successor slots.
func (n *Node[S, V]) Parent() *Node[S, V] {
	return n.parent
}

func (n *Node[S, V]) Less() *Node[S, V]    { return n.less }
func (n *Node[S, V]) Equal() *Node[S, V]   { return n.equal }
func (n *Node[S, V]) Greater() *Node[S, V] { return n.greater }

// IsLeaf checks if the node has no successors.
func (n *Node[S, V]) IsLeaf() bool {
	return n.less == nil && n.equal == nil && n.greater == nil
}

// dead nodes carry nothing and must not stay in the tree
func (n *Node[S, V]) dead() bool {
	return n.payload == nil && n.IsLeaf()
}

var _ trifurcate.BidirectionalCoordinate[*Node[rune, struct{}]] = (*Node[rune, struct{}])(nil)

// The methods below implement trifurcate.Tridirectional. The left, middle
// and right successors are the less, equal and greater slots.

// IsEmpty reports whether n is nil.
func (n *Node[S, V]) IsEmpty() bool {
	return n == nil
}

func (n *Node[S, V]) HasLeftSuccessor() bool   { return n.less != nil }
func (n *Node[S, V]) HasMiddleSuccessor() bool { return n.equal != nil }
func (n *Node[S, V]) HasRightSuccessor() bool  { return n.greater != nil }

func (n *Node[S, V]) LeftSuccessor() *Node[S, V] {
	if n.less == nil {
		panic("[BUG] LeftSuccessor: node has no less successor")
	}
	return n.less
}

func (n *Node[S, V]) MiddleSuccessor() *Node[S, V] {
	if n.equal == nil {
		panic("[BUG] MiddleSuccessor: node has no equal successor")
	}
	return n.equal
}

func (n *Node[S, V]) RightSuccessor() *Node[S, V] {
	if n.greater == nil {
		panic("[BUG] RightSuccessor: node has no greater successor")
	}
	return n.greater
}

func (n *Node[S, V]) HasPredecessor() bool {
	return n.parent != nil
}

func (n *Node[S, V]) Predecessor() *Node[S, V] {
	if n.parent == nil {
		panic("[BUG] Predecessor: the root has no predecessor")
	}
	return n.parent
}
