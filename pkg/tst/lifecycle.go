package tst

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// ops bundles the allocator and logger every structural operation needs.
type ops[S cmp.Ordered, V any] struct {
	alloc Allocator[S, V]
	log   *zap.Logger
}

// construct allocates a detached node for symbol.
func (o ops[S, V]) construct(symbol S) (*Node[S, V], error) {
	n, err := o.alloc.NewNode(symbol)
	if err != nil {
		return nil, err
	}
	*n = Node[S, V]{symbol: symbol}
	return n, nil
}

// clone copies the subtree rooted at src, attaching the copy to parent.
// Payloads are copied by value. On failure everything cloned so far is
// released again.
func (o ops[S, V]) clone(src, parent *Node[S, V]) (*Node[S, V], error) {
	if src == nil {
		return nil, nil
	}
	n, err := o.construct(src.symbol)
	if err != nil {
		return nil, fmt.Errorf("clone node %v: %w", src.symbol, err)
	}
	n.parent = parent

	if src.payload != nil {
		if n.payload, err = o.alloc.NewPayload(*src.payload); err != nil {
			o.destruct(n)
			return nil, fmt.Errorf("clone payload at %v: %w", src.symbol, err)
		}
	}

	children := [3]struct {
		from *Node[S, V]
		to   **Node[S, V]
	}{
		{src.less, &n.less},
		{src.equal, &n.equal},
		{src.greater, &n.greater},
	}
	for _, child := range children {
		if *child.to, err = o.clone(child.from, n); err != nil {
			o.destruct(n)
			return nil, err
		}
	}
	return n, nil
}

// destruct releases n and everything below it, payloads first.
// A nil node is a no-op.
func (o ops[S, V]) destruct(n *Node[S, V]) {
	if n == nil {
		return
	}
	n.parent = nil
	if n.payload != nil {
		o.alloc.DeletePayload(n.payload)
		n.payload = nil
	}
	o.destruct(n.less)
	o.destruct(n.equal)
	o.destruct(n.greater)
	n.less, n.equal, n.greater = nil, nil, nil
	o.alloc.DeleteNode(n)
}
