package tst

import (
	"cmp"
	"errors"
)

// ErrExhausted is returned by allocators that ran out of capacity.
var ErrExhausted = errors.New("tst: allocator exhausted")

// Allocator provides and releases the storage of a tree.
//
// NewNode only has to return storage: the tree resets every field of the
// returned node itself. NewPayload must return a copy of value that the
// tree owns until it hands it back to DeletePayload.
type Allocator[S cmp.Ordered, V any] interface {
	NewNode(symbol S) (*Node[S, V], error)
	NewPayload(value V) (*V, error)
	DeleteNode(n *Node[S, V])
	DeletePayload(p *V)
}

// HeapAllocator allocates from the Go heap and leaves release to the GC.
type HeapAllocator[S cmp.Ordered, V any] struct{}

func (HeapAllocator[S, V]) NewNode(symbol S) (*Node[S, V], error) {
	return &Node[S, V]{symbol: symbol}, nil
}

func (HeapAllocator[S, V]) NewPayload(value V) (*V, error) {
	p := new(V)
	*p = value
	return p, nil
}

func (HeapAllocator[S, V]) DeleteNode(*Node[S, V]) {}

func (HeapAllocator[S, V]) DeletePayload(*V) {}

// PoolStats is a snapshot of a PoolAllocator's bookkeeping.
type PoolStats struct {
	LiveNodes    int // nodes handed out and not yet released
	LivePayloads int // payloads handed out and not yet released
	FreeNodes    int // released nodes waiting for reuse
	ReusedNodes  int // allocations served from the free list
}

// PoolAllocator keeps released nodes on a free list and serves new nodes from
// it first. A positive MaxNodes or MaxPayloads caps the number of live
// objects; allocations beyond the cap fail with ErrExhausted.
type PoolAllocator[S cmp.Ordered, V any] struct {
	MaxNodes    int
	MaxPayloads int

	free  []*Node[S, V]
	stats PoolStats
}

func NewPoolAllocator[S cmp.Ordered, V any](maxNodes, maxPayloads int) *PoolAllocator[S, V] {
	return &PoolAllocator[S, V]{MaxNodes: maxNodes, MaxPayloads: maxPayloads}
}

func (a *PoolAllocator[S, V]) NewNode(symbol S) (*Node[S, V], error) {
	if a.MaxNodes > 0 && a.stats.LiveNodes >= a.MaxNodes {
		return nil, ErrExhausted
	}
	a.stats.LiveNodes++
	if last := len(a.free) - 1; last >= 0 {
		n := a.free[last]
		a.free[last] = nil
		a.free = a.free[:last]
		a.stats.ReusedNodes++
		n.symbol = symbol
		return n, nil
	}
	return &Node[S, V]{symbol: symbol}, nil
}

func (a *PoolAllocator[S, V]) NewPayload(value V) (*V, error) {
	if a.MaxPayloads > 0 && a.stats.LivePayloads >= a.MaxPayloads {
		return nil, ErrExhausted
	}
	a.stats.LivePayloads++
	p := new(V)
	*p = value
	return p, nil
}

func (a *PoolAllocator[S, V]) DeleteNode(n *Node[S, V]) {
	if n == nil {
		return
	}
	*n = Node[S, V]{}
	a.free = append(a.free, n)
	a.stats.LiveNodes--
}

func (a *PoolAllocator[S, V]) DeletePayload(p *V) {
	if p == nil {
		return
	}
	var zero V
	*p = zero
	a.stats.LivePayloads--
}

// Stats returns the current counters.
func (a *PoolAllocator[S, V]) Stats() PoolStats {
	s := a.stats
	s.FreeNodes = len(a.free)
	return s
}
