package tst

import (
	"cmp"

	"go.uber.org/zap"
)

type Option[S cmp.Ordered, V any] func(*Tree[S, V]) *Tree[S, V]

func DefaultOptions[S cmp.Ordered, V any]() *Tree[S, V] {
	return &Tree[S, V]{
		ops: ops[S, V]{
			alloc: HeapAllocator[S, V]{},
			log:   zap.NewNop(),
		},
	}
}

// WithAllocator makes the tree take all node and payload storage from alloc.
func WithAllocator[S cmp.Ordered, V any](alloc Allocator[S, V]) Option[S, V] {
	return func(t *Tree[S, V]) *Tree[S, V] {
		t.alloc = alloc
		return t
	}
}

// WithLogger sets the logger used for debug events; the default discards them.
func WithLogger[S cmp.Ordered, V any](log *zap.Logger) Option[S, V] {
	return func(t *Tree[S, V]) *Tree[S, V] {
		t.log = log
		return t
	}
}
