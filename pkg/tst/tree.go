package tst

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// Tree is a ternary search tree mapping symbol sequences to values of type V.
// It owns every node reachable from its root.
type Tree[S cmp.Ordered, V any] struct {
	ops[S, V]
	root      *Node[S, V]
	size      int
	destroyed bool
}

// New creates an empty tree. Without options it uses the HeapAllocator and
// discards log output.
func New[S cmp.Ordered, V any](opts ...Option[S, V]) *Tree[S, V] {
	t := DefaultOptions[S, V]()
	for _, opt := range opts {
		t = opt(t)
	}
	return t
}

func (t *Tree[S, V]) mustBeAlive(caller string) {
	if t.destroyed {
		panic("[BUG] " + caller + ": tree was destroyed")
	}
}

// Insert stores value under key and returns a pointer to the stored payload.
// If key is already present the existing payload is kept and returned.
// An empty key stores nothing and returns nil.
func (t *Tree[S, V]) Insert(key []S, value V) (*V, error) {
	t.mustBeAlive("Insert")
	p, added, err := t.insert(&t.root, key, value)
	if err != nil {
		t.log.Debug("insert failed", zap.Int("key_len", len(key)), zap.Error(err))
		return nil, err
	}
	if added {
		t.size++
	}
	return p, nil
}

// Find returns the payload of the longest stored key that is a prefix of
// key, and the length of that stored key. It returns nil, 0 if no stored key
// is a prefix of key.
func (t *Tree[S, V]) Find(key []S) (*V, int) {
	t.mustBeAlive("Find")
	return find(t.root, key)
}

// Get returns the payload stored under exactly key.
func (t *Tree[S, V]) Get(key []S) (*V, bool) {
	v, n := t.Find(key)
	if v == nil || n != len(key) {
		return nil, false
	}
	return v, true
}

// Contains checks if key itself is stored.
func (t *Tree[S, V]) Contains(key []S) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove deletes key and prunes the nodes that only existed for it.
// It reports whether key was present.
func (t *Tree[S, V]) Remove(key []S) bool {
	t.mustBeAlive("Remove")
	if !t.remove(&t.root, key) {
		return false
	}
	t.size--
	return true
}

// ForEach calls f for every stored key in ascending order until f returns
// false. The key slice is owned by f.
func (t *Tree[S, V]) ForEach(f func(key []S, value V) bool) {
	t.mustBeAlive("ForEach")
	forEach(t.root, nil, f)
}

// Len returns the number of stored keys.
func (t *Tree[S, V]) Len() int {
	return t.size
}

func (t *Tree[S, V]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node, nil for an empty tree. The node can be used as
// a trifurcate coordinate; it must not be modified.
func (t *Tree[S, V]) Root() *Node[S, V] {
	return t.root
}

// Clone returns an independent deep copy sharing the allocator and logger.
func (t *Tree[S, V]) Clone() (*Tree[S, V], error) {
	t.mustBeAlive("Clone")
	root, err := t.clone(t.root, nil)
	if err != nil {
		return nil, fmt.Errorf("clone tree: %w", err)
	}
	t.log.Debug("cloned tree", zap.Int("keys", t.size))
	return &Tree[S, V]{ops: t.ops, root: root, size: t.size}, nil
}

// Clear releases every node and payload, leaving an empty usable tree.
func (t *Tree[S, V]) Clear() {
	t.mustBeAlive("Clear")
	t.destruct(t.root)
	t.root = nil
	t.size = 0
}

// Destroy releases every node and payload. A destroyed tree is single use:
// calling any method that reads or writes keys, or Destroy again, panics.
func (t *Tree[S, V]) Destroy() {
	t.mustBeAlive("Destroy")
	t.log.Debug("destroying tree", zap.Int("keys", t.size))
	t.destruct(t.root)
	t.root = nil
	t.size = 0
	t.destroyed = true
}
