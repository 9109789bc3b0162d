// ## Overview
// Package tst implements a ternary search tree: an ordered map keyed by
// sequences of symbols. Every node holds one symbol, an optional payload and
// three owned successors: less, equal (the continuation of the key) and
// greater. Nodes also keep a reference to their parent, which is only used to
// answer questions about a node's position; it never owns anything.
//
// Storage for nodes and payloads comes from an [Allocator]. The default
// [HeapAllocator] leaves everything to the garbage collector, [PoolAllocator]
// recycles released nodes and can be capped.
//
// ## Example usage:
//
//	t := tst.New[rune, int]()
//	t.Insert([]rune("abc"), 17)
//	t.Insert([]rune("abcdef"), 9)
//
//	// longest stored prefix of the input
//	v, n := t.Find([]rune("abcdx")) // *v == 17, n == 3
//
//	t.Remove([]rune("abc"))
//
// A Tree is not safe for concurrent use. Shape is determined by insertion
// order only; the tree is never rebalanced.
//
// *Node implements the coordinate interfaces of package trifurcate, so
// Tree.Root can be handed to trifurcate.Weight, Height, Traverse and the role
// queries.
package tst
