// ## Overview
// Package trifurcate implements generic algorithms over trees whose nodes
// have up to three successors (left, middle, right) and, optionally, a
// predecessor.
//
// The algorithms never see a concrete node type. Anything that implements
// [Coordinate] can be measured with [Weight] and [Height] and visited with
// [Traverse] or [Walk]; anything that implements [Tridirectional] can also be
// asked which successor slot of its predecessor it occupies.
//
// ## Example usage:
//
//	// count the nodes of a ternary search tree
//	n := trifurcate.Weight(tree.Root())
//
//	// print every node before its successors are visited
//	trifurcate.Traverse(tree.Root(), 0, func(p trifurcate.Phase, c *tst.Node[rune, int], depth int) int {
//	    switch p {
//	    case trifurcate.Pre:
//	        fmt.Printf("%*s%c\n", depth*2, "", c.Symbol())
//	        return depth + 1
//	    case trifurcate.Post:
//	        return depth - 1
//	    }
//	    return depth
//	})
//
// None of the algorithms mutate the structure they walk.
package trifurcate
