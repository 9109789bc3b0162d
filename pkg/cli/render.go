package cli

import (
	"fmt"

	"github.com/khalid-nowaf/ternary/pkg/tst"
	"github.com/xlab/treeprint"
)

func nodeLabel[V any](n *tst.Node[rune, V], ctx *Context) string {
	label := ctx.label.Sprintf("'%c'", n.Symbol())
	if n.HasPayload() {
		label += fmt.Sprintf(" = %v", *n.Payload())
	}
	return label
}

// renderTree draws the subtree of n, marking each successor with <, = or >.
func renderTree[V any](n *tst.Node[rune, V], ctx *Context) treeprint.Tree {
	tree := treeprint.NewWithRoot(nodeLabel(n, ctx))
	addSuccessors(tree, n, ctx)
	return tree
}

func addSuccessors[V any](tree treeprint.Tree, n *tst.Node[rune, V], ctx *Context) {
	successors := []struct {
		meta string
		node *tst.Node[rune, V]
	}{
		{"<", n.Less()},
		{"=", n.Equal()},
		{">", n.Greater()},
	}
	for _, s := range successors {
		if s.node == nil {
			continue
		}
		if s.node.IsLeaf() {
			tree.AddMetaNode(s.meta, nodeLabel(s.node, ctx))
			continue
		}
		addSuccessors(tree.AddMetaBranch(s.meta, nodeLabel(s.node, ctx)), s.node, ctx)
	}
}
