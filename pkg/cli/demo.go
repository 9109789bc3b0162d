package cli

import (
	"fmt"
	"io"

	"github.com/khalid-nowaf/ternary/pkg/trifurcate"
	"github.com/khalid-nowaf/ternary/pkg/tst"
	"go.uber.org/zap"
)

type DemoCmd struct {
	Pool bool `help:"Take nodes from a pool allocator and report its counters"`
}

type demoNode = *tst.Node[rune, uint64]

var demoEntries = []struct {
	key   string
	value uint64
}{
	{"abc", 17},
	{"def", 42},
	{"abcdef", 9},
}

// Run builds the three key tree, checks the lookups and prints its weight,
// height, traversal and successor roles.
func (cmd *DemoCmd) Run(ctx *Context) error {
	opts := []tst.Option[rune, uint64]{tst.WithLogger[rune, uint64](ctx.Log.Named("tst"))}
	var pool *tst.PoolAllocator[rune, uint64]
	if cmd.Pool {
		pool = tst.NewPoolAllocator[rune, uint64](0, 0)
		opts = append(opts, tst.WithAllocator[rune, uint64](pool))
	}
	tree := tst.New(opts...)
	defer tree.Destroy()

	for _, e := range demoEntries {
		if _, err := tree.Insert([]rune(e.key), e.value); err != nil {
			return err
		}
	}
	for _, e := range demoEntries {
		v, n := tree.Find([]rune(e.key))
		if v == nil || *v != e.value || n != len(e.key) {
			return fmt.Errorf("lookup of %q did not return %d", e.key, e.value)
		}
		ctx.Log.Debug("lookup", zap.String("key", e.key), zap.Uint64("value", *v), zap.Int("consumed", n))
	}

	root := tree.Root()
	set := `{"abc":17, "def":42, "abcdef":9}`
	fmt.Fprintf(ctx.Out, "Weight of %s == %d\n", set, trifurcate.Weight(root))
	fmt.Fprintf(ctx.Out, "Height of %s == %d\n", set, trifurcate.Height(root))

	fmt.Fprintf(ctx.Out, "\nTraversal\n")
	trifurcate.Traverse(root, ctx.Out, printVisit)

	fmt.Fprintf(ctx.Out, "\nIs the node a left (l), middle (m) or right (r) successor\n")
	fmt.Fprintf(ctx.Out, "    | l | m | r |\n")
	trifurcate.Traverse(root, ctx.Out, printRoles)

	if pool != nil {
		stats := pool.Stats()
		fmt.Fprintf(ctx.Out, "\nPool: %d live nodes, %d live payloads\n", stats.LiveNodes, stats.LivePayloads)
	}
	return nil
}

func printVisit(phase trifurcate.Phase, n demoNode, out io.Writer) io.Writer {
	fmt.Fprintf(out, "'%c' %s\n", n.Symbol(), phase)
	return out
}

func printRoles(phase trifurcate.Phase, n demoNode, out io.Writer) io.Writer {
	if phase != trifurcate.Pre {
		return out
	}
	if !n.HasPredecessor() {
		fmt.Fprintf(out, "'%c' |   |   |   |\n", n.Symbol())
		return out
	}
	fmt.Fprintf(out, "'%c' | %d | %d | %d |\n", n.Symbol(),
		bit(trifurcate.IsLeftSuccessor(n)), bit(trifurcate.IsMiddleSuccessor(n)), bit(trifurcate.IsRightSuccessor(n)))
	return out
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
