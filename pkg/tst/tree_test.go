package tst

import (
	"errors"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/khalid-nowaf/ternary/pkg/trifurcate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type runeTree = Tree[rune, uint64]

func mustInsert(t *testing.T, tree *runeTree, key string, v uint64) *uint64 {
	t.Helper()
	p, err := tree.Insert([]rune(key), v)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

// sampleTree holds the keys used throughout: abc, def and abcdef.
func sampleTree(t *testing.T, opts ...Option[rune, uint64]) *runeTree {
	tree := New(opts...)
	mustInsert(t, tree, "abc", 17)
	mustInsert(t, tree, "def", 42)
	mustInsert(t, tree, "abcdef", 9)
	return tree
}

// nodesOf collects every node below root, in traversal order.
func nodesOf(root *Node[rune, uint64]) []*Node[rune, uint64] {
	nodes := []*Node[rune, uint64]{}
	for phase, n := range trifurcate.Walk(root) {
		if phase == trifurcate.Pre {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// requireParentLinks checks that every successor points back at the node holding it.
func requireParentLinks(t *testing.T, root *Node[rune, uint64]) {
	t.Helper()
	if root == nil {
		return
	}
	require.Nil(t, root.Parent(), "root must not have a parent")
	for _, n := range nodesOf(root) {
		for _, child := range []*Node[rune, uint64]{n.Less(), n.Equal(), n.Greater()} {
			if child != nil {
				require.Same(t, n, child.Parent(), "parent of %q", child.Symbol())
			}
		}
	}
}

func entries(tree *runeTree) map[string]uint64 {
	out := map[string]uint64{}
	tree.ForEach(func(key []rune, v uint64) bool {
		out[string(key)] = v
		return true
	})
	return out
}

// TestNewTree verifies that a new tree is empty and uses the heap allocator.
func TestNewTree(t *testing.T) {
	tree := New[rune, uint64]()
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())
	assert.IsType(t, HeapAllocator[rune, uint64]{}, tree.alloc)
}

// TestInsertFindRoundTrip inserts random keys and reads each one back.
func TestInsertFindRoundTrip(t *testing.T) {
	tree := New[rune, uint64]()
	rnd := rand.New(rand.NewSource(7))
	want := map[string]uint64{}
	for i := 0; i < 500; i++ {
		key := strconv.FormatInt(rnd.Int63n(1_000_000), 36)
		v := uint64(i)
		p := mustInsert(t, tree, key, v)
		if _, seen := want[key]; !seen {
			want[key] = v
		}
		assert.Equal(t, want[key], *p)
	}

	assert.Equal(t, len(want), tree.Len())
	for key, v := range want {
		got, n := tree.Find([]rune(key))
		require.NotNil(t, got, key)
		assert.Equal(t, v, *got, key)
		assert.Equal(t, len([]rune(key)), n, key)
	}
	requireParentLinks(t, tree.Root())
}

// TestInsertEmptyKey verifies that an empty key stores nothing.
func TestInsertEmptyKey(t *testing.T) {
	tree := New[rune, uint64]()
	p, err := tree.Insert(nil, 1)
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, tree.IsEmpty())

	v, n := tree.Find(nil)
	assert.Nil(t, v)
	assert.Zero(t, n)
	assert.False(t, tree.Remove([]rune{}))
}

// TestFirstWriterWins verifies that inserting an existing key keeps the old payload.
func TestFirstWriterWins(t *testing.T) {
	tree := New[rune, uint64]()
	first := mustInsert(t, tree, "key", 1)
	second := mustInsert(t, tree, "key", 2)

	assert.Same(t, first, second, "the same payload must be returned")
	v, ok := tree.Get([]rune("key"))
	require.True(t, ok)
	assert.Equal(t, uint64(1), *v)
	assert.Equal(t, 1, tree.Len())
}

// TestLongestPrefix runs the abc/def/abcdef lookups.
func TestLongestPrefix(t *testing.T) {
	tree := sampleTree(t)

	testCases := []struct {
		input    string
		expected uint64
		consumed int
	}{
		{"abc", 17, 3},
		{"def", 42, 3},
		{"abcdef", 9, 6},
		{"abcde", 17, 3},
		{"abcdefgh", 9, 6},
		{"defabc", 42, 3},
	}
	for _, tc := range testCases {
		v, n := tree.Find([]rune(tc.input))
		require.NotNil(t, v, tc.input)
		assert.Equal(t, tc.expected, *v, tc.input)
		assert.Equal(t, tc.consumed, n, tc.input)
	}

	for _, miss := range []string{"ab", "a", "x", "de", "bcd"} {
		v, n := tree.Find([]rune(miss))
		assert.Nil(t, v, miss)
		assert.Zero(t, n, miss)
	}

	_, ok := tree.Get([]rune("abcde"))
	assert.False(t, ok, "Get only matches whole keys")
	assert.True(t, tree.Contains([]rune("abcdef")))
}

// TestWeightAndHeightOfSample checks the measures for abc, def and abcdef.
func TestWeightAndHeightOfSample(t *testing.T) {
	tree := sampleTree(t)
	assert.Equal(t, uint64(9), trifurcate.Weight(tree.Root()))
	assert.Equal(t, uint64(6), trifurcate.Height(tree.Root()))
	assert.Equal(t, uint64(0), trifurcate.Weight(New[rune, uint64]().Root()))
}

// TestSampleShape verifies where each symbol lands and the successor roles of each node.
func TestSampleShape(t *testing.T) {
	tree := sampleTree(t)
	root := tree.Root()

	require.Equal(t, 'a', root.Symbol())
	require.Equal(t, 'd', root.Greater().Symbol())
	require.Nil(t, root.Less())

	type row struct {
		symbol              rune
		left, middle, right bool
	}
	got := []row{}
	for _, n := range nodesOf(root)[1:] {
		got = append(got, row{n.Symbol(),
			trifurcate.IsLeftSuccessor(n), trifurcate.IsMiddleSuccessor(n), trifurcate.IsRightSuccessor(n)})
	}
	assert.Equal(t, []row{
		{'b', false, true, false},
		{'c', false, true, false},
		{'d', false, true, false},
		{'e', false, true, false},
		{'f', false, true, false},
		{'d', false, false, true},
		{'e', false, true, false},
		{'f', false, true, false},
	}, got)
}

// TestRoleExclusivity verifies that every non-root node has exactly one role in a random tree.
func TestRoleExclusivity(t *testing.T) {
	tree := New[rune, uint64]()
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		mustInsert(t, tree, strconv.Itoa(rnd.Intn(100000)), uint64(i))
	}
	for _, n := range nodesOf(tree.Root()) {
		if !n.HasPredecessor() {
			assert.Same(t, tree.Root(), n)
			continue
		}
		count := 0
		for _, is := range []bool{trifurcate.IsLeftSuccessor(n), trifurcate.IsMiddleSuccessor(n), trifurcate.IsRightSuccessor(n)} {
			if is {
				count++
			}
		}
		assert.Equal(t, 1, count, "node %q", n.Symbol())
	}
}

// TestSuccessorPreconditions verifies that navigating to a missing successor panics.
func TestSuccessorPreconditions(t *testing.T) {
	tree := sampleTree(t)
	root := tree.Root()

	assert.Panics(t, func() { root.LeftSuccessor() })
	assert.Panics(t, func() { root.Predecessor() })
	assert.NotPanics(t, func() { root.MiddleSuccessor() })
	assert.NotPanics(t, func() { root.RightSuccessor() })

	var leaf *Node[rune, uint64]
	for _, n := range nodesOf(root) {
		if n.IsLeaf() {
			leaf = n
			break
		}
	}
	require.NotNil(t, leaf)
	assert.Panics(t, func() { leaf.MiddleSuccessor() })
	assert.Panics(t, func() { leaf.RightSuccessor() })
}

// TestRemovePrunesToEmpty verifies that removing the only key empties the tree.
func TestRemovePrunesToEmpty(t *testing.T) {
	tree := New[rune, uint64]()
	mustInsert(t, tree, "abcdef", 1)

	assert.True(t, tree.Remove([]rune("abcdef")))
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
}

// TestRemoveKeepsSharedPath verifies pruning stops at nodes still in use.
func TestRemoveKeepsSharedPath(t *testing.T) {
	tree := sampleTree(t)

	assert.True(t, tree.Remove([]rune("abcdef")))
	assert.Equal(t, uint64(6), trifurcate.Weight(tree.Root()))
	assert.Equal(t, map[string]uint64{"abc": 17, "def": 42}, entries(tree))
	requireParentLinks(t, tree.Root())

	assert.True(t, tree.Remove([]rune("abc")))
	assert.Equal(t, uint64(4), trifurcate.Weight(tree.Root()), "a stays as the holder of d")
	assert.Equal(t, 'a', tree.Root().Symbol())
	assert.False(t, tree.Root().HasPayload())
	assert.True(t, tree.Remove([]rune("def")))
	assert.True(t, tree.IsEmpty())
}

// TestRemoveInnerKey verifies that removing a prefix key keeps the longer key reachable.
func TestRemoveInnerKey(t *testing.T) {
	tree := sampleTree(t)

	assert.True(t, tree.Remove([]rune("abc")))
	assert.Equal(t, uint64(9), trifurcate.Weight(tree.Root()), "abc nodes still carry abcdef")

	v, n := tree.Find([]rune("abcde"))
	assert.Nil(t, v)
	assert.Zero(t, n)

	v, n = tree.Find([]rune("abcdef"))
	require.NotNil(t, v)
	assert.Equal(t, uint64(9), *v)
	assert.Equal(t, 6, n)
}

// TestRemoveAbsent verifies that removing keys that are not stored changes nothing.
func TestRemoveAbsent(t *testing.T) {
	tree := sampleTree(t)
	before := entries(tree)

	for _, key := range []string{"ab", "abcd", "xyz", "abcdefg", "d"} {
		assert.False(t, tree.Remove([]rune(key)), key)
	}
	assert.Equal(t, before, entries(tree))
	assert.Equal(t, uint64(9), trifurcate.Weight(tree.Root()))
	assert.Equal(t, 3, tree.Len())

	empty := New[rune, uint64]()
	assert.False(t, empty.Remove([]rune("abc")))
}

// TestRemoveEverythingRandom inserts and removes random keys and checks the tree ends empty.
func TestRemoveEverythingRandom(t *testing.T) {
	pool := NewPoolAllocator[rune, uint64](0, 0)
	tree := New(WithAllocator[rune, uint64](pool))
	rnd := rand.New(rand.NewSource(3))

	keys := []string{}
	for i := 0; i < 300; i++ {
		key := strconv.FormatInt(rnd.Int63n(50_000), 16)
		mustInsert(t, tree, key, uint64(i))
		keys = append(keys, key)
	}
	rnd.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	for i, key := range keys {
		tree.Remove([]rune(key))
		assert.False(t, tree.Contains([]rune(key)), key)
		if i%50 == 0 {
			requireParentLinks(t, tree.Root())
			for _, n := range nodesOf(tree.Root()) {
				assert.False(t, n.dead(), "dead node %q kept", n.Symbol())
			}
		}
	}
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, pool.Stats().LiveNodes)
	assert.Equal(t, 0, pool.Stats().LivePayloads)
}

// TestForEachAscending verifies that entries come out sorted with their full keys.
func TestForEachAscending(t *testing.T) {
	tree := New[rune, uint64]()
	words := []string{"she", "sells", "sea", "shells", "by", "the", "shore", "s", "sh"}
	for i, w := range words {
		mustInsert(t, tree, w, uint64(i))
	}

	keys := []string{}
	tree.ForEach(func(key []rune, v uint64) bool {
		keys = append(keys, string(key))
		assert.Equal(t, words[v], string(key))
		return true
	})
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	assert.Equal(t, sorted, keys)
}

// TestForEachStops verifies that returning false ends the iteration.
func TestForEachStops(t *testing.T) {
	tree := sampleTree(t)
	seen := 0
	tree.ForEach(func([]rune, uint64) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}

// TestForEachKeysAreOwned verifies that retained keys are not overwritten later.
func TestForEachKeysAreOwned(t *testing.T) {
	tree := New[rune, uint64]()
	for _, w := range []string{"ab", "abc", "abd", "ac"} {
		mustInsert(t, tree, w, 0)
	}
	kept := [][]rune{}
	tree.ForEach(func(key []rune, _ uint64) bool {
		kept = append(kept, key)
		return true
	})
	got := []string{}
	for _, k := range kept {
		got = append(got, string(k))
	}
	assert.Equal(t, []string{"ab", "abc", "abd", "ac"}, got)
}

// TestCursor reads several keys out of one input.
func TestCursor(t *testing.T) {
	tree := New[rune, uint64]()
	mustInsert(t, tree, "abc", 17)
	mustInsert(t, tree, "def", 42)

	c := NewCursor([]rune("abcdefxyz"))
	v := tree.FindAt(c)
	require.NotNil(t, v)
	assert.Equal(t, uint64(17), *v)
	assert.Equal(t, 3, c.Pos)

	v = tree.FindAt(c)
	require.NotNil(t, v)
	assert.Equal(t, uint64(42), *v)
	assert.Equal(t, 6, c.Pos)

	assert.Nil(t, tree.FindAt(c))
	assert.Equal(t, 6, c.Pos, "a miss does not move the cursor")
	assert.Equal(t, []rune("xyz"), c.Remaining())
	assert.False(t, c.Done())

	c.Pos = len(c.Input)
	assert.True(t, c.Done())
	assert.Nil(t, tree.FindAt(c))
}

// TestScan splits an input into longest matches.
func TestScan(t *testing.T) {
	tree := New[rune, uint64]()
	mustInsert(t, tree, "ab", 1)
	mustInsert(t, tree, "abc", 2)
	mustInsert(t, tree, "d", 3)

	got := []Match[uint64]{}
	tree.Scan([]rune("xabcdab-"), func(m Match[uint64]) bool {
		got = append(got, m)
		return true
	})
	require.Len(t, got, 3)
	assert.Equal(t, [3]any{1, 4, uint64(2)}, [3]any{got[0].Start, got[0].End, *got[0].Value})
	assert.Equal(t, [3]any{4, 5, uint64(3)}, [3]any{got[1].Start, got[1].End, *got[1].Value})
	assert.Equal(t, [3]any{5, 7, uint64(1)}, [3]any{got[2].Start, got[2].End, *got[2].Value})

	calls := 0
	tree.Scan([]rune("ababab"), func(Match[uint64]) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

// TestCloneIndependence verifies the clone has the same content, its own nodes and its own parent links.
func TestCloneIndependence(t *testing.T) {
	tree := sampleTree(t)
	clone, err := tree.Clone()
	require.NoError(t, err)

	assert.Equal(t, trifurcate.Weight(tree.Root()), trifurcate.Weight(clone.Root()))
	assert.Equal(t, trifurcate.Height(tree.Root()), trifurcate.Height(clone.Root()))
	assert.Equal(t, entries(tree), entries(clone))
	assert.Equal(t, tree.Len(), clone.Len())

	original := map[*Node[rune, uint64]]bool{}
	for _, n := range nodesOf(tree.Root()) {
		original[n] = true
	}
	for _, n := range nodesOf(clone.Root()) {
		assert.False(t, original[n], "clone shares node %q", n.Symbol())
		if n.HasPayload() {
			for o := range original {
				if o.HasPayload() {
					assert.NotSame(t, o.Payload(), n.Payload())
				}
			}
		}
	}
	requireParentLinks(t, clone.Root())

	clone.Remove([]rune("abc"))
	mustInsert(t, clone, "zzz", 1)
	*clone.Root().Equal().Equal().Equal().Equal().Equal().Payload() = 100

	assert.Equal(t, map[string]uint64{"abc": 17, "def": 42, "abcdef": 9}, entries(tree))
	assert.Equal(t, map[string]uint64{"abcdef": 100, "def": 42, "zzz": 1}, entries(clone))
	requireParentLinks(t, tree.Root())
}

// TestCloneEmpty verifies that cloning an empty tree gives an empty tree.
func TestCloneEmpty(t *testing.T) {
	clone, err := New[rune, uint64]().Clone()
	require.NoError(t, err)
	assert.True(t, clone.IsEmpty())
}

// TestDestroy verifies that destroy releases everything and makes the tree single use.
func TestDestroy(t *testing.T) {
	pool := NewPoolAllocator[rune, uint64](0, 0)
	tree := sampleTree(t, WithAllocator[rune, uint64](pool))
	require.Equal(t, 9, pool.Stats().LiveNodes)
	require.Equal(t, 3, pool.Stats().LivePayloads)

	tree.Destroy()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, PoolStats{FreeNodes: 9}, pool.Stats())

	assert.Panics(t, func() { tree.Destroy() }, "a tree can only be destroyed once")
	assert.Panics(t, func() { tree.Insert([]rune("a"), 1) })
	assert.Panics(t, func() { tree.Find([]rune("a")) })
}

// TestDestructNil verifies that destructing an empty subtree is a no-op.
func TestDestructNil(t *testing.T) {
	pool := NewPoolAllocator[rune, uint64](0, 0)
	o := ops[rune, uint64]{alloc: pool, log: zap.NewNop()}
	assert.NotPanics(t, func() { o.destruct(nil) })
	assert.Equal(t, PoolStats{}, pool.Stats())
}

// TestClear verifies that a cleared tree can be reused.
func TestClear(t *testing.T) {
	tree := sampleTree(t)
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	mustInsert(t, tree, "x", 1)
	assert.Equal(t, 1, tree.Len())
}

// TestPoolReusesNodes verifies that released nodes are handed out again.
func TestPoolReusesNodes(t *testing.T) {
	pool := NewPoolAllocator[rune, uint64](0, 0)
	tree := New(WithAllocator[rune, uint64](pool))

	mustInsert(t, tree, "abc", 1)
	tree.Remove([]rune("abc"))
	assert.Equal(t, 3, pool.Stats().FreeNodes)

	mustInsert(t, tree, "xyz", 2)
	stats := pool.Stats()
	assert.Equal(t, 3, stats.ReusedNodes)
	assert.Equal(t, 0, stats.FreeNodes)
	assert.Equal(t, 3, stats.LiveNodes)

	v, ok := tree.Get([]rune("xyz"))
	require.True(t, ok)
	assert.Equal(t, uint64(2), *v)
	requireParentLinks(t, tree.Root())
}

// TestInsertNodeExhaustionUnwinds verifies that a failed insert leaves no new node behind.
func TestInsertNodeExhaustionUnwinds(t *testing.T) {
	pool := NewPoolAllocator[rune, uint64](4, 0)
	tree := New(WithAllocator[rune, uint64](pool))
	mustInsert(t, tree, "abc", 1)

	p, err := tree.Insert([]rune("abxyz"), 2)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrExhausted))

	assert.Equal(t, uint64(3), trifurcate.Weight(tree.Root()))
	assert.Nil(t, tree.Root().Equal().Equal().Greater())
	assert.Equal(t, 3, pool.Stats().LiveNodes)
	assert.Equal(t, 1, tree.Len())
}

// TestInsertPayloadExhaustionUnwinds verifies that nodes created for a failed payload are released.
func TestInsertPayloadExhaustionUnwinds(t *testing.T) {
	pool := NewPoolAllocator[rune, uint64](0, 1)
	tree := New(WithAllocator[rune, uint64](pool))
	mustInsert(t, tree, "abc", 1)

	_, err := tree.Insert([]rune("abd"), 2)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, uint64(3), trifurcate.Weight(tree.Root()))
	assert.Equal(t, 3, pool.Stats().LiveNodes)

	p, err := tree.Insert([]rune("abc"), 3)
	assert.NoError(t, err, "an existing key needs no payload")
	assert.Equal(t, uint64(1), *p)
}

// TestCloneExhaustionReleasesCopy verifies that a failed clone gives back what it allocated.
func TestCloneExhaustionReleasesCopy(t *testing.T) {
	pool := NewPoolAllocator[rune, uint64](14, 0)
	tree := sampleTree(t, WithAllocator[rune, uint64](pool))

	clone, err := tree.Clone()
	assert.Nil(t, clone)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 9, pool.Stats().LiveNodes)
	assert.Equal(t, 3, pool.Stats().LivePayloads)
	assert.Equal(t, uint64(9), trifurcate.Weight(tree.Root()))
}

// TestDebugLogging verifies that pruning and cloning are reported at debug level.
func TestDebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tree := sampleTree(t, WithLogger[rune, uint64](zap.New(core)))

	assert.Equal(t, 3, logs.FilterMessage("extended path").Len())

	tree.Remove([]rune("def"))
	assert.Equal(t, 3, logs.FilterMessage("pruned node").Len())

	_, err := tree.Clone()
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("cloned tree").Len())
}
