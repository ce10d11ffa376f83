package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/tree"
)

// buildTree returns:
//
//	a
//	├── b
//	│   ├── d
//	│   └── e
//	└── c
//	    └── f
func buildTree() (root, b, c, d, e, f *tree.Node[string]) {
	root = tree.New("a")
	b = root.Add("b")
	c = root.Add("c")
	d = b.Add("d")
	e = b.Add("e")
	f = c.Add("f")
	return root, b, c, d, e, f
}

func collect[T any](walk func(func(*tree.Node[T]) bool)) []T {
	var out []T
	walk(func(n *tree.Node[T]) bool {
		out = append(out, n.Value())
		return true
	})
	return out
}

func TestWalk(t *testing.T) {
	root, _, _, _, _, _ := buildTree()

	t.Run("depth first pre-order", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "d", "e", "c", "f"}, collect(root.Walk))
	})

	t.Run("breadth first", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, collect(root.WalkBreadth))
	})

	t.Run("early stop", func(t *testing.T) {
		var visited []string
		root.Walk(func(n *tree.Node[string]) bool {
			visited = append(visited, n.Value())
			return n.Value() != "d"
		})
		assert.Equal(t, []string{"a", "b", "d"}, visited)
	})

	t.Run("breadth first early stop", func(t *testing.T) {
		var visited []string
		root.WalkBreadth(func(n *tree.Node[string]) bool {
			visited = append(visited, n.Value())
			return n.Value() != "c"
		})
		assert.Equal(t, []string{"a", "b", "c"}, visited)
	})

	t.Run("single node", func(t *testing.T) {
		assert.Equal(t, []string{"solo"}, collect(tree.New("solo").Walk))
	})
}

func TestFind(t *testing.T) {
	root, _, _, _, e, _ := buildTree()

	t.Run("existing value", func(t *testing.T) {
		found := root.Find(func(v string) bool { return v == "e" })
		assert.Same(t, e, found)
	})

	t.Run("missing value", func(t *testing.T) {
		assert.Nil(t, root.Find(func(v string) bool { return v == "zzz" }))
	})

	t.Run("first match in depth order wins", func(t *testing.T) {
		root := tree.New(1)
		first := root.Add(2)
		root.Add(2)
		assert.Same(t, first, root.Find(func(v int) bool { return v == 2 }))
	})
}

func TestDepthAndLen(t *testing.T) {
	root, b, _, d, _, _ := buildTree()

	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 1, b.Depth())
	assert.Equal(t, 2, d.Depth())

	assert.Equal(t, 6, root.Len())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 1, d.Len())
}

func TestRemove(t *testing.T) {
	root, b, _, d, _, _ := buildTree()

	t.Run("detaches the subtree", func(t *testing.T) {
		require.True(t, root.Remove(b))
		assert.Equal(t, []string{"a", "c", "f"}, collect(root.Walk))
		assert.Nil(t, b.Parent())
		// Subtree survives detachment.
		assert.Equal(t, []string{"b", "d", "e"}, collect(b.Walk))
	})

	t.Run("non-child is not found", func(t *testing.T) {
		assert.False(t, root.Remove(d))
	})
}

func TestAddNode(t *testing.T) {
	t.Run("reattaches a detached subtree", func(t *testing.T) {
		root, b, c, _, _, _ := buildTree()
		root.Remove(b)

		require.True(t, c.AddNode(b))
		assert.Same(t, c, b.Parent())
		assert.Equal(t, []string{"a", "c", "f", "b", "d", "e"}, collect(root.Walk))
	})

	t.Run("moves between parents", func(t *testing.T) {
		root, b, c, d, _, _ := buildTree()

		require.True(t, c.AddNode(d))
		assert.Equal(t, 2, b.Len())
		assert.Same(t, c, d.Parent())
		_ = root
	})

	t.Run("refuses cycles", func(t *testing.T) {
		root, b, _, d, _, _ := buildTree()

		assert.False(t, d.AddNode(root))
		assert.False(t, b.AddNode(b))
		assert.Nil(t, root.Parent())
	})

	t.Run("refuses nil", func(t *testing.T) {
		root := tree.New(0)
		assert.False(t, root.AddNode(nil))
	})
}

func TestParentAndRoot(t *testing.T) {
	root, b, _, d, _, _ := buildTree()

	assert.Nil(t, root.Parent())
	assert.Same(t, b, d.Parent())
	assert.Same(t, root, d.Root())
	assert.Same(t, root, root.Root())
}

func TestChildrenCopy(t *testing.T) {
	root, b, c, _, _, _ := buildTree()

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.Same(t, b, kids[0])
	assert.Same(t, c, kids[1])

	// Mutating the returned slice leaves the tree untouched.
	kids[0] = nil
	assert.Same(t, b, root.Children()[0])
}

func TestSetValue(t *testing.T) {
	n := tree.New("old")
	n.SetValue("new")
	assert.Equal(t, "new", n.Value())
}
