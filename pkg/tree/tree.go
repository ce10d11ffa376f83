package tree

// Node is an n-ary tree node holding a value and an ordered list of
// children. The zero value is not usable; create nodes with New or Add.
type Node[T any] struct {
	value    T
	parent   *Node[T]
	children []*Node[T]
}

// New creates a root node holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the node's payload.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the node's payload.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Parent returns the node's parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the node's direct children in insertion order. The
// returned slice is a copy; mutating it does not affect the tree.
func (n *Node[T]) Children() []*Node[T] {
	return append([]*Node[T](nil), n.children...)
}

// Add creates a child node holding v, appends it, and returns it.
func (n *Node[T]) Add(v T) *Node[T] {
	child := &Node[T]{value: v, parent: n}
	n.children = append(n.children, child)
	return child
}

// AddNode attaches an existing subtree as the last child. A child that
// already has a parent is detached from it first. Attaching a node to its
// own descendant would create a cycle, so AddNode refuses it and returns
// false.
func (n *Node[T]) AddNode(child *Node[T]) bool {
	if child == nil {
		return false
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return false
		}
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return true
}

// Remove detaches child from n's direct children and reports whether it
// was found. The detached subtree stays intact and can be re-attached.
func (n *Node[T]) Remove(child *Node[T]) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Walk traverses the subtree rooted at n depth-first, pre-order. The
// visit callback returns false to stop the walk.
func (n *Node[T]) Walk(visit func(*Node[T]) bool) {
	n.walk(visit)
}

func (n *Node[T]) walk(visit func(*Node[T]) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}

// WalkBreadth traverses the subtree rooted at n level by level. The
// visit callback returns false to stop the walk.
func (n *Node[T]) WalkBreadth(visit func(*Node[T]) bool) {
	queue := []*Node[T]{n}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if !visit(current) {
			return
		}
		queue = append(queue, current.children...)
	}
}

// Find returns the first node in depth-first order whose value satisfies
// match, or nil when no node matches.
func (n *Node[T]) Find(match func(T) bool) *Node[T] {
	var found *Node[T]
	n.Walk(func(node *Node[T]) bool {
		if match(node.value) {
			found = node
			return false
		}
		return true
	})
	return found
}

// Depth returns the number of edges between n and its root. The root's
// depth is zero.
func (n *Node[T]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Len returns the number of nodes in the subtree rooted at n, including
// n itself.
func (n *Node[T]) Len() int {
	count := 0
	n.Walk(func(*Node[T]) bool {
		count++
		return true
	})
	return count
}

// Root returns the topmost ancestor of n.
func (n *Node[T]) Root() *Node[T] {
	p := n
	for p.parent != nil {
		p = p.parent
	}
	return p
}
