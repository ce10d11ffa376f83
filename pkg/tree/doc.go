// Package tree implements a generic n-ary tree with depth-first and
// breadth-first traversal.
//
// A Node holds a value and an ordered list of children. Trees are built
// top-down: create a root with New, then attach children with Add or
// AddNode. Traversal visits nodes through a caller callback that can stop
// the walk early.
//
// # Usage
//
//	root := tree.New("fs")
//	etc := root.Add("etc")
//	etc.Add("hosts")
//	root.Add("var")
//
//	root.Walk(func(n *tree.Node[string]) bool {
//		fmt.Println(n.Value())
//		return true
//	})
//
// Nodes are not safe for concurrent mutation. Guard shared trees with a
// mutex when walking and modifying from multiple goroutines.
package tree
