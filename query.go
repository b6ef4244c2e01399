package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Height returns the number of node levels of the tree rooted at node.
// An absent tree has height 0, a single node has height 1.
func Height[V any](node *Node[V]) int {
	if node == nil {
		return 0
	}
	return max(Height(node.left), Height(node.right)) + 1
}

// Level returns the length of the left spine starting at node, i.e. the
// number of nodes visited when following left children until a child is
// absent. It is not the depth of node within an enclosing tree.
//
// Only absent nodes end the spine. A node holding a nil value, e.g. for V
// being a pointer type, is present and counts like any other node.
func Level[V any](node *Node[V]) int {
	if node == nil {
		return 0
	}
	return Level(node.left) + 1
}

// IsLeaf reports whether node is present and has no children.
// An absent node is not a leaf.
func IsLeaf[V any](node *Node[V]) bool {
	if node == nil {
		return false
	}
	return node.left == nil && node.right == nil
}

// IsNode reports whether node is an internal node, i.e. is present and has
// at least one child.
func IsNode[V any](node *Node[V]) bool {
	return !(node == nil || IsLeaf(node))
}

// NodeCount returns the number of internal nodes of the tree rooted at node.
// Leaves are not counted: a root with two leaf children has a node count of 1.
func NodeCount[V any](node *Node[V]) int {
	if !IsNode(node) {
		return 0
	}
	return NodeCount(node.left) + NodeCount(node.right) + 1
}

// Size returns the number of nodes of the tree rooted at node, leaves
// included.
func Size[V any](node *Node[V]) int {
	size := 0
	for range LevelOrder(node) {
		size++
	}
	return size
}

// IsBalanced reports whether, for every node of the tree, the heights of
// its left and right subtrees differ by at most 1. An absent tree is balanced.
func IsBalanced[V any](node *Node[V]) bool {
	_, ok := balancedHeight(node)
	return ok
}

// balancedHeight returns the height of node and whether the subtree rooted at
// node is balanced. Both subtrees are always explored.
func balancedHeight[V any](node *Node[V]) (int, bool) {
	if node == nil {
		return 0, true
	}
	lh, lok := balancedHeight(node.left)
	rh, rok := balancedHeight(node.right)
	diff := lh - rh
	if diff < 0 {
		diff = -diff
	}
	return max(lh, rh) + 1, diff <= 1 && lok && rok
}
