package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Node is a node of a binary tree, holding a value of type V and optional
// left and right children.
//
// A nil *Node is the absent subtree. Nodes are created with New and children
// are attached with SetLeft and SetRight. There is no way to remove a child or
// to change a node's value after creation, and a node has no reference to its
// parent.
type Node[V any] struct {
	value V
	left  *Node[V]
	right *Node[V]
}

// New creates a node holding value, with both children absent.
//
// Any value is accepted, including the zero value of V.
func New[V any](value V) *Node[V] {
	return &Node[V]{value: value}
}

// Value returns the value of a node. For an absent node it returns the zero
// value of V.
func (node *Node[V]) Value() V {
	if node == nil {
		var zero V
		return zero
	}
	return node.value
}

// Left returns the left child of node, or nil.
func (node *Node[V]) Left() *Node[V] {
	if node == nil {
		return nil
	}
	return node.left
}

// Right returns the right child of node, or nil.
func (node *Node[V]) Right() *Node[V] {
	if node == nil {
		return nil
	}
	return node.right
}

// SetLeft creates a new node for value and attaches it as the left child,
// replacing an existing left child together with its subtree.
// It returns the new child.
func (node *Node[V]) SetLeft(value V) *Node[V] {
	assert(node != nil, "SetLeft called on absent node")
	node.left = New(value)
	return node.left
}

// SetRight creates a new node for value and attaches it as the right child,
// replacing an existing right child together with its subtree.
// It returns the new child.
func (node *Node[V]) SetRight(value V) *Node[V] {
	assert(node != nil, "SetRight called on absent node")
	node.right = New(value)
	return node.right
}

// String returns the value of node, formatted by the fmt package.
func (node *Node[V]) String() string {
	if node == nil {
		return "<nil>"
	}
	return fmt.Sprint(node.value)
}

// Equal reports whether a and b are structurally equal, i.e. have the same
// shape and equal values at corresponding positions. Two absent trees are equal.
func Equal[V comparable](a, b *Node[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal, but compares values with eq.
func EqualFunc[V any](a, b *Node[V], eq func(V, V) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !eq(a.value, b.value) {
		return false
	}
	return EqualFunc(a.left, b.left, eq) && EqualFunc(a.right, b.right, eq)
}
