package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

// LevelOrder returns an iterator over the present nodes of the tree rooted at
// node, in breadth-first order and left to right within a level. The iterator
// yields the depth of every node (0 for node itself) together with the node.
//
// The traversal uses an explicit queue and is safe for very tall trees.
func LevelOrder[V any](node *Node[V]) iter.Seq2[int, *Node[V]] {
	type entry struct {
		depth int
		node  *Node[V]
	}
	return func(yield func(int, *Node[V]) bool) {
		if node == nil {
			return
		}
		queue := []entry{{0, node}}
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			if !yield(e.depth, e.node) {
				return
			}
			if e.node.left != nil {
				queue = append(queue, entry{e.depth + 1, e.node.left})
			}
			if e.node.right != nil {
				queue = append(queue, entry{e.depth + 1, e.node.right})
			}
		}
	}
}

// Check validates that the structure reachable from node is a strict binary
// tree: every node must be reachable on exactly one path. Trees built with
// New, SetLeft, SetRight and the Rebuild functions always pass.
//
// An absent tree is valid.
func Check[V any](node *Node[V]) error {
	if node == nil {
		return nil
	}
	seen := make(map[*Node[V]]struct{})
	var err error
	for depth, n := range levelOrderUnchecked(node) {
		if _, ok := seen[n]; ok {
			err = fmt.Errorf("%w: node %v reachable twice (at depth %d)", ErrMalformedTree, n, depth)
			break
		}
		seen[n] = struct{}{}
	}
	if err != nil {
		T().Errorf("bintree check: %s", err.Error())
	}
	return err
}

// levelOrderUnchecked is LevelOrder, but it stops descending below a node
// that has been yielded before. This keeps Check from looping forever on
// cyclic structures.
func levelOrderUnchecked[V any](node *Node[V]) iter.Seq2[int, *Node[V]] {
	return func(yield func(int, *Node[V]) bool) {
		expanded := make(map[*Node[V]]bool)
		type entry struct {
			depth int
			node  *Node[V]
		}
		queue := []entry{{0, node}}
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			if !yield(e.depth, e.node) {
				return
			}
			if expanded[e.node] {
				continue
			}
			expanded[e.node] = true
			for _, child := range [2]*Node[V]{e.node.left, e.node.right} {
				if child != nil {
					queue = append(queue, entry{e.depth + 1, child})
				}
			}
		}
	}
}
