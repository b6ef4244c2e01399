package bintree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

//	  a
//	 / \
//	b   c
func perfectTreeWithOneLevel() *Node[string] {
	tree := New("a")
	tree.SetLeft("b")
	tree.SetRight("c")
	return tree
}

//	    a
//	  /   \
//	 b     c
//	/ \   / \
//	d e   f g
func perfectTreeWithTwoLevels() *Node[string] {
	tree := perfectTreeWithOneLevel()
	tree.Left().SetLeft("d")
	tree.Left().SetRight("e")
	tree.Right().SetLeft("f")
	tree.Right().SetRight("g")
	return tree
}

// naiveIsBalanced is the straightforward quadratic balance check, used as a
// reference for IsBalanced.
func naiveIsBalanced[V any](node *Node[V]) bool {
	if node == nil {
		return true
	}
	diff := Height(node.Left()) - Height(node.Right())
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1 && naiveIsBalanced(node.Left()) && naiveIsBalanced(node.Right())
}

func slotsEqual[V comparable](a, b []Slot[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
