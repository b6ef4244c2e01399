package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// Slot is a position within a level of a tree. A slot either carries the
// value of a node (Present is true) or marks the place of an absent node.
type Slot[V any] struct {
	Value   V
	Present bool
}

// Occupied creates a present slot for value.
func Occupied[V any](value V) Slot[V] {
	return Slot[V]{Value: value, Present: true}
}

// Vacant creates an absent slot.
func Vacant[V any]() Slot[V] {
	return Slot[V]{}
}

// VacantMark is the text Format uses for absent slots.
const VacantMark = "-"

// MaxLevel is the deepest level LevelSlice accepts. Level l has 2^l slots,
// so deeper levels cannot be represented.
const MaxLevel = 62

// LevelSlice returns the slots at exactly level edges below node, left to
// right. The result always has 2^level slots: absent subtrees contribute
// absent slots at every level below them. Level 0 is node itself.
//
// Negative levels yield an empty slice. LevelSlice panics for levels greater
// than MaxLevel.
func LevelSlice[V any](node *Node[V], level int) []Slot[V] {
	if level < 0 {
		return []Slot[V]{}
	}
	assert(level <= MaxLevel, "LevelSlice: level exceeds MaxLevel")
	slots := make([]Slot[V], 0, 1<<level)
	return appendLevel(slots, node, level)
}

func appendLevel[V any](slots []Slot[V], node *Node[V], level int) []Slot[V] {
	if node == nil {
		for range 1 << level {
			slots = append(slots, Vacant[V]())
		}
		return slots
	}
	if level == 0 {
		return append(slots, Occupied(node.value))
	}
	slots = appendLevel(slots, node.left, level-1)
	return appendLevel(slots, node.right, level-1)
}

// Flatten returns the slots of all levels of the tree rooted at node in
// level order, with trailing absent slots removed.
//
// Removal follows a narrow contract: if the last slot is absent, the sequence
// is cut at its first absent slot. For perfect and complete trees this removes
// exactly the padding. For ragged trees a present value following an interior
// gap may be dropped, and interior gaps are kept when the last slot is
// present. An absent tree flattens to an empty slice.
//
// The last slot is present only if the right spine of the tree is as long as
// the tree is high. Only then is the padded sequence returned, which has
// 2^Height-1 slots; Flatten panics if Height exceeds MaxLevel. In all other
// cases Flatten stops at the first absent slot and never creates the padding.
func Flatten[V any](node *Node[V]) []Slot[V] {
	if node == nil {
		return []Slot[V]{}
	}
	height := Height(node)
	if rightSpine(node) < height {
		return denseLevelPrefix(node)
	}
	assert(height <= MaxLevel, "Flatten: tree too high to be padded")
	slots := make([]Slot[V], 0, 1<<height-1)
	for level := range height {
		slots = appendLevel(slots, node, level)
	}
	return slots
}

// rightSpine returns the number of nodes visited when following right
// children, starting at node.
func rightSpine[V any](node *Node[V]) int {
	n := 0
	for ; node != nil; node = node.right {
		n++
	}
	return n
}

// denseLevelPrefix returns the slots of node in level order, up to but not
// including the first absent slot.
func denseLevelPrefix[V any](node *Node[V]) []Slot[V] {
	slots := []Slot[V]{Occupied(node.value)}
	level := []*Node[V]{node}
	for depth := 1; ; depth++ {
		next := make([]*Node[V], 0, 2*len(level))
		for _, n := range level {
			for _, child := range [2]*Node[V]{n.left, n.right} {
				if child == nil {
					T().Debugf("flatten: cutting at first absent slot, level %d, position %d",
						depth, len(slots))
					return slots
				}
				next = append(next, child)
				slots = append(slots, Occupied(child.value))
			}
		}
		level = next
	}
}

// Values returns the values of the present slots, in order.
func Values[V any](slots []Slot[V]) []V {
	values := make([]V, 0, len(slots))
	for _, slot := range slots {
		if slot.Present {
			values = append(values, slot.Value)
		}
	}
	return values
}

// Dense reports whether none of the slots is absent.
func Dense[V any](slots []Slot[V]) bool {
	for _, slot := range slots {
		if !slot.Present {
			return false
		}
	}
	return true
}

// Rebuild creates a tree from a sequence of values in level order, using
// binary-heap indexing: the children of the value at index i are the values
// at 2i+1 and 2i+2. The result is a complete tree. An empty sequence yields
// an absent tree.
func Rebuild[V any](elements []V) *Node[V] {
	T().Debugf("rebuild: %d elements", len(elements))
	return RebuildFrom(elements, 0)
}

// RebuildFrom is like Rebuild, but the root of the result holds
// elements[index]. An index outside of elements yields an absent tree.
func RebuildFrom[V any](elements []V, index int) *Node[V] {
	if index < 0 || index >= len(elements) {
		return nil
	}
	node := New(elements[index])
	node.left = RebuildFrom(elements, 2*index+1)
	node.right = RebuildFrom(elements, 2*index+2)
	return node
}

// RebuildSlots is like Rebuild, but honors absent slots: an absent slot
// produces no node, and slots which would be children of an absent slot are
// ignored. For every tree t which Flatten does not truncate lossily,
// RebuildSlots(Flatten(t)) is structurally equal to t.
func RebuildSlots[V any](slots []Slot[V]) *Node[V] {
	T().Debugf("rebuild: %d slots", len(slots))
	return rebuildSlotsFrom(slots, 0)
}

func rebuildSlotsFrom[V any](slots []Slot[V], index int) *Node[V] {
	if index >= len(slots) || !slots[index].Present {
		return nil
	}
	node := New(slots[index].Value)
	node.left = rebuildSlotsFrom(slots, 2*index+1)
	node.right = rebuildSlotsFrom(slots, 2*index+2)
	return node
}

// Format returns a level-by-level dump of the tree rooted at node, one line per
// level. Slots at even positions are written as “L:<level><value>”, slots at
// odd positions as “R:<level><value>”, separated by blanks. Values are
// formatted by the fmt package, absent slots are written as VacantMark.
//
// Every level is written with all of its 2^level slots, so the dump grows
// exponentially with the height of the tree, and Format panics for trees
// higher than MaxLevel+1.
func Format[V any](node *Node[V]) string {
	var sb strings.Builder
	for level := range Height(node) {
		for i, slot := range LevelSlice(node, level) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(SlotToken(level, i, slot))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SlotToken formats a single slot at position pos within level, as done by
// Format.
func SlotToken[V any](level, pos int, slot Slot[V]) string {
	side := "L"
	if pos%2 == 1 {
		side = "R"
	}
	return fmt.Sprintf("%s:%d%s", side, level, SlotLabel(slot))
}

// SlotLabel returns the text of a slot's value, or VacantMark for an absent
// slot.
func SlotLabel[V any](slot Slot[V]) string {
	if !slot.Present {
		return VacantMark
	}
	return fmt.Sprint(slot.Value)
}
