package formatter

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"math"
	"math/bits"
	"sync"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Side tells where a node sits relative to its parent. It selects the color
// a label is printed in.
type Side int

// Sides of a node.
const (
	Root Side = iota
	LeftSide
	RightSide
)

func (side Side) String() string {
	switch side {
	case Root:
		return "root"
	case LeftSide:
		return "left"
	}
	return "right"
}

type cell struct {
	text  string // label of the node
	token string // compact listing token
	width int    // display width of text in en
	pos   int    // slot index within the level, meaningful only for finite Width
	side  Side
}

// Layout holds the measured labels of the present nodes of a tree, level by
// level and left to right. Absent slots are not stored, so a layout stays
// small for tall and sparse trees.
type Layout struct {
	rows      [][]cell
	cellWidth int // width of a slot on the lowest level
}

var setupGraphemes sync.Once

// LayoutOf measures the labels of all nodes of the tree rooted at root.
// Labels are created by the fmt package. If ctx is nil, uax11.LatinContext
// is used.
func LayoutOf[V any](root *bintree.Node[V], ctx *uax11.Context) *Layout {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	layout := &Layout{}
	maxw := 0
	type entry struct {
		node *bintree.Node[V]
		pos  int
		side Side
	}
	level := []entry{}
	if root != nil {
		level = append(level, entry{root, 0, Root})
	}
	for depth := 0; len(level) > 0; depth++ {
		row := make([]cell, len(level))
		next := make([]entry, 0, 2*len(level))
		for i, e := range level {
			text := e.node.String()
			parity := 0
			if e.side == RightSide {
				parity = 1
			}
			row[i] = cell{
				text:  text,
				token: bintree.SlotToken(depth, parity, bintree.Occupied(text)),
				width: uax11.StringWidth(grapheme.StringFromString(text), ctx),
				pos:   e.pos,
				side:  e.side,
			}
			maxw = max(maxw, row[i].width)
			if l := e.node.Left(); l != nil {
				next = append(next, entry{l, 2 * e.pos, LeftSide})
			}
			if r := e.node.Right(); r != nil {
				next = append(next, entry{r, 2*e.pos + 1, RightSide})
			}
		}
		layout.rows = append(layout.rows, row)
		level = next
	}
	layout.cellWidth = maxw + 1
	T().Debugf("layout: height=%d, cell width=%d", layout.Height(), layout.cellWidth)
	return layout
}

// Height returns the number of levels of the layout.
func (layout *Layout) Height() int {
	if layout == nil {
		return 0
	}
	return len(layout.rows)
}

// Width returns the display width of the centered layout in en, i.e. the
// width of all the slots of the lowest level. Widths which do not fit into an
// int are reported as math.MaxInt.
func (layout *Layout) Width() int {
	h := layout.Height()
	if h == 0 {
		return 0
	}
	if h-1 >= bits.UintSize-1-bits.Len(uint(layout.cellWidth)) {
		return math.MaxInt
	}
	return layout.cellWidth << (h - 1)
}

// span returns the width of a single slot at level. It is valid only for
// layouts with a finite Width.
func (layout *Layout) span(level int) int {
	return layout.cellWidth << (layout.Height() - 1 - level)
}
