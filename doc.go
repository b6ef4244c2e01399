/*
Package bintree offers a small generic binary tree together with structural
queries and level-order conversions.

Trees

A tree is built from nodes, starting with a root created by New. Children are
attached with SetLeft and SetRight, which always create a fresh child node and
overwrite whatever was attached before:

	root := bintree.New("a")
	b := root.SetLeft("b")
	root.SetRight("c")
	b.SetLeft("d")

A nil *Node is a valid argument for every query and stands for an absent
subtree. Queries never fail; absent subtrees yield vacuous results (height 0,
not a leaf, balanced).

Queries

Height counts node levels, not edges, so a single node has height 1. Level
follows the left spine only and is not a general depth query. NodeCount counts
internal nodes only; leaves are excluded:

	      a          Height     = 3
	     / \         Level      = 3
	    b   c        NodeCount  = 2   (a and b)
	   /             Size       = 4
	  d              IsBalanced = true

Level-Order Mapping

LevelSlice returns the slots of a single level, padded with absent slots so that
level l always has 2^l slots. Flatten concatenates all levels in breadth-first
order and removes trailing absent slots; Rebuild does the inverse for dense
sequences with binary-heap indexing (children of i live at 2i+1 and 2i+2).

Flatten follows a narrow truncation contract: if the last slot is absent, the
sequence is cut at the first absent slot. This is exact for perfect and complete
trees, but for ragged trees it may drop present values that follow an interior
gap. Clients with arbitrary trees should use LevelSlice or LevelOrder directly.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bintree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrMalformedTree is flagged whenever a node structure is not a strict
// binary tree, i.e. a node is reachable on more than one path.
const ErrMalformedTree = TreeError("malformed tree")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
