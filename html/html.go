/*
Package html renders binary trees as nested HTML lists and reads them back.

A tree

	  a
	 / \
	b   c

is rendered as

	<ul class="bintree"><li class="root">a<ul><li class="left">b</li><li class="right">c</li></ul></li></ul>

The classes of list items tell left and right children apart, so a node with
a right child only survives a round trip.

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ListClass is the class attribute of the outermost list element.
const ListClass = "bintree"

// Fragment creates an HTML list element for the tree rooted at root. Values are
// converted to text by the fmt package. An absent tree results in an empty list.
func Fragment[V any](root *bintree.Node[V]) *html.Node {
	ul := element(atom.Ul, ListClass)
	if root != nil {
		ul.AppendChild(item(root, "root"))
	}
	return ul
}

func item[V any](node *bintree.Node[V], class string) *html.Node {
	li := element(atom.Li, class)
	li.AppendChild(&html.Node{Type: html.TextNode, Data: node.String()})
	if bintree.IsLeaf(node) {
		return li
	}
	ul := element(atom.Ul, "")
	if node.Left() != nil {
		ul.AppendChild(item(node.Left(), "left"))
	}
	if node.Right() != nil {
		ul.AppendChild(item(node.Right(), "right"))
	}
	li.AppendChild(ul)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// Render writes the tree rooted at root to w as an HTML list.
func Render[V any](root *bintree.Node[V], w io.Writer) error {
	if err := html.Render(w, Fragment(root)); err != nil {
		T().Errorf("html render: %s", err.Error())
		return err
	}
	return nil
}

// Parse reads an HTML document or fragment and creates a tree from the first
// list element it contains. Every list item contributes a node; its text is
// the text directly contained in the item, trimmed of surrounding white space.
// Items of a nested list are attached as children: an item of class “left”
// or “right” is attached to that side, other items are attached to the left
// and then to the right side.
//
// An empty list yields an absent tree.
func Parse(input io.Reader) (*bintree.Node[string], error) {
	if input == nil {
		return nil, bintree.ErrIllegalArguments
	}
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	ul := findElement(doc, atom.Ul)
	if ul == nil {
		return nil, fmt.Errorf("%w: no list element found", bintree.ErrIllegalArguments)
	}
	items := listItems(ul)
	if len(items) == 0 {
		return nil, nil
	}
	if len(items) > 1 {
		return nil, fmt.Errorf("%w: list has %d roots", bintree.ErrIllegalArguments, len(items))
	}
	root := bintree.New(itemText(items[0]))
	if err := collectChildren(items[0], root); err != nil {
		return nil, err
	}
	T().Debugf("html parse: tree of size %d", bintree.Size(root))
	return root, nil
}

func collectChildren(li *html.Node, node *bintree.Node[string]) error {
	ul := childElement(li, atom.Ul)
	if ul == nil {
		return nil
	}
	items := listItems(ul)
	if len(items) > 2 {
		return fmt.Errorf("%w: node %q has %d children", bintree.ErrIllegalArguments,
			node.Value(), len(items))
	}
	leftUsed := false
	for _, it := range items {
		var child *bintree.Node[string]
		switch class := classOf(it); {
		case class == "right" || (class != "left" && leftUsed):
			if node.Right() != nil {
				return fmt.Errorf("%w: node %q has two right children", bintree.ErrIllegalArguments,
					node.Value())
			}
			child = node.SetRight(itemText(it))
		default:
			if node.Left() != nil {
				return fmt.Errorf("%w: node %q has two left children", bintree.ErrIllegalArguments,
					node.Value())
			}
			child = node.SetLeft(itemText(it))
			leftUsed = true
		}
		if err := collectChildren(it, child); err != nil {
			return err
		}
	}
	return nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func childElement(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}

func listItems(ul *html.Node) []*html.Node {
	var items []*html.Node
	for c := ul.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			items = append(items, c)
		}
	}
	return items
}

func itemText(li *html.Node) string {
	var sb strings.Builder
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	switch classOf(li) {
	case "root", "left", "right":
		return sb.String()
	}
	return strings.TrimSpace(sb.String())
}

func classOf(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return attr.Val
		}
	}
	return ""
}
