// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/layout.go
// Summary: Binary tiling layout tree: weighted horizontal/vertical split
// containers holding Panes at their leaves.
// Usage: Window owns a Tree; Window.AddPane/RemovePane mutate it via
// split/remove, Session.updateSize drives Tree.SetLocation on resize.

package texel

// Location is a node's screen rectangle in absolute row/column coordinates.
type Location struct {
	PX, PY, SX, SY int
}

// Node is implemented by both split containers and Pane, so the tree can
// treat leaves and branches uniformly.
type Node interface {
	location() Location
	setLocation(loc Location)
	parentContainer() *splitNode
	setParentContainer(p *splitNode)
	resize()
	resizeTile(direction rune, amount int)
}

type splitKind int

const (
	splitHorizontal splitKind = iota // children stacked top to bottom
	splitVertical                    // children stacked left to right
)

// splitNode is a TileContainer: always exactly two children once split,
// carrying integer weights that double as the last computed pixel sizes
// (resize_tile nudges these directly, matching the original's behavior of
// reusing the weight vector as the literal size cache).
type splitNode struct {
	kind     splitKind
	loc      Location
	par      *splitNode
	children [2]Node
	sizes    [2]int
}

func newSplitNode(kind splitKind) *splitNode {
	return &splitNode{kind: kind, sizes: [2]int{10, 10}}
}

func (n *splitNode) location() Location                { return n.loc }
func (n *splitNode) parentContainer() *splitNode        { return n.par }
func (n *splitNode) setParentContainer(p *splitNode)    { n.par = p }

func (n *splitNode) setLocation(loc Location) {
	n.loc = loc
	n.resize()
}

func (n *splitNode) resize() {
	switch n.kind {
	case splitHorizontal:
		n.resizeHorizontal()
	case splitVertical:
		n.resizeVertical()
	}
}

func divideSpace(available int, sizes [2]int) (int, int) {
	sum := sizes[0] + sizes[1]
	if sum <= 0 {
		sum = 1
	}
	size1 := available * sizes[0] / sum
	size2 := available - size1
	return size1, size2
}

func (n *splitNode) resizeHorizontal() {
	available := n.loc.SY - 1 // one border row between the two children
	size1, size2 := divideSpace(available, n.sizes)
	n.sizes = [2]int{size1, size2}

	offset := 0
	sizes := [2]int{size1, size2}
	for i, child := range n.children {
		child.setLocation(Location{PX: n.loc.PX, PY: n.loc.PY + offset, SX: n.loc.SX, SY: sizes[i]})
		offset += sizes[i] + 1
	}
}

func (n *splitNode) resizeVertical() {
	available := n.loc.SX - 1
	size1, size2 := divideSpace(available, n.sizes)
	n.sizes = [2]int{size1, size2}

	offset := 0
	sizes := [2]int{size1, size2}
	for i, child := range n.children {
		child.setLocation(Location{PX: n.loc.PX + offset, PY: n.loc.PY, SX: sizes[i], SY: n.loc.SY})
		offset += sizes[i] + 1
	}
}

// resizeTile grows/shrinks this split by amount in the given direction
// ('U'/'D' for a horizontal split, 'L'/'R' for a vertical one), always
// leaving each side at least 2 rows/columns, or delegates to the parent
// when the direction doesn't match this split's axis.
func (n *splitNode) resizeTile(direction rune, amount int) {
	switch n.kind {
	case splitHorizontal:
		switch direction {
		case 'U':
			diff := minInt(amount, n.sizes[0]-2)
			n.sizes[0] -= diff
			n.sizes[1] += diff
			n.resizeHorizontal()
			return
		case 'D':
			diff := minInt(amount, n.sizes[1]-2)
			n.sizes[1] -= diff
			n.sizes[0] += diff
			n.resizeHorizontal()
			return
		}
	case splitVertical:
		switch direction {
		case 'L':
			diff := minInt(amount, n.sizes[0]-2)
			n.sizes[0] -= diff
			n.sizes[1] += diff
			n.resizeVertical()
			return
		case 'R':
			diff := minInt(amount, n.sizes[1]-2)
			n.sizes[1] -= diff
			n.sizes[0] += diff
			n.resizeVertical()
			return
		}
	}
	if n.par != nil {
		n.par.resizeTile(direction, amount)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// split replaces existing (one of n's two children) with a new two-way
// split containing existing and newChild, in the given orientation. It
// returns a ConfigurationError if existing is not a child of n.
func (n *splitNode) split(existing, newChild Node, vsplit bool) error {
	idx := -1
	for i, c := range n.children {
		if c == existing {
			idx = i
			break
		}
	}
	if idx < 0 {
		return configErrorf("split", "existing child not found in container")
	}

	kind := splitHorizontal
	if vsplit {
		kind = splitVertical
	}
	nc := newSplitNode(kind)
	nc.setParentContainer(n)
	n.children[idx] = nc

	existing.setParentContainer(nc)
	newChild.setParentContainer(nc)
	nc.children = [2]Node{existing, newChild}

	nc.setLocation(existing.location())
	return nil
}

// removeChild removes child from n. Since n always holds two children, the
// container is then left with one: n is collapsed away and the remaining
// child is promoted into n's slot in the parent.
func (n *splitNode) removeChild(child Node) error {
	idx := -1
	for i, c := range n.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return configErrorf("remove", "child not found in container")
	}

	other := n.children[1-idx]
	if n.par == nil {
		// Root with one child removed: nothing sensible to collapse into;
		// callers are expected to replace the root entirely in this case.
		return configErrorf("remove", "cannot remove the last child of the root container")
	}
	n.par.replaceChild(n, other)
	other.setParentContainer(n.par)
	n.par.resize()
	return nil
}

func (n *splitNode) replaceChild(old, replacement Node) {
	for i, c := range n.children {
		if c == old {
			n.children[i] = replacement
			return
		}
	}
}

// Tree is the layout for a single Window.
type Tree struct {
	root Node
}

// SetRoot installs the tree's only node (the first pane added to a window).
func (t *Tree) SetRoot(n Node) { t.root = n }

// SetLocation lays out the whole tree within loc.
func (t *Tree) SetLocation(loc Location) {
	if t.root != nil {
		t.root.setLocation(loc)
	}
}

// Split inserts newChild alongside existing, which must currently be a
// child of the tree (or be the tree's sole root node).
func (t *Tree) Split(existing, newChild Node, vsplit bool) error {
	if t.root == existing {
		kind := splitHorizontal
		if vsplit {
			kind = splitVertical
		}
		nc := newSplitNode(kind)
		existing.setParentContainer(nc)
		newChild.setParentContainer(nc)
		nc.children = [2]Node{existing, newChild}
		loc := existing.location()
		t.root = nc
		nc.setLocation(loc)
		return nil
	}
	parent := existing.parentContainer()
	if parent == nil {
		return configErrorf("split", "node has no parent and is not the tree root")
	}
	return parent.split(existing, newChild, vsplit)
}

// Remove removes n from the tree, collapsing the container left with a
// single child; that child takes over the container's place and location.
func (t *Tree) Remove(n Node) error {
	parent := n.parentContainer()
	if parent == nil {
		if t.root == n {
			t.root = nil
			return nil
		}
		return configErrorf("remove", "node not found in tree")
	}
	if parent.par == nil && t.root == parent {
		other := parent.children[0]
		if parent.children[0] == n {
			other = parent.children[1]
		}
		t.root = other
		other.setParentContainer(nil)
		other.setLocation(parent.loc)
		return nil
	}
	return parent.removeChild(n)
}
