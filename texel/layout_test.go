// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/layout_test.go
// Summary: Exercises split/resize/remove behaviour of the layout tree.
// Usage: Executed during `go test` to guard against regressions.

package texel

import "testing"

func TestTreeSetRootLaysOutSingleNode(t *testing.T) {
	p := NewPane(Location{})
	var tree Tree
	tree.SetRoot(p)
	tree.SetLocation(Location{PX: 0, PY: 0, SX: 40, SY: 20})

	loc := p.location()
	if loc.SX != 40 || loc.SY != 20 {
		t.Fatalf("expected root to fill the tree's location, got %+v", loc)
	}
}

func TestTreeSplitDividesSpaceEvenly(t *testing.T) {
	p1 := NewPane(Location{})
	p2 := NewPane(Location{})
	var tree Tree
	tree.SetRoot(p1)
	tree.SetLocation(Location{PX: 0, PY: 0, SX: 41, SY: 20})

	if err := tree.Split(p1, p2, true); err != nil {
		t.Fatalf("split: %v", err)
	}

	l1, l2 := p1.location(), p2.location()
	if l1.SX+l2.SX != 40 {
		t.Fatalf("expected widths to sum to 40 (41 minus the divider column), got %d+%d", l1.SX, l2.SX)
	}
	if l2.PX != l1.PX+l1.SX+1 {
		t.Fatalf("expected second pane to start one column after the first plus its divider, got PX=%d", l2.PX)
	}
}

func TestTreeSplitRejectsUnknownExisting(t *testing.T) {
	p1 := NewPane(Location{})
	p2 := NewPane(Location{})
	p3 := NewPane(Location{})
	var tree Tree
	tree.SetRoot(p1)
	tree.SetLocation(Location{SX: 40, SY: 20})
	if err := tree.Split(p1, p2, true); err != nil {
		t.Fatalf("split: %v", err)
	}

	if err := tree.Split(p3, p1, true); err == nil {
		t.Fatalf("expected an error splitting against a node that isn't in the tree")
	}
}

func TestTreeRemoveCollapsesSingletonContainer(t *testing.T) {
	p1 := NewPane(Location{})
	p2 := NewPane(Location{})
	var tree Tree
	tree.SetRoot(p1)
	tree.SetLocation(Location{SX: 40, SY: 20})
	if err := tree.Split(p1, p2, true); err != nil {
		t.Fatalf("split: %v", err)
	}

	if err := tree.Remove(p2); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if tree.root != p1 {
		t.Fatalf("expected the sole remaining pane to become the tree root after collapse")
	}
}

func TestTreeRemoveCascadesThroughNestedContainers(t *testing.T) {
	p1 := NewPane(Location{})
	p2 := NewPane(Location{})
	p3 := NewPane(Location{})
	var tree Tree
	tree.SetRoot(p1)
	tree.SetLocation(Location{SX: 60, SY: 40})
	if err := tree.Split(p1, p2, true); err != nil {
		t.Fatalf("split 1: %v", err)
	}
	if err := tree.Split(p2, p3, false); err != nil {
		t.Fatalf("split 2: %v", err)
	}

	if err := tree.Remove(p3); err != nil {
		t.Fatalf("remove p3: %v", err)
	}
	if tree.root.(*splitNode).children[1] != p2 {
		t.Fatalf("expected p2 to be promoted back into the outer container's slot")
	}

	if err := tree.Remove(p2); err != nil {
		t.Fatalf("remove p2: %v", err)
	}
	if tree.root != p1 {
		t.Fatalf("expected the tree to collapse all the way back to a single pane root")
	}
}

func TestSplitNodeResizeTileRespectsMinimumSize(t *testing.T) {
	n := newSplitNode(splitVertical)
	n.children = [2]Node{NewPane(Location{}), NewPane(Location{})}
	n.sizes = [2]int{3, 3}
	n.loc = Location{SX: 7, SY: 10}

	n.resizeTile('L', 100)
	if n.sizes[0] < 2 {
		t.Fatalf("expected left side to be clamped at a minimum of 2, got %d", n.sizes[0])
	}
}

func TestSplitNodeResizeTileDelegatesOnAxisMismatch(t *testing.T) {
	outer := newSplitNode(splitHorizontal)
	outer.loc = Location{SX: 40, SY: 21}
	inner := newSplitNode(splitVertical)
	inner.setParentContainer(outer)
	inner.children = [2]Node{NewPane(Location{}), NewPane(Location{})}
	outer.children = [2]Node{inner, NewPane(Location{})}
	outer.sizes = [2]int{10, 10}

	inner.resizeTile('U', 3)

	if outer.sizes[0] == 10 {
		t.Fatalf("expected a vertical split to delegate a 'U' resize up to its horizontal parent")
	}
}
