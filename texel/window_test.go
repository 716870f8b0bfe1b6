// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/window_test.go
// Summary: Exercises pane management and focus navigation on a Window.
// Usage: Executed during `go test` to guard against regressions.

package texel

import "testing"

func TestWindowAddPaneFirstBecomesRootAndActive(t *testing.T) {
	w := NewWindow("shell")
	p := NewPane(Location{})
	if err := w.AddPane(p, true); err != nil {
		t.Fatalf("add pane: %v", err)
	}
	if w.ActivePane() != p {
		t.Fatalf("expected the first pane added to become active")
	}
	if len(w.Panes()) != 1 {
		t.Fatalf("expected one pane, got %d", len(w.Panes()))
	}
}

func TestWindowAddPaneSplitsAlongsideActive(t *testing.T) {
	w := NewWindow("shell")
	p1 := NewPane(Location{})
	p2 := NewPane(Location{})
	if err := w.AddPane(p1, true); err != nil {
		t.Fatalf("add p1: %v", err)
	}
	if err := w.AddPane(p2, true); err != nil {
		t.Fatalf("add p2: %v", err)
	}
	if w.ActivePane() != p2 {
		t.Fatalf("expected the newly added pane to become active")
	}
	if len(w.Panes()) != 2 {
		t.Fatalf("expected two panes, got %d", len(w.Panes()))
	}
}

func TestWindowRemovePaneMovesFocusFirst(t *testing.T) {
	w := NewWindow("shell")
	p1 := NewPane(Location{})
	p2 := NewPane(Location{})
	_ = w.AddPane(p1, true)
	_ = w.AddPane(p2, true)

	if err := w.RemovePane(p2); err != nil {
		t.Fatalf("remove p2: %v", err)
	}
	if w.ActivePane() != p1 {
		t.Fatalf("expected focus to move to the remaining pane")
	}
	if len(w.Panes()) != 1 {
		t.Fatalf("expected one pane left, got %d", len(w.Panes()))
	}
}

func TestWindowRemovePaneUnknownErrors(t *testing.T) {
	w := NewWindow("shell")
	p1 := NewPane(Location{})
	_ = w.AddPane(p1, true)
	stray := NewPane(Location{})

	if err := w.RemovePane(stray); err == nil {
		t.Fatalf("expected an error removing a pane that was never added")
	}
}

func TestWindowFocusNextCycles(t *testing.T) {
	w := NewWindow("shell")
	p1 := NewPane(Location{})
	p2 := NewPane(Location{})
	p3 := NewPane(Location{})
	_ = w.AddPane(p1, true)
	_ = w.AddPane(p2, true)
	_ = w.AddPane(p3, true)

	w.activePane = p1
	w.FocusNext()
	if w.ActivePane() != p2 {
		t.Fatalf("expected focus to advance to p2")
	}
	w.FocusNext()
	if w.ActivePane() != p3 {
		t.Fatalf("expected focus to advance to p3")
	}
	w.FocusNext()
	if w.ActivePane() != p1 {
		t.Fatalf("expected focus to wrap back around to p1")
	}
}

func TestWindowMoveFocusFindsNeighbor(t *testing.T) {
	w := NewWindow("shell")
	left := NewPane(Location{PX: 0, PY: 0, SX: 10, SY: 10})
	right := NewPane(Location{PX: 11, PY: 0, SX: 10, SY: 10})
	w.layout.SetRoot(left)
	w.panes = []*Pane{left, right}
	w.activePane = left

	w.MoveFocus('R')
	if w.ActivePane() != right {
		t.Fatalf("expected focus to move to the pane on the right")
	}
}

func TestWindowMoveFocusNoNeighborLeavesFocusUnchanged(t *testing.T) {
	w := NewWindow("shell")
	only := NewPane(Location{PX: 0, PY: 0, SX: 10, SY: 10})
	w.panes = []*Pane{only}
	w.activePane = only

	w.MoveFocus('D')
	if w.ActivePane() != only {
		t.Fatalf("expected focus to stay put when there's nothing in that direction")
	}
}
