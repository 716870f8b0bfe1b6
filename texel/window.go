// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/window.go
// Summary: A window's pane set and layout tree, and focus navigation
// between its panes.
// Usage: Created with NewWindow and owned by a Session after AddWindow;
// Session commands delegate pane management here.

package texel

// Window holds one layout tree's worth of panes and tracks which of them
// currently has focus.
type Window struct {
	ID     WindowID
	Name   string
	layout Tree
	panes  []*Pane

	activePane *Pane
	session    *Session
}

// NewWindow creates an empty window. The first pane added becomes its
// layout root.
func NewWindow(name string) *Window {
	return &Window{ID: newWindowID(), Name: name}
}

func (w *Window) isActive() bool {
	return w.session != nil && w.session.activeWindow == w
}

func (w *Window) invalidate(parts RedrawMask) {
	if w.isActive() {
		w.session.Invalidate(parts)
	}
}

// ActivePane returns the window's focused pane, or nil if it has none.
func (w *Window) ActivePane() *Pane { return w.activePane }

// Panes returns the window's panes in insertion order.
func (w *Window) Panes() []*Pane { return w.panes }

// AddPane inserts pane into the layout. The first pane in a window becomes
// the tree's root; every later pane is split in alongside the current
// active pane, vertically (side by side) if vsplit is set, else stacked.
func (w *Window) AddPane(pane *Pane, vsplit bool) error {
	if w.activePane != nil {
		if err := w.layout.Split(w.activePane, pane, vsplit); err != nil {
			return err
		}
	} else {
		w.layout.SetRoot(pane)
	}
	pane.window = w
	w.panes = append(w.panes, pane)
	w.activePane = pane
	w.invalidate(RedrawAll)
	Logger.Printf("texel: window %s: added pane %s (vsplit=%v)", w.ID, pane.ID, vsplit)
	return nil
}

// RemovePane removes pane from the window, moving focus to the next pane
// first if the one being removed was active.
func (w *Window) RemovePane(pane *Pane) error {
	if len(w.panes) > 1 && w.activePane == pane {
		w.FocusNext()
	}

	idx := -1
	for i, p := range w.panes {
		if p == pane {
			idx = i
			break
		}
	}
	if idx < 0 {
		return configErrorf("remove-pane", "pane not found in window")
	}
	w.panes = append(w.panes[:idx], w.panes[idx+1:]...)
	if w.activePane == pane {
		w.activePane = nil
	}
	Logger.Printf("texel: window %s: closed pane %s", w.ID, pane.ID)
	return w.layout.Remove(pane)
}

// FocusNext cycles the active pane forward through the window's pane list.
func (w *Window) FocusNext() {
	if len(w.panes) == 0 {
		return
	}
	idx := 0
	for i, p := range w.panes {
		if p == w.activePane {
			idx = i + 1
			break
		}
	}
	w.activePane = w.panes[idx%len(w.panes)]
	w.invalidate(RedrawCursor | RedrawBorders)
}

// MoveFocus moves focus to the neighboring pane in the given direction
// ('U', 'D', 'L', 'R'), by probing two cells past the active pane's edge
// and picking the first pane (in insertion order) that contains that
// point. If no pane is found there, focus is unchanged.
func (w *Window) MoveFocus(direction rune) {
	if w.activePane == nil {
		return
	}
	loc := w.activePane.location()
	var px, py int
	switch direction {
	case 'U':
		px, py = loc.PX, loc.PY-2
	case 'D':
		px, py = loc.PX, loc.PY+loc.SY+2
	case 'L':
		px, py = loc.PX-2, loc.PY
	case 'R':
		px, py = loc.PX+loc.SX+2, loc.PY
	default:
		return
	}

	for _, p := range w.panes {
		if p.isInside(px, py) {
			w.activePane = p
			return
		}
	}
}
