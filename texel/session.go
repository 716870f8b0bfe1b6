// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/session.go
// Summary: The top-level container: windows, renderers, the coalescing
// repaint scheduler, and the handful of commands a host's input dispatcher
// invokes.
// Usage: One Session per multiplexer instance; a host creates it, attaches
// Renderers, adds Windows, and calls Repaint after each I/O iteration.

package texel

// Renderer is anything that can turn a repaint into terminal output. See
// renderer.go for the ANSI implementation.
type Renderer interface {
	Repaint(s *Session, parts RedrawMask, diffs map[*Pane]CharDiff)
	GetSize() (columns, rows int)
}

const (
	minSessionColumns = 10
	minSessionRows    = 3
)

// Session owns every window and renderer in one multiplexer instance.
type Session struct {
	renderers []Renderer
	windows   []*Window

	activeWindow *Window

	sx, sy int

	invalidated     bool
	invalidateParts RedrawMask
	lastCharBuffers map[*Pane]CharDiff

	StatusBar *StatusBar
}

// NewSession creates an empty session. At least one Window and one
// Renderer must be added before Repaint produces any output.
func NewSession() *Session {
	s := &Session{sx: 80, sy: 40}
	s.StatusBar = newStatusBar(s)
	s.Invalidate(RedrawAll)
	return s
}

// ActivePane returns the focused pane of the active window, or nil.
func (s *Session) ActivePane() *Pane {
	if s.activeWindow == nil {
		return nil
	}
	return s.activeWindow.ActivePane()
}

// ActiveWindow returns the currently focused window, or nil.
func (s *Session) ActiveWindow() *Window { return s.activeWindow }

// Windows returns the session's windows in insertion order.
func (s *Session) Windows() []*Window { return s.windows }

// AddWindow adds w, makes it active, and recomputes layout geometry.
func (s *Session) AddWindow(w *Window) {
	w.session = s
	s.activeWindow = w
	s.windows = append(s.windows, w)
	s.updateSize()
	s.Invalidate(RedrawAll)
}

// AddRenderer attaches a renderer and resizes the session to fit it.
func (s *Session) AddRenderer(r Renderer) {
	s.renderers = append(s.renderers, r)
	s.updateSize()
}

// RemoveRenderer detaches a renderer previously added with AddRenderer.
func (s *Session) RemoveRenderer(r Renderer) {
	for i, existing := range s.renderers {
		if existing == r {
			s.renderers = append(s.renderers[:i], s.renderers[i+1:]...)
			break
		}
	}
	s.updateSize()
}

// updateSize fits the layout to the smallest attached renderer, reserving
// one row for the status bar.
func (s *Session) updateSize() {
	if len(s.renderers) == 0 {
		s.sx, s.sy = 80, 40
	} else {
		first := true
		for _, r := range s.renderers {
			cols, rows := r.GetSize()
			if first || cols < s.sx {
				s.sx = cols
			}
			if first || rows < s.sy {
				s.sy = rows
			}
			first = false
		}
	}
	if s.sx < minSessionColumns {
		s.sx = minSessionColumns
	}
	if s.sy < minSessionRows {
		s.sy = minSessionRows
	}

	for _, w := range s.windows {
		w.layout.SetLocation(Location{PX: 0, PY: 0, SX: s.sx, SY: s.sy - 1})
	}
	s.Invalidate(RedrawAll)
}

// Size returns the session's current dimensions. rows includes the status
// bar row; the window layouts get rows-1.
func (s *Session) Size() (columns, rows int) { return s.sx, s.sy }

// HandleResize re-reads every attached renderer's size (a host calls this
// after a SIGWINCH-driven Renderer.Resize) and relays the new geometry to
// the layout tree.
func (s *Session) HandleResize() { s.updateSize() }

// Invalidate schedules parts of the display to be repainted on the next
// call to Repaint.
func (s *Session) Invalidate(parts RedrawMask) {
	s.invalidateParts |= parts
	s.invalidated = true
}

// Pending reports whether a repaint is scheduled.
func (s *Session) Pending() bool { return s.invalidated }

// Repaint flushes any pending invalidation to every attached renderer. It
// is a no-op if nothing is pending. Hosts call this once per event-loop
// iteration, after delivering any pending child-process or input bytes.
func (s *Session) Repaint() {
	for s.invalidated {
		parts := s.invalidateParts
		s.invalidateParts = RedrawNothing
		s.invalidated = false

		diffs := s.dumpDiffs(parts)
		for _, r := range s.renderers {
			r.Repaint(s, parts, diffs)
		}
		s.applyDiffs(diffs)

		if s.invalidateParts != RedrawNothing {
			s.invalidated = true
		}
	}
}

func (s *Session) dumpDiffs(parts RedrawMask) map[*Pane]CharDiff {
	if s.activeWindow == nil {
		return nil
	}
	diffs := make(map[*Pane]CharDiff, len(s.activeWindow.Panes()))
	for _, p := range s.activeWindow.Panes() {
		var previous CharDiff
		if parts&RedrawClearFirst == 0 {
			previous = s.lastCharBuffers[p]
		}
		diffs[p] = p.Screen.DumpCharacterDiff(previous)
	}
	return diffs
}

func (s *Session) applyDiffs(diffs map[*Pane]CharDiff) {
	if len(diffs) == 0 {
		return
	}
	if s.lastCharBuffers == nil {
		s.lastCharBuffers = make(map[*Pane]CharDiff)
	}
	for p, d := range diffs {
		merged := s.lastCharBuffers[p]
		if merged == nil {
			merged = make(CharDiff)
		}
		for y, row := range d {
			for x, c := range row {
				merged.set(y, x, c)
			}
		}
		s.lastCharBuffers[p] = merged
	}
}

// --- Commands, invoked by a host's input dispatcher ---

// SendInputToActivePane forwards data to the active pane's child process.
func (s *Session) SendInputToActivePane(data []byte) {
	if p := s.ActivePane(); p != nil {
		p.WriteInput(data)
	}
}

// FocusNextWindow cycles the active window forward.
func (s *Session) FocusNextWindow() {
	if s.activeWindow == nil || len(s.windows) == 0 {
		return
	}
	idx := 0
	for i, w := range s.windows {
		if w == s.activeWindow {
			idx = i + 1
			break
		}
	}
	s.activeWindow = s.windows[idx%len(s.windows)]
	s.Invalidate(RedrawAll)
}

// KillActivePane terminates the active pane's child process, if wired.
func (s *Session) KillActivePane() error {
	p := s.ActivePane()
	if p == nil || p.Kill == nil {
		return nil
	}
	return p.Kill()
}

// ResizeCurrentTile grows/shrinks the active pane's split in direction by
// amount ('U'/'D'/'L'/'R').
func (s *Session) ResizeCurrentTile(direction rune, amount int) {
	p := s.ActivePane()
	if p == nil {
		return
	}
	p.resizeTile(direction, amount)
	s.Invalidate(RedrawAll)
}

// MoveFocus moves focus to the neighboring pane in direction.
func (s *Session) MoveFocus(direction rune) {
	if s.activeWindow == nil {
		return
	}
	s.activeWindow.MoveFocus(direction)
	s.Invalidate(RedrawCursor | RedrawBorders)
}
