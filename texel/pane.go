// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/pane.go
// Summary: A single tiled leaf: owns a Screen and the border geometry the
// Renderer queries to draw box-drawing glyphs around it.
// Usage: Created with NewPane and inserted with Window.AddPane; fed
// child-process bytes via WriteOutput,
// forwards keystrokes to the child via WriteInput.

package texel


// edgeBit names which side of a pane's one-cell border band a screen
// coordinate falls on. These values are combined with bitwise OR, and two
// adjacent panes sharing a border cell will usually each contribute a
// different bit, which is exactly how the renderer decides which
// box-drawing glyph to draw there.
type edgeBit int

const (
	edgeTop edgeBit = 1 << iota
	edgeBottom
	edgeLeft
	edgeRight
)

// Pane is a leaf of the layout tree: a rectangle on screen backed by one
// Screen and one child process. Pane never has children; it has no method
// to add one.
type Pane struct {
	ID PaneID

	loc Location
	par *splitNode

	Screen *Screen
	window *Window

	// Input receives bytes typed into this pane for delivery to its child
	// process. Left nil, WriteInput is a no-op — wiring a real PTY is the
	// host's job, not texel's.
	Input interface{ Write([]byte) (int, error) }

	// OnChildExit, if set, is invoked by the host when the pane's child
	// process exits or its output can no longer be read.
	OnChildExit func(*ChildProcessError)

	// Kill, if set, terminates the pane's child process. Left nil,
	// Session.KillActivePane is a no-op for this pane.
	Kill func() error

	// ProcessID is the child process's OS pid, set by the host once known.
	// Zero means unknown; the status bar falls back to the window's name.
	ProcessID int
}

// NewPane creates a pane sized to loc with a freshly reset Screen.
func NewPane(loc Location) *Pane {
	return &Pane{
		ID:     newPaneID(),
		loc:    loc,
		Screen: NewScreen(loc.SY, loc.SX),
	}
}

func (p *Pane) location() Location             { return p.loc }
func (p *Pane) parentContainer() *splitNode    { return p.par }
func (p *Pane) setParentContainer(c *splitNode) { p.par = c }

func (p *Pane) setLocation(loc Location) {
	p.loc = loc
	p.Screen.Resize(loc.SY, loc.SX)
	p.invalidate(RedrawPanes)
}

// resize exists to satisfy Node; a leaf has nothing below it to lay out.
func (p *Pane) resize() {}

// resizeTile delegates up the tree: a leaf has no sizes of its own to
// adjust, it can only ask its container to grow or shrink it.
func (p *Pane) resizeTile(direction rune, amount int) {
	if p.par != nil {
		p.par.resizeTile(direction, amount)
	}
}

// WriteOutput feeds child-process bytes into the pane's screen and
// schedules a repaint of this pane.
func (p *Pane) WriteOutput(data []byte) {
	p.Screen.Feed(data)
	p.invalidate(RedrawPanes)
}

// WriteInput forwards keystrokes to the pane's child process, if wired.
func (p *Pane) WriteInput(data []byte) {
	if p.Input == nil {
		return
	}
	if _, err := p.Input.Write(data); err != nil {
		Logger.Printf("texel: pane %s: write input: %v", p.ID, err)
	}
}

func (p *Pane) invalidate(parts RedrawMask) {
	if p.window != nil && p.window.isActive() {
		p.window.invalidate(parts)
	}
}

// isInside reports whether (x, y) is strictly within the pane's content
// rectangle (not its border band).
func (p *Pane) isInside(x, y int) bool {
	return x >= p.loc.PX && x < p.loc.PX+p.loc.SX && y >= p.loc.PY && y < p.loc.PY+p.loc.SY
}

// edgeMask returns the OR of every border edge (x, y) sits on, or 0 if the
// cell is neither inside the pane nor on its one-cell border band.
func (p *Pane) edgeMask(x, y int) edgeBit {
	px, py, sx, sy := p.loc.PX, p.loc.PY, p.loc.SX, p.loc.SY
	if x < px-1 || x > px+sx || y < py-1 || y > py+sy {
		return 0
	}
	var mask edgeBit
	if y == py-1 {
		mask |= edgeTop
	}
	if y == py+sy {
		mask |= edgeBottom
	}
	if x == px-1 {
		mask |= edgeLeft
	}
	if x == px+sx {
		mask |= edgeRight
	}
	return mask
}
