// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/screen.go
// Summary: Per-pane VT100/VT220 screen buffer and the govte.Performer glue
// that feeds it from a byte stream.
// Usage: One Screen per Pane; Pane.WriteOutput feeds child bytes through a
// govte.Parser into the Screen.

package texel

import (
	"github.com/cliofy/govte"
)

// Margins is the scrolling region, inclusive, zero-based.
type Margins struct {
	Top, Bottom int
}

// line is one row of the sparse screen buffer: column -> cell. Columns not
// present are implicitly blank, matching the original implementation's use
// of a defaultdict so that a resize back up reveals previously hidden text.
type line map[int]Cell

// CharDiff is a sparse row/column -> cell map describing the changed cells
// between two renders of a Screen's visible area. Rows and columns are in
// display coordinates (0-based, relative to the top visible row).
type CharDiff map[int]line

// Screen holds one pane's VT100/VT220 emulation state: the sparse character
// buffer, cursor, active modes, scroll margins, tabstops and charset
// selection. It implements govte.Performer so a govte.Parser can drive it
// directly from raw child-process bytes.
type Screen struct {
	lines, columns int

	// buffer is keyed by absolute row (display row + lineOffset), never by
	// display row directly, so that a resize which changes lineOffset
	// doesn't require rewriting every stored row.
	buffer map[int]line

	mode       modeSet
	margins    Margins
	lineOffset int

	charset            int // 0 selects g0, 1 selects g1
	g0Translate        bool
	g1Translate        bool // true selects the DEC special graphics mapping
	tabstops           map[int]struct{}

	cursor Cursor

	altScreen     map[int]line
	altScreenVars *savedScreenVars

	parser *govte.Parser
}

type savedScreenVars struct {
	mode        modeSet
	margins     Margins
	charset     int
	g0Translate bool
	g1Translate bool
	tabstops    map[int]struct{}
	cursor      Cursor
	lineOffset  int
}

// NewScreen creates a Screen of the given size, reset to its initial state.
func NewScreen(lines, columns int) *Screen {
	s := &Screen{lines: lines, columns: columns, parser: govte.NewParser()}
	s.reset()
	return s
}

// Feed parses raw bytes from the pane's child process, mutating the screen.
func (s *Screen) Feed(data []byte) {
	s.parser.Advance(s, data)
}

func (s *Screen) reset() {
	s.buffer = make(map[int]line)
	s.mode = newModeSet(privateMode(DECAWM), privateMode(DECTCEM))
	s.margins = Margins{Top: 0, Bottom: s.lines - 1}
	s.lineOffset = 0
	s.charset = 0
	s.g0Translate = false
	s.g1Translate = true
	s.tabstops = defaultTabstops(s.columns)
	s.cursor = newCursor()
}

func defaultTabstops(columns int) map[int]struct{} {
	t := make(map[int]struct{})
	for c := 8; c < columns; c += 8 {
		t[c] = struct{}{}
	}
	return t
}

func (s *Screen) row(y int) line {
	l, ok := s.buffer[y]
	if !ok {
		return nil
	}
	return l
}

func (s *Screen) cellAt(absY, x int) Cell {
	l := s.row(absY)
	if l == nil {
		return blankCell()
	}
	c, ok := l[x]
	if !ok {
		return blankCell()
	}
	return c
}

// DumpCharacterDiff returns the cells that differ from previous (a prior
// call's result, cached by the caller), or every visible cell if previous
// is nil. Rows/columns are display-relative.
func (s *Screen) DumpCharacterDiff(previous CharDiff) CharDiff {
	result := make(CharDiff)
	offset := s.lineOffset

	for y := 0; y < s.lines; y++ {
		l := s.row(y + offset)
		for x := 0; x < s.columns; x++ {
			var cell Cell
			if l != nil {
				var ok bool
				cell, ok = l[x]
				if !ok {
					cell = blankCell()
				}
			} else {
				cell = blankCell()
			}

			if previous == nil {
				result.set(y, x, cell)
				continue
			}
			prevRow, ok := previous[y]
			if !ok {
				result.set(y, x, cell)
				continue
			}
			prevCell, ok := prevRow[x]
			if !ok || !prevCell.Equal(cell) {
				result.set(y, x, cell)
			}
		}
	}
	return result
}

func (d CharDiff) set(y, x int, c Cell) {
	l, ok := d[y]
	if !ok {
		l = make(line)
		d[y] = l
	}
	l[x] = c
}

// Resize updates the screen's stored dimensions and recomputes the visible
// offset/margins so the cursor stays within the new bottom.
func (s *Screen) Resize(lines, columns int) {
	if lines > 0 {
		s.lines = lines
	}
	if columns > 0 {
		s.columns = columns
	}
	s.resetOffsetAndMargins()
}

func (s *Screen) resetOffsetAndMargins() {
	s.margins = Margins{Top: 0, Bottom: s.lines - 1}

	if len(s.buffer) == 0 {
		return
	}
	maxRow := 0
	for y := range s.buffer {
		if y > maxRow {
			maxRow = y
		}
	}
	newOffset := maxRow - s.lines + 4
	if newOffset < 0 {
		newOffset = 0
	}
	s.cursor.Y += s.lineOffset - newOffset
	s.lineOffset = newOffset
}

// CursorPos returns the cursor's current display-relative position.
func (s *Screen) CursorPos() (y, x int) { return s.cursor.Y, s.cursor.X }

// CursorHidden reports whether DECTCEM is currently reset.
func (s *Screen) CursorHidden() bool { return s.cursor.Hidden }

// ApplicationCursorKeys reports whether DECCKM (private mode 1) is set.
func (s *Screen) ApplicationCursorKeys() bool { return s.mode.has(privateMode(DECCKM)) }

// --- govte.Performer ---

var _ govte.Performer = (*Screen)(nil)

// Print handles a printable character: govte has already done UTF-8
// decoding and C0/C1 control filtering.
func (s *Screen) Print(r rune) { s.draw(r) }

func (s *Screen) draw(r rune) {
	r = s.translate(r)

	if s.cursor.X == s.columns {
		if s.mode.has(privateMode(DECAWM)) {
			s.carriageReturn()
			s.linefeed()
		} else {
			s.cursor.X--
		}
	}

	if s.mode.has(IRM) {
		s.insertCharacters(1)
	}

	cell := s.cursor.Attrs
	cell.Rune = r
	s.setChar(s.cursor.X, s.cursor.Y, cell)
	s.cursor.X++
}

func (s *Screen) setChar(x, y int, c Cell) {
	absY := y + s.lineOffset
	l, ok := s.buffer[absY]
	if !ok {
		l = make(line)
		s.buffer[absY] = l
	}
	l[x] = c
}

// Execute handles C0 control codes.
func (s *Screen) Execute(b byte) {
	switch b {
	case 0x07: // BEL
	case 0x08: // BS
		s.backspace()
	case 0x09: // HT
		s.tab()
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		s.linefeed()
	case 0x0D: // CR
		s.carriageReturn()
	case 0x0E: // SO -> select G1
		s.charset = 1
	case 0x0F: // SI -> select G0
		s.charset = 0
	}
}

func (s *Screen) Hook(params *govte.Params, intermediates []byte, ignore bool, action rune) {}
func (s *Screen) Put(b byte)                                                                {}
func (s *Screen) Unhook()                                                                   {}
func (s *Screen) OscDispatch(params [][]byte, bellTerminated bool)                          {}
