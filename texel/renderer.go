// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/renderer.go
// Summary: An ANSI renderer implementing the Session.Renderer interface:
// emits a coalesced, diff-only byte stream for pane content, borders, the
// background fill and the status bar.
// Usage: Host constructs one ANSIRenderer per physical terminal and calls
// Session.AddRenderer; Session.Repaint drives it.

package texel

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/muesli/termenv"
)

// borderGlyphs maps the OR'd set of edges a screen cell touches to the
// Unicode box-drawing character that represents it.
var borderGlyphs = map[edgeBit]rune{
	edgeTop | edgeBottom | edgeLeft | edgeRight: '┼',
	edgeTop | edgeLeft | edgeRight:              '┴',
	edgeBottom | edgeLeft | edgeRight:           '┬',
	edgeTop | edgeBottom | edgeRight:            '├',
	edgeTop | edgeBottom | edgeLeft:             '┤',
	edgeLeft | edgeRight:                        '─',
	edgeTop | edgeBottom:                        '│',
	edgeTop | edgeLeft:                          '┘',
	edgeBottom | edgeLeft:                       '┐',
	edgeTop | edgeRight:                         '└',
	edgeBottom | edgeRight:                      '┌',
}

const borderInside edgeBit = -1

// ANSIRenderer renders a Session as a literal ANSI escape byte stream,
// writing only what changed since the last repaint.
type ANSIRenderer struct {
	out     io.Writer
	width   int
	height  int
	profile termenv.Profile

	// ActiveBorderColor is the SGR sequence written before the border
	// glyphs belonging to the active pane. Defaults to green; the original
	// hard-codes this, which is really a renderer policy, so it's exposed
	// here for hosts that want a different highlight.
	ActiveBorderColor string

	// StatusBar toggles whether Repaint ever draws the footer line, for
	// hosts whose configuration disables it outright.
	StatusBar bool

	lastWidth, lastHeight int
}

// NewANSIRenderer wraps out, sized columns x rows. profile controls how
// far 256-color SGR codes get degraded on terminals that can't show them.
func NewANSIRenderer(out io.Writer, columns, rows int, profile termenv.Profile) *ANSIRenderer {
	return &ANSIRenderer{
		out:               out,
		width:             columns,
		height:            rows,
		profile:           profile,
		ActiveBorderColor: "\x1b[0;32m",
		StatusBar:         true,
		lastWidth:         -1,
		lastHeight:        -1,
	}
}

// GetSize implements Session.Renderer.
func (r *ANSIRenderer) GetSize() (columns, rows int) { return r.width, r.height }

// Resize updates the renderer's terminal dimensions, e.g. on SIGWINCH.
func (r *ANSIRenderer) Resize(columns, rows int) { r.width, r.height = columns, rows }

// Repaint implements Session.Renderer.
func (r *ANSIRenderer) Repaint(s *Session, parts RedrawMask, diffs map[*Pane]CharDiff) {
	var buf bytes.Buffer

	if parts&RedrawClearFirst != 0 {
		buf.WriteString("\x1b[2J")
	}
	buf.WriteString("\x1b[?25l")

	activeWindow := s.ActiveWindow()

	if parts&RedrawPanes != 0 && activeWindow != nil {
		for _, p := range activeWindow.Panes() {
			r.writePaneDiff(&buf, p, diffs[p])
		}
	}

	if parts&RedrawBorders != 0 && activeWindow != nil {
		r.writeBorders(&buf, s, activeWindow)
	}

	if parts&RedrawClearFirst != 0 || r.lastWidth != r.width || r.lastHeight != r.height {
		r.writeBackground(&buf, s)
		r.lastWidth, r.lastHeight = r.width, r.height
	}

	if parts&RedrawStatusBar != 0 && r.StatusBar {
		r.writeStatusBar(&buf, s)
	}

	if p := s.ActivePane(); p != nil && !p.Screen.CursorHidden() {
		cy, cx := p.Screen.CursorPos()
		loc := p.location()
		fmt.Fprintf(&buf, "\x1b[%d;%dH", loc.PY+cy+1, loc.PX+cx+1)
		buf.WriteString("\x1b[?25h")
		if p.Screen.ApplicationCursorKeys() {
			buf.WriteString("\x1b[?1h")
		} else {
			buf.WriteString("\x1b[?1l")
		}
	}

	buf.WriteTo(r.out)
}

type sgrState struct {
	fg, bg             Color
	bold, underline, rv bool
	haveLast           bool
	lastY, lastX       int
}

func (r *ANSIRenderer) writePaneDiff(buf *bytes.Buffer, p *Pane, diff CharDiff) {
	if len(diff) == 0 {
		return
	}
	loc := p.location()

	rows := make([]int, 0, len(diff))
	for y := range diff {
		rows = append(rows, y)
	}
	sort.Ints(rows)

	buf.WriteString("\x1b[0m")
	st := sgrState{fg: DefaultFG, bg: DefaultBG}

	for _, y := range rows {
		row := diff[y]
		cols := make([]int, 0, len(row))
		for x := range row {
			cols = append(cols, x)
		}
		sort.Ints(cols)

		for _, x := range cols {
			cell := row[x]

			switch {
			case st.haveLast && y == st.lastY+1 && x == 0:
				buf.WriteString("\r\n")
			case st.haveLast && y == st.lastY && x == st.lastX+1:
				// cursor already there from the previous write
			default:
				fmt.Fprintf(buf, "\x1b[%d;%dH", loc.PY+y+1, loc.PX+x+1)
			}
			st.haveLast = true
			st.lastY, st.lastX = y, x

			r.writeSGRDiff(buf, &st, cell)
			buf.WriteRune(cell.Rune)
		}
	}
}

func (r *ANSIRenderer) writeSGRDiff(buf *bytes.Buffer, st *sgrState, cell Cell) {
	if cell.FG != st.fg {
		r.writeColorSGR(buf, cell.FG, false)
		st.fg = cell.FG
	}
	if cell.BG != st.bg {
		r.writeColorSGR(buf, cell.BG, true)
		st.bg = cell.BG
	}
	bold := cell.Attr&AttrBold != 0
	if bold != st.bold {
		if bold {
			buf.WriteString("\x1b[1m")
		} else {
			buf.WriteString("\x1b[22m")
		}
		st.bold = bold
	}
	underline := cell.Attr&AttrUnderline != 0
	if underline != st.underline {
		if underline {
			buf.WriteString("\x1b[4m")
		} else {
			buf.WriteString("\x1b[24m")
		}
		st.underline = underline
	}
	reverse := cell.Attr&AttrReverse != 0
	if reverse != st.rv {
		if reverse {
			buf.WriteString("\x1b[7m")
		} else {
			buf.WriteString("\x1b[27m")
		}
		st.rv = reverse
	}
}

// writeColorSGR renders a Color as an SGR sequence, degraded to the
// renderer's negotiated termenv.Profile: a 256-color cell sent to an
// ANSI-only terminal comes out as its nearest 16-color equivalent instead
// of an escape sequence that terminal can't interpret.
func (r *ANSIRenderer) writeColorSGR(buf *bytes.Buffer, c Color, background bool) {
	if c.Mode == ColorDefault {
		if background {
			buf.WriteString("\x1b[49m")
		} else {
			buf.WriteString("\x1b[39m")
		}
		return
	}

	var tc termenv.Color
	switch c.Mode {
	case ColorStandard:
		tc = termenv.ANSIColor(c.Value)
	case Color256:
		tc = termenv.ANSI256Color(c.Value)
	default:
		return
	}
	converted := r.profile.Convert(tc)
	if converted == nil {
		return
	}
	fmt.Fprintf(buf, "\x1b[%sm", converted.Sequence(background))
}

func (r *ANSIRenderer) writeBorders(buf *bytes.Buffer, s *Session, w *Window) {
	cols, rows := s.Size()
	active := w.ActivePane()

	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols; x++ {
			mask, isActive := checkBorderCell(w, x, y, active)
			if mask == 0 || mask == borderInside {
				continue
			}
			glyph, ok := borderGlyphs[mask]
			if !ok {
				continue
			}
			fmt.Fprintf(buf, "\x1b[%d;%dH", y+1, x+1)
			buf.WriteString("\x1b[0m")
			if isActive {
				buf.WriteString(r.ActiveBorderColor)
			}
			buf.WriteRune(glyph)
		}
	}
}

func checkBorderCell(w *Window, x, y int, active *Pane) (edgeBit, bool) {
	var mask edgeBit
	isActive := false
	for _, p := range w.Panes() {
		if p.isInside(x, y) {
			return borderInside, false
		}
		m := p.edgeMask(x, y)
		if m != 0 {
			mask |= m
			if p == active {
				isActive = true
			}
		}
	}
	return mask, isActive
}

func (r *ANSIRenderer) writeBackground(buf *bytes.Buffer, s *Session) {
	cols, rows := s.Size()
	buf.WriteString("\x1b[37m")
	buf.WriteString("\x1b[43m")
	for y := 0; y < r.height-1; y++ {
		for x := 0; x < r.width; x++ {
			if x >= cols || y >= rows {
				fmt.Fprintf(buf, "\x1b[%d;%dH.", y+1, x+1)
			}
		}
	}
}

func (r *ANSIRenderer) writeStatusBar(buf *bytes.Buffer, s *Session) {
	_, rows := s.Size()
	fmt.Fprintf(buf, "\x1b[%d;1H", rows)
	buf.WriteString("\x1b[43m\x1b[30m\x1b[1m")

	left := s.StatusBar.LeftText()
	right := s.StatusBar.RightText()
	width := r.width

	text := left
	pad := width - len(left) - len(right)
	if pad > 0 {
		text += repeatSpace(pad) + right
	}
	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		text += repeatSpace(width - len(text))
	}
	buf.WriteString(text)
}

func repeatSpace(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
