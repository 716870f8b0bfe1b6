// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/screen_edit.go
// Summary: Cursor movement, scrolling and line/character insert-delete.
// Usage: Called from Screen.CsiDispatch and Screen.Execute.

package texel

func (s *Screen) cursorUp(count int) {
	if count <= 0 {
		count = 1
	}
	top := s.margins.Top
	s.cursor.Y -= count
	if s.cursor.Y < top {
		s.cursor.Y = top
	}
}

func (s *Screen) cursorDown(count int) {
	if count <= 0 {
		count = 1
	}
	bottom := s.margins.Bottom
	s.cursor.Y += count
	if s.cursor.Y > bottom {
		s.cursor.Y = bottom
	}
}

func (s *Screen) cursorForward(count int) {
	if count <= 0 {
		count = 1
	}
	s.cursor.X += count
	if s.cursor.X > s.columns-1 {
		s.cursor.X = s.columns - 1
	}
}

func (s *Screen) cursorBack(count int) {
	if count <= 0 {
		count = 1
	}
	s.cursor.X -= count
	if s.cursor.X < 0 {
		s.cursor.X = 0
	}
}

// cursorPosition implements CUP/HVP (CSI line;column H). line/column are
// 1-based as on the wire; 0 means "omitted, default to 1". When DECOM is
// set, line is relative to the top scrolling margin.
func (s *Screen) cursorPosition(lineParam, columnParam int) {
	if lineParam <= 0 {
		lineParam = 1
	}
	if columnParam <= 0 {
		columnParam = 1
	}
	y := lineParam - 1
	x := columnParam - 1

	if s.mode.has(privateMode(DECOM)) {
		y += s.margins.Top
		if y > s.margins.Bottom {
			y = s.margins.Bottom
		}
	} else if y > s.lines-1 {
		y = s.lines - 1
	}
	if x > s.columns-1 {
		x = s.columns - 1
	}
	s.cursor.Y = y
	s.cursor.X = x
}

func (s *Screen) carriageReturn() { s.cursor.X = 0 }

func (s *Screen) backspace() {
	if s.cursor.X > 0 {
		s.cursor.X--
	}
}

func (s *Screen) tab() {
	for x := s.cursor.X + 1; x < s.columns; x++ {
		if _, ok := s.tabstops[x]; ok {
			s.cursor.X = x
			return
		}
	}
	s.cursor.X = s.columns - 1
}

func (s *Screen) setTabstop() { s.tabstops[s.cursor.X] = struct{}{} }

func (s *Screen) clearTabstop(all bool) {
	if all {
		s.tabstops = make(map[int]struct{})
		return
	}
	delete(s.tabstops, s.cursor.X)
}

// index moves the cursor down one line, scrolling if at the bottom margin.
// Scrolling the full screen grows the offset (preserving history); scrolling
// a restricted region shifts rows within it and discards the top row.
func (s *Screen) index() {
	top, bottom := s.margins.Top, s.margins.Bottom

	if top == 0 && bottom == s.lines-1 {
		if s.cursor.Y == s.lines-1 {
			s.lineOffset++
		} else {
			s.cursorDown(1)
		}
		return
	}

	if s.cursor.Y == bottom {
		off := s.lineOffset
		for y := top; y < bottom; y++ {
			s.buffer[y+off] = s.buffer[y+off+1]
			delete(s.buffer, y+off+1)
		}
	} else {
		s.cursorDown(1)
	}
}

func (s *Screen) linefeed() { s.index() }

// reverseIndex moves the cursor up one line, scrolling the region down at
// the top margin.
func (s *Screen) reverseIndex() {
	top, bottom := s.margins.Top, s.margins.Bottom

	if s.cursor.Y == top {
		off := s.lineOffset
		for y := bottom; y > top; y-- {
			s.buffer[y+off] = s.buffer[y+off-1]
			delete(s.buffer, y+off-1)
		}
	} else {
		s.cursorUp(1)
	}
}

func (s *Screen) insertLines(count int) {
	if count <= 0 {
		count = 1
	}
	top, bottom := s.margins.Top, s.margins.Bottom
	if s.cursor.Y < top || s.cursor.Y > bottom {
		return
	}
	for y := bottom; y >= s.cursor.Y+count; y-- {
		s.buffer[y+s.lineOffset] = s.buffer[y+s.lineOffset-count]
		delete(s.buffer, y+s.lineOffset-count)
	}
	s.carriageReturn()
}

func (s *Screen) deleteLines(count int) {
	if count <= 0 {
		count = 1
	}
	top, bottom := s.margins.Top, s.margins.Bottom
	if s.cursor.Y < top || s.cursor.Y > bottom {
		return
	}
	for y := s.cursor.Y; y <= bottom-count; y++ {
		s.buffer[y+s.lineOffset] = s.buffer[y+s.lineOffset+count]
		delete(s.buffer, y+s.lineOffset+count)
	}
}

func (s *Screen) insertCharacters(count int) {
	if count <= 0 {
		count = 1
	}
	absY := s.cursor.Y + s.lineOffset
	l, ok := s.buffer[absY]
	if !ok || len(l) == 0 {
		return
	}
	maxCol := maxKey(l)
	for x := maxCol; x > s.cursor.X; x-- {
		l[x+count] = l[x]
		delete(l, x)
	}
}

func (s *Screen) deleteCharacters(count int) {
	if count <= 0 {
		count = 1
	}
	absY := s.cursor.Y + s.lineOffset
	l, ok := s.buffer[absY]
	if !ok || len(l) == 0 {
		return
	}
	maxCol := maxKey(l)
	for x := s.cursor.X; x < maxCol; x++ {
		if v, ok := l[x+count]; ok {
			l[x] = v
		} else {
			delete(l, x)
		}
		delete(l, x+count)
	}
}

func maxKey(l line) int {
	max := 0
	for k := range l {
		if k > max {
			max = k
		}
	}
	return max
}
