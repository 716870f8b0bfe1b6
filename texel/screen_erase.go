// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/screen_erase.go
// Summary: Line/display/character erase and the DECALN alignment test.
// Usage: Called from Screen.CsiDispatch for CSI J/K/X and from
// Screen.EscDispatch for ESC #8.

package texel

// eraseInLine implements EL (CSI Ps K). typeOf: 0 cursor..end, 1 start..cursor,
// 2 the entire line.
func (s *Screen) eraseInLine(typeOf int) {
	absY := s.cursor.Y + s.lineOffset
	l, ok := s.buffer[absY]
	if !ok {
		return
	}
	for col := range l {
		del := false
		switch typeOf {
		case 0:
			del = col >= s.cursor.X
		case 1:
			del = col <= s.cursor.X
		case 2:
			del = true
		}
		if del {
			delete(l, col)
		}
	}
}

// eraseInDisplay implements ED (CSI Ps J). typeOf: 0 cursor..end of screen,
// 1 start of screen..cursor, 2 the entire display.
func (s *Screen) eraseInDisplay(typeOf int) {
	var rows []int
	switch typeOf {
	case 0:
		for y := s.cursor.Y + 1; y < s.lines; y++ {
			rows = append(rows, y)
		}
	case 1:
		for y := 0; y < s.cursor.Y; y++ {
			rows = append(rows, y)
		}
	default:
		for y := 0; y < s.lines; y++ {
			rows = append(rows, y)
		}
	}

	for _, y := range rows {
		delete(s.buffer, y+s.lineOffset)
	}

	if typeOf == 0 || typeOf == 1 {
		s.eraseInLine(typeOf)
	}
}

// eraseCharacters implements ECH (CSI Ps X): erase count characters starting
// at the cursor, without shifting the remainder of the line. The original
// implementation this was ported from left this unimplemented; VT220 defines
// it as a plain erase-in-place, which is what's implemented here.
func (s *Screen) eraseCharacters(count int) {
	if count <= 0 {
		count = 1
	}
	absY := s.cursor.Y + s.lineOffset
	l, ok := s.buffer[absY]
	if !ok {
		return
	}
	end := s.cursor.X + count
	for col := s.cursor.X; col < end; col++ {
		delete(l, col)
	}
}

// alignmentDisplay implements DECALN (ESC # 8): fills the screen with 'E'
// for margin/geometry testing.
func (s *Screen) alignmentDisplay() {
	for y := 0; y < s.lines; y++ {
		l := make(line, s.columns)
		for x := 0; x < s.columns; x++ {
			l[x] = Cell{Rune: 'E', FG: DefaultFG, BG: DefaultBG}
		}
		s.buffer[y+s.lineOffset] = l
	}
}
