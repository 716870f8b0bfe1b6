// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/screen_sgr.go
// Summary: SGR (Select Graphic Rendition) attribute handling and G0/G1
// charset translation.
// Usage: Called from Screen.CsiDispatch (CSI Pm m) and Screen.draw.

package texel

// selectGraphicRendition applies a flattened list of SGR parameters to the
// cursor's pending attributes, in wire order. 256-color and the aixterm
// bright 90-99/100-109 ranges are supported; true color is not.
func (s *Screen) selectGraphicRendition(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}

	i := 0
	for i < len(params) {
		attr := params[i]
		i++

		switch {
		case attr == 0:
			s.cursor.Attrs.FG = DefaultFG
			s.cursor.Attrs.BG = DefaultBG
			s.cursor.Attrs.Attr = 0
		case attr == 1:
			s.cursor.Attrs.Attr |= AttrBold
		case attr == 22:
			s.cursor.Attrs.Attr &^= AttrBold
		case attr == 4:
			s.cursor.Attrs.Attr |= AttrUnderline
		case attr == 24:
			s.cursor.Attrs.Attr &^= AttrUnderline
		case attr == 7:
			s.cursor.Attrs.Attr |= AttrReverse
		case attr == 27:
			s.cursor.Attrs.Attr &^= AttrReverse
		case attr >= 30 && attr <= 37:
			s.cursor.Attrs.FG = Color{Mode: ColorStandard, Value: uint8(attr - 30)}
		case attr == 39:
			s.cursor.Attrs.FG = DefaultFG
		case attr >= 40 && attr <= 47:
			s.cursor.Attrs.BG = Color{Mode: ColorStandard, Value: uint8(attr - 40)}
		case attr == 49:
			s.cursor.Attrs.BG = DefaultBG
		case attr >= 90 && attr <= 99:
			// aixterm bright foreground, extended here to the full 90-99
			// range (see the supplemented-features note on bright colors).
			s.cursor.Attrs.FG = Color{Mode: ColorStandard, Value: uint8(8 + attr - 90)}
		case attr >= 100 && attr <= 109:
			s.cursor.Attrs.BG = Color{Mode: ColorStandard, Value: uint8(8 + attr - 100)}
		case attr == 38 || attr == 48:
			if i >= len(params) || params[i] != 5 {
				return
			}
			i++
			if i >= len(params) {
				return
			}
			idx := params[i]
			i++
			if attr == 38 {
				s.cursor.Attrs.FG = Color{Mode: Color256, Value: uint8(idx)}
			} else {
				s.cursor.Attrs.BG = Color{Mode: Color256, Value: uint8(idx)}
			}
		}
	}
}

// reverseVideo toggles AttrReverse on every stored cell, used by DECSCNM.
func (s *Screen) reverseVideo(on bool) {
	for _, l := range s.buffer {
		for col, c := range l {
			if on {
				c.Attr |= AttrReverse
			} else {
				c.Attr &^= AttrReverse
			}
			l[col] = c
		}
	}
	if on {
		s.selectGraphicRendition([]int{7})
	} else {
		s.selectGraphicRendition([]int{27})
	}
}

// decSpecialGraphics is a subset of the VT100 DEC Special Character and Line
// Drawing Set, keyed by the ASCII byte it replaces when the active charset
// (G0 or G1) is designated as special graphics. Bytes not listed here pass
// through unchanged.
var decSpecialGraphics = map[rune]rune{
	'`': '◆',
	'a': '▒',
	'f': '°',
	'g': '±',
	'j': '┘',
	'k': '┐',
	'l': '┌',
	'm': '└',
	'n': '┼',
	'q': '─',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'x': '│',
	'~': '·',
}

func (s *Screen) translate(r rune) rune {
	useG1 := s.charset == 1
	translate := s.g0Translate
	if useG1 {
		translate = s.g1Translate
	}
	if !translate {
		return r
	}
	if mapped, ok := decSpecialGraphics[r]; ok {
		return mapped
	}
	return r
}

// designateCharset handles ESC ( X / ESC ) X charset designation. which
// selects G0 (intermediate '(') or G1 (intermediate ')'); X selects the
// ASCII set ('B') or the DEC special graphics set ('0').
func (s *Screen) designateCharset(which byte, final byte) {
	translate := final == '0'
	switch which {
	case '(':
		s.g0Translate = translate
	case ')':
		s.g1Translate = translate
	}
}
