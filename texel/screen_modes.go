// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/screen_modes.go
// Summary: CSI/ESC dispatch entry points, and DEC private/ANSI mode
// set/reset side effects (DECCOLM, DECOM, DECSCNM, DECTCEM, alt screen).
// Usage: Wired as the govte.Performer CsiDispatch/EscDispatch methods.

package texel

import "github.com/cliofy/govte"

func flattenParams(p *govte.Params) []int {
	groups := p.Iter()
	var out []int
	for _, g := range groups {
		for _, v := range g {
			out = append(out, int(v))
		}
	}
	return out
}

func paramAt(params []int, idx int) int {
	if idx < len(params) {
		return params[idx]
	}
	return 0
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func hasIntermediate(intermediates []byte, b byte) bool {
	for _, c := range intermediates {
		if c == b {
			return true
		}
	}
	return false
}

// CsiDispatch implements govte.Performer: routes a finished CSI sequence to
// the matching screen operation.
func (s *Screen) CsiDispatch(params *govte.Params, intermediates []byte, ignore bool, action rune) {
	if ignore {
		return
	}
	private := hasIntermediate(intermediates, '?')
	flat := flattenParams(params)

	switch action {
	case 'A':
		s.cursorUp(paramAt(flat, 0))
	case 'B', 'e':
		s.cursorDown(paramAt(flat, 0))
	case 'C', 'a':
		s.cursorForward(paramAt(flat, 0))
	case 'D':
		s.cursorBack(paramAt(flat, 0))
	case 'G':
		col := paramAt(flat, 0)
		if col <= 0 {
			col = 1
		}
		s.cursor.X = minInt(col-1, s.columns-1)
	case 'H', 'f':
		s.cursorPosition(paramAt(flat, 0), paramAt(flat, 1))
	case 'J':
		s.eraseInDisplay(paramAt(flat, 0))
	case 'K':
		s.eraseInLine(paramAt(flat, 0))
	case 'L':
		s.insertLines(paramAt(flat, 0))
	case 'M':
		s.deleteLines(paramAt(flat, 0))
	case 'P':
		s.deleteCharacters(paramAt(flat, 0))
	case '@':
		s.insertCharacters(paramAt(flat, 0))
	case 'X':
		s.eraseCharacters(paramAt(flat, 0))
	case 'm':
		s.selectGraphicRendition(flat)
	case 'h':
		s.setMode(flat, private)
	case 'l':
		s.resetMode(flat, private)
	case 'r':
		s.setMargins(paramAt(flat, 0), paramAt(flat, 1))
	case 'g':
		s.clearTabstop(paramAt(flat, 0) == 3)
	}
}

// EscDispatch implements govte.Performer: routes a finished ESC sequence.
func (s *Screen) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if ignore {
		return
	}
	switch {
	case len(intermediates) == 0 && b == 'D':
		s.index()
	case len(intermediates) == 0 && b == 'M':
		s.reverseIndex()
	case len(intermediates) == 0 && b == 'E':
		s.carriageReturn()
		s.linefeed()
	case len(intermediates) == 0 && b == 'H':
		s.setTabstop()
	case len(intermediates) == 0 && b == 'c':
		s.reset()
	case hasIntermediate(intermediates, '(') && (b == 'B' || b == '0'):
		s.designateCharset('(', b)
	case hasIntermediate(intermediates, ')') && (b == 'B' || b == '0'):
		s.designateCharset(')', b)
	case hasIntermediate(intermediates, '#') && b == '8':
		s.alignmentDisplay()
	}
}

// setMargins implements DECSTBM (CSI top;bottom r), 1-based and inclusive.
func (s *Screen) setMargins(top, bottom int) {
	if top <= 0 {
		top = 1
	}
	if bottom <= 0 || bottom > s.lines {
		bottom = s.lines
	}
	if top >= bottom {
		return
	}
	s.margins = Margins{Top: top - 1, Bottom: bottom - 1}
	s.cursorPosition(1, 1)
}

// setMode implements SM/DECSET: raw mode numbers as they arrived on the
// wire, shifted into the private namespace first when private is true.
func (s *Screen) setMode(nums []int, private bool) {
	shifted := make([]int, len(nums))
	for i, m := range nums {
		if private {
			shifted[i] = privateMode(m)
		} else {
			shifted[i] = m
		}
	}
	for _, m := range shifted {
		s.mode.set(m)
	}

	has := func(raw int) bool {
		target := raw
		if private {
			target = privateMode(raw)
		}
		return containsInt(shifted, target)
	}

	if has(DECCOLM) {
		s.Resize(s.lines, 132)
		s.eraseInDisplay(2)
		s.cursorPosition(1, 1)
	}
	if has(DECOM) {
		s.cursorPosition(1, 1)
	}
	if has(DECSCNM) {
		s.reverseVideo(true)
	}
	if has(DECTCEM) {
		s.cursor.Hidden = false
	}
	if private && containsInt(nums, AltScreenMode1049) {
		s.enterAltScreen()
	}
}

// resetMode implements RM/DECRST, mirroring setMode's side effects.
func (s *Screen) resetMode(nums []int, private bool) {
	for _, m := range nums {
		if private {
			s.mode.reset(privateMode(m))
		} else {
			s.mode.reset(m)
		}
	}

	contains := func(raw int) bool { return containsInt(nums, raw) }

	if contains(DECCOLM) {
		s.Resize(s.lines, 80)
		s.eraseInDisplay(2)
		s.cursorPosition(1, 1)
	}
	if contains(DECOM) {
		s.cursorPosition(1, 1)
	}
	if contains(DECSCNM) {
		s.reverseVideo(false)
	}
	if contains(DECTCEM) {
		s.cursor.Hidden = true
	}
	if private && contains(AltScreenMode1049) {
		s.exitAltScreen()
	}
}
