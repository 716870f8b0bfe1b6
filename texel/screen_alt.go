// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/screen_alt.go
// Summary: Alternate screen (private mode 1049) save/restore.
// Usage: Called from Screen.setMode/resetMode.

package texel

// enterAltScreen snapshots the buffer and the swap-set of fields private
// mode 1049 is defined over, then resets the screen to a blank primary
// state for the alternate-screen application to draw into.
func (s *Screen) enterAltScreen() {
	s.altScreen = s.buffer
	s.altScreenVars = &savedScreenVars{
		mode:        s.mode,
		margins:     s.margins,
		charset:     s.charset,
		g0Translate: s.g0Translate,
		g1Translate: s.g1Translate,
		tabstops:    s.tabstops,
		cursor:      s.cursor,
		lineOffset:  s.lineOffset,
	}
	s.reset()
	s.resetOffsetAndMargins()
}

// exitAltScreen restores the primary screen saved by enterAltScreen. A
// stray reset-mode 1049 with no matching set-mode is a no-op.
func (s *Screen) exitAltScreen() {
	if s.altScreenVars == nil {
		return
	}
	v := s.altScreenVars
	s.mode = v.mode
	s.margins = v.margins
	s.charset = v.charset
	s.g0Translate = v.g0Translate
	s.g1Translate = v.g1Translate
	s.tabstops = v.tabstops
	s.cursor = v.cursor
	s.lineOffset = v.lineOffset
	s.buffer = s.altScreen

	s.altScreen = nil
	s.altScreenVars = nil
	s.resetOffsetAndMargins()
}
