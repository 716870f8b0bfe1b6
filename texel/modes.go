// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/modes.go
// Summary: VT100/VT220 mode numbers and the mode set Screen tracks them in.
// Usage: Consumed by screen_modes.go's CSI 'h'/'l' dispatch.

package texel

// Mode numbers as carried on CSI Pm h / CSI Pm l (non-private) and
// CSI ? Pm h / CSI ? Pm l (private, DEC-prefixed) sequences.
const (
	IRM = 4 // Insert/Replace Mode — non-private.

	DECCKM  = 1  // Cursor Keys Mode (application vs normal).
	DECCOLM = 3  // 80/132 column switch.
	DECSCNM = 5  // Screen Mode: reverse video.
	DECOM   = 6  // Origin Mode.
	DECAWM  = 7  // Auto Wrap Mode.
	DECTCEM = 25 // Text Cursor Enable Mode.
	AltScreenMode1049 = 1049
)

// privateShift distinguishes a private (DEC, CSI ?) mode number from a
// non-private (ANSI, CSI) mode number carrying the same numeric value.
const privateShift = 5

// modeSet is a small set of active mode numbers, keyed by the (possibly
// shifted) mode value.
type modeSet map[int]struct{}

func newModeSet(modes ...int) modeSet {
	s := make(modeSet, len(modes))
	for _, m := range modes {
		s[m] = struct{}{}
	}
	return s
}

func (s modeSet) set(m int)      { s[m] = struct{}{} }
func (s modeSet) reset(m int)    { delete(s, m) }
func (s modeSet) has(m int) bool { _, ok := s[m]; return ok }

func privateMode(m int) int { return m << privateShift }
