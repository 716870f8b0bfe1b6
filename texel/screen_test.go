// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/screen_test.go
// Summary: Exercises VT100/VT220 parsing and screen mutation through Feed.
// Usage: Executed during `go test` to guard against regressions.

package texel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenPrintAdvancesCursor(t *testing.T) {
	s := NewScreen(5, 10)
	s.Feed([]byte("hi"))

	y, x := s.CursorPos()
	assert.Equal(t, 0, y)
	assert.Equal(t, 2, x)
	assert.Equal(t, 'h', s.cellAt(0, 0).Rune)
	assert.Equal(t, 'i', s.cellAt(0, 1).Rune)
}

func TestScreenLinefeedAndCarriageReturn(t *testing.T) {
	s := NewScreen(5, 10)
	s.Feed([]byte("ab\r\ncd"))

	assert.Equal(t, 'a', s.cellAt(0, 0).Rune)
	assert.Equal(t, 'c', s.cellAt(1, 0).Rune)
	assert.Equal(t, 'd', s.cellAt(1, 1).Rune)
}

func TestScreenAutoWrapAtRightMargin(t *testing.T) {
	s := NewScreen(4, 3)
	s.Feed([]byte("abcd"))

	y, x := s.CursorPos()
	assert.Equal(t, 1, y)
	assert.Equal(t, 1, x)
	assert.Equal(t, 'd', s.cellAt(1, 0).Rune)
}

func TestScreenCursorPositioning(t *testing.T) {
	s := NewScreen(10, 10)
	s.Feed([]byte("\x1b[5;3H"))

	y, x := s.CursorPos()
	assert.Equal(t, 4, y)
	assert.Equal(t, 2, x)
}

func TestScreenEraseInDisplay(t *testing.T) {
	s := NewScreen(3, 5)
	s.Feed([]byte("abcde\r\nfghij\r\nklmno"))
	s.Feed([]byte("\x1b[H\x1b[2J"))

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, ' ', s.cellAt(y, x).Rune, "cell %d,%d should be blanked", y, x)
		}
	}
}

func TestScreenEraseCharactersInPlace(t *testing.T) {
	s := NewScreen(1, 10)
	s.Feed([]byte("abcdef"))
	s.Feed([]byte("\x1b[3G")) // move to column 3 (1-based)
	s.Feed([]byte("\x1b[2X")) // erase 2 characters in place

	assert.Equal(t, 'a', s.cellAt(0, 0).Rune)
	assert.Equal(t, 'b', s.cellAt(0, 1).Rune)
	assert.Equal(t, ' ', s.cellAt(0, 2).Rune)
	assert.Equal(t, ' ', s.cellAt(0, 3).Rune)
	assert.Equal(t, 'e', s.cellAt(0, 4).Rune, "characters after the erased span must not shift")
}

func TestScreenSGRColorAndAttributes(t *testing.T) {
	s := NewScreen(1, 10)
	s.Feed([]byte("\x1b[1;31;44mX"))

	cell := s.cellAt(0, 0)
	assert.NotZero(t, cell.Attr&AttrBold)
	assert.Equal(t, ColorStandard, cell.FG.Mode)
	assert.Equal(t, uint8(1), cell.FG.Value)
	assert.Equal(t, ColorStandard, cell.BG.Mode)
	assert.Equal(t, uint8(4), cell.BG.Value)
}

func TestScreenSGRReset(t *testing.T) {
	s := NewScreen(1, 10)
	s.Feed([]byte("\x1b[1;31mX\x1b[0mY"))

	assert.NotZero(t, s.cellAt(0, 0).Attr&AttrBold)
	y := s.cellAt(0, 1)
	assert.Zero(t, y.Attr&AttrBold)
	assert.Equal(t, ColorDefault, y.FG.Mode)
}

func TestScreenDECAWMCanBeDisabled(t *testing.T) {
	s := NewScreen(4, 3)
	s.Feed([]byte("\x1b[?7l")) // reset DECAWM
	s.Feed([]byte("abcd"))

	y, x := s.CursorPos()
	assert.Equal(t, 0, y, "cursor must not wrap to the next line with DECAWM reset")
	assert.Equal(t, 3, x)
}

func TestScreenDECOMConstrainsCursorToMargins(t *testing.T) {
	s := NewScreen(10, 10)
	s.Feed([]byte("\x1b[3;6r")) // margins rows 3..6 (1-based)
	s.Feed([]byte("\x1b[?6h"))  // DECOM
	s.Feed([]byte("\x1b[1;1H"))

	y, _ := s.CursorPos()
	assert.Equal(t, 2, y, "origin mode should place row 1 at the top margin")
}

func TestScreenDECTCEMHidesCursor(t *testing.T) {
	s := NewScreen(5, 5)
	require.False(t, s.CursorHidden())
	s.Feed([]byte("\x1b[?25l"))
	assert.True(t, s.CursorHidden())
	s.Feed([]byte("\x1b[?25h"))
	assert.False(t, s.CursorHidden())
}

func TestScreenAltScreenSaveRestore(t *testing.T) {
	s := NewScreen(3, 5)
	s.Feed([]byte("main"))
	s.Feed([]byte("\x1b[?1049h"))
	s.Feed([]byte("\x1b[Halt"))

	assert.Equal(t, 'a', s.cellAt(0, 0).Rune, "alt screen should start blank and show its own content")

	s.Feed([]byte("\x1b[?1049l"))
	assert.Equal(t, 'm', s.cellAt(0, 0).Rune, "returning from the alt screen must restore the saved buffer")
}

func TestScreenDECCOLMResizesColumns(t *testing.T) {
	s := NewScreen(10, 80)
	s.Feed([]byte("\x1b[?3h"))
	assert.Equal(t, 132, s.columns)
	s.Feed([]byte("\x1b[?3l"))
	assert.Equal(t, 80, s.columns)
}

func TestScreenDumpCharacterDiffFirstCallReturnsEverything(t *testing.T) {
	s := NewScreen(2, 2)
	s.Feed([]byte("ab"))

	diff := s.DumpCharacterDiff(nil)
	assert.Len(t, diff, 2)
	assert.Equal(t, 'a', diff[0][0].Rune)
	assert.Equal(t, 'b', diff[0][1].Rune)
}

func TestScreenDumpCharacterDiffOnlyReportsChanges(t *testing.T) {
	s := NewScreen(1, 3)
	s.Feed([]byte("abc"))
	first := s.DumpCharacterDiff(nil)

	s.Feed([]byte("\x1b[1G")) // back to column 1
	s.Feed([]byte("z"))
	second := s.DumpCharacterDiff(first)

	require.Len(t, second, 1)
	row, ok := second[0]
	require.True(t, ok)
	require.Len(t, row, 1)
	assert.Equal(t, 'z', row[0].Rune)
}

func TestScreenAlignmentDisplayFillsWithE(t *testing.T) {
	s := NewScreen(2, 3)
	s.Feed([]byte("\x1b#8"))

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, 'E', s.cellAt(y, x).Rune)
		}
	}
}

func TestScreenTabAdvancesToNextStop(t *testing.T) {
	s := NewScreen(1, 20)
	s.Feed([]byte("\t"))
	_, x := s.CursorPos()
	assert.Equal(t, 8, x)
}

func TestScreenResizePreservesBufferContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.Feed([]byte("hello"))
	s.Resize(10, 10)

	assert.Equal(t, 'h', s.cellAt(0, 0).Rune, "resizing must not discard already-written content")
}
