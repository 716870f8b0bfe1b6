// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/invalidate.go
// Summary: The coalescing invalidation bitmask Session schedules repaints
// with.
// Usage: Passed to Session.Invalidate/Window.invalidate/Pane.invalidate and
// read back by Renderer.Repaint.

package texel

// RedrawMask is a bitmask of the parts of the display that need repainting.
// Bits are OR'd together as invalidations accumulate between repaints.
type RedrawMask int

const RedrawNothing RedrawMask = 0

const (
	RedrawCursor RedrawMask = 1 << iota
	RedrawBorders
	RedrawPanes
	RedrawStatusBar
	RedrawClearFirst
)

const RedrawAll = RedrawCursor | RedrawBorders | RedrawPanes | RedrawStatusBar | RedrawClearFirst
