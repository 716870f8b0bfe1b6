// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/statusbar.go
// Summary: Status bar text, one window-name token per window plus a clock.
// Usage: Created once by NewSession as Session.StatusBar; the Renderer reads
// its text on every status bar repaint.

package texel

import (
	"fmt"
	"strings"
	"time"
)

// StatusBar renders the session's one-line footer: a list of window tokens
// on the left, a clock on the right.
type StatusBar struct {
	session *Session
	// Now, if set, overrides the clock source (for deterministic tests).
	// Left nil, time.Now is used.
	Now func() time.Time
}

func newStatusBar(s *Session) *StatusBar {
	return &StatusBar{session: s}
}

// LeftText returns the window token list, e.g. "vtmux  pid=123  [pid=456]".
func (b *StatusBar) LeftText() string {
	var tokens []string
	tokens = append(tokens, "vtmux")

	for _, w := range b.session.windows {
		name := windowToken(w)
		if b.session.activeWindow == w {
			tokens = append(tokens, "["+name+"]")
		} else {
			tokens = append(tokens, " "+name+" ")
		}
	}
	return strings.Join(tokens, " ")
}

func windowToken(w *Window) string {
	if p := w.ActivePane(); p != nil && p.ProcessID != 0 {
		return fmt.Sprintf("pid=%d", p.ProcessID)
	}
	if w.Name != "" {
		return w.Name
	}
	return "(none)"
}

// RightText returns the current timestamp in RFC3339 form.
func (b *StatusBar) RightText() string {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return now().Format(time.RFC3339)
}
