// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/log.go
// Summary: The package-level logger texel uses for operational events.
// Usage: Hosts that want logs routed elsewhere replace texel.Logger before
// creating a Session.

package texel

import "log"

// Logger receives texel's operational log lines: panes added to or closed
// in a window, and pane input write errors. Resizes are not logged. It does
// not log per-byte parsing or per-keystroke input,
// which would overwhelm it at a pane's natural mutation rate.
var Logger = log.Default()
