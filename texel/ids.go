// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/ids.go
// Summary: Identifier types for panes and windows.
// Usage: Used by Pane, Window and Session to name their graph nodes.

package texel

import "github.com/google/uuid"

// PaneID uniquely names a Pane for the lifetime of a process.
type PaneID uuid.UUID

func newPaneID() PaneID { return PaneID(uuid.New()) }

func (id PaneID) String() string { return uuid.UUID(id).String() }

// WindowID uniquely names a Window for the lifetime of a process.
type WindowID uuid.UUID

func newWindowID() WindowID { return WindowID(uuid.New()) }

func (id WindowID) String() string { return uuid.UUID(id).String() }
