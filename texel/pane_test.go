// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/pane_test.go
// Summary: Exercises Pane border-edge classification and output feeding.
// Usage: Executed during `go test` to guard against regressions.

package texel

import "testing"

func TestPaneIsInside(t *testing.T) {
	p := NewPane(Location{PX: 5, PY: 5, SX: 10, SY: 10})
	if !p.isInside(5, 5) {
		t.Fatalf("expected the top-left content cell to be inside")
	}
	if p.isInside(4, 5) {
		t.Fatalf("expected one cell left of the pane to be outside")
	}
	if p.isInside(15, 5) {
		t.Fatalf("expected the column just past the right edge to be outside")
	}
}

func TestPaneEdgeMask(t *testing.T) {
	p := NewPane(Location{PX: 5, PY: 5, SX: 10, SY: 10})

	if mask := p.edgeMask(5, 4); mask&edgeTop == 0 {
		t.Fatalf("expected the row above the pane to carry edgeTop")
	}
	if mask := p.edgeMask(4, 5); mask&edgeLeft == 0 {
		t.Fatalf("expected the column left of the pane to carry edgeLeft")
	}
	if mask := p.edgeMask(4, 4); mask&edgeTop == 0 || mask&edgeLeft == 0 {
		t.Fatalf("expected the corner to carry both edgeTop and edgeLeft")
	}
	if mask := p.edgeMask(7, 7); mask != 0 {
		t.Fatalf("expected a cell strictly inside the pane to carry no edge bits, got %v", mask)
	}
	if mask := p.edgeMask(100, 100); mask != 0 {
		t.Fatalf("expected a cell far outside the pane to carry no edge bits")
	}
}

func TestPaneWriteOutputFeedsScreen(t *testing.T) {
	p := NewPane(Location{SX: 10, SY: 5})
	p.WriteOutput([]byte("hi"))

	if p.Screen.cellAt(0, 0).Rune != 'h' {
		t.Fatalf("expected WriteOutput to feed bytes into the pane's screen")
	}
}

func TestPaneWriteInputNoopWithoutHook(t *testing.T) {
	p := NewPane(Location{})
	p.WriteInput([]byte("abc")) // must not panic with Input unset
}

func TestPaneWriteInputForwardsToHook(t *testing.T) {
	p := NewPane(Location{})
	var got []byte
	p.Input = writerFunc(func(b []byte) (int, error) {
		got = append(got, b...)
		return len(b), nil
	})
	p.WriteInput([]byte("abc"))
	if string(got) != "abc" {
		t.Fatalf("expected WriteInput to forward to the Input hook, got %q", got)
	}
}
