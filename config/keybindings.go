// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/keybindings.go
// Summary: Prefix-command key bindings loaded from
// ~/.config/vtmux/keybindings.yaml, kept separate from config.json since
// it's a list a user is expected to hand-edit rather than a flat settings
// blob.
// Usage: cmd/vtmux loads this and registers each binding on a
// texel.InputDispatcher.

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Binding maps one byte following the prefix key to a named action. Action
// names are resolved against a fixed table in cmd/vtmux; unknown actions are
// ignored with a warning rather than failing startup.
type Binding struct {
	Key    string `yaml:"key"`
	Action string `yaml:"action"`
}

// KeyBindings is the full list loaded from keybindings.yaml.
type KeyBindings struct {
	Bindings []Binding `yaml:"bindings"`
}

// DefaultKeyBindings mirrors libpymux's window navigation and split commands
// as prefix-key shortcuts: vertical/horizontal split, directional focus,
// next-window, and kill-pane.
func DefaultKeyBindings() *KeyBindings {
	return &KeyBindings{Bindings: []Binding{
		{Key: `"`, Action: "split-horizontal"},
		{Key: "%", Action: "split-vertical"},
		{Key: "o", Action: "focus-next"},
		{Key: "h", Action: "focus-left"},
		{Key: "j", Action: "focus-down"},
		{Key: "k", Action: "focus-up"},
		{Key: "l", Action: "focus-right"},
		{Key: "n", Action: "next-window"},
		{Key: "x", Action: "kill-pane"},
	}}
}

// LoadKeyBindings reads ~/.config/vtmux/keybindings.yaml, falling back to
// DefaultKeyBindings if the file doesn't exist.
func LoadKeyBindings() (*KeyBindings, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return DefaultKeyBindings(), nil
	}

	path := filepath.Join(configDir, "vtmux", "keybindings.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultKeyBindings(), nil
		}
		return nil, err
	}

	var kb KeyBindings
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, err
	}
	if len(kb.Bindings) == 0 {
		return DefaultKeyBindings(), nil
	}
	return &kb, nil
}
