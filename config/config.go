// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Server configuration loading from ~/.config/vtmux/config.json
// Usage: cmd/vtmux loads this once at startup; command-line flags override it.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Config holds settings a host reads before starting a session.
type Config struct {
	// Shell is the command run in each new pane. Empty means $SHELL, or
	// /bin/sh if that's unset too.
	Shell string `json:"shell"`

	// HistoryLines is a scrollback length setting. It is loaded and saved
	// but not passed to texel: a pane's scrollback is not bounded by it.
	HistoryLines int `json:"historyLines"`

	// StatusBar toggles the one-line footer a Renderer draws.
	StatusBar bool `json:"statusBar"`
}

// Default returns vtmux's built-in configuration.
func Default() *Config {
	return &Config{
		Shell:        "",
		HistoryLines: 10000,
		StatusBar:    true,
	}
}

// Load reads ~/.config/vtmux/config.json, falling back to Default if the
// file doesn't exist.
func Load() (*Config, error) {
	cfg := Default()

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("config: failed to get user config dir: %v", err)
		return cfg, nil
	}

	configPath := filepath.Join(configDir, "vtmux", "config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	log.Printf("config: loaded from %s", configPath)
	return cfg, nil
}

// Save writes c to ~/.config/vtmux/config.json.
func (c *Config) Save() error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(configDir, "vtmux")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}
