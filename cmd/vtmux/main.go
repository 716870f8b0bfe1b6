// Copyright © 2026 vtmux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vtmux/main.go
// Summary: Implements the reference host: PTY-backed panes, raw-mode
// terminal setup, SIGWINCH handling, and CLI flags around a texel.Session.
// Usage: Executed by operators to run a multiplexer against their real
// terminal.

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vtmux/vtmux/config"
	"github.com/vtmux/vtmux/texel"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "vtmux",
		Short: "A terminal multiplexer library's reference host",
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the vtmux version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCommand() *cobra.Command {
	var shellFlag string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start a multiplexer session against the current terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(shellFlag)
		},
	}
	cmd.Flags().StringVar(&shellFlag, "shell", "", "shell command for the first pane (overrides config and $SHELL)")
	return cmd
}

func run(shellFlag string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("vtmux run requires an interactive terminal on stdin")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if shellFlag != "" {
		cfg.Shell = shellFlag
	}
	shellCmd := cfg.Shell
	if shellCmd == "" {
		shellCmd = os.Getenv("SHELL")
	}
	if shellCmd == "" {
		shellCmd = "/bin/sh"
	}

	kb, err := config.LoadKeyBindings()
	if err != nil {
		return fmt.Errorf("load key bindings: %w", err)
	}

	paneOutput := make(chan paneBytes, 64)

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 80, 24
	}

	profile := termenv.ColorProfile()
	renderer := texel.NewANSIRenderer(os.Stdout, cols, rows, profile)
	renderer.StatusBar = cfg.StatusBar

	session := texel.NewSession()
	session.AddRenderer(renderer)

	window := texel.NewWindow("main")
	session.AddWindow(window)

	firstPane, err := spawnPane(session, window, shellCmd, paneOutput)
	if err != nil {
		return fmt.Errorf("spawn shell: %w", err)
	}
	if err := window.AddPane(firstPane, true); err != nil {
		return fmt.Errorf("add pane: %w", err)
	}

	dispatcher := texel.NewInputDispatcher(session)
	wireKeyBindings(dispatcher, session, window, shellCmd, kb, paneOutput)

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)

	stdin := make(chan []byte)
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				stdin <- chunk
			}
			if err != nil {
				close(stdin)
				return
			}
		}
	}()

	// texel.Session is single-threaded: every mutation and Repaint happens
	// on this one goroutine, the same way a host driving the original
	// asyncio event loop would only ever touch it from that loop. PTY
	// readers and the stdin reader run on their own goroutines purely
	// because those Read calls block; they hand bytes off through channels
	// instead of touching the session themselves.
	session.Repaint()
	for {
		select {
		case chunk, ok := <-stdin:
			if !ok {
				return nil
			}
			dispatcher.ProcessInput(chunk)
			session.Repaint()
		case out := <-paneOutput:
			if out.err != nil {
				if out.pane.OnChildExit != nil {
					out.pane.OnChildExit(&texel.ChildProcessError{PaneID: out.pane.ID, Err: out.err})
				}
				session.Repaint()
				continue
			}
			out.pane.WriteOutput(out.data)
			session.Repaint()
		case <-sigwinch:
			cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				continue
			}
			renderer.Resize(cols, rows)
			session.HandleResize()
			session.Repaint()
		}
	}
}

// paneBytes carries PTY output (or its terminal read error) from a pane's
// background reader goroutine to the single goroutine that owns the
// session.
type paneBytes struct {
	pane *texel.Pane
	data []byte
	err  error
}

// spawnPane forks shellCmd behind a PTY and wires its lifecycle into a new
// Pane: bytes read from the PTY are sent to out for the main loop to feed
// into the pane's screen, input typed into the pane is written back to the
// PTY directly, the process is reachable through Kill and ProcessID, and
// exit (however it happens) removes the pane from window and repaints.
func spawnPane(s *texel.Session, w *texel.Window, shellCmd string, out chan<- paneBytes) (*texel.Pane, error) {
	c := exec.Command(shellCmd)
	ptmx, err := pty.Start(c)
	if err != nil {
		return nil, err
	}

	pane := texel.NewPane(texel.Location{})
	pane.Input = ptmx
	pane.ProcessID = c.Process.Pid
	pane.Kill = func() error { return c.Process.Kill() }
	pane.OnChildExit = func(err *texel.ChildProcessError) {
		if rmErr := w.RemovePane(pane); rmErr != nil {
			texel.Logger.Printf("vtmux: pane %s: remove after exit: %v", pane.ID, rmErr)
		}
		s.Invalidate(texel.RedrawAll)
	}

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				out <- paneBytes{pane: pane, data: data}
			}
			if err != nil {
				if err != io.EOF {
					texel.Logger.Printf("vtmux: pane %s: pty read: %v", pane.ID, err)
				}
				ptmx.Close()
				out <- paneBytes{pane: pane, err: err}
				return
			}
		}
	}()

	return pane, nil
}

// wireKeyBindings translates each configured binding into a session command,
// resolved against a fixed table of action names.
func wireKeyBindings(d *texel.InputDispatcher, s *texel.Session, w *texel.Window, shellCmd string, kb *config.KeyBindings, paneOutput chan<- paneBytes) {
	split := func(vsplit bool) {
		active := w.ActivePane()
		if active == nil {
			return
		}
		np, err := spawnPane(s, w, shellCmd, paneOutput)
		if err != nil {
			texel.Logger.Printf("vtmux: split: spawn pane: %v", err)
			return
		}
		if err := w.AddPane(np, vsplit); err != nil {
			texel.Logger.Printf("vtmux: split: add pane: %v", err)
		}
	}

	actions := map[string]func(){
		"split-horizontal": func() { split(false) },
		"split-vertical":   func() { split(true) },
		"focus-next":       w.FocusNext,
		"focus-left":       func() { s.MoveFocus('L') },
		"focus-down":       func() { s.MoveFocus('D') },
		"focus-up":         func() { s.MoveFocus('U') },
		"focus-right":      func() { s.MoveFocus('R') },
		"next-window":      s.FocusNextWindow,
		"kill-pane": func() {
			if err := s.KillActivePane(); err != nil {
				texel.Logger.Printf("vtmux: kill pane: %v", err)
			}
		},
	}

	for _, b := range kb.Bindings {
		if len(b.Key) != 1 {
			texel.Logger.Printf("vtmux: key binding %q: keys must be a single byte, skipping", b.Key)
			continue
		}
		fn, ok := actions[b.Action]
		if !ok {
			texel.Logger.Printf("vtmux: key binding %q: unknown action %q, skipping", b.Key, b.Action)
			continue
		}
		d.Bind(b.Key[0], fn)
	}
}
