// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todo-go/internal/controller"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	mouse     bool
	altScreen bool
	input     io.Reader
	output    io.Writer
}

// WithMouse enables mouse support: click a checkbox to toggle, drag a row to
// reorder.
func WithMouse(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.mouse = enabled
	}
}

// WithAltScreen runs the TUI in the terminal's alternate screen.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithIO replaces stdin and stdout. The TTY check is skipped.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

// RunTUI runs the interactive list over ctrl until the user quits or ctx
// is cancelled.
func RunTUI(ctx context.Context, ctrl *controller.Controller, opts ...TUIOption) error {
	c := &tuiConfig{
		mouse:     true,
		altScreen: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.output == nil && !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if c.mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if c.input != nil {
		programOpts = append(programOpts, tea.WithInput(c.input))
	}
	if c.output != nil {
		programOpts = append(programOpts, tea.WithOutput(c.output))
	}

	program := tea.NewProgram(newTUIModel(ctrl), programOpts...)
	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
