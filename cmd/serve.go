package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/controller"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/mcpserver"
	"github.com/nibzard/todo-go/internal/ui"
)

// tuiCommand launches the interactive list.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo tui", flag.ContinueOnError)
	noMouse := fs.Bool("no-mouse", false, "Disable mouse support")
	inline := fs.Bool("inline", false, "Render in the main screen instead of the alternate screen")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY (use 'todo ls' for plain output)")
	}

	return withSession(cfg, func(logger *log.Logger) error {
		return withController(cfg, logger, func(c *controller.Controller) error {
			return ui.RunTUI(ctx, c,
				ui.WithMouse(!*noMouse),
				ui.WithAltScreen(!*inline),
			)
		})
	})
}

// serveCommand serves the list as MCP tools on stdin and stdout.
func serveCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo serve", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return withSession(cfg, func(logger *log.Logger) error {
		return withController(cfg, logger, func(c *controller.Controller) error {
			return mcpserver.New(c, logger).Serve(ctx, Version, os.Stdin, os.Stdout)
		})
	})
}

// withSession opens a session log for a long-running command. Stdout and
// stderr belong to the terminal UI or the protocol, so nothing is logged
// there.
func withSession(cfg *config.Config, fn func(*log.Logger) error) error {
	session, err := logging.OpenSession(cfg.LogDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer func() { _ = session.Close() }()

	logger := logging.NewSessionLogger(session, logOptions(cfg))
	logger.Info("session started", "version", Version, "backend", cfg.Backend, "data_dir", cfg.DataDir)
	err = fn(logger)
	if err != nil {
		logger.Error("session ended", "err", err)
	} else {
		logger.Info("session ended")
	}
	return err
}
