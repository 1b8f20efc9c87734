// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/controller"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/storage"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todo CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "add":
		return addCommand(cfg, remainingArgs)
	case "ls", "list":
		return lsCommand(cfg, remainingArgs)
	case "toggle", "done":
		return toggleCommand(cfg, remainingArgs)
	case "rm", "delete":
		return rmCommand(cfg, remainingArgs)
	case "edit":
		return editCommand(cfg, remainingArgs)
	case "clear":
		return clearCommand(cfg, remainingArgs)
	case "mv", "move":
		return mvCommand(cfg, remainingArgs)
	case "doctor":
		return doctorCommand(cws, remainingArgs)
	case "serve":
		return serveCommand(ctx, cfg, remainingArgs)
	case "tail":
		return tailCommand(ctx, cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("todo version %s\n", Version)
	return nil
}

// logOptions maps the logging section of cfg onto logging.Options.
func logOptions(cfg *config.Config) logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	opts.Format = cfg.LogFormat
	opts.Timestamps = cfg.LogTimestamps
	opts.Caller = cfg.LogCaller
	return opts
}

// cliLogger is the stderr logger used by one-shot commands.
func cliLogger(cfg *config.Config) *log.Logger {
	return logging.New(os.Stderr, logOptions(cfg))
}

// openStore opens the configured backend. The caller closes the returned KV.
func openStore(cfg *config.Config) (storage.KV, *storage.TaskStore, error) {
	kv, err := storage.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}
	return kv, storage.NewTaskStore(kv, cfg.StorageKey), nil
}

// withController opens the store, loads the list and calls fn with a
// controller over it.
func withController(cfg *config.Config, logger *log.Logger, fn func(*controller.Controller) error) error {
	kv, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = kv.Close() }()

	ctrl, err := controller.New(store, controller.Options{
		Reorder: cfg.Reorder,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	return fn(ctrl)
}

// printUsage prints usage information.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Todo - A single-user task list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todo [options] [command] [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                     Launch the interactive list (default command)")
	fmt.Fprintln(w, "  add <text...>           Add a task to the top of the list")
	fmt.Fprintln(w, "  ls [filter]             List tasks (all|active|completed)")
	fmt.Fprintln(w, "  toggle <id>             Flip a task between active and completed")
	fmt.Fprintln(w, "  rm <id>                 Remove a task")
	fmt.Fprintln(w, "  edit <id> <text...>     Replace the text of a task")
	fmt.Fprintln(w, "  clear                   Remove every completed task")
	fmt.Fprintln(w, "  mv <source> <dest>      Move a task to the position of another")
	fmt.Fprintln(w, "  doctor                  Check config, storage, and the stored list")
	fmt.Fprintln(w, "  serve                   Serve the list as MCP tools on stdio")
	fmt.Fprintln(w, "  tail                    Tail the latest session log")
	fmt.Fprintln(w, "  config                  Show the effective configuration")
	fmt.Fprintln(w, "  version                 Show version information")
	fmt.Fprintln(w, "  help                    Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ids may be given as any unique prefix of the full id.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -filter string")
	fmt.Fprintln(w, "        Which tasks to show (all|active|completed)")
	fmt.Fprintln(w, "  -format string")
	fmt.Fprintln(w, "        Output format (text|json|yaml) (default \"text\")")
	fmt.Fprintln(w, "  -v    Show full ids and creation times")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tui Options:")
	fmt.Fprintln(w, "  -no-mouse")
	fmt.Fprintln(w, "        Disable mouse support")
	fmt.Fprintln(w, "  -inline")
	fmt.Fprintln(w, "        Render in the main screen instead of the alternate screen")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options:")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example configuration file")
}
