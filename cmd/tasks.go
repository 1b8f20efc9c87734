package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/controller"
	"github.com/nibzard/todo-go/internal/todo"
)

// addCommand adds one task built from the remaining arguments.
func addCommand(cfg *config.Config, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("usage: todo add <text...>")
	}
	return withController(cfg, cliLogger(cfg), func(c *controller.Controller) error {
		if _, err := c.Dispatch(todo.Add(text)); err != nil {
			return err
		}
		added := c.State().Tasks[0]
		fmt.Printf("Added %s\n", added.Line())
		return nil
	})
}

// lsCommand prints the tasks visible under a filter.
func lsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo ls", flag.ContinueOnError)
	filterArg := fs.String("filter", "", "Which tasks to show (all|active|completed)")
	format := fs.String("format", "text", "Output format (text|json|yaml)")
	verbose := fs.Bool("v", false, "Show full ids and creation times")

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) >= 1 && *filterArg == "" {
		*filterArg = remaining[0]
		remaining = remaining[1:]
	}
	if len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}
	filter, err := todo.ParseFilter(*filterArg)
	if err != nil {
		return err
	}

	return withController(cfg, cliLogger(cfg), func(c *controller.Controller) error {
		view := todo.Project(c.State().Tasks, filter)
		return printView(os.Stdout, view, *format, *verbose)
	})
}

// printView writes the visible tasks of v in the given format.
func printView(w io.Writer, v todo.View, format string, verbose bool) error {
	switch strings.ToLower(format) {
	case "", "text":
		if !verbose {
			_, err := io.WriteString(w, v.Text())
			return err
		}
		if len(v.Visible) == 0 {
			fmt.Fprintln(w, v.EmptyMessage())
		}
		for _, t := range v.Visible {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(w, "[%s] %s  %s  (created %s)\n", mark, t.ID, t.Text, t.CreatedAt.Local().Format(time.DateTime))
		}
		if v.Total > 0 {
			fmt.Fprintln(w, v.Summary())
		}
		return nil
	case "json":
		data, err := json.MarshalIndent(v.Visible, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v.Visible); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (expected text|json|yaml)", format)
	}
}

// toggleCommand flips one task between active and completed.
func toggleCommand(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: todo toggle <id>")
	}
	return withController(cfg, cliLogger(cfg), func(c *controller.Controller) error {
		id, err := c.Resolve(args[0])
		if err != nil {
			return idError(args[0], err)
		}
		if _, err := c.Dispatch(todo.Toggle(id)); err != nil {
			return err
		}
		task, _ := c.State().GetTask(id)
		fmt.Println(task.Line())
		return nil
	})
}

// rmCommand removes one task.
func rmCommand(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: todo rm <id>")
	}
	return withController(cfg, cliLogger(cfg), func(c *controller.Controller) error {
		id, err := c.Resolve(args[0])
		if err != nil {
			return idError(args[0], err)
		}
		task, _ := c.State().GetTask(id)
		if _, err := c.Dispatch(todo.Delete(id)); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", task.Line())
		return nil
	})
}

// editCommand replaces the text of one task. Blank text leaves it unchanged.
func editCommand(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: todo edit <id> <text...>")
	}
	text := strings.Join(args[1:], " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text must not be blank")
	}
	return withController(cfg, cliLogger(cfg), func(c *controller.Controller) error {
		id, err := c.Resolve(args[0])
		if err != nil {
			return idError(args[0], err)
		}
		if _, err := c.Dispatch(todo.StartEdit(id, text)); err != nil {
			return err
		}
		if _, err := c.Dispatch(todo.CommitEdit()); err != nil {
			return err
		}
		task, _ := c.State().GetTask(id)
		fmt.Println(task.Line())
		return nil
	})
}

// clearCommand removes every completed task.
func clearCommand(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return withController(cfg, cliLogger(cfg), func(c *controller.Controller) error {
		n := c.View().CompletedCount
		if _, err := c.Dispatch(todo.ClearCompleted()); err != nil {
			return err
		}
		fmt.Printf("Cleared %d completed %s\n", n, plural(n, "task", "tasks"))
		return nil
	})
}

// mvCommand moves a task to the position held by another task in the full
// list.
func mvCommand(cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: todo mv <source-id> <dest-id>")
	}
	return withController(cfg, cliLogger(cfg), func(c *controller.Controller) error {
		src, err := c.Resolve(args[0])
		if err != nil {
			return idError(args[0], err)
		}
		dst, err := c.Resolve(args[1])
		if err != nil {
			return idError(args[1], err)
		}
		if _, err := c.DragEnd(controller.DragEvent{SourceID: src, DestID: dst}); err != nil {
			if errors.Is(err, controller.ErrReorderDisabled) {
				return fmt.Errorf("%w (set reorder = true or pass -reorder)", err)
			}
			return err
		}
		_, err = io.WriteString(os.Stdout, c.View().Text())
		return err
	})
}

func idError(prefix string, err error) error {
	return fmt.Errorf("task %q: %w", prefix, err)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
