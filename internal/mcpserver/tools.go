package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nibzard/todo-go/internal/controller"
	"github.com/nibzard/todo-go/internal/todo"
)

func listTool() mcp.Tool {
	return mcp.NewTool("todo_list",
		mcp.WithDescription("Show the task list, optionally filtered."),
		mcp.WithString("filter",
			mcp.Description("Which tasks to show"),
			mcp.Enum("all", "active", "completed"),
		),
	)
}

func addTool() mcp.Tool {
	return mcp.NewTool("todo_add",
		mcp.WithDescription("Add a task to the top of the list."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Task text; surrounding whitespace is trimmed"),
		),
	)
}

func toggleTool() mcp.Tool {
	return mcp.NewTool("todo_toggle",
		mcp.WithDescription("Flip a task between active and completed."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task id or unique id prefix"),
		),
	)
}

func deleteTool() mcp.Tool {
	return mcp.NewTool("todo_delete",
		mcp.WithDescription("Remove a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task id or unique id prefix"),
		),
	)
}

func editTool() mcp.Tool {
	return mcp.NewTool("todo_edit",
		mcp.WithDescription("Replace the text of a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task id or unique id prefix"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("New text; must not be blank"),
		),
	)
}

func clearTool() mcp.Tool {
	return mcp.NewTool("todo_clear_completed",
		mcp.WithDescription("Remove every completed task."),
	)
}

func reorderTool() mcp.Tool {
	return mcp.NewTool("todo_reorder",
		mcp.WithDescription(
			"Move a task to the position currently held by another task. "+
				"Both tasks must be visible under the current filter.",
		),
		mcp.WithString("source_id",
			mcp.Required(),
			mcp.Description("Task to move"),
		),
		mcp.WithString("dest_id",
			mcp.Required(),
			mcp.Description("Task whose position the moved task takes"),
		),
	)
}

func (s *Server) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("filter", "")
	return s.run("todo_list", func(c *controller.Controller) error {
		if raw == "" {
			return nil
		}
		f, err := todo.ParseFilter(raw)
		if err != nil {
			return err
		}
		_, err = c.Dispatch(todo.SetFilter(f))
		return err
	})
}

func (s *Server) handleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}
	return s.dispatch("todo_add", func(*controller.Controller) (todo.Command, error) {
		return todo.Add(text), nil
	})
}

func (s *Server) handleToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefix := req.GetString("id", "")
	return s.dispatch("todo_toggle", func(c *controller.Controller) (todo.Command, error) {
		id, err := resolve(c, "id", prefix)
		return todo.Toggle(id), err
	})
}

func (s *Server) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefix := req.GetString("id", "")
	return s.dispatch("todo_delete", func(c *controller.Controller) (todo.Command, error) {
		id, err := resolve(c, "id", prefix)
		return todo.Delete(id), err
	})
}

func (s *Server) handleEdit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefix := req.GetString("id", "")
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}
	return s.run("todo_edit", func(c *controller.Controller) error {
		id, err := resolve(c, "id", prefix)
		if err != nil {
			return err
		}
		if _, err := c.Dispatch(todo.StartEdit(id, text)); err != nil {
			return err
		}
		_, err = c.Dispatch(todo.CommitEdit())
		return err
	})
}

func (s *Server) handleClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.dispatch("todo_clear_completed", func(*controller.Controller) (todo.Command, error) {
		return todo.ClearCompleted(), nil
	})
}

func (s *Server) handleReorder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	srcPrefix := req.GetString("source_id", "")
	dstPrefix := req.GetString("dest_id", "")
	return s.run("todo_reorder", func(c *controller.Controller) error {
		src, err := resolve(c, "source_id", srcPrefix)
		if err != nil {
			return err
		}
		dst, err := resolve(c, "dest_id", dstPrefix)
		if err != nil {
			return err
		}
		state := c.State()
		for _, id := range []string{src, dst} {
			if t, _ := state.GetTask(id); !state.Filter.Match(t) {
				return fmt.Errorf("task %s is hidden by the %s filter", t.ShortID(), state.Filter)
			}
		}
		_, err = c.DragEnd(controller.DragEvent{SourceID: src, DestID: dst})
		return err
	})
}

func resolve(c *controller.Controller, arg, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("'%s' is required", arg)
	}
	id, err := c.Resolve(prefix)
	if err != nil {
		return "", fmt.Errorf("%s %q: %w", arg, prefix, err)
	}
	return id, nil
}
