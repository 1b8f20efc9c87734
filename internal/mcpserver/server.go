// Package mcpserver exposes the task list as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nibzard/todo-go/internal/controller"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/todo"
)

const tasksURI = "todo://tasks"

// Server runs tool calls against one controller, one call at a time.
type Server struct {
	mu     sync.Mutex
	ctrl   *controller.Controller
	logger *log.Logger
}

// New returns a server over ctrl. A nil logger discards output.
func New(ctrl *controller.Controller, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{ctrl: ctrl, logger: logger}
}

// MCP builds the protocol server with every tool registered. The reorder
// tool is only registered when the controller accepts reorders.
func (s *Server) MCP(version string) *server.MCPServer {
	ms := server.NewMCPServer(
		"todo",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	ms.AddTool(listTool(), s.handleList)
	ms.AddTool(addTool(), s.handleAdd)
	ms.AddTool(toggleTool(), s.handleToggle)
	ms.AddTool(deleteTool(), s.handleDelete)
	ms.AddTool(editTool(), s.handleEdit)
	ms.AddTool(clearTool(), s.handleClear)
	if s.ctrl.ReorderEnabled() {
		ms.AddTool(reorderTool(), s.handleReorder)
	}

	ms.AddResource(mcp.NewResource(
		tasksURI,
		"Task list",
		mcp.WithResourceDescription("The full stored task list in display order"),
		mcp.WithMIMEType("application/json"),
	), s.handleTasks)

	return ms
}

// Serve speaks MCP over in and out until ctx is done or in is closed.
func (s *Server) Serve(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.MCP(version))
	stdio.SetErrorLogger(s.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}))
	s.logger.Info("serving MCP on stdio", "reorder", s.ctrl.ReorderEnabled())
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

const instructions = `Tools for a single task list. Tasks are shown newest first as
"[x] <id>  <text>". Ids may be passed as a unique prefix of the full id.
Every tool returns the list as it looks after the call.`

// run calls fn with the controller under the lock and renders the view
// that results. An error from fn becomes a tool error.
func (s *Server) run(tool string, fn func(*controller.Controller) error) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.ctrl); err != nil {
		s.logger.Warn("tool failed", "tool", tool, "err", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Debug("tool", "tool", tool)
	return mcp.NewToolResultText(s.ctrl.View().Text()), nil
}

func (s *Server) dispatch(tool string, cmd func(*controller.Controller) (todo.Command, error)) (*mcp.CallToolResult, error) {
	return s.run(tool, func(c *controller.Controller) error {
		command, err := cmd(c)
		if err != nil {
			return err
		}
		_, err = c.Dispatch(command)
		return err
	})
}

func (s *Server) handleTasks(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.ctrl.State().Tasks, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("marshaling tasks: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
