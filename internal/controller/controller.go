// Package controller owns the task list state for one process: it loads the
// list once, runs every command through todo.Apply, and saves the list after
// each command that changed it.
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/ids"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/todo"
)

// ErrReorderDisabled is returned for reorder commands when reordering is
// turned off.
var ErrReorderDisabled = errors.New("reordering is disabled")

// Persister loads and saves the full task list.
type Persister interface {
	Load() ([]todo.Task, error)
	Save(tasks []todo.Task) error
}

// Options configures a Controller.
type Options struct {
	// Reorder enables reorder commands and drag events.
	Reorder bool
	// IDs generates task ids. Defaults to random UUIDs.
	IDs ids.Provider
	// Now is the clock used for CreatedAt. Defaults to todo.Now.
	Now func() time.Time
	// Logger receives one debug line per command. Defaults to a discard logger.
	Logger *log.Logger
}

// Controller is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
type Controller struct {
	store  Persister
	env    todo.Env
	logger *log.Logger
	state  todo.State

	reorder bool
}

// New loads the stored list and returns a controller over it. A load
// failure is returned as is; there is no fallback to an empty list.
func New(store Persister, opts Options) (*Controller, error) {
	tasks, err := store.Load()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = todo.Now
	}

	c := &Controller{
		store:   store,
		env:     todo.Env{NewID: ids.Func(opts.IDs), Now: now},
		logger:  logger,
		state:   todo.NewState(tasks),
		reorder: opts.Reorder,
	}
	logger.Debug("loaded task list", "tasks", len(tasks), "reorder", opts.Reorder)
	return c, nil
}

// Dispatch applies cmd and saves the list if it changed. The new state is
// kept even when the save fails.
func (c *Controller) Dispatch(cmd todo.Command) (bool, error) {
	if cmd.Kind == todo.KindReorder && !c.reorder {
		return false, ErrReorderDisabled
	}

	next, changed := todo.Apply(c.state, cmd, c.env)
	c.state = next
	if !changed {
		c.logger.Debug("dispatch", "kind", cmd.Kind, "changed", false)
		return false, nil
	}

	if err := c.store.Save(next.Tasks); err != nil {
		c.logger.Error("save failed", "kind", cmd.Kind, "err", err)
		return true, fmt.Errorf("%s: %w", cmd.Kind, err)
	}
	c.logger.Debug("dispatch", "kind", cmd.Kind, "changed", true, "tasks", len(next.Tasks))
	return true, nil
}

// DragEvent is one completed drag gesture. DestID is empty when the row was
// released outside any other row.
type DragEvent struct {
	SourceID string
	DestID   string
}

// DragEnd turns a completed drag into a reorder. Releasing outside the list
// or onto the source row does nothing.
func (c *Controller) DragEnd(ev DragEvent) (bool, error) {
	if ev.DestID == "" || ev.DestID == ev.SourceID {
		return false, nil
	}
	return c.Dispatch(todo.Reorder(ev.SourceID, ev.DestID))
}

// State returns the current state. The returned value shares its task slice
// with the controller and must not be modified.
func (c *Controller) State() todo.State {
	return c.state
}

// View projects the current state through its filter.
func (c *Controller) View() todo.View {
	return c.state.View()
}

// ReorderEnabled reports whether reorder commands are accepted.
func (c *Controller) ReorderEnabled() bool {
	return c.reorder
}

// Resolve expands a unique id prefix to a full task id.
func (c *Controller) Resolve(prefix string) (string, error) {
	return c.state.ResolveID(prefix)
}
