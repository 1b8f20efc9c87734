package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Task represents a single item in the list.
type Task struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Completed bool      `json:"completed" yaml:"completed"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// CreatedAtLayout is the stored form of CreatedAt: UTC with millisecond
// precision.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// MarshalJSON writes CreatedAt in CreatedAtLayout.
func (t Task) MarshalJSON() ([]byte, error) {
	type plain Task
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
	}{plain(t), t.CreatedAt.UTC().Format(CreatedAtLayout)})
}

// ShortID returns the first eight characters of the id, for display.
func (t Task) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}

// Line renders the task as a single plain-text row.
func (t Task) Line() string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s  %s", mark, t.ShortID(), t.Text)
}

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in tab order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter parses a filter name. The empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("invalid filter %q, must be one of: all, active, completed", s)
}

// Match reports whether t is visible under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter after f in tab order, wrapping around.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Prev returns the filter before f in tab order, wrapping around.
func (f Filter) Prev() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+len(Filters)-1)%len(Filters)]
		}
	}
	return FilterAll
}

// EditSession holds the replacement text for the one task being edited.
type EditSession struct {
	ID     string
	Buffer string
}

// State is the full controller state. Only Tasks is persisted.
type State struct {
	Tasks  []Task
	Filter Filter
	Input  string
	Edit   *EditSession
}

// NewState returns a state over tasks with the "all" filter selected.
func NewState(tasks []Task) State {
	if tasks == nil {
		tasks = []Task{}
	}
	return State{Tasks: tasks, Filter: FilterAll}
}

// Index returns the position of the task with id, or -1.
func (s State) Index(id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// GetTask returns the task with id and whether it exists.
func (s State) GetTask(id string) (Task, bool) {
	if i := s.Index(id); i >= 0 {
		return s.Tasks[i], true
	}
	return Task{}, false
}

// Editing reports whether the task with id is under edit.
func (s State) Editing(id string) bool {
	return s.Edit != nil && s.Edit.ID == id
}

var (
	// ErrNoMatch is returned by ResolveID when no task id has the prefix.
	ErrNoMatch = errors.New("no task matches")
	// ErrAmbiguous is returned by ResolveID when several ids share the prefix.
	ErrAmbiguous = errors.New("ambiguous task id")
)

// ResolveID expands a unique id prefix to the full id. An exact match
// always wins.
func (s State) ResolveID(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w %q", ErrNoMatch, prefix)
	}
	var found string
	for _, t := range s.Tasks {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			if found != "" {
				return "", fmt.Errorf("%w %q", ErrAmbiguous, prefix)
			}
			found = t.ID
		}
	}
	if found == "" {
		return "", fmt.Errorf("%w %q", ErrNoMatch, prefix)
	}
	return found, nil
}
