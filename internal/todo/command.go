package todo

import (
	"strings"
	"time"
)

// Kind identifies a command.
type Kind int

const (
	KindAdd Kind = iota + 1
	KindToggle
	KindDelete
	KindStartEdit
	KindSetEditText
	KindCommitEdit
	KindCancelEdit
	KindClearCompleted
	KindReorder
	KindSetFilter
	KindSetInput
)

var kindNames = map[Kind]string{
	KindAdd:            "add",
	KindToggle:         "toggle",
	KindDelete:         "delete",
	KindStartEdit:      "start_edit",
	KindSetEditText:    "set_edit_text",
	KindCommitEdit:     "commit_edit",
	KindCancelEdit:     "cancel_edit",
	KindClearCompleted: "clear_completed",
	KindReorder:        "reorder",
	KindSetFilter:      "set_filter",
	KindSetInput:       "set_input",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one user action. Only the fields relevant to Kind are set.
type Command struct {
	Kind   Kind
	ID     string
	DestID string
	Text   string
	Filter Filter
}

// Add creates a task from text at the head of the list.
func Add(text string) Command { return Command{Kind: KindAdd, Text: text} }

// Toggle flips the completed flag of a task.
func Toggle(id string) Command { return Command{Kind: KindToggle, ID: id} }

// Delete removes a task.
func Delete(id string) Command { return Command{Kind: KindDelete, ID: id} }

// StartEdit opens an edit session on id seeded with text.
func StartEdit(id, text string) Command { return Command{Kind: KindStartEdit, ID: id, Text: text} }

// SetEditText replaces the buffer of the open edit session.
func SetEditText(text string) Command { return Command{Kind: KindSetEditText, Text: text} }

// CommitEdit applies the edit buffer and closes the session.
func CommitEdit() Command { return Command{Kind: KindCommitEdit} }

// CancelEdit closes the edit session without applying it.
func CancelEdit() Command { return Command{Kind: KindCancelEdit} }

// ClearCompleted removes every completed task.
func ClearCompleted() Command { return Command{Kind: KindClearCompleted} }

// Reorder moves sourceID to the position held by destID.
func Reorder(sourceID, destID string) Command {
	return Command{Kind: KindReorder, ID: sourceID, DestID: destID}
}

// SetFilter selects the visible subset.
func SetFilter(f Filter) Command { return Command{Kind: KindSetFilter, Filter: f} }

// SetInput replaces the new-task input buffer.
func SetInput(text string) Command { return Command{Kind: KindSetInput, Text: text} }

// Env supplies the side inputs a command may need.
type Env struct {
	NewID func() string
	Now   func() time.Time
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return Now()
}

// Now returns the current time in UTC at millisecond precision, which is
// what the stored form keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Apply returns the state after cmd. The second result reports whether the
// task list changed and must be saved. s is never modified in place.
func Apply(s State, cmd Command, env Env) (State, bool) {
	switch cmd.Kind {
	case KindAdd:
		return applyAdd(s, cmd.Text, env)
	case KindToggle:
		i := s.Index(cmd.ID)
		if i < 0 {
			return s, false
		}
		s.Tasks = cloneTasks(s.Tasks)
		s.Tasks[i].Completed = !s.Tasks[i].Completed
		return s, true
	case KindDelete:
		i := s.Index(cmd.ID)
		if i < 0 {
			return s, false
		}
		tasks := make([]Task, 0, len(s.Tasks)-1)
		tasks = append(tasks, s.Tasks[:i]...)
		s.Tasks = append(tasks, s.Tasks[i+1:]...)
		if s.Editing(cmd.ID) {
			s.Edit = nil
		}
		return s, true
	case KindStartEdit:
		if s.Index(cmd.ID) < 0 {
			return s, false
		}
		s.Edit = &EditSession{ID: cmd.ID, Buffer: cmd.Text}
		return s, false
	case KindSetEditText:
		if s.Edit == nil {
			return s, false
		}
		s.Edit = &EditSession{ID: s.Edit.ID, Buffer: cmd.Text}
		return s, false
	case KindCommitEdit:
		return applyCommitEdit(s)
	case KindCancelEdit:
		s.Edit = nil
		return s, false
	case KindClearCompleted:
		kept := make([]Task, 0, len(s.Tasks))
		for _, t := range s.Tasks {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(s.Tasks) {
			return s, false
		}
		if s.Edit != nil && indexIn(kept, s.Edit.ID) < 0 {
			s.Edit = nil
		}
		s.Tasks = kept
		return s, true
	case KindReorder:
		return applyReorder(s, cmd.ID, cmd.DestID)
	case KindSetFilter:
		if f, err := ParseFilter(string(cmd.Filter)); err == nil {
			s.Filter = f
		}
		return s, false
	case KindSetInput:
		s.Input = cmd.Text
		return s, false
	}
	return s, false
}

func applyAdd(s State, text string, env Env) (State, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, false
	}
	task := Task{
		ID:        env.NewID(),
		Text:      text,
		Completed: false,
		CreatedAt: env.now(),
	}
	tasks := make([]Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, task)
	s.Tasks = append(tasks, s.Tasks...)
	s.Input = ""
	return s, true
}

// applyCommitEdit closes the session in every case. A blank buffer is
// discarded without touching the task.
func applyCommitEdit(s State) (State, bool) {
	if s.Edit == nil {
		return s, false
	}
	session := *s.Edit
	s.Edit = nil

	text := strings.TrimSpace(session.Buffer)
	if text == "" {
		return s, false
	}
	i := s.Index(session.ID)
	if i < 0 || s.Tasks[i].Text == text {
		return s, false
	}
	s.Tasks = cloneTasks(s.Tasks)
	s.Tasks[i].Text = text
	return s, true
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

func indexIn(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
