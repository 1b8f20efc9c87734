package todo

import (
	"fmt"
	"strings"
)

// View is the projection of a state that a UI renders.
type View struct {
	Filter         Filter
	Visible        []Task
	Total          int
	ActiveCount    int
	CompletedCount int
}

// Project derives the visible tasks under f and the summary counts over the
// full list. Counts do not depend on f.
func Project(tasks []Task, f Filter) View {
	v := View{
		Filter:  f,
		Visible: make([]Task, 0, len(tasks)),
		Total:   len(tasks),
	}
	for _, t := range tasks {
		if t.Completed {
			v.CompletedCount++
		} else {
			v.ActiveCount++
		}
		if f.Match(t) {
			v.Visible = append(v.Visible, t)
		}
	}
	return v
}

// View projects the state through its own filter.
func (s State) View() View {
	return Project(s.Tasks, s.Filter)
}

// Count returns the number of tasks that f would show.
func (v View) Count(f Filter) int {
	switch f {
	case FilterActive:
		return v.ActiveCount
	case FilterCompleted:
		return v.CompletedCount
	default:
		return v.Total
	}
}

// CanClearCompleted reports whether the clear-completed action applies.
func (v View) CanClearCompleted() bool {
	return v.CompletedCount > 0
}

// EmptyMessage is the text shown when the visible list is empty.
func (v View) EmptyMessage() string {
	switch v.Filter {
	case FilterActive:
		return "Nothing left to do!"
	case FilterCompleted:
		return "No completed tasks yet."
	default:
		return "No tasks yet, add one!"
	}
}

// Summary is the one-line count of active and completed tasks.
func (v View) Summary() string {
	left := fmt.Sprintf("%d items left", v.ActiveCount)
	if v.ActiveCount == 1 {
		left = "1 item left"
	}
	if v.CompletedCount > 0 {
		left += fmt.Sprintf(", %d completed", v.CompletedCount)
	}
	return left
}

// Text renders the visible tasks one per line, then the summary.
func (v View) Text() string {
	var b strings.Builder
	if len(v.Visible) == 0 {
		b.WriteString(v.EmptyMessage())
		b.WriteByte('\n')
	}
	for _, t := range v.Visible {
		b.WriteString(t.Line())
		b.WriteByte('\n')
	}
	if v.Total > 0 {
		b.WriteString(v.Summary())
		b.WriteByte('\n')
	}
	return b.String()
}
