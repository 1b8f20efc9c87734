package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/nibzard/todo-go/internal/todo"
)

var filterLabels = map[todo.Filter]string{
	todo.FilterAll:       "All",
	todo.FilterActive:    "Active",
	todo.FilterCompleted: "Completed",
}

func (m *tuiModel) View() string {
	var b strings.Builder
	state := m.ctrl.State()
	view := state.View()

	b.WriteString(titleStyle.Render("Todo List") + "\n")
	b.WriteString(subtitleStyle.Render("Manage your tasks, one line at a time") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(renderTabs(view) + "\n\n")

	if m.showHelp {
		b.WriteString(m.help.FullHelpView(chunk(m.keys.fullHelp(m.ctrl.ReorderEnabled()), 4)))
		b.WriteString("\n")
		return b.String()
	}

	m.writeRows(&b, state, view)
	m.writeFooter(&b, view)
	return b.String()
}

func renderTabs(view todo.View) string {
	tabs := make([]string, 0, len(todo.Filters))
	for _, f := range todo.Filters {
		label := fmt.Sprintf("%s (%d)", filterLabels[f], view.Count(f))
		if f == view.Filter {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m *tuiModel) writeRows(b *strings.Builder, state todo.State, view todo.View) {
	if len(view.Visible) == 0 {
		b.WriteString(emptyStyle.Render(view.EmptyMessage()) + "\n")
		return
	}

	rows := view.Visible
	if m.grabbing {
		if from := indexOf(rows, m.grabID); from >= 0 {
			rows = todo.MoveTask(rows, from, m.grabTarget)
		}
	}

	start, end := 0, len(rows)
	if h := m.listHeight(); h > 0 {
		start = min(m.offset, len(rows))
		end = min(start+h, len(rows))
	}
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i, state) + "\n")
	}
}

func (m *tuiModel) renderRow(task todo.Task, i int, state todo.State) string {
	marker := "  "
	if m.focus == focusList && !m.grabbing && i == m.cursor {
		marker = cursorRowStyle.Render("▸ ")
	}

	check := "[ ]"
	if task.Completed {
		check = checkStyle.Render("[x]")
	}

	handle := ""
	if m.ctrl.ReorderEnabled() {
		handle = handleStyle.Render("⋮⋮") + " "
	}

	if state.Editing(task.ID) && m.focus == focusEdit {
		return marker + check + " " + handle + m.editor.View()
	}

	text := task.Text
	switch {
	case m.grabbing && task.ID == m.grabID:
		text = grabStyle.Render(text)
	case m.pressID != "" && m.dragOver == task.ID && task.ID != m.pressID:
		text = dropStyle.Render(text)
	case task.Completed:
		text = completedStyle.Render(text)
	case m.focus == focusList && i == m.cursor:
		text = cursorRowStyle.Render(text)
	default:
		text = rowStyle.Render(text)
	}
	return marker + check + " " + handle + text
}

func (m *tuiModel) writeFooter(b *strings.Builder, view todo.View) {
	b.WriteString("\n")
	if view.Total > 0 {
		summary := footerStyle.Render(itemsLeft(view.ActiveCount))
		if view.CanClearCompleted() {
			summary += footerStyle.Render("  ·  ") + clearStyle.Render(fmt.Sprintf("Clear completed (%d)", view.CompletedCount))
		}
		b.WriteString(summary)
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}
	b.WriteString("\n")

	switch {
	case m.grabbing:
		b.WriteString(helpStyle.Render("moving: ↑/↓ choose position · enter drop · esc cancel"))
	case m.focus == focusInput:
		b.WriteString(helpStyle.Render("enter add · esc back to list"))
	case m.focus == focusEdit:
		b.WriteString(helpStyle.Render("enter save · esc cancel"))
	default:
		b.WriteString(m.help.ShortHelpView(m.keys.shortHelp(m.ctrl.ReorderEnabled())))
	}
	b.WriteString("\n")
}

func itemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

func indexOf(tasks []todo.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// chunk splits bindings into columns of at most n for the full help view.
func chunk(bindings []key.Binding, n int) [][]key.Binding {
	var cols [][]key.Binding
	for len(bindings) > n {
		cols = append(cols, bindings[:n])
		bindings = bindings[n:]
	}
	if len(bindings) > 0 {
		cols = append(cols, bindings)
	}
	return cols
}
