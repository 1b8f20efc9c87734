package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todo-go/internal/controller"
	"github.com/nibzard/todo-go/internal/todo"
)

// Screen rows above the first task row: title, subtitle, blank, input,
// blank, tabs, blank.
const listTop = 7

// Rows below the list: blank, summary, status, help.
const footerLines = 4

// checkboxEnd is the first column after the checkbox of a row.
const checkboxEnd = 6

type focus int

const (
	focusList focus = iota
	focusInput
	focusEdit
)

type tuiModel struct {
	ctrl   *controller.Controller
	keys   keyMap
	help   help.Model
	input  textinput.Model
	editor textinput.Model
	focus  focus

	cursor int
	offset int
	width  int
	height int

	showHelp bool
	err      error

	// Keyboard move: the grabbed task and the visible index it would land on.
	grabbing   bool
	grabID     string
	grabTarget int

	// Mouse drag: the pressed row and the row under the pointer.
	pressID  string
	pressX   int
	dragOver string
}

func newTUIModel(ctrl *controller.Controller) *tuiModel {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Prompt = "> "
	input.CharLimit = 500
	input.SetValue(ctrl.State().Input)

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 500

	m := &tuiModel{
		ctrl:   ctrl,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  input,
		editor: editor,
	}
	if len(ctrl.State().Tasks) == 0 {
		m.focus = focusInput
		m.input.Focus()
	}
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	if m.focus == focusInput {
		return textinput.Blink
	}
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-6)
		m.editor.Width = max(10, msg.Width-12)
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusEdit:
			return m.updateEdit(msg)
		}
		if m.grabbing {
			return m.updateGrab(msg)
		}
		return m.updateList(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusEdit:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m *tuiModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.dispatch(todo.Add(m.input.Value()))
		m.input.SetValue(m.ctrl.State().Input)
		if m.input.Value() == "" {
			m.cursor = 0
			m.clampCursor()
		}
		return m, nil
	case tea.KeyEsc, tea.KeyTab:
		m.input.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.dispatch(todo.SetInput(m.input.Value()))
	return m, cmd
}

func (m *tuiModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.dispatch(todo.SetEditText(m.editor.Value()))
		m.dispatch(todo.CommitEdit())
		m.stopEditing()
		return m, nil
	case tea.KeyEsc:
		m.dispatch(todo.CancelEdit())
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.dispatch(todo.SetEditText(m.editor.Value()))
	return m, cmd
}

func (m *tuiModel) stopEditing() {
	m.editor.Blur()
	m.editor.SetValue("")
	m.focus = focusList
	m.clampCursor()
}

func (m *tuiModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(); ok {
			m.dispatch(todo.Toggle(task.ID))
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Edit):
		if task, ok := m.selected(); ok {
			return m, m.startEditing(task)
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selected(); ok {
			m.dispatch(todo.Delete(task.ID))
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Clear):
		if m.ctrl.View().CanClearCompleted() {
			m.dispatch(todo.ClearCompleted())
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.NextTab):
		m.setFilter(m.ctrl.State().Filter.Next())
	case key.Matches(msg, m.keys.PrevTab):
		m.setFilter(m.ctrl.State().Filter.Prev())
	case key.Matches(msg, m.keys.All):
		m.setFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.Active):
		m.setFilter(todo.FilterActive)
	case key.Matches(msg, m.keys.Completed):
		m.setFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.Input):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Grab):
		if task, ok := m.selected(); ok && m.ctrl.ReorderEnabled() {
			m.grabbing = true
			m.grabID = task.ID
			m.grabTarget = m.cursor
		}
	}
	return m, nil
}

func (m *tuiModel) updateGrab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.ctrl.View().Visible
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.grabTarget > 0 {
			m.grabTarget--
		}
	case key.Matches(msg, m.keys.Down):
		if m.grabTarget < len(visible)-1 {
			m.grabTarget++
		}
	case msg.Type == tea.KeyEnter, key.Matches(msg, m.keys.Grab), key.Matches(msg, m.keys.Toggle):
		dest := ""
		if m.grabTarget >= 0 && m.grabTarget < len(visible) {
			dest = visible[m.grabTarget].ID
		}
		m.drop(m.grabID, dest)
		m.grabbing = false
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Quit):
		m.grabbing = false
	}
	m.ensureVisible(m.grabTarget)
	return m, nil
}

func (m *tuiModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.focus != focusList || m.grabbing || m.showHelp {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		case tea.MouseButtonLeft:
			if idx, ok := m.rowAt(msg.Y); ok {
				m.cursor = idx
				m.pressID = m.ctrl.View().Visible[idx].ID
				m.pressX = msg.X
				m.dragOver = m.pressID
			}
		}
	case tea.MouseActionMotion:
		if m.pressID != "" {
			m.dragOver = ""
			if idx, ok := m.rowAt(msg.Y); ok {
				m.dragOver = m.ctrl.View().Visible[idx].ID
			}
		}
	case tea.MouseActionRelease:
		if m.pressID == "" {
			return m, nil
		}
		over := ""
		if idx, ok := m.rowAt(msg.Y); ok {
			over = m.ctrl.View().Visible[idx].ID
		}
		switch {
		case over == m.pressID && m.pressX < checkboxEnd && msg.X < checkboxEnd:
			m.dispatch(todo.Toggle(m.pressID))
			m.clampCursor()
		case m.ctrl.ReorderEnabled():
			m.drop(m.pressID, over)
		}
		m.pressID, m.dragOver = "", ""
	}
	return m, nil
}

// drop completes a drag of sourceID onto destID and keeps the cursor on
// the moved task.
func (m *tuiModel) drop(sourceID, destID string) {
	if _, err := m.ctrl.DragEnd(controller.DragEvent{SourceID: sourceID, DestID: destID}); err != nil {
		m.err = err
		return
	}
	m.err = nil
	for i, task := range m.ctrl.View().Visible {
		if task.ID == sourceID {
			m.cursor = i
		}
	}
	m.clampCursor()
}

func (m *tuiModel) startEditing(task todo.Task) tea.Cmd {
	m.dispatch(todo.StartEdit(task.ID, task.Text))
	m.editor.SetValue(task.Text)
	m.editor.CursorEnd()
	m.focus = focusEdit
	return m.editor.Focus()
}

func (m *tuiModel) setFilter(f todo.Filter) {
	m.dispatch(todo.SetFilter(f))
	m.cursor = 0
	m.offset = 0
}

func (m *tuiModel) dispatch(cmd todo.Command) {
	_, err := m.ctrl.Dispatch(cmd)
	m.err = err
}

func (m *tuiModel) selected() (todo.Task, bool) {
	visible := m.ctrl.View().Visible
	if m.cursor < 0 || m.cursor >= len(visible) {
		return todo.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *tuiModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *tuiModel) clampCursor() {
	n := len(m.ctrl.View().Visible)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible(m.cursor)
}

// ensureVisible scrolls so that visible row i is on screen.
func (m *tuiModel) ensureVisible(i int) {
	h := m.listHeight()
	if h <= 0 {
		m.offset = 0
		return
	}
	if i < m.offset {
		m.offset = i
	}
	if i >= m.offset+h {
		m.offset = i - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// listHeight is the number of task rows that fit on screen, or 0 when the
// screen size is unknown.
func (m *tuiModel) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(3, m.height-listTop-footerLines)
}

// rowAt maps a screen row to an index in the visible list.
func (m *tuiModel) rowAt(y int) (int, bool) {
	i := y - listTop
	if i < 0 {
		return 0, false
	}
	if h := m.listHeight(); h > 0 && i >= h {
		return 0, false
	}
	idx := m.offset + i
	if idx >= len(m.ctrl.View().Visible) {
		return 0, false
	}
	return idx, true
}
