package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// Editor wraps bubbles/textarea as the playground code editor.
type Editor struct {
	Model textarea.Model
}

// NewEditor creates a focused editor holding text.
func NewEditor(text string) Editor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(text)
	ta.Focus()
	return Editor{Model: ta}
}

// Init returns the initial command.
func (e Editor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// SetSize resizes the editing area.
func (e *Editor) SetSize(width, height int) {
	e.Model.SetWidth(max(width, 10))
	e.Model.SetHeight(max(height, 1))
}

// View renders the editor.
func (e Editor) View() string {
	return e.Model.View()
}

// Value returns the current text.
func (e Editor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the text.
func (e *Editor) SetValue(s string) {
	e.Model.SetValue(s)
}
