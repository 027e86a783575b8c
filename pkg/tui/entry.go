package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/caiushowcroft/todo-log/pkg/editor"
	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

const timestampLayout = "2006-01-02 15:04:05"

type entryMode int

const (
	entryModeEditing entryMode = iota
	entryModeTimestamp
	entryModeAttaching
)

// EntryModel composes a new log entry: a rune-addressed buffer with live
// tag autocomplete, an editable timestamp, and file attachments.
type EntryModel struct {
	store       *Store
	buffer      *editor.Buffer
	ac          *editor.Autocomplete
	timestamp   time.Time
	attachments []string

	mode    entryMode
	tsInput textinput.Model
	picker  filepicker.Model

	width  int
	height int
}

func NewEntryModel(store *Store) *EntryModel {
	ts := textinput.New()
	ts.CharLimit = len(timestampLayout)
	ts.Width = len(timestampLayout) + 2

	fp := filepicker.New()
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false

	return &EntryModel{
		store:     store,
		buffer:    editor.NewBuffer(""),
		ac:        &editor.Autocomplete{},
		timestamp: time.Now(),
		tsInput:   ts,
		picker:    fp,
	}
}

func (m *EntryModel) Init() tea.Cmd { return nil }

func (m *EntryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.picker.Height = height - 8
}

func (m *EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case entryModeTimestamp:
		return m.updateTimestamp(msg)
	case entryModeAttaching:
		return m.updateAttaching(msg)
	}
	return m.updateEditing(msg)
}

func (m *EntryModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		if m.ac.Active {
			m.ac.Dismiss()
			return m, nil
		}
		return m, switchView(SwitchViewMsg{view: menuView})

	case "ctrl+s":
		return m, m.save()

	case "ctrl+t":
		m.mode = entryModeTimestamp
		m.tsInput.SetValue(m.timestamp.Format(timestampLayout))
		m.tsInput.CursorEnd()
		return m, m.tsInput.Focus()

	case "ctrl+a":
		m.mode = entryModeAttaching
		return m, m.picker.Init()

	case "up":
		if m.ac.Active {
			m.ac.Prev()
		} else {
			m.buffer.MoveUp()
		}
		return m, nil

	case "down":
		if m.ac.Active {
			m.ac.Next()
		} else {
			m.buffer.MoveDown()
		}
		return m, nil

	case "left":
		m.buffer.MoveLeft()
		m.refreshSuggestions()
		return m, nil

	case "right":
		m.buffer.MoveRight()
		m.refreshSuggestions()
		return m, nil

	case "home":
		m.buffer.MoveStart()
		m.refreshSuggestions()
		return m, nil

	case "end":
		m.buffer.MoveEnd()
		m.refreshSuggestions()
		return m, nil

	case "backspace":
		m.buffer.DeleteBackward()
		m.refreshSuggestions()
		return m, nil

	case "tab":
		if m.ac.Active {
			m.ac.Accept(m.buffer)
		}
		return m, nil

	case "enter":
		if m.ac.Active {
			m.ac.Accept(m.buffer)
		} else {
			m.buffer.InsertRune('\n')
			m.refreshSuggestions()
		}
		return m, nil

	case " ":
		m.buffer.InsertRune(' ')
		m.refreshSuggestions()
		return m, nil
	}

	if keyMsg.Type == tea.KeyRunes {
		for _, r := range keyMsg.Runes {
			m.buffer.InsertRune(r)
		}
		m.refreshSuggestions()
	}
	return m, nil
}

func (m *EntryModel) updateTimestamp(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = entryModeEditing
			m.tsInput.Blur()
			return m, nil
		case "enter":
			ts, err := time.ParseInLocation(timestampLayout, m.tsInput.Value(), time.Local)
			if err != nil {
				return m, status(fmt.Sprintf("Invalid timestamp (want %s)", timestampLayout))
			}
			m.timestamp = ts
			m.mode = entryModeEditing
			m.tsInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tsInput, cmd = m.tsInput.Update(msg)
	return m, cmd
}

func (m *EntryModel) updateAttaching(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.mode = entryModeEditing
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.attachments = append(m.attachments, path)
		m.mode = entryModeEditing
		return m, status(fmt.Sprintf("Attached %s", path))
	}
	return m, cmd
}

// refreshSuggestions recomputes autocomplete after every buffer mutation.
func (m *EntryModel) refreshSuggestions() {
	m.ac.Update(m.buffer, m.store.ProjectNames(), m.store.PersonNames())
}

func (m *EntryModel) save() tea.Cmd {
	entry := models.Entry{
		Timestamp:   m.timestamp,
		Content:     m.buffer.Content(),
		Attachments: m.attachments,
	}

	path, err := files.SaveEntry(&entry)
	if err == files.ErrEmptyEntry {
		return status("Cannot save empty log entry")
	}
	if err != nil {
		return status(err.Error())
	}

	return tea.Batch(
		status(fmt.Sprintf("Log saved to %s", path)),
		switchView(SwitchViewMsg{view: menuView}),
	)
}
