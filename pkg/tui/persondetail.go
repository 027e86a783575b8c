package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/filter"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

// PersonDetailModel shows one person's contact fields plus every log entry
// that mentions them, newest first.
type PersonDetailModel struct {
	person   models.Person
	entries  []models.Entry
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func NewPersonDetailModel(store *Store, name string) (*PersonDetailModel, error) {
	var person *models.Person
	for i := range store.People {
		if store.People[i].Name == name {
			person = &store.People[i]
			break
		}
	}
	if person == nil {
		return nil, fmt.Errorf("unknown person: %s", name)
	}

	entries, err := files.LoadAllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	f := filter.LogFilter{People: []string{name}}

	return &PersonDetailModel{
		person:  *person,
		entries: f.Entries(entries),
	}, nil
}

func (m *PersonDetailModel) Init() tea.Cmd { return nil }

func (m *PersonDetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := lipgloss.Height(m.headerView()) + 1
	footerHeight := 2
	if !m.ready {
		m.viewport = viewport.New(width, height-headerHeight-footerHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height - headerHeight - footerHeight
	}
	m.refreshContent()
}

func (m *PersonDetailModel) refreshContent() {
	var b strings.Builder
	if len(m.entries) == 0 {
		b.WriteString(HelpStyle.Render("No log entries mention this person yet."))
	}
	for i := range m.entries {
		e := &m.entries[i]
		b.WriteString(HeaderStyle.Render(e.Timestamp.Format("2006-01-02 15:04")) + "\n")
		wrapped := wordwrap.String(e.Content, max(20, m.width-4))
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString("  " + highlightTokens(line) + "\n")
		}
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

func (m *PersonDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "e":
			return m, switchView(SwitchViewMsg{view: personEditView, name: m.person.Name})
		case "esc", "q":
			return m, switchView(SwitchViewMsg{view: peopleListView})
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *PersonDetailModel) headerView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(PersonTagStyle.Render("@"+m.person.Name)) + "\n")

	field := func(label, value string) {
		if value != "" {
			b.WriteString(HeaderStyle.Render(label+": ") + NormalStyle.Render(value) + "\n")
		}
	}
	field("Full name", m.person.FullName)
	field("Email", m.person.Email)
	field("Tel", m.person.Tel)
	field("Company", m.person.Company)
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Logs: %d", len(m.entries))))
	return b.String()
}

func (m *PersonDetailModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	help := helpBar(
		"↑/↓", "scroll",
		"e", "edit",
		"esc", "back",
	)
	return lipgloss.JoinVertical(lipgloss.Top, m.headerView(), "", m.viewport.View(), help)
}
