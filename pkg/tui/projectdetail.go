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

// ProjectDetailModel shows one project's fields plus every log entry that
// mentions it, newest first.
type ProjectDetailModel struct {
	project  models.Project
	entries  []models.Entry
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func NewProjectDetailModel(store *Store, name string) (*ProjectDetailModel, error) {
	var project *models.Project
	for i := range store.Projects {
		if store.Projects[i].Name == name {
			project = &store.Projects[i]
			break
		}
	}
	if project == nil {
		return nil, fmt.Errorf("unknown project: %s", name)
	}

	entries, err := files.LoadAllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	f := filter.LogFilter{Projects: []string{name}}

	return &ProjectDetailModel{
		project: *project,
		entries: f.Entries(entries),
	}, nil
}

func (m *ProjectDetailModel) Init() tea.Cmd { return nil }

func (m *ProjectDetailModel) SetSize(width, height int) {
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

func (m *ProjectDetailModel) refreshContent() {
	var b strings.Builder
	if len(m.entries) == 0 {
		b.WriteString(HelpStyle.Render("No log entries mention this project yet."))
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

func (m *ProjectDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "e":
			return m, switchView(SwitchViewMsg{view: projectEditView, name: m.project.Name})
		case "esc", "q":
			return m, switchView(SwitchViewMsg{view: projectListView})
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ProjectDetailModel) headerView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(ProjectTagStyle.Render("#"+m.project.Name)) + "\n")

	field := func(label, value string) {
		if value != "" {
			b.WriteString(HeaderStyle.Render(label+": ") + NormalStyle.Render(value) + "\n")
		}
	}
	field("Status", m.project.Status)
	field("Group", m.project.Group)
	field("Description", m.project.Description)
	field("Jira", m.project.Jira)
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Logs: %d", len(m.entries))))
	return b.String()
}

func (m *ProjectDetailModel) View() string {
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
