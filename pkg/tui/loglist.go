package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/filter"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

type logPanel int

const (
	logPanelNone logPanel = iota
	logPanelStartDate
	logPanelEndDate
	logPanelProjects
	logPanelPeople
)

// LogListModel browses entries newest first with date/tag filtering.
type LogListModel struct {
	store    *Store
	entries  []models.Entry
	filter   filter.LogFilter
	filtered []models.Entry
	selected int

	panel         logPanel
	panelSelected int
	startInput    textinput.Model
	endInput      textinput.Model

	width  int
	height int
}

func NewLogListModel(store *Store) (*LogListModel, error) {
	entries, err := files.LoadAllEntries()
	if err != nil {
		return nil, err
	}

	newDateInput := func() textinput.Model {
		in := textinput.New()
		in.Placeholder = filter.DateLayout
		in.CharLimit = len(filter.DateLayout)
		in.Width = len(filter.DateLayout) + 2
		return in
	}

	m := &LogListModel{
		store:      store,
		entries:    entries,
		startInput: newDateInput(),
		endInput:   newDateInput(),
	}
	m.applyFilter()
	return m, nil
}

func (m *LogListModel) Init() tea.Cmd { return nil }

func (m *LogListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *LogListModel) applyFilter() {
	m.filtered = m.filter.Entries(m.entries)
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m *LogListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.panel {
	case logPanelStartDate, logPanelEndDate:
		return m.updateDateInput(msg)
	case logPanelProjects, logPanelPeople:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.updateTagPanel(keyMsg)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
	case "s":
		m.panel = logPanelStartDate
		m.startInput.SetValue(formatDateBound(m.filter.StartDate))
		m.startInput.CursorEnd()
		return m, m.startInput.Focus()
	case "e":
		m.panel = logPanelEndDate
		m.endInput.SetValue(formatDateBound(m.filter.EndDate))
		m.endInput.CursorEnd()
		return m, m.endInput.Focus()
	case "p":
		m.panel = logPanelProjects
		m.panelSelected = 0
	case "f":
		m.panel = logPanelPeople
		m.panelSelected = 0
	case "enter":
		if m.selected < len(m.filtered) {
			return m, switchView(SwitchViewMsg{
				view:     logDetailView,
				path:     m.filtered[m.selected].Path,
				returnTo: logListView,
			})
		}
	case "esc":
		return m, switchView(SwitchViewMsg{view: menuView})
	}
	return m, nil
}

func (m *LogListModel) updateDateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	input := &m.startInput
	bound := &m.filter.StartDate
	if m.panel == logPanelEndDate {
		input = &m.endInput
		bound = &m.filter.EndDate
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.panel = logPanelNone
			input.Blur()
			return m, nil
		case "enter":
			value := strings.TrimSpace(input.Value())
			if value == "" {
				*bound = nil
			} else {
				t, err := filter.ParseDate(value)
				if err != nil {
					return m, status(err.Error())
				}
				*bound = &t
			}
			m.panel = logPanelNone
			input.Blur()
			m.applyFilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

func (m *LogListModel) updateTagPanel(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.store.ProjectNames()
	set := &m.filter.Projects
	if m.panel == logPanelPeople {
		names = m.store.PersonNames()
		set = &m.filter.People
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.panelSelected > 0 {
			m.panelSelected--
		}
	case "down", "j":
		if m.panelSelected < len(names)-1 {
			m.panelSelected++
		}
	case " ", "enter":
		if m.panelSelected < len(names) {
			toggleName(set, names[m.panelSelected])
			m.applyFilter()
		}
	case "esc", "p", "f":
		m.panel = logPanelNone
	}
	return m, nil
}

func (m *LogListModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Logs (%d)", len(m.filtered))))
	b.WriteString("  " + m.filterSummary() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(HelpStyle.Render("No log entries match the current filter.") + "\n")
	}

	for i := range m.filtered {
		entry := &m.filtered[i]
		date := HelpStyle.Render(entry.Timestamp.Format("2006-01-02 15:04"))
		line := fmt.Sprintf("%s  %s %s", date, entry.FirstLine(), tagSummary(entry.Projects, entry.People))
		if i == m.selected && m.panel == logPanelNone {
			line = SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	content := b.String()
	switch m.panel {
	case logPanelStartDate:
		content = lipgloss.JoinVertical(lipgloss.Top, content,
			PopupStyle.Render("From date: "+m.startInput.View()))
	case logPanelEndDate:
		content = lipgloss.JoinVertical(lipgloss.Top, content,
			PopupStyle.Render("To date: "+m.endInput.View()))
	case logPanelProjects:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ",
			filterPanel("Filter projects", m.store.ProjectNames(), m.filter.Projects, m.panelSelected))
	case logPanelPeople:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ",
			filterPanel("Filter people", m.store.PersonNames(), m.filter.People, m.panelSelected))
	}

	help := helpBar(
		"s", "from date",
		"e", "to date",
		"p", "projects",
		"f", "people",
		"enter", "view",
		"esc", "back",
	)
	return lipgloss.JoinVertical(lipgloss.Top, content, help)
}

func (m *LogListModel) filterSummary() string {
	var parts []string
	if m.filter.StartDate != nil {
		parts = append(parts, "from "+m.filter.StartDate.Format(filter.DateLayout))
	}
	if m.filter.EndDate != nil {
		parts = append(parts, "to "+m.filter.EndDate.Format(filter.DateLayout))
	}
	if len(m.filter.Projects) > 0 {
		parts = append(parts, "#"+strings.Join(m.filter.Projects, " #"))
	}
	if len(m.filter.People) > 0 {
		parts = append(parts, "@"+strings.Join(m.filter.People, " @"))
	}
	if len(parts) == 0 {
		return HelpStyle.Render("(no filter)")
	}
	return HelpStyle.Render(strings.Join(parts, " · "))
}

func formatDateBound(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(filter.DateLayout)
}

// toggleName adds name to the set, or removes it when already present.
func toggleName(set *[]string, name string) {
	for i, existing := range *set {
		if existing == name {
			*set = append((*set)[:i], (*set)[i+1:]...)
			return
		}
	}
	*set = append(*set, name)
}
