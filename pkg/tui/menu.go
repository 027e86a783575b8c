package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label  string
	target sessionState
}

var menuItems = []menuItem{
	{"New log entry", entryView},
	{"Todos", todoListView},
	{"Logs", logListView},
	{"Projects", projectListView},
	{"People", peopleListView},
}

// MenuModel is the start screen.
type MenuModel struct {
	selected int
	width    int
	height   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{}
}

func (m *MenuModel) Init() tea.Cmd { return nil }

func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if m.selected < len(menuItems)-1 {
			m.selected++
		}
	case "enter":
		return m, switchView(SwitchViewMsg{view: menuItems[m.selected].target})
	case "1", "2", "3", "4", "5":
		idx := int(keyMsg.String()[0] - '1')
		m.selected = idx
		return m, switchView(SwitchViewMsg{view: menuItems[idx].target})
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("todo-log"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.label
		if i == m.selected {
			line = SelectedStyle.Render("> " + item.label)
		} else {
			line = NormalStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpBar("↑↓", "navigate", "enter", "select", "1-5", "jump", "q", "quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
