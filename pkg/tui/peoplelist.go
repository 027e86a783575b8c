package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/caiushowcroft/todo-log/pkg/models"
)

// PeopleListModel lists known people.
type PeopleListModel struct {
	store    *Store
	selected int
	width    int
	height   int
}

func NewPeopleListModel(store *Store) *PeopleListModel {
	return &PeopleListModel{store: store}
}

func (m *PeopleListModel) Init() tea.Cmd { return nil }

func (m *PeopleListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *PeopleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if m.selected < len(m.store.People)-1 {
			m.selected++
		}
	case "n":
		return m, switchView(SwitchViewMsg{view: personEditView})
	case "e":
		if p := m.selectedPerson(); p != nil {
			return m, switchView(SwitchViewMsg{view: personEditView, name: p.Name})
		}
	case "enter":
		if p := m.selectedPerson(); p != nil {
			return m, switchView(SwitchViewMsg{view: personDetailView, name: p.Name})
		}
	case "esc":
		return m, switchView(SwitchViewMsg{view: menuView})
	}
	return m, nil
}

func (m *PeopleListModel) selectedPerson() *models.Person {
	if m.selected < 0 || m.selected >= len(m.store.People) {
		return nil
	}
	return &m.store.People[m.selected]
}

func (m *PeopleListModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("People (%d)", len(m.store.People))) + "\n\n")

	if len(m.store.People) == 0 {
		b.WriteString(HelpStyle.Render("No people. Press n to add one.") + "\n")
	}

	for i := range m.store.People {
		p := &m.store.People[i]
		line := fmt.Sprintf("%s  %s  %s",
			PersonTagStyle.Render("@"+p.Name),
			NormalStyle.Render(p.FullName),
			HelpStyle.Render(p.Company),
		)
		if i == m.selected {
			line = SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	help := helpBar(
		"enter", "details",
		"n", "new",
		"e", "edit",
		"esc", "back",
	)
	return lipgloss.JoinVertical(lipgloss.Top, b.String(), help)
}
