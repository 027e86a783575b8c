package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

const (
	persFieldName = iota
	persFieldFullName
	persFieldEmail
	persFieldTel
	persFieldCompany
	persFieldCount
)

// PersonEditModel edits an existing person or creates a new one. All fields
// are free text.
type PersonEditModel struct {
	store    *Store
	original string // "" when creating

	inputs  []textinput.Model
	focused int
	width   int
	height  int
}

func NewPersonEditModel(store *Store, name string) *PersonEditModel {
	m := &PersonEditModel{store: store, original: name}

	labels := []string{"name", "full name", "email", "tel", "company"}
	m.inputs = make([]textinput.Model, persFieldCount)
	for i := 0; i < persFieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 200
		ti.Width = 50
		m.inputs[i] = ti
	}

	if name != "" {
		for i := range store.People {
			if store.People[i].Name != name {
				continue
			}
			p := &store.People[i]
			m.inputs[persFieldName].SetValue(p.Name)
			m.inputs[persFieldFullName].SetValue(p.FullName)
			m.inputs[persFieldEmail].SetValue(p.Email)
			m.inputs[persFieldTel].SetValue(p.Tel)
			m.inputs[persFieldCompany].SetValue(p.Company)
			break
		}
	}

	m.inputs[persFieldName].Focus()
	return m
}

func (m *PersonEditModel) Init() tea.Cmd { return textinput.Blink }

func (m *PersonEditModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *PersonEditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, switchView(SwitchViewMsg{view: peopleListView})

	case "ctrl+s":
		return m, m.save()

	case "tab", "down", "enter":
		m.setFocus((m.focused + 1) % persFieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focused + persFieldCount - 1) % persFieldCount)
		return m, nil
	}

	return m, m.updateInputs(msg)
}

func (m *PersonEditModel) setFocus(field int) {
	m.focused = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *PersonEditModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return cmd
}

// save validates the form, rewrites people.yml, and returns to the list.
func (m *PersonEditModel) save() tea.Cmd {
	name := strings.TrimSpace(m.inputs[persFieldName].Value())
	if name == "" {
		return status("Person name cannot be empty")
	}

	updated := models.Person{
		Name:     name,
		FullName: strings.TrimSpace(m.inputs[persFieldFullName].Value()),
		Email:    strings.TrimSpace(m.inputs[persFieldEmail].Value()),
		Tel:      strings.TrimSpace(m.inputs[persFieldTel].Value()),
		Company:  strings.TrimSpace(m.inputs[persFieldCompany].Value()),
	}

	people := make([]models.Person, len(m.store.People))
	copy(people, m.store.People)

	if m.original == "" {
		for _, p := range people {
			if p.Name == name {
				return status(fmt.Sprintf("Person %s already exists", name))
			}
		}
		people = append(people, updated)
	} else {
		found := false
		for i := range people {
			if people[i].Name == m.original {
				people[i] = updated
				found = true
				break
			}
		}
		if !found {
			people = append(people, updated)
		}
	}

	if err := files.SavePeople(people); err != nil {
		return status(fmt.Sprintf("Failed to save people: %s", err))
	}
	if err := m.store.Reload(); err != nil {
		return status(fmt.Sprintf("Failed to reload people: %s", err))
	}

	return tea.Batch(
		status(fmt.Sprintf("Saved person %s", name)),
		switchView(SwitchViewMsg{view: peopleListView}),
	)
}

func (m *PersonEditModel) View() string {
	title := "New person"
	if m.original != "" {
		title = "Edit person: " + m.original
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	labels := []string{"Name", "Full name", "Email", "Tel", "Company"}
	for i, ti := range m.inputs {
		label := fmt.Sprintf("%-12s", labels[i])
		if m.focused == i {
			b.WriteString(SelectedStyle.Render(label))
		} else {
			b.WriteString(HeaderStyle.Render(label))
		}
		b.WriteString(ti.View() + "\n")
	}

	help := helpBar(
		"tab", "next field",
		"ctrl+s", "save",
		"esc", "cancel",
	)
	return lipgloss.JoinVertical(lipgloss.Top, b.String(), help)
}
