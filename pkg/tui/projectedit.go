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

// Form field order for the project edit screen.
const (
	projFieldName = iota
	projFieldDescription
	projFieldJira
	projFieldStatus
	projFieldGroup
	projFieldCount
)

// ProjectEditModel edits an existing project or creates a new one.
// Status and group are pick-lists driven by settings; the rest are free text.
type ProjectEditModel struct {
	store    *Store
	original string // "" when creating

	inputs   []textinput.Model // name, description, jira
	statuses []string
	groups   []string
	statusIx int
	groupIx  int

	focused int
	width   int
	height  int
}

func NewProjectEditModel(store *Store, name string) *ProjectEditModel {
	m := &ProjectEditModel{
		store:    store,
		original: name,
		statuses: store.Settings.StateNames(),
		groups:   append([]string{""}, store.Settings.ProjectGroups...),
	}

	labels := []string{"name", "description", "jira"}
	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 200
		ti.Width = 50
		m.inputs[i] = ti
	}

	if name != "" {
		for i := range store.Projects {
			if store.Projects[i].Name != name {
				continue
			}
			p := &store.Projects[i]
			m.inputs[projFieldName].SetValue(p.Name)
			m.inputs[projFieldDescription].SetValue(p.Description)
			m.inputs[projFieldJira].SetValue(p.Jira)
			// Values outside the configured pick-lists stay selectable.
			if p.Status != "" && !containsString(m.statuses, p.Status) {
				m.statuses = append(m.statuses, p.Status)
			}
			if p.Group != "" && !containsString(m.groups, p.Group) {
				m.groups = append(m.groups, p.Group)
			}
			m.statusIx = indexOf(m.statuses, p.Status)
			m.groupIx = indexOf(m.groups, p.Group)
			break
		}
	}

	m.inputs[projFieldName].Focus()
	return m
}

func (m *ProjectEditModel) Init() tea.Cmd { return textinput.Blink }

func (m *ProjectEditModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ProjectEditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, switchView(SwitchViewMsg{view: projectListView})

	case "ctrl+s":
		return m, m.save()

	case "tab", "down":
		m.setFocus((m.focused + 1) % projFieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focused + projFieldCount - 1) % projFieldCount)
		return m, nil

	case "left", "right":
		delta := 1
		if keyMsg.String() == "left" {
			delta = -1
		}
		switch m.focused {
		case projFieldStatus:
			m.statusIx = cycle(m.statusIx+delta, len(m.statuses))
			return m, nil
		case projFieldGroup:
			m.groupIx = cycle(m.groupIx+delta, len(m.groups))
			return m, nil
		}
	}

	return m, m.updateInputs(msg)
}

func (m *ProjectEditModel) setFocus(field int) {
	m.focused = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *ProjectEditModel) updateInputs(msg tea.Msg) tea.Cmd {
	if m.focused >= len(m.inputs) {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return cmd
}

// save validates the form, rewrites projects.yml, and returns to the list.
func (m *ProjectEditModel) save() tea.Cmd {
	name := strings.TrimSpace(m.inputs[projFieldName].Value())
	if name == "" {
		return status("Project name cannot be empty")
	}

	updated := models.Project{
		Name:        name,
		Description: strings.TrimSpace(m.inputs[projFieldDescription].Value()),
		Jira:        strings.TrimSpace(m.inputs[projFieldJira].Value()),
		Group:       m.groups[m.groupIx],
	}
	if len(m.statuses) > 0 {
		updated.Status = m.statuses[m.statusIx]
	}

	projects := make([]models.Project, len(m.store.Projects))
	copy(projects, m.store.Projects)

	if m.original == "" {
		for _, p := range projects {
			if p.Name == name {
				return status(fmt.Sprintf("Project %s already exists", name))
			}
		}
		projects = append(projects, updated)
	} else {
		found := false
		for i := range projects {
			if projects[i].Name == m.original {
				projects[i] = updated
				found = true
				break
			}
		}
		if !found {
			projects = append(projects, updated)
		}
	}

	if err := files.SaveProjects(projects); err != nil {
		return status(fmt.Sprintf("Failed to save projects: %s", err))
	}
	if err := m.store.Reload(); err != nil {
		return status(fmt.Sprintf("Failed to reload projects: %s", err))
	}

	return tea.Batch(
		status(fmt.Sprintf("Saved project %s", name)),
		switchView(SwitchViewMsg{view: projectListView}),
	)
}

func (m *ProjectEditModel) View() string {
	title := "New project"
	if m.original != "" {
		title = "Edit project: " + m.original
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	labels := []string{"Name", "Description", "Jira"}
	for i, ti := range m.inputs {
		b.WriteString(m.fieldLabel(labels[i], i) + ti.View() + "\n")
	}
	b.WriteString(m.fieldLabel("Status", projFieldStatus) + m.pickView(m.statuses, m.statusIx, m.focused == projFieldStatus) + "\n")
	b.WriteString(m.fieldLabel("Group", projFieldGroup) + m.pickView(m.groups, m.groupIx, m.focused == projFieldGroup) + "\n")

	help := helpBar(
		"tab", "next field",
		"←/→", "change value",
		"ctrl+s", "save",
		"esc", "cancel",
	)
	return lipgloss.JoinVertical(lipgloss.Top, b.String(), help)
}

func (m *ProjectEditModel) fieldLabel(label string, field int) string {
	text := fmt.Sprintf("%-12s", label)
	if m.focused == field {
		return SelectedStyle.Render(text)
	}
	return HeaderStyle.Render(text)
}

// pickView renders a one-line pick-list with the current choice highlighted.
func (m *ProjectEditModel) pickView(options []string, current int, focused bool) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		label := opt
		if label == "" {
			label = noGroupLabel
		}
		switch {
		case i == current && focused:
			parts[i] = SelectedStyle.Render(label)
		case i == current:
			parts[i] = NormalStyle.Render(label)
		default:
			parts[i] = HelpStyle.Render(label)
		}
	}
	return strings.Join(parts, HelpStyle.Render(" | "))
}

// indexOf returns the position of s in list, or 0 when absent so pick-lists
// always have a valid selection.
func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return 0
}

func cycle(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
