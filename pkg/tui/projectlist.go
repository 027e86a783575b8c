package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/caiushowcroft/todo-log/pkg/models"
)

// noGroupLabel stands in for an empty project group in filter panels and
// list rows.
const noGroupLabel = "(no group)"

// ProjectListModel lists known projects with group filtering.
type ProjectListModel struct {
	store    *Store
	filtered []models.Project
	groups   []string // active group filter, empty = all
	selected int

	panelOpen     bool
	panelSelected int

	width  int
	height int
}

func NewProjectListModel(store *Store) *ProjectListModel {
	m := &ProjectListModel{store: store}
	m.applyFilter()
	return m
}

func (m *ProjectListModel) Init() tea.Cmd { return nil }

func (m *ProjectListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// applyFilter recomputes the visible projects, grouped alphabetically with
// ungrouped projects last and original order kept inside a group.
func (m *ProjectListModel) applyFilter() {
	m.filtered = nil
	for _, p := range m.store.Projects {
		if len(m.groups) == 0 || containsString(m.groups, p.Group) {
			m.filtered = append(m.filtered, p)
		}
	}

	sort.SliceStable(m.filtered, func(i, j int) bool {
		a, b := m.filtered[i].Group, m.filtered[j].Group
		if (a == "") != (b == "") {
			return b == ""
		}
		return a < b
	})

	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

// groupNames returns every group seen across projects, sorted, with the
// no-group placeholder last when ungrouped projects exist.
func (m *ProjectListModel) groupNames() []string {
	seen := make(map[string]bool)
	hasUngrouped := false
	var names []string
	for _, p := range m.store.Projects {
		if p.Group == "" {
			hasUngrouped = true
			continue
		}
		if !seen[p.Group] {
			seen[p.Group] = true
			names = append(names, p.Group)
		}
	}
	sort.Strings(names)
	if hasUngrouped {
		names = append(names, noGroupLabel)
	}
	return names
}

func (m *ProjectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.panelOpen {
		return m.updatePanel(keyMsg)
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
	case "g":
		m.panelOpen = true
		m.panelSelected = 0
	case "n":
		return m, switchView(SwitchViewMsg{view: projectEditView})
	case "e":
		if p := m.selectedProject(); p != nil {
			return m, switchView(SwitchViewMsg{view: projectEditView, name: p.Name})
		}
	case "enter":
		if p := m.selectedProject(); p != nil {
			return m, switchView(SwitchViewMsg{view: projectDetailView, name: p.Name})
		}
	case "esc":
		return m, switchView(SwitchViewMsg{view: menuView})
	}
	return m, nil
}

func (m *ProjectListModel) updatePanel(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.groupNames()

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
			name := names[m.panelSelected]
			if name == noGroupLabel {
				name = ""
			}
			toggleName(&m.groups, name)
			m.applyFilter()
		}
	case "esc", "g":
		m.panelOpen = false
	}
	return m, nil
}

func (m *ProjectListModel) selectedProject() *models.Project {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.selected]
}

func (m *ProjectListModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Projects (%d)", len(m.filtered))) + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(HelpStyle.Render("No projects. Press n to create one.") + "\n")
	}

	lastGroup := "\x00"
	for i := range m.filtered {
		p := &m.filtered[i]
		if p.Group != lastGroup {
			label := p.Group
			if label == "" {
				label = noGroupLabel
			}
			b.WriteString(HeaderStyle.Render(label) + "\n")
			lastGroup = p.Group
		}

		line := fmt.Sprintf("%s  %s  %s",
			ProjectTagStyle.Render("#"+p.Name),
			m.statusLabel(p.Status),
			HelpStyle.Render(p.Description),
		)
		if i == m.selected && !m.panelOpen {
			line = SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	content := b.String()
	if m.panelOpen {
		var active []string
		for _, g := range m.groups {
			if g == "" {
				g = noGroupLabel
			}
			active = append(active, g)
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ",
			filterPanel("Filter groups", m.groupNames(), active, m.panelSelected))
	}

	help := helpBar(
		"enter", "details",
		"n", "new",
		"e", "edit",
		"g", "groups",
		"esc", "back",
	)
	return lipgloss.JoinVertical(lipgloss.Top, content, help)
}

func (m *ProjectListModel) statusLabel(status string) string {
	color := m.store.Settings.StateColor(status)
	style := NormalStyle
	switch color {
	case "green":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	case "yellow":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	case "gray":
		style = HelpStyle
	case "red":
		style = ErrorStyle
	}
	return style.Render(status)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
