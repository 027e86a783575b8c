package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/filter"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

type todoPanel int

const (
	todoPanelNone todoPanel = iota
	todoPanelProjects
	todoPanelPeople
)

// TodoListModel browses todos across all entries. The filtered view is
// recomputed as part of every mutation, never patched incrementally.
type TodoListModel struct {
	store    *Store
	todos    []models.Todo
	filter   filter.TodoFilter
	filtered []models.Todo
	selected int

	panel         todoPanel
	panelSelected int

	width  int
	height int
}

func NewTodoListModel(store *Store) (*TodoListModel, error) {
	todos, err := files.LoadAllTodos()
	if err != nil {
		return nil, err
	}

	m := &TodoListModel{
		store:  store,
		todos:  todos,
		filter: filter.TodoFilter{ShowCompleted: store.Settings.UI.ShowCompletedTodos},
	}
	m.applyFilter()
	return m, nil
}

func (m *TodoListModel) Init() tea.Cmd { return nil }

func (m *TodoListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// applyFilter recomputes the visible todos and clamps the selection.
func (m *TodoListModel) applyFilter() {
	m.filtered = m.filter.Todos(m.todos)
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m *TodoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.panel != todoPanelNone {
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
	case " ":
		return m, m.toggleSelected()
	case "c":
		m.filter.ShowCompleted = !m.filter.ShowCompleted
		m.applyFilter()
	case "p":
		m.panel = todoPanelProjects
		m.panelSelected = 0
	case "f":
		m.panel = todoPanelPeople
		m.panelSelected = 0
	case "y":
		if todo := m.selectedTodo(); todo != nil {
			if err := clipboard.WriteAll(todo.Text); err != nil {
				return m, status("Failed to copy to clipboard")
			}
			return m, status("Todo copied to clipboard")
		}
	case "enter":
		if todo := m.selectedTodo(); todo != nil {
			return m, switchView(SwitchViewMsg{view: logDetailView, path: todo.Path, returnTo: todoListView})
		}
	case "esc":
		return m, switchView(SwitchViewMsg{view: menuView})
	}
	return m, nil
}

func (m *TodoListModel) updatePanel(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.panelNames()

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
			m.togglePanelName(names[m.panelSelected])
			m.applyFilter()
		}
	case "esc", "p", "f":
		m.panel = todoPanelNone
	}
	return m, nil
}

func (m *TodoListModel) panelNames() []string {
	if m.panel == todoPanelProjects {
		return m.store.ProjectNames()
	}
	return m.store.PersonNames()
}

func (m *TodoListModel) togglePanelName(name string) {
	if m.panel == todoPanelPeople {
		toggleName(&m.filter.People, name)
		return
	}
	toggleName(&m.filter.Projects, name)
}

func (m *TodoListModel) selectedTodo() *models.Todo {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.selected]
}

// toggleSelected flips the todo on disk, then resynchronizes every cached
// record backed by the same file line so both lists stay consistent.
func (m *TodoListModel) toggleSelected() tea.Cmd {
	todo := m.selectedTodo()
	if todo == nil {
		return nil
	}

	if err := files.ToggleTodo(todo); err != nil {
		return status(err.Error())
	}

	files.SyncTodo(m.todos, todo)
	m.applyFilter()
	return nil
}

func (m *TodoListModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Todos (%d)", len(m.filtered))))
	b.WriteString("  " + m.filterSummary() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(HelpStyle.Render("No todos match the current filter.") + "\n")
	}

	for i := range m.filtered {
		todo := &m.filtered[i]
		marker := TodoOpenStyle.Render(models.MarkerOpen)
		text := todo.Text
		if todo.Completed {
			marker = TodoDoneStyle.Render(models.MarkerDone)
			text = TodoDoneStyle.Render(text)
		}

		line := fmt.Sprintf("%s %s %s", marker, text, tagSummary(todo.Projects, todo.People))
		if i == m.selected && m.panel == todoPanelNone {
			line = SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	content := b.String()
	if m.panel != todoPanelNone {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.panelView())
	}

	help := helpBar(
		"space", "toggle",
		"c", "completed",
		"p", "projects",
		"f", "people",
		"enter", "view log",
		"y", "copy",
		"esc", "back",
	)
	return lipgloss.JoinVertical(lipgloss.Top, content, help)
}

func (m *TodoListModel) filterSummary() string {
	var parts []string
	if m.filter.ShowCompleted {
		parts = append(parts, "completed shown")
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

func (m *TodoListModel) panelView() string {
	title := "Filter projects"
	active := m.filter.Projects
	if m.panel == todoPanelPeople {
		title = "Filter people"
		active = m.filter.People
	}
	return filterPanel(title, m.panelNames(), active, m.panelSelected)
}

// filterPanel renders a checkable name list shared by the todo and log
// filter panels.
func filterPanel(title string, names, active []string, selected int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title) + "\n")

	for i, name := range names {
		check := "[ ]"
		for _, a := range active {
			if a == name {
				check = "[x]"
				break
			}
		}
		line := fmt.Sprintf("%s %s", check, name)
		if i == selected {
			line = SelectedStyle.Render(line)
		} else {
			line = NormalStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if len(names) == 0 {
		b.WriteString(HelpStyle.Render("(none known)") + "\n")
	}

	return PopupStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// tagSummary renders an entry's tag sets in compact form for list rows.
func tagSummary(projects, people []string) string {
	var parts []string
	for _, p := range projects {
		parts = append(parts, ProjectTagStyle.Render("#"+p))
	}
	for _, p := range people {
		parts = append(parts, PersonTagStyle.Render("@"+p))
	}
	return strings.Join(parts, " ")
}
