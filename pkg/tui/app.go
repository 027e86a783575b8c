package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sessionState int

const (
	menuView sessionState = iota
	entryView
	todoListView
	logListView
	logDetailView
	projectListView
	projectDetailView
	projectEditView
	peopleListView
	personDetailView
	personEditView
)

// App is the root model. It owns the per-screen sub-models and the shared
// Store; each screen holds only its own fields and talks to the others
// through SwitchViewMsg.
type App struct {
	state      sessionState
	store      *Store
	menu       *MenuModel
	entry      *EntryModel
	todos      *TodoListModel
	logs       *LogListModel
	logDetail  *LogDetailModel
	projects   *ProjectListModel
	projDetail *ProjectDetailModel
	projEdit   *ProjectEditModel
	people     *PeopleListModel
	persDetail *PersonDetailModel
	persEdit   *PersonEditModel
	width      int
	height     int
	statusMsg  string
}

// NewApp loads shared data and starts at the menu.
func NewApp() (*App, error) {
	store, err := NewStore()
	if err != nil {
		return nil, err
	}
	return &App{
		state: menuView,
		store: store,
		menu:  NewMenuModel(),
	}, nil
}

func (a *App) Init() tea.Cmd {
	return a.menu.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.activeScreen().SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// Keystrokes clear the previous status message.
		a.statusMsg = ""

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		return a.switchTo(msg)
	}

	var cmd tea.Cmd
	_, cmd = a.activeScreen().Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.activeScreen().View()
	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Top, content, StatusStyle.Render(a.statusMsg))
	}
	return content
}

// screen is the interface every sub-model implements on top of tea.Model.
type screen interface {
	tea.Model
	SetSize(width, height int)
}

func (a *App) activeScreen() screen {
	switch a.state {
	case entryView:
		return a.entry
	case todoListView:
		return a.todos
	case logListView:
		return a.logs
	case logDetailView:
		return a.logDetail
	case projectListView:
		return a.projects
	case projectDetailView:
		return a.projDetail
	case projectEditView:
		return a.projEdit
	case peopleListView:
		return a.people
	case personDetailView:
		return a.persDetail
	case personEditView:
		return a.persEdit
	default:
		return a.menu
	}
}

// switchTo builds (or rebuilds) the target screen. Screens showing derived
// data are reconstructed on entry so they always reflect the files on disk.
func (a *App) switchTo(msg SwitchViewMsg) (tea.Model, tea.Cmd) {
	var err error
	switch msg.view {
	case menuView:
		if a.menu == nil {
			a.menu = NewMenuModel()
		}

	case entryView:
		a.entry = NewEntryModel(a.store)

	case todoListView:
		a.todos, err = NewTodoListModel(a.store)

	case logListView:
		a.logs, err = NewLogListModel(a.store)

	case logDetailView:
		a.logDetail, err = NewLogDetailModel(msg.path, msg.returnTo)

	case projectListView:
		if err = a.store.Reload(); err == nil {
			a.projects = NewProjectListModel(a.store)
		}

	case projectDetailView:
		a.projDetail, err = NewProjectDetailModel(a.store, msg.name)

	case projectEditView:
		a.projEdit = NewProjectEditModel(a.store, msg.name)

	case peopleListView:
		if err = a.store.Reload(); err == nil {
			a.people = NewPeopleListModel(a.store)
		}

	case personDetailView:
		a.persDetail, err = NewPersonDetailModel(a.store, msg.name)

	case personEditView:
		a.persEdit = NewPersonEditModel(a.store, msg.name)
	}

	if err != nil {
		a.statusMsg = err.Error()
		return a, nil
	}

	a.state = msg.view
	active := a.activeScreen()
	active.SetSize(a.width, a.height)
	return a, active.Init()
}

// StatusMsg sets the status bar text.
type StatusMsg string

// SwitchViewMsg asks the App to activate another screen. path carries a log
// file path for the log detail screen; name carries a project or person name
// for detail/edit screens ("" means create new); returnTo is where Esc goes
// back to from the log detail screen.
type SwitchViewMsg struct {
	view     sessionState
	path     string
	name     string
	returnTo sessionState
}

func switchView(msg SwitchViewMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func status(format string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(format) }
}
