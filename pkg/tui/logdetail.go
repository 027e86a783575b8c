package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

// LogDetailModel shows one entry read fresh from disk.
type LogDetailModel struct {
	entry    *models.Entry
	returnTo sessionState
	viewport viewport.Model
	width    int
	height   int
}

func NewLogDetailModel(path string, returnTo sessionState) (*LogDetailModel, error) {
	entry, err := files.LoadEntry(path)
	if err != nil {
		return nil, err
	}

	m := &LogDetailModel{
		entry:    entry,
		returnTo: returnTo,
		viewport: viewport.New(80, 20),
	}
	return m, nil
}

func (m *LogDetailModel) Init() tea.Cmd { return nil }

func (m *LogDetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(20, width-4)
	m.viewport.Height = max(5, height-7)
	m.refreshContent()
}

func (m *LogDetailModel) refreshContent() {
	wrapped := wordwrap.String(m.entry.Content, m.viewport.Width-2)
	var lines []string
	for _, line := range strings.Split(wrapped, "\n") {
		lines = append(lines, highlightTokens(line))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *LogDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, switchView(SwitchViewMsg{view: m.returnTo})
		case "y":
			if err := clipboard.WriteAll(m.entry.Content); err != nil {
				return m, status("Failed to copy to clipboard")
			}
			return m, status("Log copied to clipboard")
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *LogDetailModel) View() string {
	header := TitleStyle.Render("Log " + m.entry.Timestamp.Format(timestampLayout))
	tags := tagSummary(m.entry.Projects, m.entry.People)

	return lipgloss.JoinVertical(lipgloss.Top,
		header,
		tags,
		ActiveBorderStyle.Render(m.viewport.View()),
		helpBar("↑↓", "scroll", "y", "copy", "esc", "back"),
	)
}
