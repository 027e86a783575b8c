package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/caiushowcroft/todo-log/pkg/editor"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

func (m *EntryModel) View() string {
	if m.mode == entryModeAttaching {
		return lipgloss.JoinVertical(lipgloss.Top,
			TitleStyle.Render("Attach file"),
			m.picker.View(),
			helpBar("↑↓", "navigate", "enter", "select", "esc", "cancel"),
		)
	}

	header := m.headerView()
	body := ActiveBorderStyle.Width(max(20, m.width-4)).Render(renderBuffer(m.buffer))

	parts := []string{header, body}
	if m.ac.Active {
		parts = append(parts, m.suggestionsView())
	}
	parts = append(parts, m.attachmentsView(), m.helpView())

	return lipgloss.JoinVertical(lipgloss.Top, parts...)
}

func (m *EntryModel) headerView() string {
	if m.mode == entryModeTimestamp {
		return TitleStyle.Render("Edit timestamp: ") + m.tsInput.View()
	}
	return TitleStyle.Render("New log entry " + m.timestamp.Format(timestampLayout))
}

func (m *EntryModel) suggestionsView() string {
	title := "Projects"
	if m.ac.Kind == editor.SuggestPerson {
		title = "People"
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title) + "\n")
	for i, s := range m.ac.Suggestions {
		if i == m.ac.Selected {
			b.WriteString(SelectedStyle.Render("> "+s) + "\n")
		} else {
			b.WriteString(NormalStyle.Render("  "+s) + "\n")
		}
	}
	return PopupStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *EntryModel) attachmentsView() string {
	if len(m.attachments) == 0 {
		return HelpStyle.Render("No attachments (ctrl+a to add)")
	}

	names := make([]string, 0, len(m.attachments))
	for _, a := range m.attachments {
		names = append(names, filepath.Base(a))
	}
	return HeaderStyle.Render(fmt.Sprintf("Attachments (%d): ", len(m.attachments))) +
		NormalStyle.Render(strings.Join(names, ", "))
}

func (m *EntryModel) helpView() string {
	if m.mode == entryModeTimestamp {
		return helpBar("enter", "apply", "esc", "cancel")
	}
	return helpBar(
		"ctrl+s", "save",
		"ctrl+a", "attach",
		"ctrl+t", "edit time",
		"esc", "cancel",
		"#", "project",
		"@", "person",
		"[]", "todo",
	)
}

// renderBuffer renders the buffer content with tag/todo token highlighting
// and an inverted cell at the cursor. The cursor line is rendered in two
// halves around the cursor so the highlight of a word being typed never
// hides the cursor cell.
func renderBuffer(b *editor.Buffer) string {
	line, col := b.LineCol()
	lines := strings.Split(b.Content(), "\n")

	var out []string
	for i, l := range lines {
		if i != line {
			out = append(out, highlightTokens(l))
			continue
		}

		runes := []rune(l)
		before := highlightTokens(string(runes[:col]))
		if col < len(runes) {
			cursor := CursorStyle.Render(string(runes[col]))
			after := ""
			if col+1 < len(runes) {
				after = highlightTokens(string(runes[col+1:]))
			}
			out = append(out, before+cursor+after)
		} else {
			out = append(out, before+CursorStyle.Render(" "))
		}
	}
	return strings.Join(out, "\n")
}

// highlightTokens styles #project, @person, and todo marker tokens the way
// the entry editor and log detail view both show them.
func highlightTokens(line string) string {
	if line == "" {
		return line
	}

	var b strings.Builder
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			b.WriteString(styleWord(word.String()))
			word.Reset()
		}
	}

	for _, r := range line {
		if r == ' ' || r == '\t' {
			flush()
			b.WriteRune(r)
		} else {
			word.WriteRune(r)
		}
	}
	flush()
	return b.String()
}

func styleWord(word string) string {
	switch {
	case strings.HasPrefix(word, "#") && len(word) > 1:
		return ProjectTagStyle.Render(word)
	case strings.HasPrefix(word, "@") && len(word) > 1:
		return PersonTagStyle.Render(word)
	case strings.HasPrefix(word, models.MarkerDone), strings.HasPrefix(word, "[X]"):
		return TodoDoneStyle.Render(word)
	case strings.HasPrefix(word, models.MarkerOpen):
		return TodoOpenStyle.Render(word)
	}
	return word
}
