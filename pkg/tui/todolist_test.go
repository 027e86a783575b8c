package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

func tempBaseDir(t *testing.T) {
	t.Helper()
	originalDir := files.BaseDir
	files.BaseDir = t.TempDir()
	t.Cleanup(func() { files.BaseDir = originalDir })
}

func seedEntry(t *testing.T, dirName, content string) string {
	t.Helper()
	entryDir := filepath.Join(files.BaseDir, "log-2026", dirName)
	if err := os.MkdirAll(entryDir, 0755); err != nil {
		t.Fatalf("failed to create entry dir: %v", err)
	}
	path := filepath.Join(entryDir, files.LogFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write log file: %v", err)
	}
	return path
}

func testStore() *Store {
	return &Store{
		Projects: []models.Project{{Name: "api"}, {Name: "web"}},
		People:   []models.Person{{Name: "bob"}},
		Settings: models.DefaultSettings(),
	}
}

func TestNewTodoListModelHidesCompleted(t *testing.T) {
	tempBaseDir(t)
	seedEntry(t, "2026-08-01_09-00-00", "standup #api with @bob\n[] review PR\n[x] merge fix\n")

	m, err := NewTodoListModel(testStore())
	if err != nil {
		t.Fatalf("NewTodoListModel() error = %v", err)
	}

	if len(m.todos) != 2 {
		t.Fatalf("loaded %d todos, want 2", len(m.todos))
	}
	if len(m.filtered) != 1 {
		t.Fatalf("filtered %d todos, want 1 (completed hidden by default)", len(m.filtered))
	}
	if m.filtered[0].Text != "review PR" {
		t.Errorf("filtered[0].Text = %q, want %q", m.filtered[0].Text, "review PR")
	}
}

func TestTodoListShowCompletedToggle(t *testing.T) {
	tempBaseDir(t)
	seedEntry(t, "2026-08-01_09-00-00", "standup #api\n[] review PR\n[x] merge fix\n")

	m, err := NewTodoListModel(testStore())
	if err != nil {
		t.Fatalf("NewTodoListModel() error = %v", err)
	}

	m.filter.ShowCompleted = true
	m.applyFilter()
	if len(m.filtered) != 2 {
		t.Errorf("filtered %d todos with completed shown, want 2", len(m.filtered))
	}
}

func TestTodoListProjectPanelFilter(t *testing.T) {
	tempBaseDir(t)
	seedEntry(t, "2026-08-01_09-00-00", "work on #api\n[] review PR\n")
	seedEntry(t, "2026-08-02_09-00-00", "work on #web\n[] ship release\n")

	m, err := NewTodoListModel(testStore())
	if err != nil {
		t.Fatalf("NewTodoListModel() error = %v", err)
	}
	if len(m.filtered) != 2 {
		t.Fatalf("filtered %d todos before filter, want 2", len(m.filtered))
	}

	m.panel = todoPanelProjects
	m.togglePanelName("api")
	m.applyFilter()

	if len(m.filtered) != 1 {
		t.Fatalf("filtered %d todos with project filter, want 1", len(m.filtered))
	}
	if m.filtered[0].Text != "review PR" {
		t.Errorf("filtered[0].Text = %q, want %q", m.filtered[0].Text, "review PR")
	}

	// Toggling the same name again removes the filter.
	m.togglePanelName("api")
	m.applyFilter()
	if len(m.filtered) != 2 {
		t.Errorf("filtered %d todos after removing filter, want 2", len(m.filtered))
	}
}

func TestTodoListToggleSelectedUpdatesDiskAndCache(t *testing.T) {
	tempBaseDir(t)
	path := seedEntry(t, "2026-08-01_09-00-00", "standup\n[] review PR\n")

	m, err := NewTodoListModel(testStore())
	if err != nil {
		t.Fatalf("NewTodoListModel() error = %v", err)
	}
	if len(m.filtered) != 1 {
		t.Fatalf("filtered %d todos, want 1", len(m.filtered))
	}

	if cmd := m.toggleSelected(); cmd != nil {
		t.Fatalf("toggleSelected() returned a status command: %v", cmd())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to re-read log: %v", err)
	}
	want := "standup\n[x] review PR\n"
	if string(content) != want {
		t.Errorf("log content = %q, want %q", content, want)
	}

	// The backing record was resynced, so the default filter now hides it.
	if !m.todos[0].Completed {
		t.Error("cached todo not marked completed after toggle")
	}
	if len(m.filtered) != 0 {
		t.Errorf("filtered %d todos after completing the only one, want 0", len(m.filtered))
	}
}

func TestTodoListSelectionClampsAfterFilter(t *testing.T) {
	tempBaseDir(t)
	seedEntry(t, "2026-08-01_09-00-00", "notes\n[] one\n[] two\n[] three\n")

	m, err := NewTodoListModel(testStore())
	if err != nil {
		t.Fatalf("NewTodoListModel() error = %v", err)
	}

	m.selected = 2
	m.panel = todoPanelProjects
	m.togglePanelName("api")
	m.applyFilter()

	if len(m.filtered) != 0 {
		t.Fatalf("filtered %d todos, want 0", len(m.filtered))
	}
	if m.selected != 0 {
		t.Errorf("selected = %d after empty filter, want 0", m.selected)
	}
}
