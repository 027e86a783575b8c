package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caiushowcroft/todo-log/pkg/models"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing log failed: %v", err)
	}
	return path
}

func TestToggleTodoCompletes(t *testing.T) {
	path := writeLog(t, "notes\n[] buy milk\n[x] call bob")
	todo := models.Todo{Text: "buy milk", LineNumber: 1, Path: path}

	if err := ToggleTodo(&todo); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	want := "notes\n[x] buy milk\n[x] call bob"
	if string(content) != want {
		t.Errorf("file = %q, want %q", content, want)
	}
	if !todo.Completed {
		t.Error("in-memory Completed flag not flipped")
	}
}

func TestToggleTodoUncompletes(t *testing.T) {
	path := writeLog(t, "[x] call bob")
	todo := models.Todo{Text: "call bob", Completed: true, LineNumber: 0, Path: path}

	if err := ToggleTodo(&todo); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "[] call bob" {
		t.Errorf("file = %q, want %q", content, "[] call bob")
	}
	if todo.Completed {
		t.Error("in-memory Completed flag not flipped")
	}
}

func TestToggleTodoUppercaseMarker(t *testing.T) {
	path := writeLog(t, "[X] shout")
	todo := models.Todo{Text: "shout", Completed: true, LineNumber: 0, Path: path}

	if err := ToggleTodo(&todo); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "[] shout" {
		t.Errorf("file = %q, want %q", content, "[] shout")
	}
}

func TestToggleTodoRoundTrip(t *testing.T) {
	original := "intro line\n  [] indented task\ntrailing line\n"
	path := writeLog(t, original)
	todo := models.Todo{Text: "indented task", LineNumber: 1, Path: path}

	if err := ToggleTodo(&todo); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if err := ToggleTodo(&todo); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != original {
		t.Errorf("round trip changed file:\n got %q\nwant %q", content, original)
	}
	if todo.Completed {
		t.Error("Completed flag should be back to false")
	}
}

func TestToggleTodoStaleRecordIsNoop(t *testing.T) {
	// The line was edited since the todo was parsed; the marker is gone.
	original := "plain text line"
	path := writeLog(t, original)
	todo := models.Todo{Text: "whatever", LineNumber: 0, Path: path}

	if err := ToggleTodo(&todo); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != original {
		t.Errorf("stale toggle modified the file: %q", content)
	}
	if todo.Completed {
		t.Error("stale toggle must not flip the in-memory flag")
	}
}

func TestToggleTodoLineOutOfRange(t *testing.T) {
	original := "[] only line"
	path := writeLog(t, original)
	todo := models.Todo{Text: "only line", LineNumber: 5, Path: path}

	if err := ToggleTodo(&todo); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != original {
		t.Errorf("out-of-range toggle modified the file: %q", content)
	}
}

func TestToggleTodoMissingFile(t *testing.T) {
	todo := models.Todo{Text: "gone", LineNumber: 0, Path: filepath.Join(t.TempDir(), "nope", "log.txt")}
	if err := ToggleTodo(&todo); err == nil {
		t.Error("expected I/O error for missing file")
	}
	if todo.Completed {
		t.Error("failed toggle must not flip the in-memory flag")
	}
}

func TestToggleTodoOnlyFirstMarkerOnLine(t *testing.T) {
	path := writeLog(t, "[] fix [] placeholder rendering")
	todo := models.Todo{Text: "fix [] placeholder rendering", LineNumber: 0, Path: path}

	if err := ToggleTodo(&todo); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	want := "[x] fix [] placeholder rendering"
	if string(content) != want {
		t.Errorf("file = %q, want %q (only the first marker changes)", content, want)
	}
}

func TestSyncTodo(t *testing.T) {
	todos := []models.Todo{
		{Path: "a/log.txt", LineNumber: 0},
		{Path: "a/log.txt", LineNumber: 2},
		{Path: "b/log.txt", LineNumber: 0},
	}
	src := models.Todo{Path: "a/log.txt", LineNumber: 2, Completed: true}

	SyncTodo(todos, &src)

	if todos[0].Completed || !todos[1].Completed || todos[2].Completed {
		t.Errorf("SyncTodo updated the wrong records: %+v", todos)
	}
}
