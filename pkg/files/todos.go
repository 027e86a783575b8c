package files

import (
	"fmt"
	"os"
	"strings"

	"github.com/caiushowcroft/todo-log/pkg/models"
)

// ToggleTodo flips a todo's marker on disk and, on success, its in-memory
// Completed flag. The owning file is re-read fresh so a stale cached record
// cannot corrupt unrelated lines; if the target line no longer carries the
// expected marker the file is left untouched (the file is the source of
// truth, so a stale record is silently dropped, not an error).
func ToggleTodo(todo *models.Todo) error {
	content, err := os.ReadFile(todo.Path)
	if err != nil {
		return fmt.Errorf("failed to read log %s: %w", todo.Path, err)
	}

	lines := strings.Split(string(content), "\n")
	if todo.LineNumber < 0 || todo.LineNumber >= len(lines) {
		return nil
	}

	line := lines[todo.LineNumber]
	var updated string
	if todo.Completed {
		updated = strings.Replace(line, models.MarkerDone, models.MarkerOpen, 1)
		if updated == line {
			updated = strings.Replace(line, "[X]", models.MarkerOpen, 1)
		}
	} else if strings.HasPrefix(strings.TrimSpace(line), models.MarkerOpen) {
		updated = strings.Replace(line, models.MarkerOpen, models.MarkerDone, 1)
	} else {
		updated = line
	}

	if updated == line {
		return nil
	}
	lines[todo.LineNumber] = updated

	if err := os.WriteFile(todo.Path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write log %s: %w", todo.Path, err)
	}

	todo.Completed = !todo.Completed
	return nil
}

// SyncTodo copies the completion state of src onto every todo in todos that
// is backed by the same file line, so sibling views stay consistent after a
// toggle.
func SyncTodo(todos []models.Todo, src *models.Todo) {
	for i := range todos {
		if todos[i].Path == src.Path && todos[i].LineNumber == src.LineNumber {
			todos[i].Completed = src.Completed
		}
	}
}
