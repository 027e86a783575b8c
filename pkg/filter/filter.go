// Package filter provides the pure predicates used to build filtered todo
// and log views. Filters combine independent dimensions with AND; within a
// non-empty set dimension a record matches if it shares any element with the
// filter ("any-of"), and an empty dimension imposes no constraint.
package filter

import (
	"time"

	"github.com/caiushowcroft/todo-log/pkg/models"
)

// TodoFilter selects todos by completion state and owning entry tags.
type TodoFilter struct {
	ShowCompleted bool
	Projects      []string
	People        []string
}

// LogFilter selects entries by tags and an inclusive date range. A nil date
// bound is unconstrained on that side.
type LogFilter struct {
	Projects  []string
	People    []string
	StartDate *time.Time
	EndDate   *time.Time
}

// Matches reports whether the todo passes every configured dimension.
func (f *TodoFilter) Matches(todo *models.Todo) bool {
	if !f.ShowCompleted && todo.Completed {
		return false
	}
	if !anyOf(todo.Projects, f.Projects) {
		return false
	}
	if !anyOf(todo.People, f.People) {
		return false
	}
	return true
}

// Matches reports whether the entry passes every configured dimension.
func (f *LogFilter) Matches(entry *models.Entry) bool {
	if !anyOf(entry.Projects, f.Projects) {
		return false
	}
	if !anyOf(entry.People, f.People) {
		return false
	}

	date := dateOnly(entry.Timestamp)
	if f.StartDate != nil && date.Before(dateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && date.After(dateOnly(*f.EndDate)) {
		return false
	}
	return true
}

// Todos returns the todos matching the filter, preserving input order.
func (f *TodoFilter) Todos(todos []models.Todo) []models.Todo {
	var out []models.Todo
	for i := range todos {
		if f.Matches(&todos[i]) {
			out = append(out, todos[i])
		}
	}
	return out
}

// Entries returns the entries matching the filter, preserving input order.
func (f *LogFilter) Entries(entries []models.Entry) []models.Entry {
	var out []models.Entry
	for i := range entries {
		if f.Matches(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}

// anyOf reports whether have and want intersect. An empty want set is
// vacuously true.
func anyOf(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
