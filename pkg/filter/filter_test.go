package filter

import (
	"testing"
	"time"

	"github.com/caiushowcroft/todo-log/pkg/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestTodoFilterCompletion(t *testing.T) {
	open := models.Todo{Text: "open"}
	done := models.Todo{Text: "done", Completed: true}

	hideCompleted := TodoFilter{ShowCompleted: false}
	if !hideCompleted.Matches(&open) {
		t.Error("incomplete todo should match when completed are hidden")
	}
	if hideCompleted.Matches(&done) {
		t.Error("completed todo should be excluded when completed are hidden")
	}

	showCompleted := TodoFilter{ShowCompleted: true}
	if !showCompleted.Matches(&open) || !showCompleted.Matches(&done) {
		t.Error("all todos should match when completed are shown")
	}
}

func TestTodoFilterAnyOfSemantics(t *testing.T) {
	todo := models.Todo{Projects: []string{"a", "c"}, People: []string{"bob"}}

	tests := []struct {
		name   string
		filter TodoFilter
		want   bool
	}{
		{"empty dimensions match all", TodoFilter{}, true},
		{"any project overlap matches", TodoFilter{Projects: []string{"a", "b"}}, true},
		{"no project overlap excludes", TodoFilter{Projects: []string{"b", "d"}}, false},
		{"person overlap matches", TodoFilter{People: []string{"bob", "alice"}}, true},
		{"dimensions AND together", TodoFilter{Projects: []string{"a"}, People: []string{"alice"}}, false},
		{"both dimensions satisfied", TodoFilter{Projects: []string{"a"}, People: []string{"bob"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(&todo); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTodoFilterProjectDimensionIndependent(t *testing.T) {
	// The project test must not depend on people or completion settings.
	filter := TodoFilter{ShowCompleted: true, Projects: []string{"a", "b"}}

	matching := models.Todo{Completed: true, Projects: []string{"b"}, People: []string{"whoever"}}
	if !filter.Matches(&matching) {
		t.Error("record intersecting the project set should match")
	}

	nonMatching := models.Todo{Completed: true, Projects: []string{"c"}, People: []string{"whoever"}}
	if filter.Matches(&nonMatching) {
		t.Error("record disjoint from the project set should not match")
	}
}

func TestLogFilterDateRange(t *testing.T) {
	entry := models.Entry{Timestamp: time.Date(2026, 8, 26, 14, 30, 0, 0, time.Local)}

	tests := []struct {
		name   string
		filter LogFilter
		want   bool
	}{
		{"no bounds", LogFilter{}, true},
		{"inside range", LogFilter{StartDate: datePtr(2026, 8, 1), EndDate: datePtr(2026, 8, 31)}, true},
		{"start bound inclusive", LogFilter{StartDate: datePtr(2026, 8, 26)}, true},
		{"end bound inclusive", LogFilter{EndDate: datePtr(2026, 8, 26)}, true},
		{"before start", LogFilter{StartDate: datePtr(2026, 8, 27)}, false},
		{"after end", LogFilter{EndDate: datePtr(2026, 8, 25)}, false},
		{"only start bound", LogFilter{StartDate: datePtr(2026, 1, 1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(&entry); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogFilterTagDimensions(t *testing.T) {
	entry := models.Entry{
		Timestamp: date(2026, 8, 26),
		Projects:  []string{"api"},
		People:    []string{"bob"},
	}

	match := LogFilter{Projects: []string{"api", "web"}, People: []string{"bob"}}
	if !match.Matches(&entry) {
		t.Error("entry intersecting both dimensions should match")
	}

	miss := LogFilter{Projects: []string{"api"}, People: []string{"alice"}}
	if miss.Matches(&entry) {
		t.Error("entry failing one dimension should not match")
	}
}

func TestTodoFilterTodosPreservesOrder(t *testing.T) {
	todos := []models.Todo{
		{Text: "first", Projects: []string{"a"}},
		{Text: "skip", Projects: []string{"b"}},
		{Text: "second", Projects: []string{"a"}},
	}

	filter := TodoFilter{Projects: []string{"a"}}
	got := filter.Todos(todos)

	if len(got) != 2 || got[0].Text != "first" || got[1].Text != "second" {
		t.Errorf("Todos() = %v, want [first second] in order", got)
	}
}

func TestLogFilterEntries(t *testing.T) {
	entries := []models.Entry{
		{Timestamp: date(2026, 1, 10), Projects: []string{"api"}},
		{Timestamp: date(2026, 2, 10), Projects: []string{"api"}},
		{Timestamp: date(2026, 1, 20), Projects: []string{"web"}},
	}

	filter := LogFilter{
		Projects:  []string{"api"},
		StartDate: datePtr(2026, 1, 1),
		EndDate:   datePtr(2026, 1, 31),
	}

	got := filter.Entries(entries)
	if len(got) != 1 || !got[0].Timestamp.Equal(date(2026, 1, 10)) {
		t.Errorf("Entries() = %v, want the single January api entry", got)
	}
}
