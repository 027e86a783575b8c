package models

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestParseEntryProjects(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "simple tags",
			content:  "worked on #api with #frontend",
			expected: []string{"api", "frontend"},
		},
		{
			name:     "duplicates dropped first seen order kept",
			content:  "#a #b #a",
			expected: []string{"a", "b"},
		},
		{
			name:     "trailing punctuation stripped",
			content:  "shipped #foo, today",
			expected: []string{"foo"},
		},
		{
			name:     "bare marker is not a tag",
			content:  "just a # sign",
			expected: nil,
		},
		{
			name:     "marker with only punctuation is not a tag",
			content:  "#,, nothing here",
			expected: nil,
		},
		{
			name:     "hyphen and underscore survive",
			content:  "#new-website #infra_v2",
			expected: []string{"new-website", "infra_v2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ParseEntry(tt.content, "")
			if !reflect.DeepEqual(entry.Projects, tt.expected) {
				t.Errorf("Projects = %v, want %v", entry.Projects, tt.expected)
			}
		})
	}
}

func TestParseEntryPeople(t *testing.T) {
	entry := ParseEntry("met @bob and @alice, then @bob again", "")
	expected := []string{"bob", "alice"}
	if !reflect.DeepEqual(entry.People, expected) {
		t.Errorf("People = %v, want %v", entry.People, expected)
	}
	if entry.Projects != nil {
		t.Errorf("Projects = %v, want none", entry.Projects)
	}
}

func TestParseEntryTodos(t *testing.T) {
	entry := ParseEntry("[] buy milk\n[x] call bob\n", "")

	if len(entry.Todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(entry.Todos))
	}

	first := entry.Todos[0]
	if first.Text != "buy milk" || first.Completed || first.LineNumber != 0 {
		t.Errorf("first todo = %+v, want {buy milk false 0}", first)
	}

	second := entry.Todos[1]
	if second.Text != "call bob" || !second.Completed || second.LineNumber != 1 {
		t.Errorf("second todo = %+v, want {call bob true 1}", second)
	}
}

func TestParseEntryTodoVariants(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		text      string
		completed bool
		line      int
	}{
		{"uppercase marker", "[X] done thing", "done thing", true, 0},
		{"indented line", "   [] indented", "indented", false, 0},
		{"empty remainder still a todo", "[]", "", false, 0},
		{"later line number", "notes\nmore notes\n[] task", "task", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ParseEntry(tt.content, "")
			if len(entry.Todos) != 1 {
				t.Fatalf("expected 1 todo, got %d", len(entry.Todos))
			}
			todo := entry.Todos[0]
			if todo.Text != tt.text || todo.Completed != tt.completed || todo.LineNumber != tt.line {
				t.Errorf("todo = %+v, want {%q %v %d}", todo, tt.text, tt.completed, tt.line)
			}
		})
	}
}

func TestParseEntryTodosInheritEntryTags(t *testing.T) {
	content := "#api work with @bob\n[] review PR\nmore #infra notes\n"
	entry := ParseEntry(content, "")

	if len(entry.Todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(entry.Todos))
	}

	todo := entry.Todos[0]
	if !reflect.DeepEqual(todo.Projects, []string{"api", "infra"}) {
		t.Errorf("todo projects = %v, want entry-wide [api infra]", todo.Projects)
	}
	if !reflect.DeepEqual(todo.People, []string{"bob"}) {
		t.Errorf("todo people = %v, want [bob]", todo.People)
	}
}

func TestParseEntryTimestampFromPath(t *testing.T) {
	path := filepath.Join("log-2026", "2026-08-26_09-15-42", "log.txt")
	entry := ParseEntry("note", path)

	want := time.Date(2026, 8, 26, 9, 15, 42, 0, time.Local)
	if !entry.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", entry.Timestamp, want)
	}
}

func TestParseEntryBadTimestampFallsBack(t *testing.T) {
	before := time.Now()
	entry := ParseEntry("note", filepath.Join("somewhere", "not-a-timestamp", "log.txt"))
	after := time.Now()

	if entry.Timestamp.Before(before) || entry.Timestamp.After(after) {
		t.Errorf("Timestamp = %v, want construction time between %v and %v", entry.Timestamp, before, after)
	}
}

func TestParseEntryIdempotent(t *testing.T) {
	content := "#api @bob\n[] one\n[x] two\n#api again"
	path := filepath.Join("log-2025", "2025-01-02_03-04-05", "log.txt")

	a := ParseEntry(content, path)
	b := ParseEntry(content, path)

	if !reflect.DeepEqual(a.Projects, b.Projects) ||
		!reflect.DeepEqual(a.People, b.People) ||
		!reflect.DeepEqual(a.Todos, b.Todos) {
		t.Errorf("ParseEntry not idempotent:\nfirst:  %+v\nsecond: %+v", a, b)
	}
}

func TestEntryFirstLine(t *testing.T) {
	entry := Entry{Content: "first line\nsecond line"}
	if got := entry.FirstLine(); got != "first line" {
		t.Errorf("FirstLine() = %q, want %q", got, "first line")
	}

	empty := Entry{}
	if got := empty.FirstLine(); got != "" {
		t.Errorf("FirstLine() on empty = %q, want empty", got)
	}
}
