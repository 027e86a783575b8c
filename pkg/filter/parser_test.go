package filter

import (
	"reflect"
	"testing"
	"time"
)

func TestParseTodoQuery(t *testing.T) {
	f, err := ParseTodoQuery("project:api project:web person:bob completed:true")
	if err != nil {
		t.Fatalf("ParseTodoQuery failed: %v", err)
	}

	if !reflect.DeepEqual(f.Projects, []string{"api", "web"}) {
		t.Errorf("Projects = %v, want [api web]", f.Projects)
	}
	if !reflect.DeepEqual(f.People, []string{"bob"}) {
		t.Errorf("People = %v, want [bob]", f.People)
	}
	if !f.ShowCompleted {
		t.Error("ShowCompleted = false, want true")
	}
}

func TestParseTodoQueryIgnoresUnknownFields(t *testing.T) {
	f, err := ParseTodoQuery("project:api bogus:value plain-word")
	if err != nil {
		t.Fatalf("ParseTodoQuery failed: %v", err)
	}
	if !reflect.DeepEqual(f.Projects, []string{"api"}) {
		t.Errorf("Projects = %v, want [api]", f.Projects)
	}
}

func TestParseTodoQueryBadCompleted(t *testing.T) {
	if _, err := ParseTodoQuery("completed:maybe"); err == nil {
		t.Error("expected error for non-boolean completed value")
	}
}

func TestParseLogQuery(t *testing.T) {
	f, err := ParseLogQuery("project:api after:2026-01-01 before:2026-02-01")
	if err != nil {
		t.Fatalf("ParseLogQuery failed: %v", err)
	}

	if !reflect.DeepEqual(f.Projects, []string{"api"}) {
		t.Errorf("Projects = %v, want [api]", f.Projects)
	}

	wantStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)
	if f.StartDate == nil || !f.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", f.StartDate, wantStart)
	}
	if f.EndDate == nil || !f.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", f.EndDate, wantEnd)
	}
}

func TestParseLogQueryBadDate(t *testing.T) {
	if _, err := ParseLogQuery("after:01/02/2026"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestParseEmptyQuery(t *testing.T) {
	f, err := ParseLogQuery("")
	if err != nil {
		t.Fatalf("ParseLogQuery failed: %v", err)
	}
	if f.StartDate != nil || f.EndDate != nil || len(f.Projects) != 0 || len(f.People) != 0 {
		t.Errorf("empty query should produce an unconstrained filter, got %+v", f)
	}
}
