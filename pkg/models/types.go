package models

import "time"

// Entry is a single dated journal note. The derived fields (Projects,
// People, Todos) are always recomputed from Content by ParseEntry and are
// never edited directly.
type Entry struct {
	Timestamp   time.Time
	Content     string
	Projects    []string
	People      []string
	Todos       []Todo
	Attachments []string
	Path        string
}

// Todo is a checklist line extracted from an entry. Path plus LineNumber
// uniquely identify the on-disk line it was derived from.
type Todo struct {
	Text       string
	Completed  bool
	LineNumber int
	Projects   []string
	People     []string
	Path       string
}

// Project is a named project that entries can reference with #name.
type Project struct {
	Name        string `yaml:"name" json:"name"`
	Jira        string `yaml:"jira,omitempty" json:"jira,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Status      string `yaml:"status,omitempty" json:"status,omitempty"`
	Group       string `yaml:"group,omitempty" json:"group,omitempty"`
}

// Person is a known person that entries can reference with @name.
type Person struct {
	Name     string `yaml:"name" json:"name"`
	FullName string `yaml:"full_name,omitempty" json:"full_name,omitempty"`
	Email    string `yaml:"email,omitempty" json:"email,omitempty"`
	Tel      string `yaml:"tel,omitempty" json:"tel,omitempty"`
	Company  string `yaml:"company,omitempty" json:"company,omitempty"`
}

// FirstLine returns the first line of the entry content, for list previews.
func (e *Entry) FirstLine() string {
	for i := 0; i < len(e.Content); i++ {
		if e.Content[i] == '\n' {
			return e.Content[:i]
		}
	}
	return e.Content
}

// DirName returns the timestamped directory name this entry is stored under.
func (e *Entry) DirName() string {
	return e.Timestamp.Format(EntryDirLayout)
}

// Year returns the entry's year, used for the log-YYYY directory.
func (e *Entry) Year() int {
	return e.Timestamp.Year()
}

// ExampleProject seeds a fresh projects.yml so the file format is
// discoverable.
func ExampleProject() Project {
	return Project{
		Name:        "new-website",
		Jira:        "https://jira.example.com/projects/WWW-123",
		Description: "A project to create a new look on our website",
		Status:      "open",
	}
}

// ExamplePerson seeds a fresh people.yml.
func ExamplePerson() Person {
	return Person{
		Name:     "john",
		FullName: "John Smith",
		Email:    "john@example.com",
		Tel:      "555 123 3333",
		Company:  "foo works",
	}
}
