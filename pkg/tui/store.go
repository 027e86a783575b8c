package tui

import (
	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

// Store holds the cross-screen data every screen may need: known projects
// and people plus settings. Screens receive a *Store instead of reaching
// into one another's state. Reload methods re-read from disk; loading all
// entries is side-effect-free, so screens refresh by re-reading rather than
// patching caches.
type Store struct {
	Projects []models.Project
	People   []models.Person
	Settings *models.Settings
}

// NewStore loads the shared data set from disk.
func NewStore() (*Store, error) {
	s := &Store{}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads projects, people, and settings.
func (s *Store) Reload() error {
	projects, err := files.LoadProjects()
	if err != nil {
		return err
	}
	people, err := files.LoadPeople()
	if err != nil {
		return err
	}
	settings, err := files.LoadSettings()
	if err != nil {
		return err
	}

	s.Projects = projects
	s.People = people
	s.Settings = settings
	return nil
}

// ProjectNames returns the known project names for autocomplete and filter
// panels.
func (s *Store) ProjectNames() []string {
	return files.ProjectNames(s.Projects)
}

// PersonNames returns the known person names.
func (s *Store) PersonNames() []string {
	return files.PersonNames(s.People)
}
