// Package files owns all on-disk state: the timestamped log entry tree,
// the projects/people/config YAML files, and the todo toggle applier.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/caiushowcroft/todo-log/pkg/models"
)

const (
	LogFileName  = "log.txt"
	ProjectsFile = "projects.yml"
	PeopleFile   = "people.yml"
	ConfigFile   = "config.yml"
)

// BaseDir is the data directory holding everything. Tests point it at a
// temp dir; DefaultBaseDir resolves the real location.
var BaseDir = mustDefaultBaseDir()

// DefaultBaseDir returns ~/todo-log.
func DefaultBaseDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "todo-log"), nil
}

func mustDefaultBaseDir() string {
	dir, err := DefaultBaseDir()
	if err != nil {
		// Fall back to a relative dir so the CLI can still run; InitStorage
		// will surface the real problem if this is unwritable.
		return "todo-log"
	}
	return dir
}

func projectsPath() string { return filepath.Join(BaseDir, ProjectsFile) }
func peoplePath() string   { return filepath.Join(BaseDir, PeopleFile) }
func configPath() string   { return filepath.Join(BaseDir, ConfigFile) }

// InitStorage creates the data directory on first run and seeds example
// projects, people, and config files so their formats are discoverable.
// Calling it on an existing directory is a no-op.
func InitStorage() error {
	if _, err := os.Stat(BaseDir); err == nil {
		return nil
	}

	if err := os.MkdirAll(BaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", BaseDir, err)
	}

	if err := SaveProjects([]models.Project{models.ExampleProject()}); err != nil {
		return err
	}
	if err := SavePeople([]models.Person{models.ExamplePerson()}); err != nil {
		return err
	}
	return SaveSettings(models.DefaultSettings())
}

// readYAML loads a YAML file into out. A missing or empty file leaves out
// untouched and returns false.
func readYAML(path string, out interface{}) (bool, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(content) == 0 {
		return false, nil
	}

	if err := yaml.Unmarshal(content, out); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return true, nil
}

func writeYAML(path string, in interface{}) error {
	content, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
