package files

import "github.com/caiushowcroft/todo-log/pkg/models"

// LoadProjects reads projects.yml. A missing or empty file yields an empty
// list, not an error.
func LoadProjects() ([]models.Project, error) {
	var projects []models.Project
	if _, err := readYAML(projectsPath(), &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// SaveProjects rewrites projects.yml with the full list.
func SaveProjects(projects []models.Project) error {
	return writeYAML(projectsPath(), projects)
}

// LoadPeople reads people.yml with the same missing-file tolerance as
// LoadProjects.
func LoadPeople() ([]models.Person, error) {
	var people []models.Person
	if _, err := readYAML(peoplePath(), &people); err != nil {
		return nil, err
	}
	return people, nil
}

// SavePeople rewrites people.yml with the full list.
func SavePeople(people []models.Person) error {
	return writeYAML(peoplePath(), people)
}

// LoadSettings reads config.yml, falling back to defaults when the file is
// missing or empty.
func LoadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()
	ok, err := readYAML(configPath(), settings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings rewrites config.yml.
func SaveSettings(settings *models.Settings) error {
	return writeYAML(configPath(), settings)
}

// ProjectNames returns the known project names in configured order, for
// autocomplete.
func ProjectNames(projects []models.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

// PersonNames returns the known person names in configured order.
func PersonNames(people []models.Person) []string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	return names
}
