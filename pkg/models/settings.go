package models

// Settings represents the application configuration stored in config.yml
type Settings struct {
	ProjectStates []ProjectState `yaml:"project_states"`
	ProjectGroups []string       `yaml:"project_groups"`
	UI            UISettings     `yaml:"ui"`
}

// ProjectState is an allowed project status with a display color
type ProjectState struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowCompletedTodos bool `yaml:"show_completed_todos"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		ProjectStates: []ProjectState{
			{Name: "open", Color: "green"},
			{Name: "on-hold", Color: "yellow"},
			{Name: "done", Color: "gray"},
		},
		ProjectGroups: []string{"work", "personal"},
		UI: UISettings{
			ShowCompletedTodos: false,
		},
	}
}

// StateNames returns the allowed project status names in configured order.
func (s *Settings) StateNames() []string {
	names := make([]string, 0, len(s.ProjectStates))
	for _, st := range s.ProjectStates {
		names = append(names, st.Name)
	}
	return names
}

// StateColor returns the configured color for a status name, or "" when the
// status is not configured.
func (s *Settings) StateColor(name string) string {
	for _, st := range s.ProjectStates {
		if st.Name == name {
			return st.Color
		}
	}
	return ""
}
