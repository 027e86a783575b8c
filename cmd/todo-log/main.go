package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/caiushowcroft/todo-log/cmd/commands"
	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "todo-log",
	Short: "Terminal journal with #project and @person tags and [] todos",
	Long: `todo-log is a terminal journaling tool. You type free-form dated notes
tagged with #project and @person markers and [] / [x] checklist lines; the
tool derives todo, project, and people views from the notes and lets you
filter and browse them. Notes are plain UTF-8 text files under ~/todo-log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := files.InitStorage(); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", files.BaseDir, err)
		}

		app, err := tui.NewApp()
		if err != nil {
			return err
		}
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the todo-log data directory",
	Long:  `Creates the data directory with example projects.yml, people.yml, and config.yml files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := files.InitStorage(); err != nil {
			return err
		}
		fmt.Printf("✓ Initialized %s\n", files.BaseDir)
		fmt.Println("Run 'todo-log' to start the interactive TUI.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of todo-log",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("todo-log version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	commands.AddCommands(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
