package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caiushowcroft/todo-log/internal/cli"
	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

// NewProjectsCommand creates the projects command
func NewProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List known projects",
		RunE:  runProjects,
	}
}

func runProjects(cmd *cobra.Command, args []string) error {
	projects, err := files.LoadProjects()
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	switch format {
	case cli.FormatJSON:
		return cli.WriteJSON(cmd.OutOrStdout(), projects)
	case cli.FormatYAML:
		return cli.WriteYAML(cmd.OutOrStdout(), projects)
	}

	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects configured.")
		return nil
	}

	table := cli.NewTable("NAME", "STATUS", "GROUP", "DESCRIPTION")
	for _, p := range projects {
		table.AddRow(cli.TagText("#"+p.Name), statusCell(p), p.Group, p.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}

func statusCell(p models.Project) string {
	if p.Status == "done" {
		return cli.Done(p.Status)
	}
	return cli.Open(p.Status)
}
