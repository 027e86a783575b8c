package commands

import (
	"github.com/spf13/cobra"

	"github.com/caiushowcroft/todo-log/internal/cli"
)

// AddCommands registers every data subcommand plus the shared output flag.
func AddCommands(root *cobra.Command) {
	root.PersistentFlags().StringP("output", "o", "text", "Output format: text, json, or yaml")

	root.AddCommand(NewTodosCommand())
	root.AddCommand(NewLogsCommand())
	root.AddCommand(NewProjectsCommand())
	root.AddCommand(NewPeopleCommand())
}

func outputFormat(cmd *cobra.Command) (cli.OutputFormat, error) {
	value, _ := cmd.Flags().GetString("output")
	return cli.ParseFormat(value)
}
