package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caiushowcroft/todo-log/internal/cli"
	"github.com/caiushowcroft/todo-log/pkg/files"
)

// NewPeopleCommand creates the people command
func NewPeopleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "people",
		Short: "List known people",
		RunE:  runPeople,
	}
}

func runPeople(cmd *cobra.Command, args []string) error {
	people, err := files.LoadPeople()
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	switch format {
	case cli.FormatJSON:
		return cli.WriteJSON(cmd.OutOrStdout(), people)
	case cli.FormatYAML:
		return cli.WriteYAML(cmd.OutOrStdout(), people)
	}

	if len(people) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No people configured.")
		return nil
	}

	table := cli.NewTable("NAME", "FULL NAME", "EMAIL", "COMPANY")
	for _, p := range people {
		table.AddRow(cli.TagText("@"+p.Name), p.FullName, p.Email, p.Company)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}
