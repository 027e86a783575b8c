package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caiushowcroft/todo-log/internal/cli"
	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/filter"
)

// LogItem is the output shape of one entry in list results.
type LogItem struct {
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Preview   string   `json:"preview" yaml:"preview"`
	Projects  []string `json:"projects,omitempty" yaml:"projects,omitempty"`
	People    []string `json:"people,omitempty" yaml:"people,omitempty"`
	Todos     int      `json:"todos" yaml:"todos"`
	Path      string   `json:"path" yaml:"path"`
}

// LogsResult is the output structure of the logs command.
type LogsResult struct {
	Items []LogItem `json:"items" yaml:"items"`
	Count int       `json:"count" yaml:"count"`
}

// NewLogsCommand creates the logs command
func NewLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs [query]",
		Short: "List log entries, newest first",
		Long: `List all log entries, newest first.

The optional query narrows the list with field:value terms:
  project:NAME        entries tagged #NAME (repeatable, any-of)
  person:NAME         entries tagged @NAME (repeatable, any-of)
  after:YYYY-MM-DD    entries on/after the date
  before:YYYY-MM-DD   entries on/before the date

Examples:
  # Everything from August 2026 touching the api project
  todo-log logs "project:api after:2026-08-01 before:2026-08-31"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLogs,
	}
	return cmd
}

func runLogs(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	f, err := filter.ParseLogQuery(query)
	if err != nil {
		return err
	}

	entries, err := files.LoadAllEntries()
	if err != nil {
		return fmt.Errorf("failed to load log entries: %w", err)
	}
	matched := f.Entries(entries)

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	result := LogsResult{Count: len(matched), Items: []LogItem{}}
	for i := range matched {
		e := &matched[i]
		result.Items = append(result.Items, LogItem{
			Timestamp: e.Timestamp.Format("2006-01-02 15:04:05"),
			Preview:   e.FirstLine(),
			Projects:  e.Projects,
			People:    e.People,
			Todos:     len(e.Todos),
			Path:      e.Path,
		})
	}

	switch format {
	case cli.FormatJSON:
		return cli.WriteJSON(cmd.OutOrStdout(), result)
	case cli.FormatYAML:
		return cli.WriteYAML(cmd.OutOrStdout(), result)
	}

	if len(matched) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No log entries found.")
		return nil
	}

	table := cli.NewTable("DATE", "ENTRY", "PROJECTS", "PEOPLE")
	for _, item := range result.Items {
		table.AddRow(
			cli.Faint(item.Timestamp),
			item.Preview,
			cli.TagText(strings.Join(item.Projects, ", ")),
			cli.TagText(strings.Join(item.People, ", ")),
		)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}
