package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caiushowcroft/todo-log/internal/cli"
	"github.com/caiushowcroft/todo-log/pkg/files"
	"github.com/caiushowcroft/todo-log/pkg/filter"
	"github.com/caiushowcroft/todo-log/pkg/models"
)

// TodoItem is the output shape of one todo in list results.
type TodoItem struct {
	Text      string   `json:"text" yaml:"text"`
	Completed bool     `json:"completed" yaml:"completed"`
	Projects  []string `json:"projects,omitempty" yaml:"projects,omitempty"`
	People    []string `json:"people,omitempty" yaml:"people,omitempty"`
	Path      string   `json:"path" yaml:"path"`
	Line      int      `json:"line" yaml:"line"`
}

// TodosResult is the output structure of the todos command.
type TodosResult struct {
	Items []TodoItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// NewTodosCommand creates the todos command
func NewTodosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos [query]",
		Short: "List todos extracted from your log entries",
		Long: `List the todos derived from all log entries, newest entry first.

The optional query narrows the list with field:value terms:
  project:NAME      only todos from entries tagged #NAME (repeatable, any-of)
  person:NAME       only todos from entries tagged @NAME (repeatable, any-of)
  completed:true    include completed todos (hidden by default)

Examples:
  # Open todos across all entries
  todo-log todos

  # Everything for the api project, completed included
  todo-log todos "project:api completed:true"

  # JSON for scripting
  todo-log todos -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTodos,
	}
	return cmd
}

func runTodos(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	f, err := filter.ParseTodoQuery(query)
	if err != nil {
		return err
	}

	todos, err := files.LoadAllTodos()
	if err != nil {
		return fmt.Errorf("failed to load todos: %w", err)
	}
	matched := f.Todos(todos)

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	result := TodosResult{Count: len(matched), Items: []TodoItem{}}
	for _, t := range matched {
		result.Items = append(result.Items, TodoItem{
			Text:      t.Text,
			Completed: t.Completed,
			Projects:  t.Projects,
			People:    t.People,
			Path:      t.Path,
			Line:      t.LineNumber,
		})
	}

	switch format {
	case cli.FormatJSON:
		return cli.WriteJSON(cmd.OutOrStdout(), result)
	case cli.FormatYAML:
		return cli.WriteYAML(cmd.OutOrStdout(), result)
	}

	if len(matched) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No todos found.")
		return nil
	}

	table := cli.NewTable("", "TODO", "PROJECTS", "PEOPLE")
	for _, t := range matched {
		mark := cli.Open(models.MarkerOpen)
		if t.Completed {
			mark = cli.Done(models.MarkerDone)
		}
		table.AddRow(mark, t.Text, cli.TagText(strings.Join(t.Projects, ", ")), cli.TagText(strings.Join(t.People, ", ")))
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}
