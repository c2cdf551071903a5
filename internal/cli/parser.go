package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/errors"
)

// Version is reported by --version; release builds set it with -ldflags.
var Version = "dev"

// Invocation is the result of parsing the command line
type Invocation struct {
	Command    Command
	ConfigFile string
	Overrides  *config.ConfigOverrides
}

// parser builds the cobra tree and records what the user asked for.
// RunE functions only capture the parsed command; nothing touches storage.
type parser struct {
	root    *cobra.Command
	command Command

	dbPath     string
	configFile string
	timeFormat string
	verbose    bool
}

// Parse resolves args into an Invocation. A nil Invocation with a nil error
// means help or version output was requested and printed.
func Parse(args []string, stdout, stderr io.Writer) (*Invocation, error) {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	p := newParser()
	p.root.SetArgs(args)
	p.root.SetOut(stdout)
	p.root.SetErr(stderr)

	cmd, err := p.root.ExecuteC()
	if err != nil {
		if !errors.IsAppError(err) {
			err = errors.NewUsageError(err.Error(), err)
		}
		fmt.Fprintf(stderr, "Error: %s\n", errors.GetUserMessage(err))
		fmt.Fprint(stderr, cmd.UsageString())
		return nil, err
	}
	if p.command == nil {
		return nil, nil
	}

	return &Invocation{
		Command:    p.command,
		ConfigFile: p.configFile,
		Overrides:  p.overrides(),
	}, nil
}

func newParser() *parser {
	p := &parser{}

	p.root = &cobra.Command{
		Use:   "todo",
		Short: "A minimal personal task tracker",
		Long: `todo records tasks with a name and start time, marks them complete, and
lists them from a local SQLite database.

EXAMPLES:
  todo add "write report"        # start a task
  todo list                      # show open tasks
  todo complete 1                # finish task 1
  todo list --all                # show every task

CONFIGURATION:
  Priority order: command-line flags > environment (.env fills gaps) > config file > defaults

    TODO_DB                          Database file (default: ~/.todo/todo.db)
    TODO_CONFIG                      Config file (default: ~/.config/todo/config.toml)
    TODO_TIME_DISPLAY_FORMAT         Go time layout, always UTC (default: 2006-01-02 15:04:05 MST)
    TODO_DISPLAY_IN_PROGRESS_STATUS  Marker for open tasks (default: In Progress)
    TODO_DEBUG                       Print debug diagnostics to stderr`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return errors.NewUsageError("no command given", nil)
		},
	}

	flags := p.root.PersistentFlags()
	flags.StringVar(&p.dbPath, "db", "", "Database file (overrides TODO_DB)")
	flags.StringVar(&p.configFile, "config", "", "TOML config file (overrides TODO_CONFIG)")
	flags.StringVar(&p.timeFormat, "time-format", "", "Go time layout for listings (overrides TODO_TIME_DISPLAY_FORMAT)")
	flags.BoolVar(&p.verbose, "verbose", false, "Print debug diagnostics to stderr")

	p.root.AddCommand(p.addCommand(), p.completeCommand(), p.listCommand())
	return p
}

func (p *parser) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <task>",
		Short: "Add a new task",
		Long:  "Add a new open task starting now. Multiple words are joined with spaces.",
		Args:  requireArgs("task"),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.Join(args, " ")
			if strings.TrimSpace(task) == "" {
				return errors.NewUsageError("task name cannot be empty", nil)
			}
			p.command = Add{Task: task}
			return nil
		},
	}
}

func (p *parser) completeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task_id>",
		Short: "Complete a task",
		Long:  "Mark an open task as completed now. A task can only be completed once.",
		Args:  exactArg("task_id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewInvalidInputError("task_id", args[0], "must be an integer")
			}
			if id <= 0 {
				return errors.NewInvalidInputError("task_id", args[0], "must be a positive integer")
			}
			p.command = Complete{TaskID: id}
			return nil
		},
	}
}

func (p *parser) listCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List open tasks in the order they were added, or every task with --all.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.command = List{All: all}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show all tasks including completed ones")
	return cmd
}

// overrides returns only the flags the user actually set
func (p *parser) overrides() *config.ConfigOverrides {
	flags := p.root.PersistentFlags()
	overrides := &config.ConfigOverrides{}
	if flags.Changed("db") {
		overrides.DBPath = &p.dbPath
	}
	if flags.Changed("time-format") {
		overrides.TimeFormat = &p.timeFormat
	}
	if flags.Changed("verbose") {
		overrides.Verbose = &p.verbose
	}
	return overrides
}

func requireArgs(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.NewUsageError(fmt.Sprintf("missing required argument <%s>", name), nil)
		}
		return nil
	}
}

func exactArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case len(args) == 0:
			return errors.NewUsageError(fmt.Sprintf("missing required argument <%s>", name), nil)
		case len(args) > 1:
			return errors.NewUsageError(fmt.Sprintf("expected exactly one <%s>, got %d arguments", name, len(args)), nil)
		}
		return nil
	}
}
