package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

// timeNow is swapped in tests to pin task timestamps.
var timeNow = time.Now

// App runs one todo invocation end to end
type App struct {
	stdout io.Writer
	stderr io.Writer
	loader func(configFile string) *config.Loader
}

// NewApp creates an application writing command output to stdout and
// diagnostics to stderr
func NewApp(stdout, stderr io.Writer) *App {
	return &App{
		stdout: stdout,
		stderr: stderr,
		loader: func(configFile string) *config.Loader {
			return config.NewLoader().WithConfigFile(configFile)
		},
	}
}

// Run parses args, opens the store and executes the command. It returns the
// process exit status.
func (a *App) Run(ctx context.Context, args []string) int {
	inv, err := Parse(args, a.stdout, a.stderr)
	if err != nil {
		return errors.ExitCode(err)
	}
	if inv == nil {
		return errors.ExitOK
	}

	if err := a.execute(ctx, inv); err != nil {
		fmt.Fprintf(a.stderr, "Error: %s\n", UserMessage(err))
		if errors.ShouldLogError(err) {
			logging.Debugf("%v\n", err)
		}
		return errors.ExitCode(err)
	}
	return errors.ExitOK
}

func (a *App) execute(ctx context.Context, inv *Invocation) error {
	cfg, err := a.loader(inv.ConfigFile).LoadWithOverrides(inv.Overrides)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeValidation, "invalid configuration: "+err.Error())
	}
	logging.SetVerbose(cfg.Application.Verbose)
	logging.Debugf("running %s\n", inv.Command.commandName())

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		if !errors.IsAppError(err) {
			err = errors.NewDatabaseError("open database", err)
		}
		return err
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(ctx, cfg.Application.Timeout)
	defer cancel()

	service := services.NewTaskService(
		repo,
		validation.NewTaskValidatorWithLimits(cfg.Validation.TaskNameMaxLength),
		timeNow,
	)
	executor := NewExecutor(service, a.stdout, NewTaskFormatter(cfg, a.stdout))
	return executor.Execute(ctx, inv.Command)
}

// Run is a convenience wrapper for NewApp(stdout, stderr).Run(ctx, args)
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return NewApp(stdout, stderr).Run(ctx, args)
}
