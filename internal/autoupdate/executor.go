package autoupdate

import (
	"context"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Runner starts a process and waits for it. Implementations attach the
// terminal so prompts from sudo or UAC reach the user.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec on the caller's terminal.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Elevator runs a script with administrative rights, prompting for consent
// at most once.
type Elevator interface {
	Run(ctx context.Context, shell Shell, script string) error
}

// Executor runs a planned Batch: direct commands first, then everything that
// needs elevation in a single elevated invocation.
type Executor struct {
	Runner   Runner
	Elevator Elevator
	Shell    Shell
	Logger   *log.Logger
	// BeforeElevate is shown the elevated scripts right before the consent
	// prompt. When nil they are logged.
	BeforeElevate func(scripts []string)
}

// NewExecutor returns an Executor for shell using the platform elevator.
func NewExecutor(shell Shell, logger *log.Logger) *Executor {
	r := ExecRunner{}
	return &Executor{
		Runner:   r,
		Elevator: platformElevator(r),
		Shell:    shell,
		Logger:   logger,
	}
}

// Execute runs b. A failing direct batch stops before any elevation.
func (e *Executor) Execute(ctx context.Context, b *Batch) error {
	if b.consumed {
		return ErrBatchConsumed
	}
	b.consumed = true

	logger := e.Logger
	if logger == nil {
		logger = log.Default()
	}

	if direct := b.Direct(); len(direct) > 0 {
		script := e.Shell.Join(direct)
		logger.Debug("running update commands", "script", script)
		if err := e.Runner.Run(ctx, e.Shell.Name, e.Shell.Flag, script); err != nil {
			return newExecutionError(false, err)
		}
	}

	elevated := b.Elevated()
	if len(elevated) == 0 {
		return nil
	}

	if e.BeforeElevate != nil {
		e.BeforeElevate(elevated)
	} else {
		logger.Warn("Administrator rights are needed to finish the update")
		for _, s := range elevated {
			logger.Info("  " + s)
		}
	}
	if err := e.Elevator.Run(ctx, e.Shell, e.Shell.Join(elevated)); err != nil {
		return newExecutionError(true, err)
	}
	return nil
}
