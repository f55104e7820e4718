// Package editor opens project folders in an external editor.
package editor

import (
	"context"
	"fmt"

	"github.com/yvolo/yvolo/internal/adapters/outbound/runner"
	"github.com/yvolo/yvolo/internal/domain"
)

// Launcher runs "<command> ." inside the folder and waits for the launcher to exit.
type Launcher struct {
	command string
	runner  runner.CommandRunner
}

func New(command string, r runner.CommandRunner) *Launcher {
	if command == "" {
		command = "code"
	}
	return &Launcher{command: command, runner: r}
}

func (l *Launcher) Open(ctx context.Context, dir string) domain.Outcome {
	res, err := l.runner.Run(ctx, l.command, []string{"."}, runner.RunOpts{Dir: dir})
	if err != nil {
		return domain.Absent("editor %q unavailable: %v", l.command, err)
	}
	if res.ExitCode != 0 {
		return domain.Failed(fmt.Errorf("%s exited %d: %s", l.command, res.ExitCode, res.Combined()))
	}
	return domain.Succeeded(l.command)
}
