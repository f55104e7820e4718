// Package github creates hosted repositories through the GitHub CLI.
package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yvolo/yvolo/internal/adapters/outbound/runner"
	"github.com/yvolo/yvolo/internal/domain"
)

// CLI implements domain.RemoteHosting by shelling out to gh.
type CLI struct {
	binary string
	runner runner.CommandRunner
	logger *slog.Logger
}

func New(binary string, r runner.CommandRunner, logger *slog.Logger) *CLI {
	if binary == "" {
		binary = "gh"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CLI{binary: binary, runner: r, logger: logger}
}

// AuthStatus succeeds when gh is installed and logged in.
func (c *CLI) AuthStatus(ctx context.Context, dir string) domain.Outcome {
	return c.run(ctx, dir, "auth", "status")
}

// CreateRepo creates a public repository named name from dir, registers it
// as origin and pushes.
func (c *CLI) CreateRepo(ctx context.Context, dir, name string) domain.Outcome {
	return c.run(ctx, dir, "repo", "create", name,
		"--public", "--source", ".", "--remote", domain.OriginRemote, "--push")
}

func (c *CLI) run(ctx context.Context, dir string, args ...string) domain.Outcome {
	c.logger.Debug("running gh", "binary", c.binary, "args", args, "dir", dir)
	res, err := c.runner.Run(ctx, c.binary, args, runner.RunOpts{Dir: dir})
	if err != nil {
		return domain.Absent("%s unavailable: %v", c.binary, err)
	}
	if res.ExitCode != 0 {
		return domain.Failed(fmt.Errorf("%s %v exited %d: %s", c.binary, args, res.ExitCode, res.Combined()))
	}
	return domain.Succeeded(res.Combined())
}
