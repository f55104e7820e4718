package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/yvolo/yvolo/internal/adapters/outbound/clipboard"
	"github.com/yvolo/yvolo/internal/adapters/outbound/config"
	"github.com/yvolo/yvolo/internal/adapters/outbound/editor"
	"github.com/yvolo/yvolo/internal/adapters/outbound/github"
	"github.com/yvolo/yvolo/internal/adapters/outbound/gitrepo"
	"github.com/yvolo/yvolo/internal/adapters/outbound/history"
	"github.com/yvolo/yvolo/internal/adapters/outbound/runner"
	"github.com/yvolo/yvolo/internal/adapters/outbound/templates"
	"github.com/yvolo/yvolo/internal/adapters/outbound/tui"
	"github.com/yvolo/yvolo/internal/adapters/outbound/workspace"
	"github.com/yvolo/yvolo/internal/application"
	"github.com/yvolo/yvolo/internal/domain"
)

// app holds the wired services for one command invocation.
type app struct {
	env       config.Environment
	cfg       domain.AppConfig
	cfgSource string
	logger    *slog.Logger
	templates *templates.FileSource
	history   *history.FileHistory
	scaffold  *application.ScaffoldService
	roadmaps  *application.RoadmapService
	chat      *application.ChatService
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newApp(opts *rootOptions, stderr io.Writer) (*app, error) {
	logger := newLogger(opts.verbose, stderr)

	env, err := config.LoadEnvironment()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	cfg, source := config.NewResolver(env, logger).ResolveWithSource()
	logger.Debug("configuration resolved", "source", source, "packaged", env.Packaged, "app_dir", env.AppDir)

	run := runner.New()
	ws := workspace.New()
	tpl := templates.NewFileSource(env.AppDir)
	hist := history.New(env.UserDataDir)
	remotes := application.NewRemoteService(gitrepo.New(), github.New(env.GHBinary, run, logger), logger)

	return &app{
		env:       env,
		cfg:       cfg,
		cfgSource: source,
		logger:    logger,
		templates: tpl,
		history:   hist,
		scaffold: application.NewScaffoldService(ws, tpl, remotes, editor.New(env.Editor, run),
			application.ScaffoldPaths{ProjectsDir: env.ProjectsDir, BackupsDir: env.BackupsDir},
			application.WithHistory(hist),
			application.WithLogger(logger),
		),
		roadmaps: application.NewRoadmapService(ws, env.ProjectsDir),
		chat:     application.NewChatService(tpl, clipboard.New(run), logger),
	}, nil
}

// create runs a scaffold, prints the result and reports failure through the
// exit status.
func (a *app) create(cmd *cobra.Command, req domain.ProjectRequest) error {
	res := a.scaffold.CreateProject(cmd.Context(), req)
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(res))
	if !res.Success {
		return errReported
	}
	return nil
}
