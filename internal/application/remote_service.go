package application

import (
	"context"
	"log/slog"

	"github.com/yvolo/yvolo/internal/domain"
)

// RemoteService makes sure a project directory has a local repository and,
// when possible, a hosted origin remote. Every step is best-effort: failures
// come back as non-OK outcomes and are logged, never returned as errors.
type RemoteService struct {
	vcs     domain.VersionControl
	hosting domain.RemoteHosting
	logger  *slog.Logger
}

func NewRemoteService(vcs domain.VersionControl, hosting domain.RemoteHosting, logger *slog.Logger) *RemoteService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RemoteService{vcs: vcs, hosting: hosting, logger: logger}
}

// EnsureLocalRepo initializes a repository in dir unless one already exists.
func (s *RemoteService) EnsureLocalRepo(dir string) domain.Outcome {
	if s.vcs.IsRepo(dir) {
		return domain.Succeeded(dir)
	}
	out := s.vcs.Init(dir)
	s.logOutcome("init repository", dir, out)
	return out
}

// RemoteURL returns the URL of the origin remote of dir.
func (s *RemoteService) RemoteURL(dir string) domain.Outcome {
	out := s.vcs.RemoteURL(dir, domain.OriginRemote)
	s.logOutcome("query origin", dir, out)
	return out
}

// TryCreateRemote checks hosting authentication, creates and pushes a hosted
// repository named name, then re-reads the origin URL. The first non-OK step
// short-circuits.
func (s *RemoteService) TryCreateRemote(ctx context.Context, dir, name string) domain.Outcome {
	if out := s.hosting.AuthStatus(ctx, dir); !out.OK() {
		s.logOutcome("hosting auth", dir, out)
		return out
	}
	if out := s.hosting.CreateRepo(ctx, dir, name); !out.OK() {
		s.logOutcome("create remote", dir, out)
		return out
	}
	return s.RemoteURL(dir)
}

// Resolve runs the whole remote workflow for a new project and returns the
// origin URL, or "" when no remote could be found or created.
func (s *RemoteService) Resolve(ctx context.Context, dir, name string) string {
	s.EnsureLocalRepo(dir)
	if url := s.RemoteURL(dir).String(); url != "" {
		return url
	}
	return s.TryCreateRemote(ctx, dir, name).String()
}

func (s *RemoteService) logOutcome(step, dir string, out domain.Outcome) {
	switch out.Status {
	case domain.OutcomeOK:
		s.logger.Debug("remote step succeeded", "step", step, "dir", dir, "value", out.Value)
	case domain.OutcomeAbsent:
		s.logger.Debug("remote step found nothing", "step", step, "dir", dir, "err", out.Err)
	default:
		s.logger.Warn("remote step failed", "step", step, "dir", dir, "err", out.Err)
	}
}
