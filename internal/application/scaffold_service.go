package application

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"time"

	"github.com/yvolo/yvolo/internal/domain"
)

// ScaffoldPaths locates where projects are created and how backups are named.
type ScaffoldPaths struct {
	ProjectsDir string
	BackupsDir  string
}

// ScaffoldService orchestrates project creation:
// sanitize → create dir → copy master prompt → resolve remote → write roadmap → stub → editor.
type ScaffoldService struct {
	workspace domain.Workspace
	templates domain.TemplateSource
	remotes   *RemoteService
	editor    domain.EditorLauncher
	history   domain.ScaffoldHistory
	paths     ScaffoldPaths
	now       func() time.Time
	logger    *slog.Logger
}

// ScaffoldOption configures optional collaborators of a ScaffoldService.
type ScaffoldOption func(*ScaffoldService)

// WithHistory records every successful scaffold in h.
func WithHistory(h domain.ScaffoldHistory) ScaffoldOption {
	return func(s *ScaffoldService) { s.history = h }
}

// WithClock replaces time.Now for backup names and history timestamps.
func WithClock(now func() time.Time) ScaffoldOption {
	return func(s *ScaffoldService) { s.now = now }
}

func WithLogger(l *slog.Logger) ScaffoldOption {
	return func(s *ScaffoldService) { s.logger = l }
}

func NewScaffoldService(
	workspace domain.Workspace,
	templates domain.TemplateSource,
	remotes *RemoteService,
	editor domain.EditorLauncher,
	paths ScaffoldPaths,
	opts ...ScaffoldOption,
) *ScaffoldService {
	s := &ScaffoldService{
		workspace: workspace,
		templates: templates,
		remotes:   remotes,
		editor:    editor,
		paths:     paths,
		now:       time.Now,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateProject scaffolds a new project and reports the outcome. It never
// returns an error or panics: every failure becomes Success=false with a
// message. Nothing is rolled back, so a failure after the directory was
// created leaves it on disk.
func (s *ScaffoldService) CreateProject(ctx context.Context, req domain.ProjectRequest) (res domain.ScaffoldResult) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(fmt.Errorf("creating project: unexpected panic: %v", r))
		}
	}()

	name := domain.SanitizeName(req.Name)
	if name == "" {
		return failure(fmt.Errorf("%w: %q", domain.ErrInvalidName, req.Name))
	}

	dir := filepath.Join(s.paths.ProjectsDir, name)
	if s.workspace.Exists(dir) {
		return failure(fmt.Errorf("%w: %s", domain.ErrProjectExists, dir))
	}

	res, err := s.scaffold(ctx, name, dir, req)
	if err != nil {
		s.logger.Warn("scaffold failed", "dir", dir, "err", err)
		res = failure(fmt.Errorf("creating project: %w", err))
		res.Dir = dir
		return res
	}

	if s.history != nil {
		entry := domain.ScaffoldEntry{
			Name:      name,
			Dir:       dir,
			Type:      req.Type,
			RepoURL:   res.RepoURL,
			Backup:    res.Backup,
			Tasks:     req.Tasks,
			CreatedAt: s.now(),
		}
		if err := s.history.Save(entry); err != nil {
			s.logger.Warn("recording scaffold history failed", "dir", dir, "err", err)
		}
	}
	return res
}

func (s *ScaffoldService) scaffold(ctx context.Context, name, dir string, req domain.ProjectRequest) (domain.ScaffoldResult, error) {
	res := domain.ScaffoldResult{Dir: dir}

	if err := s.workspace.CreateDir(dir); err != nil {
		return res, fmt.Errorf("creating directory: %w", err)
	}

	prompt, err := s.templates.MasterPrompt()
	if err != nil {
		return res, fmt.Errorf("loading master prompt: %w", err)
	}
	if err := s.write(&res, domain.MasterPromptFileName, prompt); err != nil {
		return res, err
	}

	roadmap, err := s.templates.Roadmap()
	if err != nil {
		return res, fmt.Errorf("loading roadmap template: %w", err)
	}

	res.Backup = s.backupValue(name)
	res.RepoURL = s.remotes.Resolve(ctx, dir, name)

	text, err := domain.ApplyRoadmap(roadmap, domain.RoadmapFields{
		ProjectName: name,
		RepoURL:     res.RepoURL,
		Backup:      res.Backup,
	}, req.Tasks)
	if err != nil {
		return res, fmt.Errorf("applying roadmap template: %w", err)
	}
	if err := s.write(&res, domain.RoadmapFileName, text); err != nil {
		return res, err
	}

	stub, err := req.Type.Stub(name)
	if err != nil {
		return res, fmt.Errorf("rendering %s stub: %w", req.Type, err)
	}
	for _, d := range stub.Dirs {
		if err := s.workspace.CreateDir(filepath.Join(dir, filepath.FromSlash(d))); err != nil {
			return res, fmt.Errorf("creating %s: %w", d, err)
		}
	}
	for _, f := range stub.Files {
		if err := s.write(&res, f.Path, f.Content); err != nil {
			return res, err
		}
	}

	if req.OpenEditor {
		if out := s.editor.Open(ctx, dir); !out.OK() {
			s.logger.Warn("opening editor failed", "dir", dir, "status", out.Status.String(), "err", out.Err)
		}
	}

	res.Success = true
	res.Message = "project created: " + dir
	return res, nil
}

// write stores content at the slash-separated rel path inside the project.
func (s *ScaffoldService) write(res *domain.ScaffoldResult, rel, content string) error {
	full := filepath.Join(res.Dir, filepath.FromSlash(rel))
	if err := s.workspace.WriteFile(full, content); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	res.Files = append(res.Files, path.Clean(rel))
	return nil
}

// backupValue names the archive a backup of the project would be written to.
// Only the text is recorded; nothing is created.
func (s *ScaffoldService) backupValue(name string) string {
	file := fmt.Sprintf("backup_%s_%s.zip", name, s.now().Format("20060102_150405"))
	return filepath.Join(s.paths.BackupsDir, file)
}

func failure(err error) domain.ScaffoldResult {
	return domain.ScaffoldResult{Success: false, Message: err.Error(), Err: err}
}
