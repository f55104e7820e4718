package application_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/yvolo/yvolo/internal/domain"
)

const testRoadmap = "#ProyectoInfo\n" +
	"name_project: PLANTILLA\n" +
	"repo_git: https://example.invalid/template.git\n" +
	"backup: Desktop\\backups\\template.zip\n" +
	"\n" +
	"#Tareas\n"

type fakeVCS struct {
	repos   map[string]bool
	remotes map[string]string
	initOut *domain.Outcome
	inits   []string
}

func newFakeVCS() *fakeVCS {
	return &fakeVCS{repos: map[string]bool{}, remotes: map[string]string{}}
}

func (f *fakeVCS) IsRepo(dir string) bool { return f.repos[dir] }

func (f *fakeVCS) Init(dir string) domain.Outcome {
	f.inits = append(f.inits, dir)
	if f.initOut != nil {
		return *f.initOut
	}
	f.repos[dir] = true
	return domain.Succeeded(dir)
}

func (f *fakeVCS) RemoteURL(dir, remote string) domain.Outcome {
	if remote != domain.OriginRemote {
		return domain.Failed(fmt.Errorf("unexpected remote %q", remote))
	}
	if url, ok := f.remotes[dir]; ok {
		return domain.Succeeded(url)
	}
	return domain.Absent("remote %q not found", remote)
}

type fakeHosting struct {
	vcs       *fakeVCS
	authOut   domain.Outcome
	createOut domain.Outcome
	url       string
	authCalls int
	created   []string
}

// newAbsentHosting simulates a missing hosting tool.
func newAbsentHosting() *fakeHosting {
	return &fakeHosting{authOut: domain.Absent("gh not installed")}
}

// newWorkingHosting simulates an authenticated tool that registers url as origin.
func newWorkingHosting(vcs *fakeVCS, url string) *fakeHosting {
	return &fakeHosting{vcs: vcs, authOut: domain.Succeeded(""), createOut: domain.Succeeded(""), url: url}
}

func (f *fakeHosting) AuthStatus(_ context.Context, _ string) domain.Outcome {
	f.authCalls++
	return f.authOut
}

func (f *fakeHosting) CreateRepo(_ context.Context, dir, name string) domain.Outcome {
	f.created = append(f.created, name)
	if f.createOut.OK() && f.vcs != nil && f.url != "" {
		f.vcs.remotes[dir] = f.url
	}
	return f.createOut
}

type fakeEditor struct {
	out    domain.Outcome
	opened []string
}

func (f *fakeEditor) Open(_ context.Context, dir string) domain.Outcome {
	f.opened = append(f.opened, dir)
	return f.out
}

type fakeTemplates struct {
	prompt  string
	roadmap string
	missing map[string]bool
}

func newFakeTemplates() *fakeTemplates {
	return &fakeTemplates{prompt: "MASTER PROMPT\n", roadmap: testRoadmap, missing: map[string]bool{}}
}

func (f *fakeTemplates) MasterPrompt() (string, error) {
	if f.missing[domain.MasterPromptFileName] {
		return "", fmt.Errorf("%w: /app/%s", domain.ErrTemplateMissing, domain.MasterPromptFileName)
	}
	return f.prompt, nil
}

func (f *fakeTemplates) Roadmap() (string, error) {
	if f.missing[domain.RoadmapFileName] {
		return "", fmt.Errorf("%w: /app/%s", domain.ErrTemplateMissing, domain.RoadmapFileName)
	}
	return f.roadmap, nil
}

type memWorkspace struct {
	dirs       map[string]bool
	files      map[string]string
	createErr  error
	panicOnDir string
}

func newMemWorkspace() *memWorkspace {
	return &memWorkspace{dirs: map[string]bool{}, files: map[string]string{}}
}

func (w *memWorkspace) Exists(path string) bool {
	_, isFile := w.files[path]
	return w.dirs[path] || isFile
}

func (w *memWorkspace) CreateDir(path string) error {
	if path == w.panicOnDir {
		panic("disk on fire")
	}
	if w.createErr != nil {
		return w.createErr
	}
	if w.Exists(path) {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrExist}
	}
	w.dirs[path] = true
	return nil
}

func (w *memWorkspace) WriteFile(path, content string) error {
	w.dirs[filepath.Dir(path)] = true
	w.files[path] = content
	return nil
}

func (w *memWorkspace) ReadFile(path string) (string, error) {
	content, ok := w.files[path]
	if !ok {
		return "", &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return content, nil
}

func (w *memWorkspace) snapshot() map[string]string {
	out := make(map[string]string, len(w.files))
	for k, v := range w.files {
		out[k] = v
	}
	return out
}

func (w *memWorkspace) fileNames() []string {
	var names []string
	for k := range w.files {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

type memHistory struct {
	entries []domain.ScaffoldEntry
	err     error
}

func (h *memHistory) Save(e domain.ScaffoldEntry) error {
	if h.err != nil {
		return h.err
	}
	h.entries = append(h.entries, e)
	return nil
}

func (h *memHistory) Load() ([]domain.ScaffoldEntry, error) { return h.entries, nil }

type fakeClipboard struct {
	out    domain.Outcome
	copied []string
}

func (f *fakeClipboard) Copy(_ context.Context, text string) domain.Outcome {
	f.copied = append(f.copied, text)
	return f.out
}

var errBoom = errors.New("boom")
