package domain

import "context"

// OriginRemote is the remote name queried and created for every project.
const OriginRemote = "origin"

// VersionControl manages the local repository of a project directory.
type VersionControl interface {
	IsRepo(dir string) bool
	Init(dir string) Outcome
	RemoteURL(dir, remote string) Outcome
}

// RemoteHosting creates hosted repositories through an authenticated tool.
type RemoteHosting interface {
	AuthStatus(ctx context.Context, dir string) Outcome
	CreateRepo(ctx context.Context, dir, name string) Outcome
}

// EditorLauncher opens a directory in an external editor.
type EditorLauncher interface {
	Open(ctx context.Context, dir string) Outcome
}

// Clipboard places text on the system clipboard.
type Clipboard interface {
	Copy(ctx context.Context, text string) Outcome
}

// TemplateSource loads the fixed text templates shipped with the application.
// Missing templates are reported with an error wrapping ErrTemplateMissing.
type TemplateSource interface {
	MasterPrompt() (string, error)
	Roadmap() (string, error)
}

// Workspace performs the filesystem writes of a scaffold.
type Workspace interface {
	Exists(path string) bool
	// CreateDir creates path, failing if it already exists. Missing parents are created.
	CreateDir(path string) error
	WriteFile(path, content string) error
	ReadFile(path string) (string, error)
}

// ScaffoldHistory persists a log of scaffolded projects.
type ScaffoldHistory interface {
	Save(entry ScaffoldEntry) error
	Load() ([]ScaffoldEntry, error)
}
