package gitrepo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/yvolo/yvolo/internal/domain"
)

// Adapter implements domain.VersionControl using go-git.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

// IsRepo reports whether dir itself holds a repository. Parent directories
// are not searched.
func (a *Adapter) IsRepo(dir string) bool {
	_, err := git.PlainOpen(dir)
	return err == nil
}

func (a *Adapter) Init(dir string) domain.Outcome {
	if _, err := git.PlainInit(dir, false); err != nil {
		return domain.Failed(fmt.Errorf("initializing git repo: %w", err))
	}
	return domain.Succeeded(dir)
}

// RemoteURL returns the first URL configured for remote. A directory without
// a repository or without the remote is Absent.
func (a *Adapter) RemoteURL(dir, remote string) domain.Outcome {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return domain.Absent("no git repository in %s", dir)
		}
		return domain.Failed(fmt.Errorf("opening git repo: %w", err))
	}

	r, err := repo.Remote(remote)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return domain.Absent("remote %q not configured", remote)
		}
		return domain.Failed(fmt.Errorf("reading remote %q: %w", remote, err))
	}

	urls := r.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return domain.Absent("remote %q has no url", remote)
	}
	return domain.Succeeded(urls[0])
}
