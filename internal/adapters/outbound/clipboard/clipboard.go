// Package clipboard copies text through the platform clipboard helper.
package clipboard

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/yvolo/yvolo/internal/adapters/outbound/runner"
	"github.com/yvolo/yvolo/internal/domain"
)

// Helper is one clipboard command line.
type Helper struct {
	Name string
	Args []string
}

// Helpers lists the clipboard commands tried on goos, in order.
func Helpers(goos string, wayland bool) []Helper {
	switch goos {
	case "windows":
		return []Helper{{Name: "clip"}}
	case "darwin":
		return []Helper{{Name: "pbcopy"}}
	}
	hs := []Helper{
		{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	}
	if wayland {
		hs = append([]Helper{{Name: "wl-copy"}}, hs...)
	}
	return hs
}

// System implements domain.Clipboard with the first installed helper.
type System struct {
	runner    runner.CommandRunner
	helpers   []Helper
	available func(string) bool
}

// Option configures a System.
type Option func(*System)

// WithHelpers replaces the platform helper list.
func WithHelpers(hs ...Helper) Option {
	return func(s *System) { s.helpers = hs }
}

// WithLookup replaces the installed-binary check.
func WithLookup(fn func(string) bool) Option {
	return func(s *System) { s.available = fn }
}

func New(r runner.CommandRunner, opts ...Option) *System {
	s := &System{
		runner:    r,
		helpers:   Helpers(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != ""),
		available: runner.Available,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *System) Copy(ctx context.Context, text string) domain.Outcome {
	for _, h := range s.helpers {
		if !s.available(h.Name) {
			continue
		}
		res, err := s.runner.Run(ctx, h.Name, h.Args, runner.RunOpts{Stdin: text})
		if err != nil {
			return domain.Failed(fmt.Errorf("running %s: %w", h.Name, err))
		}
		if res.ExitCode != 0 {
			return domain.Failed(fmt.Errorf("%s exited %d: %s", h.Name, res.ExitCode, res.Combined()))
		}
		return domain.Succeeded(h.Name)
	}
	return domain.Absent("no clipboard helper installed")
}
