package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yvolo/yvolo/internal/domain"
)

// ChatService prepares a chat session by putting the roadmap template and
// the master prompt on the clipboard.
type ChatService struct {
	templates domain.TemplateSource
	clipboard domain.Clipboard
	logger    *slog.Logger
}

func NewChatService(templates domain.TemplateSource, clipboard domain.Clipboard, logger *slog.Logger) *ChatService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ChatService{templates: templates, clipboard: clipboard, logger: logger}
}

// OpenChat copies whichever templates exist. It fails when neither does or
// when the clipboard helper cannot be run.
func (s *ChatService) OpenChat(ctx context.Context) domain.ActionResult {
	type source struct {
		name string
		load func() (string, error)
	}
	sources := []source{
		{domain.RoadmapFileName, s.templates.Roadmap},
		{domain.MasterPromptFileName, s.templates.MasterPrompt},
	}

	var (
		b      strings.Builder
		copied []string
	)
	for _, src := range sources {
		content, err := src.load()
		if err != nil {
			s.logger.Debug("skipping template", "file", src.name, "err", err)
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("=== " + src.name + " ===\n")
		b.WriteString(content)
		copied = append(copied, src.name)
	}

	if len(copied) == 0 {
		return domain.ActionResult{Success: false, Message: "no files to copy"}
	}

	if out := s.clipboard.Copy(ctx, b.String()); !out.OK() {
		s.logger.Warn("clipboard copy failed", "status", out.Status.String(), "err", out.Err)
		return domain.ActionResult{Success: false, Message: "could not copy to clipboard: " + errText(out)}
	}
	return domain.ActionResult{Success: true, Message: "copied to clipboard: " + strings.Join(copied, ", ")}
}

func errText(out domain.Outcome) string {
	if out.Err == nil {
		return out.Status.String()
	}
	return out.Err.Error()
}
