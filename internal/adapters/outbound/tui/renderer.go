package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yvolo/yvolo/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(56)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	keyStyle      = lipgloss.NewStyle().Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// MenuCommands maps each label key to the command that performs it.
var MenuCommands = map[string]string{
	domain.LabelOpenChat:     "yvolo chat",
	domain.LabelCloseChat:    "exit",
	domain.LabelProcessIdeas: "yvolo ideas",
	domain.LabelNewProject:   "yvolo new",
}

// RenderMenu shows the application name and its labelled actions.
func RenderMenu(cfg domain.AppConfig) string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(headerStyle.Render(cfg.AppName)))
	b.WriteString("\n\n")
	for i, key := range domain.LabelKeys {
		label := fmt.Sprintf("%-24s", cfg.Label(key))
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			keyStyle.Render(fmt.Sprintf("%d.", i+1)),
			titleStyle.Render(label),
			dimStyle.Render(MenuCommands[key])))
	}
	return b.String()
}

// RenderResult shows the outcome of a scaffold.
func RenderResult(res domain.ScaffoldResult) string {
	var b strings.Builder
	b.WriteString(statusLine(res.Success, res.Message))

	details := []struct{ key, value string }{
		{"dir", res.Dir},
		{"repo", res.RepoURL},
		{"backup", res.Backup},
	}
	for _, d := range details {
		if d.value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("    %s %s\n", dimStyle.Render(fmt.Sprintf("%-7s", d.key)), d.value))
	}
	if res.Success && res.RepoURL == "" {
		b.WriteString("    " + warnStyle.Render("no remote repository") + "\n")
	}
	for _, f := range res.Files {
		b.WriteString("    " + dimStyle.Render("+ "+filepath.ToSlash(f)) + "\n")
	}
	return b.String()
}

// RenderAction shows the outcome of a non-scaffold action.
func RenderAction(res domain.ActionResult) string {
	return statusLine(res.Success, res.Message)
}

func statusLine(ok bool, msg string) string {
	if ok {
		return "  " + passStyle.Render("✓") + " " + msg + "\n"
	}
	return "  " + failStyle.Render("✗") + " " + msg + "\n"
}

// RenderRecord shows a parsed roadmap.
func RenderRecord(rec *domain.ProjectRecord, tag language.Tag) string {
	p := message.NewPrinter(tag)
	var b strings.Builder

	for _, f := range rec.Fields {
		value := f.Value
		if value == "" {
			value = dimStyle.Render("-")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-14s", f.Key)), value))
	}

	b.WriteString("\n  " + separatorLine + "\n\n")
	b.WriteString("  " + titleStyle.Render(domain.TasksMarker) + "  " + dimStyle.Render(p.Sprintf("%d tasks", len(rec.Tasks))) + "\n\n")
	for i, task := range rec.Tasks {
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(p.Sprintf("%d.", i+1)), task.Description))
		b.WriteString(dimStyle.Render(fmt.Sprintf("     %s · %s · %s", task.Critical, task.Implemented, task.Dependencies)) + "\n")
	}
	return b.String()
}

// RenderHistory lists scaffolded projects, newest last.
func RenderHistory(entries []domain.ScaffoldEntry, tag language.Tag) string {
	p := message.NewPrinter(tag)
	if len(entries) == 0 {
		return "  " + dimStyle.Render("no projects created yet") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(p.Sprintf("%d projects", len(entries))) + "\n\n")
	for _, e := range entries {
		remote := e.RepoURL
		if remote == "" {
			remote = warnStyle.Render("no remote")
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			dimStyle.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			titleStyle.Render(fmt.Sprintf("%-20s", e.Name)),
			dimStyle.Render(fmt.Sprintf("%-7s", e.Type))))
		b.WriteString(fmt.Sprintf("    %s %s\n", dimStyle.Render("dir   "), e.Dir))
		b.WriteString(fmt.Sprintf("    %s %s\n", dimStyle.Render("repo  "), remote))
		b.WriteString(fmt.Sprintf("    %s %s\n", dimStyle.Render("tasks "), p.Sprintf("%d", len(e.Tasks))))
	}
	return b.String()
}
