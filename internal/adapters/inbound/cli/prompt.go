package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// prompter reads answers line by line. Questions are only written when
// stdin is a terminal so piped input produces clean output.
type prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &prompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

func (p *prompter) say(format string, args ...any) {
	if p.interactive {
		fmt.Fprintf(p.out, format, args...)
	}
}

// line returns the next trimmed line. io.EOF is returned only when no text
// was left to read.
func (p *prompter) line() (string, error) {
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Required asks until a non-empty answer is given.
func (p *prompter) Required(question string) (string, error) {
	for {
		p.say("%s: ", question)
		s, err := p.line()
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", strings.ToLower(question), err)
		}
		if s != "" {
			return s, nil
		}
		p.say("A value is required.\n")
	}
}

// Choice shows a numbered menu and returns the selected index. Enter or end
// of input picks defaultIndex.
func (p *prompter) Choice(question string, options []string, defaultIndex int) (int, error) {
	p.say("%s\n", question)
	for i, opt := range options {
		p.say("  %d. %s\n", i+1, opt)
	}
	for {
		p.say("Selection [%d]: ", defaultIndex+1)
		s, err := p.line()
		if errors.Is(err, io.EOF) {
			return defaultIndex, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		if s == "" {
			return defaultIndex, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > len(options) {
			p.say("Please enter a number between 1 and %d\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

// Confirm asks a yes/no question.
func (p *prompter) Confirm(question string, def bool) (bool, error) {
	hint := "Y/n"
	if !def {
		hint = "y/N"
	}
	for {
		p.say("%s [%s]: ", question, hint)
		s, err := p.line()
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}
		switch strings.ToLower(s) {
		case "":
			return def, nil
		case "y", "yes", "s", "si", "sí":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.say("Please answer y or n\n")
	}
}

// Lines collects lines until an empty line or end of input.
func (p *prompter) Lines(question string) ([]string, error) {
	p.say("%s (one per line, empty line to finish):\n", question)
	var out []string
	for {
		s, err := p.line()
		if errors.Is(err, io.EOF) || (err == nil && s == "") {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		out = append(out, s)
	}
}
