package domain

import (
	"bytes"
	"strings"
	"text/template"
	"time"
)

// ProjectType selects the source stub scaffolded into a new project.
type ProjectType int

const (
	ProjectTypeUnknown ProjectType = iota
	ProjectTypeEmpty
	ProjectTypePython
	ProjectTypeFlask
)

// ValidProjectTypes enumerates the selectable project types in menu order.
var ValidProjectTypes = []ProjectType{
	ProjectTypeEmpty,
	ProjectTypePython,
	ProjectTypeFlask,
}

// ParseProjectType maps a user-facing type name to a ProjectType.
// Unrecognized names yield ProjectTypeUnknown, which scaffolds no stub.
func ParseProjectType(s string) ProjectType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "empty", "vacío", "vacio":
		return ProjectTypeEmpty
	case "python":
		return ProjectTypePython
	case "flask":
		return ProjectTypeFlask
	default:
		return ProjectTypeUnknown
	}
}

func (t ProjectType) String() string {
	switch t {
	case ProjectTypeEmpty:
		return "Empty"
	case ProjectTypePython:
		return "Python"
	case ProjectTypeFlask:
		return "Flask"
	default:
		return "Unknown"
	}
}

func (t ProjectType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ProjectType) UnmarshalText(b []byte) error {
	*t = ParseProjectType(string(b))
	return nil
}

// StubFile is a file written into a freshly scaffolded project.
type StubFile struct {
	Path    string // slash-separated, relative to the project directory
	Content string
}

// Stub describes the directories and files a project type contributes.
type Stub struct {
	Dirs  []string
	Files []StubFile
}

var (
	pythonMain = template.Must(template.New("main.py").Parse(
		"def main():\n    print('Hola desde {{.}}')\n\nif __name__ == '__main__':\n    main()\n"))
	flaskApp = template.Must(template.New("app.py").Parse(
		"from flask import Flask\napp = Flask(__name__)\n\n@app.get('/')\ndef home():\n    return 'Hola'\n\nif __name__ == '__main__':\n    app.run(debug=True)\n"))
)

// Stub returns the scaffold for the project type. Empty and unknown types
// contribute nothing.
func (t ProjectType) Stub(projectName string) (Stub, error) {
	switch t {
	case ProjectTypePython:
		content, err := render(pythonMain, projectName)
		if err != nil {
			return Stub{}, err
		}
		return Stub{
			Dirs:  []string{"src"},
			Files: []StubFile{{Path: "src/main.py", Content: content}},
		}, nil
	case ProjectTypeFlask:
		content, err := render(flaskApp, projectName)
		if err != nil {
			return Stub{}, err
		}
		return Stub{
			Dirs:  []string{"templates", "static"},
			Files: []StubFile{{Path: "app.py", Content: content}},
		}, nil
	default:
		return Stub{}, nil
	}
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ProjectRequest carries everything needed to scaffold one project.
type ProjectRequest struct {
	Name       string      `json:"name"`
	Type       ProjectType `json:"type"`
	OpenEditor bool        `json:"open_editor"`
	Tasks      []string    `json:"tasks"`
}

// ScaffoldResult is the pass/fail outcome of a scaffold operation.
type ScaffoldResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Dir     string   `json:"dir,omitempty"`
	RepoURL string   `json:"repo_url,omitempty"`
	Backup  string   `json:"backup,omitempty"`
	Files   []string `json:"files,omitempty"`
	Err     error    `json:"-"`
}

// ScaffoldEntry records one successfully scaffolded project.
type ScaffoldEntry struct {
	Name      string      `json:"name"`
	Dir       string      `json:"dir"`
	Type      ProjectType `json:"type"`
	RepoURL   string      `json:"repo_url"`
	Backup    string      `json:"backup"`
	Tasks     []string    `json:"tasks"`
	CreatedAt time.Time   `json:"created_at"`
}

// ActionResult is the pass/fail outcome of a non-scaffold user action.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
