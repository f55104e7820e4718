package domain

import (
	"strings"
)

// TasksMarker opens the task section of a roadmap document.
const TasksMarker = "#Tareas"

// Header fields patched into every new roadmap.
const (
	FieldRepoGit     = "repo_git"
	FieldNameProject = "name_project"
	FieldBackup      = "backup"
)

// Task block line prefixes.
const (
	taskDescription  = "- Descripción: "
	taskCritical     = "  Critica: "
	taskImplemented  = "  Implementada: "
	taskDependencies = "  Dependencias: "

	defaultCritical     = "No critica"
	defaultImplemented  = "No implementada"
	defaultDependencies = "Ninguna"
)

// RoadmapFields are the header values written into a new roadmap.
type RoadmapFields struct {
	ProjectName string
	RepoURL     string
	Backup      string
}

// ApplyRoadmap injects tasks after the #Tareas marker and patches the
// repo_git, name_project and backup header lines of templateText.
//
// Header lines are only rewritten when present; missing ones are not added.
// The result is deterministic for identical inputs.
func ApplyRoadmap(templateText string, fields RoadmapFields, tasks []string) (string, error) {
	text := normalizeNewlines(templateText)

	idx := strings.Index(text, TasksMarker)
	if idx < 0 {
		return "", &TemplateShapeError{Marker: TasksMarker}
	}
	head := text[:idx+len(TasksMarker)] + "\n"
	rest := strings.TrimLeft(text[idx+len(TasksMarker):], "\n")

	if block := FormatTasks(tasks); block != "" {
		text = head + block + "\n" + rest
	} else {
		text = head + rest
	}

	text = replaceHeaderLine(text, FieldRepoGit+":", fields.RepoURL)
	text = replaceHeaderLine(text, FieldNameProject+":", fields.ProjectName)
	text = replaceHeaderLine(text, FieldBackup+":", fields.Backup)
	return text, nil
}

// FormatTasks renders one four-line block per non-blank task, each followed
// by an empty line. It returns "" when no task survives trimming.
func FormatTasks(tasks []string) string {
	var lines []string
	for _, t := range tasks {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		lines = append(lines,
			taskDescription+t,
			taskCritical+defaultCritical,
			taskImplemented+defaultImplemented,
			taskDependencies+defaultDependencies,
			"",
		)
	}
	return strings.Join(lines, "\n")
}

// replaceHeaderLine rewrites the first line starting with prefix.
func replaceHeaderLine(text, prefix, value string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			lines[i] = strings.TrimRight(prefix+" "+value, " \t")
			return strings.Join(lines, "\n")
		}
	}
	return text
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Field is one "key: value" header line of a roadmap.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Task is one parsed task block.
type Task struct {
	Description  string `json:"description" yaml:"description"`
	Critical     string `json:"critical" yaml:"critical"`
	Implemented  string `json:"implemented" yaml:"implemented"`
	Dependencies string `json:"dependencies" yaml:"dependencies"`
}

// ProjectRecord is the structured view of a roadmap document.
type ProjectRecord struct {
	Fields []Field `json:"fields" yaml:"fields"`
	Tasks  []Task  `json:"tasks" yaml:"tasks"`
}

// Field returns the value of the first header with the given key.
func (r *ProjectRecord) Field(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// ParseRoadmap reads header fields before the #Tareas marker and task blocks
// after it. Lines that fit neither shape are ignored.
func ParseRoadmap(text string) (*ProjectRecord, error) {
	text = normalizeNewlines(text)
	idx := strings.Index(text, TasksMarker)
	if idx < 0 {
		return nil, &TemplateShapeError{Marker: TasksMarker}
	}

	rec := &ProjectRecord{}
	for _, line := range strings.Split(text[:idx], "\n") {
		if f, ok := parseHeaderLine(line); ok {
			rec.Fields = append(rec.Fields, f)
		}
	}

	var cur *Task
	for _, line := range strings.Split(text[idx+len(TasksMarker):], "\n") {
		line = strings.TrimRight(line, " \t")
		switch {
		case strings.HasPrefix(line, strings.TrimSpace(taskDescription)):
			rec.Tasks = append(rec.Tasks, Task{
				Description: strings.TrimSpace(strings.TrimPrefix(line, strings.TrimSpace(taskDescription))),
			})
			cur = &rec.Tasks[len(rec.Tasks)-1]
		case cur == nil:
			continue
		case strings.HasPrefix(line, strings.TrimRight(taskCritical, " ")):
			cur.Critical = valueAfter(line, taskCritical)
		case strings.HasPrefix(line, strings.TrimRight(taskImplemented, " ")):
			cur.Implemented = valueAfter(line, taskImplemented)
		case strings.HasPrefix(line, strings.TrimRight(taskDependencies, " ")):
			cur.Dependencies = valueAfter(line, taskDependencies)
		}
	}
	return rec, nil
}

func parseHeaderLine(line string) (Field, bool) {
	key, value, ok := strings.Cut(line, ":")
	if !ok || key == "" || strings.ContainsAny(key, " \t#") {
		return Field{}, false
	}
	return Field{Key: key, Value: strings.TrimSpace(value)}, true
}

func valueAfter(line, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, strings.TrimRight(prefix, " ")))
}

// File names of the shipped templates and of their copies in each project.
const (
	MasterPromptFileName = "promp_maestro.txt"
	RoadmapFileName      = "hoja_de_ruta.txt"
)
