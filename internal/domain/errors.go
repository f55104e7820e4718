package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName     = errors.New("invalid project name")
	ErrProjectExists   = errors.New("project already exists")
	ErrTemplateMissing = errors.New("template not found")
)

// TemplateShapeError reports a roadmap template that lacks a required marker.
type TemplateShapeError struct {
	Marker string
}

func (e *TemplateShapeError) Error() string {
	return fmt.Sprintf("roadmap template does not contain %s", e.Marker)
}
