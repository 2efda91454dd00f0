package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// Assembly errors.
var (
	// ErrTemplateParse indicates the page template could not be parsed.
	ErrTemplateParse = errors.New("template parsing failed")
	// ErrAssemble indicates binding data into the page template failed.
	ErrAssemble = errors.New("document assembly failed")
)

// Section is one rendered block positioned in the page. Index is 1-based and
// follows source order.
type Section struct {
	Index int
	Prose template.HTML
	Code  template.HTML
}

// DocumentData is everything a page template can bind.
type DocumentData struct {
	Title    string
	Path     string
	CSS      template.CSS
	Sections []Section
}

// DocumentAssembler abstracts binding rendered sections into a full page.
type DocumentAssembler interface {
	Assemble(ctx context.Context, data DocumentData) (string, error)
}

// TemplateAssembler binds documents with html/template. Section markup is
// already rendered and typed template.HTML, so the engine interpolates it
// unchanged while still escaping plain fields like the title.
type TemplateAssembler struct {
	tmpl *template.Template
}

// NewTemplateAssembler parses templateHTML into a ready assembler.
func NewTemplateAssembler(templateHTML string) (*TemplateAssembler, error) {
	tmpl, err := template.New("page").Parse(templateHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &TemplateAssembler{tmpl: tmpl}, nil
}

// Assemble binds data into the page template, preserving section order.
func (a *TemplateAssembler) Assemble(ctx context.Context, data DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssemble, err)
	}
	return buf.String(), nil
}
