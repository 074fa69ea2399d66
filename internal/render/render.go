// Package render resolves a template, renders it, and writes the result to
// the project's renders directory with frontmatter metadata.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kingrea/promptforge/internal/config"
	"github.com/kingrea/promptforge/internal/library"
	"github.com/kingrea/promptforge/internal/logbook"
	"github.com/kingrea/promptforge/internal/prompt"
)

// Option customizes the renderer.
type Option func(*Renderer)

// Renderer turns template IDs into rendered prompt files.
type Renderer struct {
	cfg   *config.Config
	reg   *library.Registry
	log   *logbook.Logbook
	now   func() time.Time
	newID func() string
}

// New constructs a renderer. The logbook may be nil.
func New(cfg *config.Config, reg *library.Registry, log *logbook.Logbook, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:   cfg,
		reg:   reg,
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithClock overrides the renderer clock (used for metadata timestamps).
func WithClock(clock func() time.Time) Option {
	return func(r *Renderer) {
		if clock != nil {
			r.now = clock
		}
	}
}

// WithIDSource overrides render ID generation (tests).
func WithIDSource(source func() string) Option {
	return func(r *Renderer) {
		if source != nil {
			r.newID = source
		}
	}
}

// Result reports where a render landed.
type Result struct {
	TemplateID string
	RenderID   string
	Path       string
	Body       string
}

// Render resolves the template, renders the prompt body, and writes a
// frontmatter-wrapped document under the renders directory.
func (r *Renderer) Render(id string, params library.Params) (Result, error) {
	builder, err := r.reg.Resolve(id, params)
	if err != nil {
		r.log.Error("render %s: %v", id, err)
		return Result{}, err
	}
	info, _ := r.reg.Lookup(id)

	body := []byte(builder.Render())
	renderID := r.newID()
	meta := prompt.Metadata{
		TemplateID: id,
		Version:    info.Version,
		RenderID:   renderID,
		CreatedAt:  r.now(),
	}
	doc, err := prompt.WriteFrontMatter(meta, body)
	if err != nil {
		return Result{}, fmt.Errorf("render: %s: %w", id, err)
	}

	if err := os.MkdirAll(r.cfg.RendersDir(), 0o755); err != nil {
		return Result{}, fmt.Errorf("render: ensure renders dir: %w", err)
	}
	path := filepath.Join(r.cfg.RendersDir(), fileName(id, renderID))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return Result{}, fmt.Errorf("render: write %s: %w", path, err)
	}
	r.log.Render(id, renderID, path)
	return Result{TemplateID: id, RenderID: renderID, Path: path, Body: string(body)}, nil
}

// Preview resolves and renders a template without touching disk.
func (r *Renderer) Preview(id string, params library.Params) (string, error) {
	builder, err := r.reg.Resolve(id, params)
	if err != nil {
		return "", err
	}
	return builder.Render(), nil
}

func fileName(templateID, renderID string) string {
	short := renderID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s-%s.md", templateID, short)
}
