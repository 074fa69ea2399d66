package plugins

import (
	"fmt"
	"strings"

	"github.com/kingrea/promptforge/internal/briefing"
	"github.com/kingrea/promptforge/internal/persona"
	"github.com/kingrea/promptforge/internal/prompt"
	"github.com/kingrea/promptforge/internal/reasoning"
)

// TemplateDefinition describes a user-authored prompt template loaded from
// YAML (or produced by an interpreted Go file).
//
// The struct mirrors the on-disk schema under .promptforge/templates/*.yaml
// and is validated before it is wired into the template registry.
type TemplateDefinition struct {
	ID           string                 `json:"id" yaml:"id"`
	Name         string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Description  string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Version      string                 `json:"version" yaml:"version"`
	Title        string                 `json:"title" yaml:"title"`
	Departments  []*persona.Department  `json:"departments,omitempty" yaml:"departments,omitempty"`
	Roles        []*persona.Role        `json:"roles,omitempty" yaml:"roles,omitempty"`
	Context      *briefing.Context      `json:"context,omitempty" yaml:"context,omitempty"`
	Branches     []*reasoning.Branch    `json:"branches,omitempty" yaml:"branches,omitempty"`
	Questions    []*briefing.Question   `json:"questions,omitempty" yaml:"questions,omitempty"`
	Requirements []*briefing.Requirement `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Approach     string                 `json:"approach,omitempty" yaml:"approach,omitempty"`
	OutputFormat string                 `json:"output_format,omitempty" yaml:"output_format,omitempty"`
}

// Normalized returns a trimmed variant of the definition with enum-valued
// fields resolved to known values.
func (def TemplateDefinition) Normalized() TemplateDefinition {
	clone := def
	clone.ID = strings.TrimSpace(def.ID)
	clone.Name = strings.TrimSpace(def.Name)
	clone.Description = strings.TrimSpace(def.Description)
	clone.Version = strings.TrimSpace(def.Version)
	clone.Title = strings.TrimSpace(def.Title)
	for _, question := range clone.Questions {
		question.Normalize()
	}
	for _, req := range clone.Requirements {
		req.Normalize()
	}
	for _, branch := range clone.Branches {
		branch.Normalize()
	}
	return clone
}

// Validate ensures the definition is well-formed: identity fields present
// and every part renderable.
func (def TemplateDefinition) Validate() error {
	normalized := def.Normalized()
	if normalized.ID == "" {
		return fmt.Errorf("plugin: id is required")
	}
	if normalized.Version == "" {
		return fmt.Errorf("plugin %s: version is required", normalized.ID)
	}
	if normalized.Title == "" {
		return fmt.Errorf("plugin %s: title is required", normalized.ID)
	}
	builder := normalized.Builder()
	if err := builder.Validate(); err != nil {
		return fmt.Errorf("plugin %s: %w", normalized.ID, err)
	}
	return nil
}

// DisplayName returns the name, falling back to the title.
func (def TemplateDefinition) DisplayName() string {
	if def.Name != "" {
		return def.Name
	}
	return def.Title
}

// Builder assembles a prompt builder from the definition. Call on a
// normalized definition.
func (def TemplateDefinition) Builder() *prompt.Builder {
	b := prompt.NewBuilder(def.Title)
	for _, dept := range def.Departments {
		b.AddDepartment(dept)
	}
	for _, role := range def.Roles {
		b.AddRole(role)
	}
	if def.Context != nil {
		b.WithContext(def.Context)
	}
	for _, branch := range def.Branches {
		b.AddBranch(branch)
	}
	for _, question := range def.Questions {
		b.AddQuestion(question)
	}
	for _, req := range def.Requirements {
		b.AddRequirement(req)
	}
	if def.Approach != "" {
		b.WithApproach(def.Approach)
	}
	if def.OutputFormat != "" {
		b.WithOutputFormat(def.OutputFormat)
	}
	return b
}
