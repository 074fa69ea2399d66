package persona

import (
	"fmt"
	"strings"
)

// Role represents a professional perspective a prompt can adopt: who is
// speaking, what they know, and what they should pay attention to.
type Role struct {
	Name             string   `yaml:"name"`
	Expertise        string   `yaml:"expertise,omitempty"`
	Responsibilities []string `yaml:"responsibilities,omitempty"`
	FocusAreas       []string `yaml:"focus_areas,omitempty"`
	Description      string   `yaml:"description,omitempty"`
}

// NewRole constructs a role with the given title.
func NewRole(name string) *Role {
	return &Role{Name: name}
}

// WithExpertise sets the domain of expertise.
func (r *Role) WithExpertise(expertise string) *Role {
	r.Expertise = expertise
	return r
}

// WithDescription sets or replaces the role description.
func (r *Role) WithDescription(description string) *Role {
	r.Description = description
	return r
}

// AddResponsibility appends a responsibility.
func (r *Role) AddResponsibility(responsibility string) *Role {
	r.Responsibilities = append(r.Responsibilities, responsibility)
	return r
}

// AddFocusArea appends a focus area.
func (r *Role) AddFocusArea(area string) *Role {
	r.FocusAreas = append(r.FocusAreas, area)
	return r
}

// Validate ensures the role can be rendered.
func (r *Role) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("persona: role name is required")
	}
	return nil
}

// Map returns a generic representation of the role.
func (r *Role) Map() map[string]any {
	return map[string]any{
		"name":             r.Name,
		"expertise":        r.Expertise,
		"responsibilities": append([]string{}, r.Responsibilities...),
		"focus_areas":      append([]string{}, r.FocusAreas...),
		"description":      r.Description,
	}
}

// PromptText renders the role for inclusion in a prompt.
func (r *Role) PromptText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Role: %s", r.Name)
	if r.Expertise != "" {
		fmt.Fprintf(&b, "\nExpertise: %s", r.Expertise)
	}
	if r.Description != "" {
		fmt.Fprintf(&b, "\n\n%s", r.Description)
	}
	writeBulletSection(&b, "Responsibilities", r.Responsibilities)
	writeBulletSection(&b, "Focus Areas", r.FocusAreas)
	return b.String()
}

func writeBulletSection(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n\n%s:", heading)
	for _, item := range items {
		fmt.Fprintf(b, "\n- %s", item)
	}
}
