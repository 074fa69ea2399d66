package persona

import (
	"fmt"
	"strings"
)

// Department groups roles under a shared organizational function so a prompt
// can describe the whole unit (mission, functions, expertise) in one block.
type Department struct {
	Name           string   `yaml:"name"`
	Mission        string   `yaml:"mission,omitempty"`
	Functions      []string `yaml:"functions,omitempty"`
	ExpertiseAreas []string `yaml:"expertise_areas,omitempty"`
	Description    string   `yaml:"description,omitempty"`
	Roles          []*Role  `yaml:"roles,omitempty"`
}

// NewDepartment constructs a department with the given name.
func NewDepartment(name string) *Department {
	return &Department{Name: name}
}

// WithMission sets the department mission statement.
func (d *Department) WithMission(mission string) *Department {
	d.Mission = mission
	return d
}

// WithDescription sets or replaces the department description.
func (d *Department) WithDescription(description string) *Department {
	d.Description = description
	return d
}

// AddFunction appends a key function.
func (d *Department) AddFunction(function string) *Department {
	d.Functions = append(d.Functions, function)
	return d
}

// AddExpertiseArea appends an area of specialized knowledge.
func (d *Department) AddExpertiseArea(area string) *Department {
	d.ExpertiseAreas = append(d.ExpertiseAreas, area)
	return d
}

// AddRole attaches a member role to the department.
func (d *Department) AddRole(role *Role) *Department {
	if role != nil {
		d.Roles = append(d.Roles, role)
	}
	return d
}

// Validate ensures the department and its member roles can be rendered.
func (d *Department) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("persona: department name is required")
	}
	for i, role := range d.Roles {
		if err := role.Validate(); err != nil {
			return fmt.Errorf("persona: department %s roles[%d]: %w", d.Name, i, err)
		}
	}
	return nil
}

// Map returns a generic representation of the department.
func (d *Department) Map() map[string]any {
	roles := make([]map[string]any, 0, len(d.Roles))
	for _, role := range d.Roles {
		roles = append(roles, role.Map())
	}
	return map[string]any{
		"name":            d.Name,
		"mission":         d.Mission,
		"functions":       append([]string{}, d.Functions...),
		"expertise_areas": append([]string{}, d.ExpertiseAreas...),
		"description":     d.Description,
		"roles":           roles,
	}
}

// PromptText renders the department, nesting member roles with indentation.
func (d *Department) PromptText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Department: %s", d.Name)
	if d.Mission != "" {
		fmt.Fprintf(&b, "\nMission: %s", d.Mission)
	}
	if d.Description != "" {
		fmt.Fprintf(&b, "\n\n%s", d.Description)
	}
	writeBulletSection(&b, "Key Functions", d.Functions)
	writeBulletSection(&b, "Areas of Expertise", d.ExpertiseAreas)
	if len(d.Roles) > 0 {
		b.WriteString("\n\nDepartment Roles:")
		for _, role := range d.Roles {
			for _, line := range strings.Split(role.PromptText(), "\n") {
				b.WriteString("\n  " + line)
			}
		}
	}
	return b.String()
}
