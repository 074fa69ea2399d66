package briefing

import (
	"fmt"
	"strings"
)

// RequirementType classifies what kind of obligation a requirement places on
// the response.
type RequirementType string

const (
	RequirementFunctional   RequirementType = "functional"
	RequirementTechnical    RequirementType = "technical"
	RequirementAnalytical   RequirementType = "analytical"
	RequirementPresentation RequirementType = "presentation"
	RequirementCompliance   RequirementType = "compliance"
	RequirementPerformance  RequirementType = "performance"
	RequirementConstraint   RequirementType = "constraint"
	RequirementQuality      RequirementType = "quality"
)

// Priority ranks how binding a requirement is.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityOptional Priority = "optional"
)

// ParseRequirementType maps a string onto a known type, falling back to
// functional for unknown values.
func ParseRequirementType(value string) RequirementType {
	rt := RequirementType(strings.ToLower(strings.TrimSpace(value)))
	switch rt {
	case RequirementFunctional, RequirementTechnical, RequirementAnalytical,
		RequirementPresentation, RequirementCompliance, RequirementPerformance,
		RequirementConstraint, RequirementQuality:
		return rt
	}
	return RequirementFunctional
}

// ParsePriority maps a string onto a known priority, falling back to medium.
func ParsePriority(value string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(value)))
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityOptional:
		return p
	}
	return PriorityMedium
}

// Requirement states something the response must include, consider, or obey.
type Requirement struct {
	Description        string          `yaml:"description"`
	Type               RequirementType `yaml:"type,omitempty"`
	Priority           Priority        `yaml:"priority,omitempty"`
	Rationale          string          `yaml:"rationale,omitempty"`
	AcceptanceCriteria []string        `yaml:"acceptance_criteria,omitempty"`
	Tags               []string        `yaml:"tags,omitempty"`
}

// NewRequirement constructs a functional, medium-priority requirement.
func NewRequirement(description string) *Requirement {
	return &Requirement{
		Description: description,
		Type:        RequirementFunctional,
		Priority:    PriorityMedium,
	}
}

// NewAnalyticalRequirement builds a requirement about analysis methodology.
func NewAnalyticalRequirement(description string) *Requirement {
	r := NewRequirement(description)
	r.Type = RequirementAnalytical
	r.Tags = []string{"analysis", "methodology"}
	return r
}

// NewComplianceRequirement builds a critical compliance requirement.
func NewComplianceRequirement(description string) *Requirement {
	r := NewRequirement(description)
	r.Type = RequirementCompliance
	r.Priority = PriorityCritical
	r.Tags = []string{"compliance", "regulatory"}
	return r
}

// NewPresentationRequirement builds a requirement about response structure.
func NewPresentationRequirement(description string) *Requirement {
	r := NewRequirement(description)
	r.Type = RequirementPresentation
	r.Tags = []string{"format", "presentation", "structure"}
	return r
}

// WithPriority sets the priority level.
func (r *Requirement) WithPriority(p Priority) *Requirement {
	r.Priority = p
	return r
}

// WithRationale explains why the requirement exists.
func (r *Requirement) WithRationale(rationale string) *Requirement {
	r.Rationale = rationale
	return r
}

// AddAcceptanceCriterion appends a criterion for judging the requirement met.
func (r *Requirement) AddAcceptanceCriterion(criterion string) *Requirement {
	r.AcceptanceCriteria = append(r.AcceptanceCriteria, criterion)
	return r
}

// AddTag appends a tag.
func (r *Requirement) AddTag(tag string) *Requirement {
	r.Tags = append(r.Tags, tag)
	return r
}

// Validate ensures the requirement can be rendered.
func (r *Requirement) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("briefing: requirement description is required")
	}
	return nil
}

// Normalize resolves unknown type/priority strings to their defaults.
func (r *Requirement) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
	r.Type = ParseRequirementType(string(r.Type))
	r.Priority = ParsePriority(string(r.Priority))
}

// Map returns a generic representation of the requirement.
func (r *Requirement) Map() map[string]any {
	result := map[string]any{
		"description": r.Description,
		"type":        string(r.Type),
		"priority":    string(r.Priority),
		"tags":        append([]string{}, r.Tags...),
	}
	if r.Rationale != "" {
		result["rationale"] = r.Rationale
	}
	if len(r.AcceptanceCriteria) > 0 {
		result["acceptance_criteria"] = append([]string{}, r.AcceptanceCriteria...)
	}
	return result
}

// PromptText renders the requirement for inclusion in a prompt.
func (r *Requirement) PromptText() string {
	lines := []string{fmt.Sprintf("Requirement (%s): %s", r.Priority, r.Description)}
	if r.Rationale != "" {
		lines = append(lines, fmt.Sprintf("Rationale: %s", r.Rationale))
	}
	if len(r.AcceptanceCriteria) > 0 {
		lines = append(lines, "Acceptance Criteria:")
		for _, criterion := range r.AcceptanceCriteria {
			lines = append(lines, fmt.Sprintf("- %s", criterion))
		}
	}
	return strings.Join(lines, "\n")
}
