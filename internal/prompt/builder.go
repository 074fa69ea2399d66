// Package prompt assembles personas, briefing material, and reasoning
// scaffolds into a single Markdown prompt, and persists rendered prompts
// with frontmatter metadata.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kingrea/promptforge/internal/briefing"
	"github.com/kingrea/promptforge/internal/persona"
	"github.com/kingrea/promptforge/internal/reasoning"
)

// Builder accumulates the parts of a structured prompt. Section order in the
// rendered output is fixed; collections keep insertion order.
type Builder struct {
	Title        string
	Departments  []*persona.Department
	Roles        []*persona.Role
	Context      *briefing.Context
	Branches     []*reasoning.Branch
	Questions    []*briefing.Question
	Requirements []*briefing.Requirement
	Approach     string
	OutputFormat string
}

// NewBuilder constructs a builder for a titled prompt.
func NewBuilder(title string) *Builder {
	return &Builder{Title: title}
}

// AddDepartment appends a department block.
func (b *Builder) AddDepartment(dept *persona.Department) *Builder {
	if dept != nil {
		b.Departments = append(b.Departments, dept)
	}
	return b
}

// AddRole appends a standalone role (one not belonging to any department).
func (b *Builder) AddRole(role *persona.Role) *Builder {
	if role != nil {
		b.Roles = append(b.Roles, role)
	}
	return b
}

// AddRoleToDepartment attaches a role to the named department, creating the
// department if it does not exist yet.
func (b *Builder) AddRoleToDepartment(role *persona.Role, departmentName string) *Builder {
	if role == nil {
		return b
	}
	for _, dept := range b.Departments {
		if dept.Name == departmentName {
			dept.AddRole(role)
			return b
		}
	}
	b.Departments = append(b.Departments, persona.NewDepartment(departmentName).AddRole(role))
	return b
}

// WithContext sets the prompt context.
func (b *Builder) WithContext(ctx *briefing.Context) *Builder {
	b.Context = ctx
	return b
}

// AddBranch appends a reasoning branch.
func (b *Builder) AddBranch(branch *reasoning.Branch) *Builder {
	if branch != nil {
		b.Branches = append(b.Branches, branch)
	}
	return b
}

// AddQuestion appends a question.
func (b *Builder) AddQuestion(question *briefing.Question) *Builder {
	if question != nil {
		b.Questions = append(b.Questions, question)
	}
	return b
}

// AddRequirement appends a requirement.
func (b *Builder) AddRequirement(req *briefing.Requirement) *Builder {
	if req != nil {
		b.Requirements = append(b.Requirements, req)
	}
	return b
}

// WithApproach sets the analytical approach description.
func (b *Builder) WithApproach(approach string) *Builder {
	b.Approach = approach
	return b
}

// WithOutputFormat sets the expected output format description.
func (b *Builder) WithOutputFormat(format string) *Builder {
	b.OutputFormat = format
	return b
}

// Validate checks the builder and every attached part.
func (b *Builder) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("prompt: title is required")
	}
	for i, dept := range b.Departments {
		if err := dept.Validate(); err != nil {
			return fmt.Errorf("prompt: departments[%d]: %w", i, err)
		}
	}
	for i, role := range b.Roles {
		if err := role.Validate(); err != nil {
			return fmt.Errorf("prompt: roles[%d]: %w", i, err)
		}
	}
	for i, branch := range b.Branches {
		if err := branch.Validate(); err != nil {
			return fmt.Errorf("prompt: branches[%d]: %w", i, err)
		}
	}
	for i, question := range b.Questions {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("prompt: questions[%d]: %w", i, err)
		}
	}
	for i, req := range b.Requirements {
		if err := req.Validate(); err != nil {
			return fmt.Errorf("prompt: requirements[%d]: %w", i, err)
		}
	}
	return nil
}

// Map returns a nested generic representation of the prompt.
func (b *Builder) Map() map[string]any {
	result := map[string]any{"title": b.Title}
	if len(b.Departments) > 0 {
		depts := make([]map[string]any, 0, len(b.Departments))
		for _, dept := range b.Departments {
			depts = append(depts, dept.Map())
		}
		result["departments"] = depts
	}
	if len(b.Roles) > 0 {
		roles := make([]map[string]any, 0, len(b.Roles))
		for _, role := range b.Roles {
			roles = append(roles, role.Map())
		}
		result["roles"] = roles
	}
	if !b.Context.IsEmpty() {
		result["context"] = b.Context.Map()
	}
	if len(b.Branches) > 0 {
		branches := make([]map[string]any, 0, len(b.Branches))
		for _, branch := range b.Branches {
			branches = append(branches, branch.Map())
		}
		result["branches"] = branches
	}
	if len(b.Questions) > 0 {
		questions := make([]map[string]any, 0, len(b.Questions))
		for _, question := range b.Questions {
			questions = append(questions, question.Map())
		}
		result["questions"] = questions
	}
	if len(b.Requirements) > 0 {
		reqs := make([]map[string]any, 0, len(b.Requirements))
		for _, req := range b.Requirements {
			reqs = append(reqs, req.Map())
		}
		result["requirements"] = reqs
	}
	if b.Approach != "" {
		result["approach"] = b.Approach
	}
	if b.OutputFormat != "" {
		result["output_format"] = b.OutputFormat
	}
	return result
}

// Render produces the complete Markdown prompt. Empty sections are omitted.
func (b *Builder) Render() string {
	var sections []string
	sections = append(sections, fmt.Sprintf("# %s", b.Title), "")

	if len(b.Departments) > 0 {
		sections = append(sections, "## Organizational Context")
		for _, dept := range b.Departments {
			sections = append(sections, dept.PromptText(), "")
		}
	}
	if len(b.Roles) > 0 {
		sections = append(sections, "## Roles")
		for _, role := range b.Roles {
			sections = append(sections, role.PromptText(), "")
		}
	}
	if !b.Context.IsEmpty() {
		sections = append(sections, "## Context", b.Context.PromptText(), "")
	}
	if len(b.Branches) > 0 {
		sections = append(sections, "## Analysis Structure")
		for _, branch := range b.Branches {
			sections = append(sections, branch.PromptText(), "")
		}
	}
	if len(b.Questions) > 0 {
		sections = append(sections, "## Questions to Address")
		for _, question := range b.Questions {
			sections = append(sections, question.PromptText(0), "")
		}
	}
	if len(b.Requirements) > 0 {
		sections = append(sections, "## Requirements")
		for _, req := range b.Requirements {
			sections = append(sections, req.PromptText(), "")
		}
	}
	if b.Approach != "" {
		sections = append(sections, "## Approach", b.Approach, "")
	}
	if b.OutputFormat != "" {
		sections = append(sections, "## Output Format", b.OutputFormat)
	}

	return strings.TrimRight(strings.Join(sections, "\n"), "\n") + "\n"
}
