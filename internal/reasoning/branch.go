package reasoning

import (
	"fmt"
	"strings"
)

// Branch groups related thoughts into one coherent line of analysis, owned
// by a single role or persona. A prompt can carry several branches to run
// parallel analytical perspectives.
type Branch struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Owner       string     `yaml:"owner,omitempty"`
	Priority    int        `yaml:"priority,omitempty"`
	Tags        []string   `yaml:"tags,omitempty"`
	Thoughts    []*Thought `yaml:"thoughts,omitempty"`
}

// NewBranch constructs a branch with a midpoint priority of 3.
func NewBranch(name string) *Branch {
	return &Branch{Name: name, Priority: 3}
}

// WithDescription sets what the branch explores.
func (br *Branch) WithDescription(description string) *Branch {
	br.Description = description
	return br
}

// WithOwner sets the role or persona responsible for the branch.
func (br *Branch) WithOwner(owner string) *Branch {
	br.Owner = owner
	return br
}

// WithPriority sets the priority, clamped to 1..5.
func (br *Branch) WithPriority(priority int) *Branch {
	br.Priority = clampPriority(priority)
	return br
}

// AddThought appends a thought to the branch.
func (br *Branch) AddThought(thought *Thought) *Branch {
	if thought != nil {
		br.Thoughts = append(br.Thoughts, thought)
	}
	return br
}

// AddTag appends a tag.
func (br *Branch) AddTag(tag string) *Branch {
	br.Tags = append(br.Tags, tag)
	return br
}

// Validate ensures the branch and its thoughts can be rendered.
func (br *Branch) Validate() error {
	if strings.TrimSpace(br.Name) == "" {
		return fmt.Errorf("reasoning: branch name is required")
	}
	for i, thought := range br.Thoughts {
		if err := thought.Validate(); err != nil {
			return fmt.Errorf("reasoning: branch %s thoughts[%d]: %w", br.Name, i, err)
		}
	}
	return nil
}

// Normalize clamps priority and normalizes member thoughts.
func (br *Branch) Normalize() {
	br.Name = strings.TrimSpace(br.Name)
	if br.Priority == 0 {
		br.Priority = 3
	}
	br.Priority = clampPriority(br.Priority)
	for _, thought := range br.Thoughts {
		thought.Normalize()
	}
}

// Map returns a generic representation of the branch.
func (br *Branch) Map() map[string]any {
	result := map[string]any{
		"name":        br.Name,
		"description": br.Description,
		"owner":       br.Owner,
		"priority":    br.Priority,
		"tags":        append([]string{}, br.Tags...),
	}
	if len(br.Thoughts) > 0 {
		thoughts := make([]map[string]any, 0, len(br.Thoughts))
		for _, thought := range br.Thoughts {
			thoughts = append(thoughts, thought.Map())
		}
		result["thoughts"] = thoughts
	}
	return result
}

// PromptText renders the branch with its thoughts indented one level.
func (br *Branch) PromptText() string {
	lines := []string{fmt.Sprintf("Branch %s:", br.Name)}
	if br.Description != "" {
		lines = append(lines, br.Description)
	}
	if br.Owner != "" {
		lines = append(lines, fmt.Sprintf("Owner: %s", br.Owner))
	}
	for _, thought := range br.Thoughts {
		lines = append(lines, thought.PromptText(1))
	}
	return strings.Join(lines, "\n")
}

func clampPriority(value int) int {
	if value < 1 {
		return 1
	}
	if value > 5 {
		return 5
	}
	return value
}
