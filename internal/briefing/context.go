// Package briefing holds the background material a prompt hands to the
// model: situational context, the questions to answer, and the requirements
// the answer must satisfy.
package briefing

import (
	"fmt"
	"strings"
)

// ExtraSection is a caller-defined context block. Items renders as a bullet
// list; when Items is empty the Value string renders inline after the key.
type ExtraSection struct {
	Key   string   `yaml:"key"`
	Value string   `yaml:"value,omitempty"`
	Items []string `yaml:"items,omitempty"`
}

// Context captures the background a model needs before it can answer:
// what the situation is, which domain it lives in, and what it may assume.
type Context struct {
	Background   string         `yaml:"background,omitempty"`
	Domain       string         `yaml:"domain,omitempty"`
	Constraints  []string       `yaml:"constraints,omitempty"`
	Assumptions  []string       `yaml:"assumptions,omitempty"`
	Resources    []string       `yaml:"resources,omitempty"`
	Stakeholders []string       `yaml:"stakeholders,omitempty"`
	Extras       []ExtraSection `yaml:"extras,omitempty"`
}

// NewContext constructs an empty context.
func NewContext() *Context {
	return &Context{}
}

// WithBackground sets the general background information.
func (c *Context) WithBackground(background string) *Context {
	c.Background = background
	return c
}

// WithDomain sets the domain or field.
func (c *Context) WithDomain(domain string) *Context {
	c.Domain = domain
	return c
}

// AddConstraint appends a constraint to consider.
func (c *Context) AddConstraint(constraint string) *Context {
	c.Constraints = append(c.Constraints, constraint)
	return c
}

// AddAssumption appends an assumption that can be made.
func (c *Context) AddAssumption(assumption string) *Context {
	c.Assumptions = append(c.Assumptions, assumption)
	return c
}

// AddResource appends an available resource or data source.
func (c *Context) AddResource(resource string) *Context {
	c.Resources = append(c.Resources, resource)
	return c
}

// AddStakeholder appends a relevant stakeholder.
func (c *Context) AddStakeholder(stakeholder string) *Context {
	c.Stakeholders = append(c.Stakeholders, stakeholder)
	return c
}

// AddExtra appends a scalar-valued extra section. Sections keep insertion
// order when rendered.
func (c *Context) AddExtra(key, value string) *Context {
	c.Extras = append(c.Extras, ExtraSection{Key: key, Value: value})
	return c
}

// AddExtraList appends a list-valued extra section.
func (c *Context) AddExtraList(key string, items ...string) *Context {
	c.Extras = append(c.Extras, ExtraSection{Key: key, Items: append([]string{}, items...)})
	return c
}

// IsEmpty reports whether the context has nothing to render.
func (c *Context) IsEmpty() bool {
	return c == nil ||
		(c.Background == "" && c.Domain == "" &&
			len(c.Constraints) == 0 && len(c.Assumptions) == 0 &&
			len(c.Resources) == 0 && len(c.Stakeholders) == 0 &&
			len(c.Extras) == 0)
}

// Map returns a generic representation of the context.
func (c *Context) Map() map[string]any {
	result := map[string]any{
		"background":   c.Background,
		"domain":       c.Domain,
		"constraints":  append([]string{}, c.Constraints...),
		"assumptions":  append([]string{}, c.Assumptions...),
		"resources":    append([]string{}, c.Resources...),
		"stakeholders": append([]string{}, c.Stakeholders...),
	}
	for _, extra := range c.Extras {
		if len(extra.Items) > 0 {
			result[extra.Key] = append([]string{}, extra.Items...)
			continue
		}
		result[extra.Key] = extra.Value
	}
	return result
}

// PromptText renders the context for inclusion in a prompt. Empty fields
// are omitted.
func (c *Context) PromptText() string {
	var b strings.Builder
	if c.Background != "" {
		b.WriteString(c.Background)
	}
	if c.Domain != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Domain: %s", c.Domain)
	}
	writeContextList(&b, "Constraints", c.Constraints)
	writeContextList(&b, "Assumptions", c.Assumptions)
	writeContextList(&b, "Available Resources", c.Resources)
	writeContextList(&b, "Stakeholders", c.Stakeholders)
	for _, extra := range c.Extras {
		if len(extra.Items) > 0 {
			writeContextList(&b, extra.Key, extra.Items)
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s: %s", extra.Key, extra.Value)
	}
	return b.String()
}

func writeContextList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	fmt.Fprintf(b, "%s:", heading)
	for _, item := range items {
		fmt.Fprintf(b, "\n- %s", item)
	}
}
