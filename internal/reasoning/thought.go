// Package reasoning models the structured-thinking scaffolds a prompt can
// ask a model to follow: individual thoughts and the branches that group
// them into parallel lines of analysis.
package reasoning

import (
	"fmt"
	"strings"
)

// ThoughtType classifies the role a thought plays in the reasoning process.
type ThoughtType string

const (
	ThoughtAnalysis       ThoughtType = "analysis"
	ThoughtHypothesis     ThoughtType = "hypothesis"
	ThoughtConsideration  ThoughtType = "consideration"
	ThoughtLimitation     ThoughtType = "limitation"
	ThoughtImplication    ThoughtType = "implication"
	ThoughtRecommendation ThoughtType = "recommendation"
	ThoughtQuestion       ThoughtType = "question"
	ThoughtObservation    ThoughtType = "observation"
	ThoughtInsight        ThoughtType = "insight"
	ThoughtMethodology    ThoughtType = "methodology"
)

// ParseThoughtType maps a string onto a known type, falling back to
// consideration for unknown values.
func ParseThoughtType(value string) ThoughtType {
	tt := ThoughtType(strings.ToLower(strings.TrimSpace(value)))
	switch tt {
	case ThoughtAnalysis, ThoughtHypothesis, ThoughtConsideration, ThoughtLimitation,
		ThoughtImplication, ThoughtRecommendation, ThoughtQuestion, ThoughtObservation,
		ThoughtInsight, ThoughtMethodology:
		return tt
	}
	return ThoughtConsideration
}

// Thought is one step in a reasoning scaffold. Order is a section label like
// "1.2" rather than a number; it exists for presentation, not arithmetic.
type Thought struct {
	Content     string      `yaml:"content"`
	Type        ThoughtType `yaml:"type,omitempty"`
	Order       string      `yaml:"order,omitempty"`
	References  []string    `yaml:"references,omitempty"`
	Tags        []string    `yaml:"tags,omitempty"`
	SubThoughts []*Thought  `yaml:"sub_thoughts,omitempty"`
}

// NewThought constructs a consideration-typed thought.
func NewThought(content string) *Thought {
	return &Thought{Content: content, Type: ThoughtConsideration}
}

// NewAnalysis builds an analysis thought with an order label.
func NewAnalysis(content, order string) *Thought {
	return &Thought{Content: content, Type: ThoughtAnalysis, Order: order, Tags: []string{"analysis"}}
}

// NewMethodology builds a methodology thought with an order label.
func NewMethodology(content, order string) *Thought {
	return &Thought{Content: content, Type: ThoughtMethodology, Order: order, Tags: []string{"methodology"}}
}

// NewRecommendation builds a recommendation thought with an order label.
func NewRecommendation(content, order string) *Thought {
	return &Thought{Content: content, Type: ThoughtRecommendation, Order: order, Tags: []string{"recommendation"}}
}

// NewLimitation builds a limitation thought with an order label.
func NewLimitation(content, order string) *Thought {
	return &Thought{Content: content, Type: ThoughtLimitation, Order: order, Tags: []string{"limitation", "constraint"}}
}

// WithOrder sets the order label.
func (t *Thought) WithOrder(order string) *Thought {
	t.Order = order
	return t
}

// AddSubThought appends a nested thought.
func (t *Thought) AddSubThought(sub *Thought) *Thought {
	if sub != nil {
		t.SubThoughts = append(t.SubThoughts, sub)
	}
	return t
}

// AddReference appends a supporting reference or source.
func (t *Thought) AddReference(reference string) *Thought {
	t.References = append(t.References, reference)
	return t
}

// AddTag appends a tag.
func (t *Thought) AddTag(tag string) *Thought {
	t.Tags = append(t.Tags, tag)
	return t
}

// Validate ensures the thought and its sub-thoughts can be rendered.
func (t *Thought) Validate() error {
	if strings.TrimSpace(t.Content) == "" {
		return fmt.Errorf("reasoning: thought content is required")
	}
	for i, sub := range t.SubThoughts {
		if err := sub.Validate(); err != nil {
			return fmt.Errorf("reasoning: sub_thoughts[%d]: %w", i, err)
		}
	}
	return nil
}

// Normalize resolves unknown type strings, recursing into sub-thoughts.
func (t *Thought) Normalize() {
	t.Content = strings.TrimSpace(t.Content)
	t.Order = strings.TrimSpace(t.Order)
	t.Type = ParseThoughtType(string(t.Type))
	for _, sub := range t.SubThoughts {
		sub.Normalize()
	}
}

// Map returns a generic representation of the thought.
func (t *Thought) Map() map[string]any {
	result := map[string]any{
		"content": t.Content,
		"type":    string(t.Type),
		"order":   t.Order,
		"tags":    append([]string{}, t.Tags...),
	}
	if len(t.References) > 0 {
		result["references"] = append([]string{}, t.References...)
	}
	if len(t.SubThoughts) > 0 {
		subs := make([]map[string]any, 0, len(t.SubThoughts))
		for _, sub := range t.SubThoughts {
			subs = append(subs, sub.Map())
		}
		result["sub_thoughts"] = subs
	}
	return result
}

// PromptText renders the thought, indenting sub-thoughts two spaces per level.
func (t *Thought) PromptText(indentLevel int) string {
	indent := strings.Repeat("  ", indentLevel)
	header := fmt.Sprintf("%sThought: %s", indent, t.Content)
	if t.Order != "" {
		header = fmt.Sprintf("%sThought %s: %s", indent, t.Order, t.Content)
	}
	lines := []string{header}
	if len(t.References) > 0 {
		lines = append(lines, fmt.Sprintf("%sReferences: %s", indent, strings.Join(t.References, ", ")))
	}
	for _, sub := range t.SubThoughts {
		lines = append(lines, sub.PromptText(indentLevel+1))
	}
	return strings.Join(lines, "\n")
}
