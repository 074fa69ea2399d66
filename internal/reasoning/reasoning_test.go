package reasoning

import (
	"strings"
	"testing"
)

func TestThoughtPromptTextWithOrderAndReferences(t *testing.T) {
	thought := NewAnalysis("Epidemiology of the disease", "1.1").
		AddReference("Smith 2024").
		AddReference("OMOP cohort study")

	text := thought.PromptText(0)
	if !strings.HasPrefix(text, "Thought 1.1: Epidemiology of the disease") {
		t.Fatalf("order label missing from header:\n%s", text)
	}
	if !strings.Contains(text, "References: Smith 2024, OMOP cohort study") {
		t.Fatalf("references not joined:\n%s", text)
	}
}

func TestThoughtPromptTextWithoutOrder(t *testing.T) {
	text := NewThought("A plain consideration").PromptText(0)
	if text != "Thought: A plain consideration" {
		t.Fatalf("unexpected render: %q", text)
	}
}

func TestThoughtSubThoughtsIndent(t *testing.T) {
	thought := NewThought("Parent").
		AddSubThought(NewThought("Child").AddSubThought(NewThought("Grandchild")))

	text := thought.PromptText(0)
	want := "Thought: Parent\n  Thought: Child\n    Thought: Grandchild"
	if text != want {
		t.Fatalf("unexpected nesting:\n%s\nwant:\n%s", text, want)
	}
}

func TestParseThoughtTypeFallsBack(t *testing.T) {
	if got := ParseThoughtType("METHODOLOGY"); got != ThoughtMethodology {
		t.Fatalf("case-insensitive parse failed: %q", got)
	}
	if got := ParseThoughtType("musing"); got != ThoughtConsideration {
		t.Fatalf("unknown type should default to consideration: %q", got)
	}
}

func TestThoughtValidateNamesOffendingChild(t *testing.T) {
	thought := NewThought("ok").AddSubThought(&Thought{})
	err := thought.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "sub_thoughts[0]") {
		t.Fatalf("error should name the offending child: %v", err)
	}
}

func TestBranchPriorityClamped(t *testing.T) {
	if got := NewBranch("b").WithPriority(7).Priority; got != 5 {
		t.Fatalf("priority not clamped high: %d", got)
	}
	if got := NewBranch("b").WithPriority(0).Priority; got != 1 {
		t.Fatalf("priority not clamped low: %d", got)
	}
}

func TestBranchPromptText(t *testing.T) {
	branch := NewBranch("Domain Expert Analysis").
		WithDescription("Identify the problems that matter most.").
		WithOwner("Medical domain expert").
		AddThought(NewAnalysis("Current treatment gaps", "1.1"))

	text := branch.PromptText()
	wantOrder := []string{
		"Branch Domain Expert Analysis:",
		"Identify the problems that matter most.",
		"Owner: Medical domain expert",
		"  Thought 1.1: Current treatment gaps",
	}
	if text != strings.Join(wantOrder, "\n") {
		t.Fatalf("unexpected render:\n%s", text)
	}
}

func TestBranchNormalizeDefaultsPriority(t *testing.T) {
	br := &Branch{Name: " x ", Thoughts: []*Thought{{Content: "c", Type: "??"}}}
	br.Normalize()
	if br.Priority != 3 {
		t.Fatalf("zero priority should default to 3, got %d", br.Priority)
	}
	if br.Name != "x" {
		t.Fatalf("name not trimmed: %q", br.Name)
	}
	if br.Thoughts[0].Type != ThoughtConsideration {
		t.Fatalf("member thought not normalized: %+v", br.Thoughts[0])
	}
}

func TestBranchMapIncludesThoughts(t *testing.T) {
	br := NewBranch("b").AddThought(NewThought("c"))
	m := br.Map()
	thoughts, ok := m["thoughts"].([]map[string]any)
	if !ok || len(thoughts) != 1 {
		t.Fatalf("thoughts not mapped: %#v", m["thoughts"])
	}
}
