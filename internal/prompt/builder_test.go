package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/kingrea/promptforge/internal/briefing"
	"github.com/kingrea/promptforge/internal/persona"
	"github.com/kingrea/promptforge/internal/reasoning"
)

func fullBuilder() *Builder {
	return NewBuilder("Market Access Analysis").
		AddDepartment(persona.NewDepartment("HEOR").WithMission("Demonstrate value")).
		AddRole(persona.NewRole("Senior Director")).
		WithContext(briefing.NewContext().
			WithBackground("Phase III complete.").
			WithDomain("Pharmaceutical research")).
		AddBranch(reasoning.NewBranch("Payer Perspective").
			AddThought(reasoning.NewAnalysis("Budget impact drivers", "1.1"))).
		AddQuestion(briefing.NewQuestion("What evidence do payers need?")).
		AddRequirement(briefing.NewAnalyticalRequirement("Quantify cost-effectiveness")).
		WithApproach("Work branch by branch, then synthesize.").
		WithOutputFormat("Markdown report with an executive summary.")
}

func TestRenderSectionOrder(t *testing.T) {
	out := fullBuilder().Render()
	order := []string{
		"# Market Access Analysis",
		"## Organizational Context",
		"Department: HEOR",
		"## Roles",
		"Role: Senior Director",
		"## Context",
		"Domain: Pharmaceutical research",
		"## Analysis Structure",
		"Branch Payer Perspective:",
		"## Questions to Address",
		"Question: What evidence do payers need?",
		"## Requirements",
		"Requirement (medium): Quantify cost-effectiveness",
		"## Approach",
		"## Output Format",
	}
	last := -1
	for _, want := range order {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
		if idx < last {
			t.Fatalf("%q rendered out of order:\n%s", want, out)
		}
		last = idx
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	out := NewBuilder("Bare").Render()
	if out != "# Bare\n" {
		t.Fatalf("expected title only, got %q", out)
	}
	for _, heading := range []string{"## Roles", "## Context", "## Requirements"} {
		if strings.Contains(out, heading) {
			t.Fatalf("empty section %q rendered", heading)
		}
	}
}

func TestAddRoleToDepartmentCreatesOnDemand(t *testing.T) {
	b := NewBuilder("t")
	b.AddRoleToDepartment(persona.NewRole("Analyst"), "Data Science")
	b.AddRoleToDepartment(persona.NewRole("Engineer"), "Data Science")
	if len(b.Departments) != 1 {
		t.Fatalf("expected one department, got %d", len(b.Departments))
	}
	if len(b.Departments[0].Roles) != 2 {
		t.Fatalf("expected two roles in department, got %d", len(b.Departments[0].Roles))
	}
}

func TestMapShape(t *testing.T) {
	m := fullBuilder().Map()
	if m["title"] != "Market Access Analysis" {
		t.Fatalf("title missing: %#v", m)
	}
	for _, key := range []string{"departments", "roles", "context", "branches", "questions", "requirements", "approach", "output_format"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("map missing key %q", key)
		}
	}
	if _, ok := NewBuilder("t").Map()["context"]; ok {
		t.Fatal("empty context should not appear in map")
	}
}

func TestValidateNamesOffendingPart(t *testing.T) {
	b := NewBuilder("t").AddQuestion(&briefing.Question{})
	err := b.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "questions[0]") {
		t.Fatalf("error should name the invalid question: %v", err)
	}
}

func TestFrontMatterRoundTrip(t *testing.T) {
	body := []byte(fullBuilder().Render())
	meta := Metadata{
		TemplateID: "market-access",
		Version:    "1.0.0",
		RenderID:   "render-abc",
		CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Notes:      map[string]string{"origin": "test"},
	}
	doc, err := WriteFrontMatter(meta, body)
	if err != nil {
		t.Fatalf("WriteFrontMatter: %v", err)
	}
	parsed, parsedBody, err := ParseFrontMatter(doc)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if parsed.TemplateID != meta.TemplateID || parsed.Version != meta.Version || parsed.RenderID != meta.RenderID {
		t.Fatalf("metadata mismatch: %+v", parsed)
	}
	if !parsed.CreatedAt.Equal(meta.CreatedAt) {
		t.Fatalf("created timestamp mismatch: %v", parsed.CreatedAt)
	}
	if parsed.Checksum != BodyChecksum(body) {
		t.Fatalf("checksum mismatch: %s", parsed.Checksum)
	}
	if string(parsedBody) != string(body) {
		t.Fatalf("body mismatch:\n%s", parsedBody)
	}
	if parsed.Notes["origin"] != "test" {
		t.Fatalf("notes lost: %+v", parsed.Notes)
	}
}

func TestParseFrontMatterErrors(t *testing.T) {
	if _, _, err := ParseFrontMatter(nil); err != ErrMissingFrontMatter {
		t.Fatalf("expected ErrMissingFrontMatter, got %v", err)
	}
	if _, _, err := ParseFrontMatter([]byte("no fence here")); err != ErrMissingFrontMatter {
		t.Fatalf("expected ErrMissingFrontMatter, got %v", err)
	}
	if _, _, err := ParseFrontMatter([]byte("---\nunclosed: true\n")); err != ErrMalformedFrontMatter {
		t.Fatalf("expected ErrMalformedFrontMatter, got %v", err)
	}
}

func TestParseFrontMatterHandlesCRLF(t *testing.T) {
	doc, err := WriteFrontMatter(Metadata{TemplateID: "t", Version: "1", CreatedAt: time.Now()}, []byte("body\n"))
	if err != nil {
		t.Fatalf("WriteFrontMatter: %v", err)
	}
	crlf := strings.ReplaceAll(string(doc), "\n", "\r\n")
	if _, _, err := ParseFrontMatter([]byte(crlf)); err != nil {
		t.Fatalf("CRLF document should parse: %v", err)
	}
}
