package plugins

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/promptforge/internal/briefing"
	"github.com/kingrea/promptforge/internal/config"
	"github.com/kingrea/promptforge/internal/library"
)

const sampleDefinition = `id: payer-briefing
version: 1.0.0
name: Payer Briefing
title: Payer Evidence Briefing
context:
  background: Preparing for reimbursement negotiations.
  domain: Market access
questions:
  - text: What outcomes matter most to payers?
    type: strategic
    category: business
    follow_ups:
      - text: Which comparators will they expect?
requirements:
  - description: Include budget impact estimates
    type: analytical
    priority: high
approach: Work from payer objections backwards.
`

func TestParseDefinitionYAML(t *testing.T) {
	def, err := ParseDefinitionYAML([]byte(sampleDefinition))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.ID != "payer-briefing" || def.Title != "Payer Evidence Briefing" {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if def.Questions[0].Type != briefing.QuestionStrategic {
		t.Fatalf("question type not parsed: %+v", def.Questions[0])
	}
	if len(def.Questions[0].FollowUps) != 1 {
		t.Fatalf("follow-ups not parsed: %+v", def.Questions[0])
	}
	if def.Requirements[0].Priority != briefing.PriorityHigh {
		t.Fatalf("requirement priority not parsed: %+v", def.Requirements[0])
	}
}

func TestParseDefinitionYAMLNormalizesUnknownEnums(t *testing.T) {
	raw := strings.Replace(sampleDefinition, "type: strategic", "type: whatever", 1)
	def, err := ParseDefinitionYAML([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Questions[0].Type != briefing.QuestionOpenEnded {
		t.Fatalf("unknown type should default, got %q", def.Questions[0].Type)
	}
}

func TestParseDefinitionYAMLErrors(t *testing.T) {
	if _, err := ParseDefinitionYAML([]byte("")); err == nil {
		t.Fatal("expected empty payload to fail validation")
	}
	if _, err := ParseDefinitionYAML([]byte("id: x\nversion: 1.0.0\n")); err == nil {
		t.Fatal("expected missing title to fail validation")
	}
	if _, err := ParseDefinitionYAML([]byte("id: x\nversion: 1.0.0\ntitle: T\nquestions:\n  - text: \"\"\n")); err == nil {
		t.Fatal("expected blank question text to fail validation")
	}
}

func TestLoadDefinitionDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "payer.yaml")
	if err := os.WriteFile(path, []byte(sampleDefinition), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	defs, err := LoadDefinitionDir(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0].Path != path {
		t.Fatalf("expected path %s, got %s", path, defs[0].Path)
	}
}

func TestLoadDefinitionDirMissing(t *testing.T) {
	defs, err := LoadDefinitionDir(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if defs != nil {
		t.Fatalf("expected nil slice for missing dir, got %v", defs)
	}
}

const goPluginSource = `package main

func TemplateDefinitions() ([]map[string]any, error) {
	return []map[string]any{
		{
			"id":      "go-template",
			"version": "1.0.0",
			"title":   "Scripted Briefing",
			"questions": []map[string]any{
				{"text": "What changed since the last review?"},
			},
		},
	}, nil
}`

func TestLoadGoDefinitionDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go-template.go"), []byte(goPluginSource), 0644); err != nil {
		t.Fatalf("write plugin: %v", err)
	}
	defs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		t.Fatalf("load go defs: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0].Definition.ID != "go-template" {
		t.Fatalf("unexpected id: %+v", defs[0].Definition)
	}
}

func TestLoadGoDefinitionDirMissingFunc(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatalf("write broken plugin: %v", err)
	}
	if _, err := LoadGoDefinitionDir(dir); err == nil {
		t.Fatal("expected error for missing TemplateDefinitions function")
	}
}

func TestRegisterTemplatePlugins(t *testing.T) {
	projectDir := t.TempDir()
	if err := config.InitForgeDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.TemplatesDir(), "payer.yaml"), []byte(sampleDefinition), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	reg := library.NewRegistry()
	if err := RegisterTemplatePlugins(reg, cfg); err != nil {
		t.Fatalf("register: %v", err)
	}
	builder, err := reg.Resolve("payer-briefing", library.Params{"title": "Renamed"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	out := builder.Render()
	if !strings.HasPrefix(out, "# Renamed") {
		t.Fatalf("title param ignored:\n%s", out)
	}
	if !strings.Contains(out, "Question: What outcomes matter most to payers?") {
		t.Fatalf("question missing:\n%s", out)
	}
}

func TestRegisterTemplatePluginsDuplicateID(t *testing.T) {
	projectDir := t.TempDir()
	if err := config.InitForgeDir(projectDir); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	for _, name := range []string{"a.yaml", "b.yaml"} {
		if err := os.WriteFile(filepath.Join(cfg.TemplatesDir(), name), []byte(sampleDefinition), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := RegisterTemplatePlugins(library.NewRegistry(), cfg); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
