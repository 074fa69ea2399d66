package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type ciStep struct {
	Name string         `yaml:"name"`
	Uses string         `yaml:"uses"`
	Run  string         `yaml:"run"`
	If   string         `yaml:"if"`
	With map[string]any `yaml:"with"`
}

type ciJob struct {
	RunsOn   string `yaml:"runs-on"`
	Strategy struct {
		Matrix map[string][]string `yaml:"matrix"`
	} `yaml:"strategy"`
	Steps []ciStep `yaml:"steps"`
}

type ciWorkflow struct {
	Name string `yaml:"name"`
	On   struct {
		Push struct {
			Branches []string `yaml:"branches"`
		} `yaml:"push"`
		PullRequest struct {
			Branches []string `yaml:"branches"`
		} `yaml:"pull_request"`
	} `yaml:"on"`
	Jobs map[string]ciJob `yaml:"jobs"`
}

func loadCIWorkflow(t *testing.T) ciWorkflow {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", ".github", "workflows", "ci.yml"))
	if err != nil {
		t.Fatalf("read workflow: %v", err)
	}
	var wf ciWorkflow
	if err := yaml.Unmarshal(data, &wf); err != nil {
		t.Fatalf("parse workflow: %v", err)
	}
	return wf
}

func TestCIWorkflowTriggers(t *testing.T) {
	wf := loadCIWorkflow(t)
	if got, want := wf.On.Push.Branches, []string{"main", "develop"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("push branches = %v, want %v", got, want)
	}
	if got, want := wf.On.PullRequest.Branches, []string{"main"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("pull_request branches = %v, want %v", got, want)
	}
}

func TestCIWorkflowMatrixHasTwoVersions(t *testing.T) {
	wf := loadCIWorkflow(t)
	job, ok := wf.Jobs["test"]
	if !ok {
		t.Fatal("missing test job")
	}
	versions := job.Strategy.Matrix["go-version"]
	if len(versions) != 2 {
		t.Fatalf("expected exactly 2 matrix versions, got %v", versions)
	}
	for _, v := range versions {
		if strings.TrimSpace(v) == "" {
			t.Fatalf("blank matrix version in %v", versions)
		}
	}
}

func TestCIWorkflowTestStepCollectsCoverage(t *testing.T) {
	wf := loadCIWorkflow(t)
	job := wf.Jobs["test"]
	var testStep *ciStep
	for i := range job.Steps {
		if strings.Contains(job.Steps[i].Run, "go test") {
			testStep = &job.Steps[i]
			break
		}
	}
	if testStep == nil {
		t.Fatal("no go test step found")
	}
	if !strings.Contains(testStep.Run, "-coverprofile=") {
		t.Fatalf("test step does not collect coverage: %q", testStep.Run)
	}
	if !strings.Contains(testStep.Run, "./...") {
		t.Fatalf("test step does not cover all packages: %q", testStep.Run)
	}
}

func TestCIWorkflowCoverageUploadIsGuarded(t *testing.T) {
	wf := loadCIWorkflow(t)
	job := wf.Jobs["test"]
	var upload *ciStep
	for i := range job.Steps {
		if strings.HasPrefix(job.Steps[i].Uses, "codecov/") {
			upload = &job.Steps[i]
			break
		}
	}
	if upload == nil {
		t.Fatal("no coverage upload step found")
	}
	if !strings.Contains(upload.If, "secrets.CODECOV_TOKEN") {
		t.Fatalf("upload step is not guarded by the token secret: %q", upload.If)
	}
	failOnError, ok := upload.With["fail_ci_if_error"].(bool)
	if !ok || !failOnError {
		t.Fatalf("fail_ci_if_error must be true, got %v", upload.With["fail_ci_if_error"])
	}
	if _, ok := upload.With["token"]; !ok {
		t.Fatal("upload step must pass the token")
	}
}

func TestCIWorkflowStepOrder(t *testing.T) {
	wf := loadCIWorkflow(t)
	job := wf.Jobs["test"]
	if job.RunsOn == "" {
		t.Fatal("test job missing runs-on")
	}
	var checkout, setup, deps, test int = -1, -1, -1, -1
	for i, step := range job.Steps {
		switch {
		case strings.HasPrefix(step.Uses, "actions/checkout"):
			checkout = i
		case strings.HasPrefix(step.Uses, "actions/setup-go"):
			setup = i
		case strings.Contains(step.Run, "go mod download"):
			deps = i
		case strings.Contains(step.Run, "go test"):
			test = i
		}
	}
	if checkout < 0 || setup < 0 || deps < 0 || test < 0 {
		t.Fatalf("missing required steps: checkout=%d setup=%d deps=%d test=%d", checkout, setup, deps, test)
	}
	if !(checkout < setup && setup < deps && deps < test) {
		t.Fatalf("steps out of order: checkout=%d setup=%d deps=%d test=%d", checkout, setup, deps, test)
	}
}
