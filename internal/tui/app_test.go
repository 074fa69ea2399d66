package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/promptforge/internal/config"
	"github.com/kingrea/promptforge/internal/library"
)

func newTestApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	projectDir := t.TempDir()
	if err := config.InitForgeDir(projectDir); err != nil {
		t.Fatalf("init forge dir: %v", err)
	}
	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	reg := library.NewRegistry()
	library.RegisterBuiltins(reg)
	app, err := NewApp(cfg, reg, opts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

func runCommands(t *testing.T, model tea.Model, cmd tea.Cmd) *App {
	t.Helper()
	app, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		nextModel, nextCmd := app.Update(msg)
		app, ok = nextModel.(*App)
		if !ok {
			t.Fatalf("unexpected model type: %T", nextModel)
		}
		cmd = nextCmd
	}
	return app
}

func TestMenuListsBuiltinsWithDefaultSelected(t *testing.T) {
	app := newTestApp(t)
	items := app.templateMenu.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 builtin templates, got %d", len(items))
	}
	selected, ok := app.templateMenu.SelectedItem().(templateItem)
	if !ok {
		t.Fatalf("unexpected item type: %T", app.templateMenu.SelectedItem())
	}
	if selected.info.ID != app.config.DefaultTemplate() {
		t.Fatalf("expected default %s selected, got %s", app.config.DefaultTemplate(), selected.info.ID)
	}
	if !selected.isDefault {
		t.Fatal("selected item should be marked as default")
	}
	if !strings.HasSuffix(selected.Title(), " *") {
		t.Fatalf("default marker missing from title %q", selected.Title())
	}
}

func TestEnterRendersSelectedTemplate(t *testing.T) {
	app := newTestApp(t)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = runCommands(t, model, cmd)
	if !strings.Contains(app.statusMsg, "Rendered analytical-board") {
		t.Fatalf("unexpected status: %q", app.statusMsg)
	}
}

func TestPreviewShowsRenderedBody(t *testing.T) {
	app := newTestApp(t)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	app = runCommands(t, model, cmd)
	if app.state != statePreview {
		t.Fatalf("expected preview state, got %d", app.state)
	}
	if !strings.HasPrefix(app.previewBody, "# ") {
		t.Fatalf("expected rendered markdown body:\n%s", app.previewBody)
	}

	model, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = runCommands(t, model, cmd)
	if app.state != stateBrowse {
		t.Fatalf("esc should return to browse, got state %d", app.state)
	}
}

func TestSetDefaultPersists(t *testing.T) {
	app := newTestApp(t)
	app.templateMenu.Select(1)
	want := app.selectedTemplateID()
	if want == app.config.DefaultTemplate() {
		t.Fatalf("test needs a non-default selection, got %s", want)
	}

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	app = runCommands(t, model, cmd)
	if got := app.config.DefaultTemplate(); got != want {
		t.Fatalf("expected default %s, got %s", want, got)
	}

	reloaded, err := config.Load(app.config.ProjectDir)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if got := reloaded.DefaultTemplate(); got != want {
		t.Fatalf("expected persisted default %s, got %s", want, got)
	}
}

func TestQuitKeys(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
