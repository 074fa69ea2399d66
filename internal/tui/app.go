// internal/tui/app.go
//
// Terminal UI for promptforge. Built on bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/promptforge/internal/config"
	"github.com/kingrea/promptforge/internal/library"
	"github.com/kingrea/promptforge/internal/logbook"
	"github.com/kingrea/promptforge/internal/render"
)

// appState represents which "screen" we're on
type appState int

const (
	stateBrowse  appState = iota // Template list with render/preview actions
	statePreview                 // Full-screen preview of one rendered template
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithRenderer overrides the renderer used for the render and preview actions.
func WithRenderer(r *render.Renderer) AppOption {
	return func(a *App) {
		if r != nil {
			a.renderer = r
		}
	}
}

// WithLogbook overrides the logbook destination.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = lb
	}
}

type renderFinishedMsg struct {
	result render.Result
	err    error
}

type previewReadyMsg struct {
	templateID string
	body       string
	err        error
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state    appState
	config   *config.Config
	registry *library.Registry
	renderer *render.Renderer
	logbook  *logbook.Logbook

	// UI components
	templateMenu list.Model
	statusMsg    string
	previewID    string
	previewBody  string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// templateItem implements list.Item for registry entries.
type templateItem struct {
	info      library.Info
	isDefault bool
}

func (i templateItem) Title() string {
	if i.isDefault {
		return i.info.Name + " *"
	}
	return i.info.Name
}

func (i templateItem) Description() string {
	desc := strings.TrimSpace(i.info.Description)
	if desc == "" {
		return fmt.Sprintf("ID: %s · v%s", i.info.ID, i.info.Version)
	}
	return fmt.Sprintf("%s · ID: %s", desc, i.info.ID)
}

func (i templateItem) FilterValue() string { return i.info.ID }

// NewApp creates a new App instance over an already-loaded registry.
func NewApp(cfg *config.Config, reg *library.Registry, opts ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tui: config is required")
	}
	if reg == nil {
		return nil, fmt.Errorf("tui: registry is required")
	}
	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "forge.log"))
	if err != nil {
		lb = nil
	}

	menu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "⬡ PROMPTFORGE"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(true)

	app := &App{
		state:        stateBrowse,
		config:       cfg,
		registry:     reg,
		logbook:      lb,
		templateMenu: menu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.renderer == nil {
		app.renderer = render.New(cfg, reg, app.logbook)
	}
	app.refreshTemplateMenu()
	app.logInfo("Session opened · %d templates available", len(reg.Templates()))
	return app, nil
}

// refreshTemplateMenu rebuilds the list from the registry, marking the
// configured default.
func (a *App) refreshTemplateMenu() {
	infos := a.registry.Templates()
	items := make([]list.Item, len(infos))
	defaultID := a.config.DefaultTemplate()
	selected := 0
	for i, info := range infos {
		items[i] = templateItem{info: info, isDefault: info.ID == defaultID}
		if info.ID == defaultID {
			selected = i
		}
	}
	a.templateMenu.SetItems(items)
	if len(items) > 0 {
		a.templateMenu.Select(selected)
	}
}

func (a *App) selectedTemplateID() string {
	item, ok := a.templateMenu.SelectedItem().(templateItem)
	if !ok {
		return ""
	}
	return item.info.ID
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.templateMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		return a, nil

	case renderFinishedMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("Render failed: %v", msg.err)
			return a, nil
		}
		a.statusMsg = fmt.Sprintf("Rendered %s -> %s", msg.result.TemplateID, msg.result.Path)
		return a, nil

	case previewReadyMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("Preview failed: %v", msg.err)
			return a, nil
		}
		a.state = statePreview
		a.previewID = msg.templateID
		a.previewBody = msg.body
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateBrowse && !a.templateMenu.SettingFilter() {
				return a, tea.Quit
			}
		case "esc":
			if a.state == statePreview {
				a.state = stateBrowse
				a.previewBody = ""
				return a, nil
			}
		case "enter":
			if a.state == stateBrowse && !a.templateMenu.SettingFilter() {
				return a, a.renderSelected()
			}
		case "p":
			if a.state == stateBrowse && !a.templateMenu.SettingFilter() {
				return a, a.previewSelected()
			}
		case "d":
			if a.state == stateBrowse && !a.templateMenu.SettingFilter() {
				a.setSelectedAsDefault()
				return a, nil
			}
		}
	}

	if a.state == stateBrowse {
		var cmd tea.Cmd
		a.templateMenu, cmd = a.templateMenu.Update(msg)
		return a, cmd
	}
	return a, nil
}

// renderSelected renders the highlighted template to the renders directory.
func (a *App) renderSelected() tea.Cmd {
	id := a.selectedTemplateID()
	if id == "" {
		a.statusMsg = "No template selected"
		return nil
	}
	renderer := a.renderer
	return func() tea.Msg {
		result, err := renderer.Render(id, nil)
		return renderFinishedMsg{result: result, err: err}
	}
}

// previewSelected renders the highlighted template in memory only.
func (a *App) previewSelected() tea.Cmd {
	id := a.selectedTemplateID()
	if id == "" {
		a.statusMsg = "No template selected"
		return nil
	}
	renderer := a.renderer
	return func() tea.Msg {
		body, err := renderer.Preview(id, nil)
		return previewReadyMsg{templateID: id, body: body, err: err}
	}
}

func (a *App) setSelectedAsDefault() {
	id := a.selectedTemplateID()
	if id == "" {
		a.statusMsg = "No template selected"
		return
	}
	if err := a.config.SetDefaultTemplate(id); err != nil {
		a.statusMsg = fmt.Sprintf("Could not set default: %v", err)
		a.logError("Set default %s failed: %v", id, err)
		return
	}
	a.statusMsg = fmt.Sprintf("Default template set to %s", id)
	a.logInfo("Default template -> %s", id)
	a.refreshTemplateMenu()
}

// View renders the current state to a string.
func (a *App) View() string {
	switch a.state {
	case statePreview:
		return a.renderPreview()
	default:
		return a.renderBrowse()
	}
}

func (a *App) renderBrowse() string {
	help := helpStyle.Render("enter: render · p: preview · d: set default · /: filter · q: quit")
	sections := []string{a.templateMenu.View(), help}
	if a.statusMsg != "" {
		sections = append(sections, statusStyle.Render(a.statusMsg))
	}
	if panel := a.renderLogPanel(); panel != "" {
		sections = append(sections, panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderPreview() string {
	head := headerStyle.Render(fmt.Sprintf("PREVIEW · %s", a.previewID))
	body := previewStyle.Render(a.previewBody)
	help := helpStyle.Render("esc: back · q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, head, body, help)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(5)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	head := logHeadStyle.Render(fmt.Sprintf("LOG · %s", fileName))
	body := logBodyStyle.Render(strings.Join(lines, "\n"))
	return logBoxStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5B8DEF"))
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	logHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	logBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
