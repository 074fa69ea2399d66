// cmd/promptforge/main.go
//
// Entry point for the promptforge CLI.
//
// Flow:
// 1. Initialize the .promptforge folder in the current directory
// 2. Load project config and build the template registry (builtins + plugins)
// 3. Dispatch: `render <id>`, `list`, `default <id>`, or no args for the TUI

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/promptforge/internal/config"
	"github.com/kingrea/promptforge/internal/library"
	"github.com/kingrea/promptforge/internal/logbook"
	"github.com/kingrea/promptforge/internal/logging"
	"github.com/kingrea/promptforge/internal/render"
	"github.com/kingrea/promptforge/internal/tui"
	"github.com/kingrea/promptforge/plugins"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := run(cwd, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(projectDir string, args []string) error {
	if err := config.InitForgeDir(projectDir); err != nil {
		return fmt.Errorf("initialize %s: %w", config.ForgeDir, err)
	}
	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}

	logger, err := logging.New(projectDir)
	if err == nil {
		defer logger.Close()
	}

	reg := library.NewRegistry()
	library.RegisterBuiltins(reg)
	if err := plugins.RegisterTemplatePlugins(reg, cfg); err != nil {
		return err
	}

	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "forge.log"))
	if err != nil {
		lb = nil
	}

	if len(args) == 0 {
		return runTUI(cfg, reg, lb, logger)
	}

	switch args[0] {
	case "render":
		return runRender(cfg, reg, lb, logger, args[1:])
	case "list":
		return runList(reg, cfg)
	case "default":
		return runSetDefault(cfg, reg, args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runTUI(cfg *config.Config, reg *library.Registry, lb *logbook.Logbook, logger *logging.Logger) error {
	logger.Printf("launching template browser")
	app, err := tui.NewApp(cfg, reg, tui.WithLogbook(lb))
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func runRender(cfg *config.Config, reg *library.Registry, lb *logbook.Logbook, logger *logging.Logger, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	title := fs.String("title", "", "override the prompt title")
	stdout := fs.Bool("stdout", false, "print the rendered prompt instead of writing a file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id := fs.Arg(0)
	if id == "" {
		id = cfg.DefaultTemplate()
	}
	params := library.Params{}
	if *title != "" {
		params["title"] = *title
	}

	renderer := render.New(cfg, reg, lb)
	if *stdout {
		body, err := renderer.Preview(id, params)
		if err != nil {
			return err
		}
		fmt.Print(body)
		return nil
	}

	result, err := renderer.Render(id, params)
	if err != nil {
		return err
	}
	logger.Printf("rendered %s (%s)", result.TemplateID, result.RenderID)
	fmt.Printf("Rendered %s -> %s\n", result.TemplateID, result.Path)
	return nil
}

func runList(reg *library.Registry, cfg *config.Config) error {
	infos := reg.Templates()
	if len(infos) == 0 {
		fmt.Println("No templates registered.")
		return nil
	}
	defaultID := cfg.DefaultTemplate()
	for _, info := range infos {
		marker := " "
		if info.ID == defaultID {
			marker = "*"
		}
		fmt.Printf("%s %-20s v%-8s %s\n", marker, info.ID, info.Version, info.Name)
	}
	return nil
}

func runSetDefault(cfg *config.Config, reg *library.Registry, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: promptforge default <template-id>")
	}
	id := args[0]
	if _, ok := reg.Lookup(id); !ok {
		return fmt.Errorf("unknown template %q (run `promptforge list`)", id)
	}
	if err := cfg.SetDefaultTemplate(id); err != nil {
		return err
	}
	fmt.Printf("Default template set to %s\n", id)
	return nil
}

func printUsage() {
	fmt.Print(`promptforge - structured prompt composition

Usage:
  promptforge                 launch the template browser
  promptforge list            list registered templates (* marks the default)
  promptforge render [id]     render a template into .promptforge/renders/
      -title <text>           override the prompt title
      -stdout                 print instead of writing a file
  promptforge default <id>    set the default template
`)
}
