// Package config handles the .promptforge directory structure. Every
// project that uses promptforge gets a .promptforge/ folder created in its
// root holding config.yaml, user templates, rendered prompts, and logs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ForgeDir is the name of the directory created in each project.
	ForgeDir = ".promptforge"

	defaultTemplateID = "analytical-board"
)

const defaultProjectConfigYAML = `# promptforge project configuration
version: 1

# Where user-authored template definitions live, relative to .promptforge/.
# YAML files describe templates declaratively; .go files are interpreted and
# must define TemplateDefinitions().
paths:
  templates: templates
  renders: renders

templates:
  default: analytical-board
`

// PathsConfig declares where template and render assets live relative to the
// .promptforge directory.
type PathsConfig struct {
	Templates string `yaml:"templates"`
	Renders   string `yaml:"renders"`
}

// TemplateConfig captures template preferences.
type TemplateConfig struct {
	Default   string   `yaml:"default"`
	Available []string `yaml:"available,omitempty"`
}

// ProjectConfig models .promptforge/config.yaml.
type ProjectConfig struct {
	Version   int            `yaml:"version"`
	Paths     PathsConfig    `yaml:"paths"`
	Templates TemplateConfig `yaml:"templates"`
}

// Config is the loaded configuration for one project directory.
type Config struct {
	ProjectDir string
	ForgeDir   string
	Project    ProjectConfig
}

// InitForgeDir creates the .promptforge structure if missing and seeds the
// default config file.
func InitForgeDir(projectDir string) error {
	forgeDir := filepath.Join(projectDir, ForgeDir)
	for _, dir := range []string{forgeDir, filepath.Join(forgeDir, "templates"), filepath.Join(forgeDir, "renders"), filepath.Join(forgeDir, "logs")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	return ensureProjectConfig(filepath.Join(forgeDir, "config.yaml"))
}

// Load reads the project configuration, applying defaults when the config
// file is absent.
func Load(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		ForgeDir:   filepath.Join(projectDir, ForgeDir),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location of the project config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ForgeDir, "config.yaml")
}

// TemplatesDir returns the directory holding user template definitions.
func (c *Config) TemplatesDir() string {
	return filepath.Join(c.ForgeDir, c.Project.Paths.Templates)
}

// RendersDir returns the directory rendered prompts are written to.
func (c *Config) RendersDir() string {
	return filepath.Join(c.ForgeDir, c.Project.Paths.Renders)
}

// LogsDir returns the directory holding project logs.
func (c *Config) LogsDir() string {
	return filepath.Join(c.ForgeDir, "logs")
}

// DefaultTemplate returns the configured default template identifier.
func (c *Config) DefaultTemplate() string {
	return c.Project.Templates.Default
}

// SetDefaultTemplate updates the default template identifier and persists
// the value back to config.yaml. The ID is also appended to the available
// list so pickers can display it on future launches.
func (c *Config) SetDefaultTemplate(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("config: template id is required")
	}
	c.Project.Templates.Default = id
	if !contains(c.Project.Templates.Available, id) {
		c.Project.Templates.Available = append(c.Project.Templates.Available, id)
	}
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Paths: PathsConfig{
			Templates: "templates",
			Renders:   "renders",
		},
		Templates: TemplateConfig{
			Default: defaultTemplateID,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Paths.Templates) == "" {
		pc.Paths.Templates = "templates"
	}
	if strings.TrimSpace(pc.Paths.Renders) == "" {
		pc.Paths.Renders = "renders"
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Paths.Templates = cleanRelPath(pc.Paths.Templates)
	pc.Paths.Renders = cleanRelPath(pc.Paths.Renders)
	pc.Templates.Default = strings.TrimSpace(pc.Templates.Default)
	if pc.Templates.Default == "" {
		pc.Templates.Default = defaultTemplateID
	}
	if len(pc.Templates.Available) > 0 && !contains(pc.Templates.Available, pc.Templates.Default) {
		pc.Templates.Available = append(pc.Templates.Available, pc.Templates.Default)
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if filepath.IsAbs(pc.Paths.Templates) {
		return fmt.Errorf("paths.templates must be relative to %s", ForgeDir)
	}
	if filepath.IsAbs(pc.Paths.Renders) {
		return fmt.Errorf("paths.renders must be relative to %s", ForgeDir)
	}
	if strings.TrimSpace(pc.Templates.Default) == "" {
		return fmt.Errorf("templates.default is required")
	}
	return nil
}

func cleanRelPath(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(trimmed))
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.ForgeDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure %s: %w", c.ForgeDir, err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode project config: %w", err)
	}
	if err := os.WriteFile(c.ConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", c.ConfigPath(), err)
	}
	return nil
}
