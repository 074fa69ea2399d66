package plugins

import (
	"fmt"

	"github.com/kingrea/promptforge/internal/config"
	"github.com/kingrea/promptforge/internal/library"
	"github.com/kingrea/promptforge/internal/prompt"
)

// RegisterTemplatePlugins discovers YAML and Go template definitions under
// .promptforge/templates and registers them.
func RegisterTemplatePlugins(reg *library.Registry, cfg *config.Config) error {
	if reg == nil || cfg == nil {
		return nil
	}
	defs, err := loadAllDefinitionFiles(cfg.TemplatesDir())
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return nil
	}
	seen := make(map[string]string)
	for _, file := range defs {
		def := file.Definition
		if existing, ok := seen[def.ID]; ok {
			return fmt.Errorf("plugin: duplicate template id %s (%s and %s)", def.ID, existing, file.Path)
		}
		seen[def.ID] = file.Path
		defCopy := def
		tpl := library.Template{
			Info: library.Info{
				ID:          defCopy.ID,
				Name:        defCopy.DisplayName(),
				Description: defCopy.Description,
				Version:     defCopy.Version,
			},
			Build: func(params library.Params) (*prompt.Builder, error) {
				b := defCopy.Builder()
				b.Title = params.String("title", b.Title)
				return b, nil
			},
		}
		if err := reg.Register(tpl); err != nil {
			return fmt.Errorf("plugin: register %s from %s: %w", def.ID, file.Path, err)
		}
	}
	return nil
}

func loadAllDefinitionFiles(dir string) ([]DefinitionFile, error) {
	yamlDefs, err := LoadDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	goDefs, err := LoadGoDefinitionDir(dir)
	if err != nil {
		return nil, err
	}
	return append(yamlDefs, goDefs...), nil
}
