package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// resolveTheme turns a theme/variant selection into the renderer-facing
// configuration. Without a selector the request proceeds unthemed.
func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil || strings.TrimSpace(name) == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}

	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if manifest := selection.Manifest; manifest != nil && len(manifest.Tokens) > 0 {
		cfg.Tokens = make(map[string]string, len(manifest.Tokens))
		cfg.CSSVars = make(map[string]string, len(manifest.Tokens))
		for token, value := range manifest.Tokens {
			cfg.Tokens[token] = value
			cfg.CSSVars["--"+token] = value
		}
	}
	if base := strings.TrimRight(o.themeAssetBase, "/"); base != "" {
		selected := selection.Theme
		cfg.AssetURL = func(key string) string {
			if strings.TrimSpace(key) == "" {
				return ""
			}
			return base + "/" + selected + "/" + key
		}
	}

	return cfg, nil
}
