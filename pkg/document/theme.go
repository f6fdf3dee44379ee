package document

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Asset keys read from a theme manifest. Keys may carry a suffix
// ("document.stylesheet.print") to contribute several files; they are
// emitted in key order.
const (
	StylesheetAssetKey = "document.stylesheet"
	ScriptAssetKey     = "document.script"
)

// WithThemeSelector resolves theme assets for every document. name and
// variant are the defaults used when Meta leaves them empty.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		if selector == nil {
			return
		}
		cfg.selector = selector
		cfg.themeName = strings.TrimSpace(name)
		cfg.themeVariant = strings.TrimSpace(variant)
	}
}

// themeAssets is the resolved part of a theme a document needs.
type themeAssets struct {
	Name        string
	Variant     string
	Stylesheets []string
	Scripts     []string
	CSSVars     string
}

func (r *Renderer) resolveTheme(name, variant string) (themeAssets, error) {
	if r.selector == nil {
		return themeAssets{}, nil
	}
	if name == "" {
		name = r.themeName
	}
	if variant == "" {
		variant = r.themeVariant
	}
	selection, err := r.selector.Select(name, variant)
	if err != nil {
		return themeAssets{}, fmt.Errorf("document: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return themeAssets{}, nil
	}

	manifest := selection.Manifest
	prefix := manifest.Assets.Prefix
	files := maps.Clone(manifest.Assets.Files)
	if files == nil {
		files = map[string]string{}
	}
	tokens := maps.Clone(manifest.Tokens)
	if tokens == nil {
		tokens = map[string]string{}
	}
	if v, ok := manifest.Variants[selection.Variant]; ok {
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
		maps.Copy(files, v.Assets.Files)
		maps.Copy(tokens, v.Tokens)
	}

	return themeAssets{
		Name:        selection.Theme,
		Variant:     selection.Variant,
		Stylesheets: assetURLs(prefix, files, StylesheetAssetKey),
		Scripts:     assetURLs(prefix, files, ScriptAssetKey),
		CSSVars:     cssVars(tokens),
	}, nil
}

func assetURLs(prefix string, files map[string]string, key string) []string {
	var keys []string
	for candidate, file := range files {
		if strings.TrimSpace(file) == "" {
			continue
		}
		if candidate == key || strings.HasPrefix(candidate, key+".") {
			keys = append(keys, candidate)
		}
	}
	slices.Sort(keys)

	urls := make([]string, 0, len(keys))
	for _, k := range keys {
		urls = append(urls, assetURL(prefix, files[k]))
	}
	return urls
}

func assetURL(prefix, file string) string {
	if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	if strings.Contains(prefix, "://") {
		return strings.TrimRight(prefix, "/") + "/" + file
	}
	return path.Join(prefix, file)
}

// cssVars renders tokens as a :root declaration block.
func cssVars(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(tokens))
	var builder strings.Builder
	builder.WriteString(":root{")
	for _, key := range keys {
		builder.WriteString("--")
		builder.WriteString(strings.TrimPrefix(key, "--"))
		builder.WriteString(":")
		builder.WriteString(strings.NewReplacer("<", "", ";", "", "}", "").Replace(tokens[key]))
		builder.WriteString(";")
	}
	builder.WriteString("}")
	return builder.String()
}
