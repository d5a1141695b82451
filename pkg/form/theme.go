package form

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// WithTheme derives CSS custom properties from a theme selection and attaches
// them to the form tag's style attribute. Variant tokens overlay the base
// manifest tokens; keys are emitted sorted so output stays reproducible.
func WithTheme(selection *theme.Selection) Option {
	return func(f *Form) {
		if selection == nil || selection.Manifest == nil {
			return
		}
		f.themeStyle = cssVars(tokensFor(selection))
	}
}

func tokensFor(selection *theme.Selection) map[string]string {
	manifest := selection.Manifest
	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}

func cssVars(tokens map[string]string) string {
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, "--"+key+":"+tokens[key])
	}
	return strings.Join(parts, ";")
}
