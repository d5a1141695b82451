package widget

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// Custom renders caller-supplied pongo2 template content. The template
// receives two variables: name (attribute-escaped) and value (text-escaped),
// both already safe, so no further markup is added or escaped.
type Custom struct {
	base
	tpl *pongo2.Template
}

// NewCustom compiles the template content. A parse failure is a
// configuration error surfaced at construction time, keeping Render free of
// template errors for well-formed widgets.
func NewCustom(content string, opts ...Option) (*Custom, error) {
	tpl, err := pongo2.FromString(content)
	if err != nil {
		return nil, fmt.Errorf("widget: parse custom template: %w", err)
	}
	return &Custom{
		base: newBase(nil, opts),
		tpl:  tpl,
	}, nil
}

// Render substitutes the escaped name and value into the template.
func (c *Custom) Render(name string, value []string) (string, error) {
	out, err := c.tpl.Execute(pongo2.Context{
		"name":  pongo2.AsSafeValue(EscapeAttr(name)),
		"value": pongo2.AsSafeValue(EscapeText(first(c.resolve(value)))),
	})
	if err != nil {
		return "", fmt.Errorf("widget: render custom template: %w", err)
	}
	return out, nil
}
