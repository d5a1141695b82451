package widget

import "strings"

// RadioGroup renders one <input type="radio"> per configured choice, wrapped
// in a <label>, all grouped under the same field name. A single widget
// instance therefore emits multiple elements but still renders as one form
// field.
type RadioGroup struct {
	base
	choices []Choice
}

// NewRadioGroup constructs a radio group. An empty choice set is a
// configuration error.
func NewRadioGroup(choices []Choice, opts ...Option) (*RadioGroup, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	group := &RadioGroup{
		base:    newBase(nil, opts),
		choices: cloneChoices(choices),
	}
	group.attrs["type"] = "radio"
	return group, nil
}

// Choices returns the configured options in render order.
func (g *RadioGroup) Choices() []Choice {
	return cloneChoices(g.choices)
}

// Render emits every radio element, marking checked the one whose value
// exactly matches the resolved current value, joined by the configured
// separator.
func (g *RadioGroup) Render(name string, value []string) (string, error) {
	current := first(g.resolve(value))

	fragments := make([]string, 0, len(g.choices))
	for _, choice := range g.choices {
		attrs := g.attrs.clone()
		attrs["name"] = name
		attrs["value"] = choice.Value
		if choice.Value == current {
			attrs["checked"] = "checked"
		}

		var builder strings.Builder
		builder.WriteString("<label><input ")
		builder.WriteString(attrs.String())
		builder.WriteString("/>")
		builder.WriteString(EscapeText(choice.Label))
		builder.WriteString("</label>")
		fragments = append(fragments, builder.String())
	}
	return strings.Join(fragments, g.separator), nil
}
