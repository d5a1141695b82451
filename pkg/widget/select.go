package widget

import (
	"slices"
	"strings"
)

// Select renders a <select> element wrapping one <option> per configured
// choice. An option is selected when its value is a member of the resolved
// value slice, which covers single selects (one element) and multi selects
// (several) with the same rule. Pass attrs multiple="multiple" for the
// latter.
type Select struct {
	base
	choices []Choice
}

// NewSelect constructs a select widget. An empty choice set is a
// configuration error.
func NewSelect(choices []Choice, opts ...Option) (*Select, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	return &Select{
		base:    newBase(nil, opts),
		choices: cloneChoices(choices),
	}, nil
}

// Choices returns the configured options in render order.
func (s *Select) Choices() []Choice {
	return cloneChoices(s.choices)
}

// Multiple reports whether the widget was configured for multi selection.
func (s *Select) Multiple() bool {
	_, ok := s.attrs["multiple"]
	return ok
}

// Render emits the select element and its options.
func (s *Select) Render(name string, value []string) (string, error) {
	selected := s.resolve(value)

	fragments := make([]string, 0, len(s.choices))
	for _, choice := range s.choices {
		var builder strings.Builder
		builder.WriteString(`<option value="`)
		builder.WriteString(EscapeAttr(choice.Value))
		builder.WriteString(`"`)
		if slices.Contains(selected, choice.Value) {
			builder.WriteString(` selected="selected"`)
		}
		builder.WriteString(">")
		builder.WriteString(EscapeText(choice.Label))
		builder.WriteString("</option>")
		fragments = append(fragments, builder.String())
	}

	attrs := s.attrs.clone()
	attrs["name"] = name

	var builder strings.Builder
	builder.WriteString("<select ")
	builder.WriteString(attrs.String())
	builder.WriteString(">\n")
	builder.WriteString(strings.Join(fragments, s.separator))
	builder.WriteString("\n</select>")
	return builder.String(), nil
}
