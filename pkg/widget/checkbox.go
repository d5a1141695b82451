package widget

import "strings"

// Checkbox renders an <input type="checkbox"> element. Checkboxes never
// consult a configured default: a default-checked box could not be submitted
// as unchecked, since browsers omit unchecked boxes from the payload
// entirely. Checked state is decided solely by the live value.
type Checkbox struct {
	base
}

// NewCheckbox constructs a checkbox widget.
func NewCheckbox(opts ...Option) *Checkbox {
	checkbox := &Checkbox{base: newBase(nil, opts)}
	checkbox.attrs["type"] = "checkbox"
	return checkbox
}

// Render emits the checkbox, adding checked="checked" only when the live
// value is non-empty.
func (c *Checkbox) Render(name string, value []string) (string, error) {
	attrs := c.attrs.clone()
	attrs["name"] = name
	if first(value) != "" {
		attrs["checked"] = "checked"
	}

	var builder strings.Builder
	builder.WriteString("<input ")
	builder.WriteString(attrs.String())
	builder.WriteString("/>")
	return builder.String(), nil
}
