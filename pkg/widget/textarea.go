package widget

import "strings"

var textareaDefaults = Attrs{
	"rows": "10",
	"cols": "20",
}

// Textarea renders a <textarea> element. The value travels in the element
// content (text-escaped), never in a value attribute.
type Textarea struct {
	base
}

// NewTextarea constructs a textarea widget. Callers can override the default
// rows/cols through WithAttrs.
func NewTextarea(opts ...Option) *Textarea {
	return &Textarea{base: newBase(textareaDefaults, opts)}
}

// Render emits the textarea with its resolved value as escaped content.
func (t *Textarea) Render(name string, value []string) (string, error) {
	attrs := t.attrs.clone()
	attrs["name"] = name

	var builder strings.Builder
	builder.WriteString("<textarea ")
	builder.WriteString(attrs.String())
	builder.WriteString(">")
	builder.WriteString(EscapeText(first(t.resolve(value))))
	builder.WriteString("</textarea>")
	return builder.String(), nil
}
