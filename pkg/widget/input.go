package widget

import "strings"

// InputKind selects the type attribute of an <input> widget. The kind is
// intrinsic: it always wins over caller-supplied type attributes.
type InputKind string

const (
	InputText     InputKind = "text"
	InputPassword InputKind = "password"
	InputButton   InputKind = "button"
	InputImage    InputKind = "image"
	InputFile     InputKind = "file"
	InputHidden   InputKind = "hidden"
)

// Input renders a single self-closing <input> element.
type Input struct {
	base
	kind InputKind
}

// NewInput constructs an input widget of the given kind. File inputs are
// marked multipart and hidden inputs bare automatically.
func NewInput(kind InputKind, opts ...Option) *Input {
	switch kind {
	case InputFile:
		opts = append(opts, Multipart())
	case InputHidden:
		opts = append(opts, Bare())
	}

	input := &Input{
		base: newBase(nil, opts),
		kind: kind,
	}
	input.attrs["type"] = string(kind)
	return input
}

// Kind reports the input's type attribute.
func (i *Input) Kind() InputKind {
	return i.kind
}

// Render emits the input element with merged attributes plus name and value.
func (i *Input) Render(name string, value []string) (string, error) {
	attrs := i.attrs.clone()
	attrs["name"] = name
	attrs["value"] = first(i.resolve(value))

	var builder strings.Builder
	builder.WriteString("<input ")
	builder.WriteString(attrs.String())
	builder.WriteString("/>")
	return builder.String(), nil
}
