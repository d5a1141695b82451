// Package field pairs external validators with widget renderers. The
// transformers here are the constructors form callers reach for: they take a
// validator (or nil for no validation), a label, and widget options, and
// return a Field ready to be added to a form container.
//
// Unlike attribute-grafting designs, a Field composes its validator instead
// of mutating it, so a single validator instance can safely back any number
// of fields.
package field

import (
	"github.com/goliatone/go-htmlform/pkg/validate"
	"github.com/goliatone/go-htmlform/pkg/widget"
)

// Field couples one externally-owned validator with the renderer that draws
// its control. The renderer is exclusively owned by the field; validators may
// be shared.
type Field struct {
	Validator validate.Validator
	Renderer  widget.Renderer
}

// New builds a Field from any renderer, substituting an inert validator when
// v is nil. The kind-specific transformers below cover the built-in widgets;
// New is the escape hatch for custom Renderer implementations.
func New(v validate.Validator, r widget.Renderer) Field {
	if v == nil {
		v = validate.Inert()
	}
	return Field{Validator: v, Renderer: r}
}

// Text transforms a validator into a text input field.
func Text(v validate.Validator, label string, opts ...widget.Option) Field {
	return New(v, widget.NewInput(widget.InputText, withLabel(label, opts)...))
}

// Password transforms a validator into a password input field.
func Password(v validate.Validator, label string, opts ...widget.Option) Field {
	return New(v, widget.NewInput(widget.InputPassword, withLabel(label, opts)...))
}

// Button transforms a validator into a button input field.
func Button(v validate.Validator, label string, opts ...widget.Option) Field {
	return New(v, widget.NewInput(widget.InputButton, withLabel(label, opts)...))
}

// Image transforms a validator into an image-map input field.
func Image(v validate.Validator, label string, opts ...widget.Option) Field {
	return New(v, widget.NewInput(widget.InputImage, withLabel(label, opts)...))
}

// File transforms a validator into a file upload field. The widget requests
// multipart encoding, which the form container aggregates into the form's
// enctype attribute.
func File(v validate.Validator, label string, opts ...widget.Option) Field {
	return New(v, widget.NewInput(widget.InputFile, withLabel(label, opts)...))
}

// Hidden transforms a validator into a hidden input field. Hidden fields
// render bare: no label and no error chrome.
func Hidden(v validate.Validator, opts ...widget.Option) Field {
	return New(v, widget.NewInput(widget.InputHidden, opts...))
}

// Textarea transforms a validator into a textarea field.
func Textarea(v validate.Validator, label string, opts ...widget.Option) Field {
	return New(v, widget.NewTextarea(withLabel(label, opts)...))
}

// Checkbox transforms a validator into a checkbox field.
func Checkbox(v validate.Validator, label string, opts ...widget.Option) Field {
	return New(v, widget.NewCheckbox(withLabel(label, opts)...))
}

// Radios transforms a validator into a radio group field. An empty choice
// set is a configuration error.
func Radios(v validate.Validator, label string, choices []widget.Choice, opts ...widget.Option) (Field, error) {
	group, err := widget.NewRadioGroup(choices, withLabel(label, opts)...)
	if err != nil {
		return Field{}, err
	}
	return New(v, group), nil
}

// Select transforms a validator into a select field. An empty choice set is
// a configuration error.
func Select(v validate.Validator, label string, choices []widget.Choice, opts ...widget.Option) (Field, error) {
	sel, err := widget.NewSelect(choices, withLabel(label, opts)...)
	if err != nil {
		return Field{}, err
	}
	return New(v, sel), nil
}

// Custom transforms a validator into a custom-template field. Template parse
// failures are configuration errors.
func Custom(v validate.Validator, label, content string, opts ...widget.Option) (Field, error) {
	custom, err := widget.NewCustom(content, withLabel(label, opts)...)
	if err != nil {
		return Field{}, err
	}
	return New(v, custom), nil
}

func withLabel(label string, opts []widget.Option) []widget.Option {
	merged := make([]widget.Option, 0, len(opts)+1)
	merged = append(merged, widget.WithLabel(label))
	merged = append(merged, opts...)
	return merged
}
