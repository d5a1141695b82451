// Package form assembles fields into a complete HTML form fragment: labels,
// widgets, error messages and a submit footer, rendered through a layout's
// template set.
//
// A Form is populated once and rendered as often as needed; Render is pure
// and idempotent, so the same container can serve every round-trip of a
// failed submission. Containers shared across goroutines must be treated as
// immutable after population.
package form

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-htmlform/pkg/field"
	"github.com/goliatone/go-htmlform/pkg/helptext"
	"github.com/goliatone/go-htmlform/pkg/template"
	"github.com/goliatone/go-htmlform/pkg/validate"
	"github.com/goliatone/go-htmlform/pkg/widget"
)

// Form is an order-preserving mapping from field name to Field plus the
// layout and attributes one render pass needs.
type Form struct {
	names  []string
	fields map[string]field.Field

	attrs       widget.Attrs
	submitLabel string
	layout      Layout
	templates   template.Renderer
	themeStyle  string
	markdown    bool
}

// Option configures a Form at construction time.
type Option func(*Form)

// WithMethod overrides the form method attribute. Defaults to POST.
func WithMethod(method string) Option {
	return func(f *Form) {
		f.attrs["method"] = method
	}
}

// WithAction sets the form action attribute. Defaults to empty.
func WithAction(action string) Option {
	return func(f *Form) {
		f.attrs["action"] = action
	}
}

// WithAttrs merges extra form-level HTML attributes (class, id, enctype...).
func WithAttrs(attrs map[string]string) Option {
	return func(f *Form) {
		for key, value := range attrs {
			f.attrs[key] = value
		}
	}
}

// WithSubmitLabel overrides the submit button label. Defaults to "Submit".
func WithSubmitLabel(label string) Option {
	return func(f *Form) {
		f.submitLabel = label
	}
}

// WithLayout selects the template set used by Render. Defaults to Simple.
func WithLayout(layout Layout) Option {
	return func(f *Form) {
		f.layout = layout
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer template.Renderer) Option {
	return func(f *Form) {
		if renderer != nil {
			f.templates = renderer
		}
	}
}

// WithMarkdownDescriptions renders field descriptions as sanitized markdown
// instead of escaped plain text.
func WithMarkdownDescriptions() Option {
	return func(f *Form) {
		f.markdown = true
	}
}

// New constructs an empty form container.
func New(opts ...Option) *Form {
	f := &Form{
		fields: make(map[string]field.Field),
		attrs: widget.Attrs{
			"method": "POST",
			"action": "",
		},
		submitLabel: "Submit",
		layout:      Simple(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.templates == nil {
		f.templates = template.Default()
	}
	return f
}

// Add inserts a field under the given name. Adding an existing name replaces
// the field in place, keeping its display position. Returns the form for
// chaining.
func (f *Form) Add(name string, fld field.Field) *Form {
	if _, exists := f.fields[name]; !exists {
		f.names = append(f.names, name)
	}
	f.fields[name] = fld
	return f
}

// Field looks up a field by name.
func (f *Form) Field(name string) (field.Field, bool) {
	fld, ok := f.fields[name]
	return fld, ok
}

// Names returns the field names in display order.
func (f *Form) Names() []string {
	return append([]string(nil), f.names...)
}

// Len reports the number of fields.
func (f *Form) Len() int {
	return len(f.names)
}

// Multipart reports whether any field requires multipart encoding.
func (f *Form) Multipart() bool {
	for _, name := range f.names {
		if fld := f.fields[name]; fld.Renderer != nil && fld.Renderer.Meta().Multipart {
			return true
		}
	}
	return false
}

// Validators returns the per-field validators, keyed by field name, for use
// with validate.Apply or an external framework.
func (f *Form) Validators() map[string]validate.Validator {
	out := make(map[string]validate.Validator, len(f.names))
	for _, name := range f.names {
		out[name] = f.fields[name].Validator
	}
	return out
}

// Render produces the complete HTML form for the submitted values and error
// map. Absent entries in either map are not errors: the value falls back to
// the widget default, the error slot stays empty.
func (f *Form) Render(values url.Values, errs validate.Errors) (string, error) {
	rendered := make([]string, 0, len(f.names))
	multipart := false

	for _, name := range f.names {
		fld := f.fields[name]
		if fld.Renderer == nil {
			return "", fmt.Errorf("form: field %q has no renderer attached", name)
		}
		meta := fld.Renderer.Meta()
		if meta.Multipart {
			multipart = true
		}

		var value []string
		if raw, ok := values[name]; ok {
			value = raw
		}
		markup, err := fld.Renderer.Render(name, value)
		if err != nil {
			return "", fmt.Errorf("form: render field %q: %w", name, err)
		}

		fragment, err := f.renderField(fld, meta, markup, errs.Get(name))
		if err != nil {
			return "", fmt.Errorf("form: render field %q: %w", name, err)
		}
		rendered = append(rendered, fragment)
	}

	footer, err := f.renderString(f.layout.Footer, map[string]any{
		"submit": template.HTML(widget.EscapeAttr(f.submitLabel)),
	})
	if err != nil {
		return "", fmt.Errorf("form: render footer: %w", err)
	}

	// The enctype decision aggregates over every field, so the form tag is
	// the last thing finalized.
	attrs := f.formAttrs(multipart)

	out, err := f.renderString(f.layout.Form, map[string]any{
		"attrs":      template.HTML(attrs.String()),
		"fields":     template.HTML(strings.Join(rendered, f.layout.FieldSeparator)),
		"footer":     template.HTML(footer),
		"tableAttrs": template.HTML(f.layout.TableAttrs.String()),
	})
	if err != nil {
		return "", fmt.Errorf("form: render form template: %w", err)
	}
	return out, nil
}

// RenderSmart behaves like Render, but suppresses every error when the
// submitted values share no keys with the form's field set. A first view of
// a never-submitted form then shows no validation noise, whatever the error
// map claims.
func (f *Form) RenderSmart(values url.Values, errs validate.Errors) (string, error) {
	if !f.submitted(values) {
		errs = nil
	}
	return f.Render(values, errs)
}

func (f *Form) submitted(values url.Values) bool {
	for _, name := range f.names {
		if _, ok := values[name]; ok {
			return true
		}
	}
	return false
}

func (f *Form) renderField(fld field.Field, meta widget.Meta, markup, errMsg string) (string, error) {
	if meta.Bare || meta.Label == "" {
		return f.renderString(f.layout.BareField, map[string]any{
			"widget": template.HTML(markup),
		})
	}

	labelTpl := f.layout.Label
	if f.layout.RequiredLabel != "" && validate.IsRequired(fld.Validator) {
		labelTpl = f.layout.RequiredLabel
	}
	label, err := f.renderString(labelTpl, map[string]any{
		"label": template.HTML(widget.EscapeText(meta.Label)),
	})
	if err != nil {
		return "", err
	}

	errorHTML := ""
	if errMsg != "" {
		errorHTML, err = f.renderString(f.layout.Error, map[string]any{
			"error": template.HTML(widget.EscapeText(errMsg)),
		})
		if err != nil {
			return "", err
		}
	}

	description, err := f.renderDescription(meta.Description)
	if err != nil {
		return "", err
	}

	return f.renderString(f.layout.Field, map[string]any{
		"label":       template.HTML(label),
		"widget":      template.HTML(markup),
		"description": template.HTML(description),
		"error":       template.HTML(errorHTML),
	})
}

func (f *Form) renderDescription(description string) (string, error) {
	if description == "" || f.layout.Description == "" {
		return "", nil
	}
	var body template.HTML
	if f.markdown {
		rendered, err := helptext.Inline(description)
		if err != nil {
			return "", err
		}
		body = rendered
	} else {
		body = template.HTML(widget.EscapeText(description))
	}
	return f.renderString(f.layout.Description, map[string]any{
		"description": body,
	})
}

func (f *Form) formAttrs(multipart bool) widget.Attrs {
	attrs := make(widget.Attrs, len(f.attrs)+2)
	for key, value := range f.attrs {
		attrs[key] = value
	}
	if multipart && attrs["enctype"] == "" {
		attrs["enctype"] = "multipart/form-data"
	}
	if f.themeStyle != "" {
		if existing := attrs["style"]; existing != "" {
			attrs["style"] = existing + ";" + f.themeStyle
		} else {
			attrs["style"] = f.themeStyle
		}
	}
	return attrs
}

func (f *Form) renderString(tpl string, data map[string]any) (string, error) {
	return f.templates.RenderString(tpl, data)
}
