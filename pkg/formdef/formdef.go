// Package formdef loads declarative form definitions from YAML documents and
// builds form containers from them. A definition captures the same decisions
// the programmatic API exposes (field order, widget kinds, defaults, choices,
// layout) in a format that can live next to templates and config.
package formdef

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-htmlform/pkg/field"
	"github.com/goliatone/go-htmlform/pkg/form"
	"github.com/goliatone/go-htmlform/pkg/validate"
	"github.com/goliatone/go-htmlform/pkg/widget"
)

// Definition is the root document of a form definition file.
type Definition struct {
	Method      string            `yaml:"method"`
	Action      string            `yaml:"action"`
	Layout      string            `yaml:"layout"`
	SubmitLabel string            `yaml:"submit_label"`
	Attrs       map[string]string `yaml:"attrs"`
	Fields      []FieldDef        `yaml:"fields"`
}

// FieldDef describes one field. Kind selects the widget; the remaining keys
// apply when the kind supports them.
type FieldDef struct {
	Name        string            `yaml:"name"`
	Kind        string            `yaml:"kind"`
	Label       string            `yaml:"label"`
	Description string            `yaml:"description"`
	Required    bool              `yaml:"required"`
	Default     []string          `yaml:"default"`
	Attrs       map[string]string `yaml:"attrs"`
	Options     OptionList        `yaml:"options"`
	Separator   string            `yaml:"separator"`
	Template    string            `yaml:"template"`
}

// OptionList accepts either a plain sequence (value doubles as label) or a
// mapping of label to value, mirroring the two choice constructors.
type OptionList struct {
	choices []widget.Choice
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *OptionList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		l.choices = widget.Values(values...)
		return nil
	case yaml.MappingNode:
		var labeled map[string]string
		if err := node.Decode(&labeled); err != nil {
			return err
		}
		l.choices = widget.Labeled(labeled)
		return nil
	default:
		return fmt.Errorf("options must be a sequence or a label-to-value mapping")
	}
}

// Choices returns the parsed choice set.
func (l OptionList) Choices() []widget.Choice {
	return l.choices
}

// Parse decodes a definition document. Unknown keys are errors so typos in
// hand-written files fail loudly instead of silently dropping behavior.
func Parse(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("formdef: decode definition: %w", err)
	}
	return &def, nil
}

// ParseBytes decodes a definition from a byte slice.
func ParseBytes(data []byte) (*Definition, error) {
	return Parse(bytes.NewReader(data))
}

// Build assembles a form container from the definition.
func (d *Definition) Build(opts ...form.Option) (*form.Form, error) {
	base := make([]form.Option, 0, len(opts)+5)
	if d.Method != "" {
		base = append(base, form.WithMethod(d.Method))
	}
	if d.Action != "" {
		base = append(base, form.WithAction(d.Action))
	}
	if d.SubmitLabel != "" {
		base = append(base, form.WithSubmitLabel(d.SubmitLabel))
	}
	if len(d.Attrs) > 0 {
		base = append(base, form.WithAttrs(d.Attrs))
	}
	layout, err := layoutByName(d.Layout)
	if err != nil {
		return nil, err
	}
	base = append(base, form.WithLayout(layout))
	base = append(base, opts...)

	f := form.New(base...)
	for i, fd := range d.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("formdef: field %d has no name", i)
		}
		fld, err := fd.build()
		if err != nil {
			return nil, fmt.Errorf("formdef: field %q: %w", fd.Name, err)
		}
		f.Add(fd.Name, fld)
	}
	return f, nil
}

func layoutByName(name string) (form.Layout, error) {
	switch name {
	case "", "simple":
		return form.Simple(), nil
	case "table":
		return form.Table(), nil
	case "detailed":
		return form.Detailed(), nil
	default:
		return form.Layout{}, fmt.Errorf("formdef: unknown layout %q", name)
	}
}

func (fd FieldDef) build() (field.Field, error) {
	var v validate.Validator
	if fd.Required {
		v = validate.Required()
	}

	opts := fd.widgetOptions()

	switch fd.Kind {
	case "", "text":
		return field.Text(v, fd.Label, opts...), nil
	case "password":
		return field.Password(v, fd.Label, opts...), nil
	case "button":
		return field.Button(v, fd.Label, opts...), nil
	case "image":
		return field.Image(v, fd.Label, opts...), nil
	case "file":
		return field.File(v, fd.Label, opts...), nil
	case "hidden":
		return field.Hidden(v, opts...), nil
	case "textarea":
		return field.Textarea(v, fd.Label, opts...), nil
	case "checkbox":
		return field.Checkbox(v, fd.Label, opts...), nil
	case "radios":
		return field.Radios(v, fd.Label, fd.Options.Choices(), opts...)
	case "select":
		return field.Select(v, fd.Label, fd.Options.Choices(), opts...)
	case "custom":
		if fd.Template == "" {
			return field.Field{}, errors.New("custom fields need a template")
		}
		return field.Custom(v, fd.Label, fd.Template, opts...)
	default:
		return field.Field{}, fmt.Errorf("unknown kind %q", fd.Kind)
	}
}

func (fd FieldDef) widgetOptions() []widget.Option {
	var opts []widget.Option
	if fd.Description != "" {
		opts = append(opts, widget.WithDescription(fd.Description))
	}
	if len(fd.Default) > 0 {
		opts = append(opts, widget.WithDefault(fd.Default...))
	}
	if len(fd.Attrs) > 0 {
		opts = append(opts, widget.WithAttrs(fd.Attrs))
	}
	if fd.Separator != "" {
		opts = append(opts, widget.WithSeparator(fd.Separator))
	}
	return opts
}
