// Package widget renders individual HTML form controls. Every widget turns a
// field name plus the submitted value into a markup fragment and carries the
// metadata (label, description, bare/multipart flags) the form container
// needs to decorate it.
//
// Values arrive as []string, matching url.Values: a nil slice means the field
// was never submitted (the configured default applies), a present empty
// string is a real value. Selection tests for choice widgets are membership
// tests over the slice, so single- and multi-valued submissions follow one
// rule.
package widget

import (
	"errors"
	"sort"
	"strings"
)

// ErrNoChoices is returned when a choice-based widget is constructed with an
// empty option set.
var ErrNoChoices = errors.New("widget: choice widget needs at least one option")

// Renderer produces the HTML fragment for one form control.
type Renderer interface {
	Render(name string, value []string) (string, error)
	Meta() Meta
}

// Meta carries the per-widget facts the form container decorates with. An
// empty Label is equivalent to Bare: the field renders without label or
// error chrome.
type Meta struct {
	Label       string
	Description string
	Bare        bool
	Multipart   bool
}

// Attrs is an HTML attribute set rendered in sorted order with escaped
// values, so output is deterministic and reproducible.
type Attrs map[string]string

// String renders the attribute set as `key="value"` pairs, sorted by key.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, key := range keys {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(key)
		builder.WriteString(`="`)
		builder.WriteString(EscapeAttr(a[key]))
		builder.WriteByte('"')
	}
	return builder.String()
}

func (a Attrs) clone() Attrs {
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// EscapeAttr escapes a string for an HTML attribute-value position.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// EscapeText escapes a string for an HTML text-node position.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// Option configures a widget at construction time.
type Option func(*options)

type options struct {
	label       string
	description string
	defaults    []string
	attrs       Attrs
	separator   string
	bare        bool
	multipart   bool
}

// WithLabel sets the label shown next to the control by normal-mode layouts.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithDescription attaches help copy. Layouts that support descriptions (see
// form.Detailed) render it under the control.
func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// WithDefault sets the value(s) rendered when the field was never submitted.
// An empty submitted string does not fall back to the default.
func WithDefault(values ...string) Option {
	return func(o *options) {
		o.defaults = append([]string(nil), values...)
	}
}

// WithAttrs merges extra HTML attributes over the widget's kind defaults.
// Kind-intrinsic attributes (such as type="text") cannot be overridden.
func WithAttrs(attrs map[string]string) Option {
	return func(o *options) {
		if len(attrs) == 0 {
			return
		}
		if o.attrs == nil {
			o.attrs = make(Attrs, len(attrs))
		}
		for key, value := range attrs {
			o.attrs[key] = value
		}
	}
}

// WithSeparator overrides the string joining repeated sub-elements of radio
// groups and selects. Defaults to a newline.
func WithSeparator(separator string) Option {
	return func(o *options) {
		o.separator = separator
	}
}

// Bare marks the widget for bare-mode rendering (no label or error chrome),
// as hidden inputs use.
func Bare() Option {
	return func(o *options) {
		o.bare = true
	}
}

// Multipart marks the widget as needing multipart form encoding, as file
// inputs use. The form container aggregates the flag into the enctype
// attribute.
func Multipart() Option {
	return func(o *options) {
		o.multipart = true
	}
}

const defaultSeparator = "\n"

// base holds the state every widget kind shares.
type base struct {
	meta      Meta
	defaults  []string
	attrs     Attrs
	separator string
}

// newBase deep-copies the kind defaults before applying caller options, so no
// attribute map is ever shared between widget instances.
func newBase(kindDefaults Attrs, opts []Option) base {
	var o options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	attrs := kindDefaults.clone()
	if attrs == nil {
		attrs = make(Attrs)
	}
	for key, value := range o.attrs {
		attrs[key] = value
	}

	separator := o.separator
	if separator == "" {
		separator = defaultSeparator
	}

	return base{
		meta: Meta{
			Label:       o.label,
			Description: o.description,
			Bare:        o.bare,
			Multipart:   o.multipart,
		},
		defaults:  o.defaults,
		attrs:     attrs,
		separator: separator,
	}
}

// Meta implements the Renderer metadata accessor.
func (b *base) Meta() Meta {
	return b.meta
}

// Defaults returns the configured default value(s).
func (b *base) Defaults() []string {
	return append([]string(nil), b.defaults...)
}

// resolve applies the default-value rule: nil means never submitted.
func (b *base) resolve(value []string) []string {
	if value == nil {
		return b.defaults
	}
	return value
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
