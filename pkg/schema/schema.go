// Package schema derives form containers from OpenAPI documents. An
// operation's request body schema already names the fields, their types,
// constraints and documentation; this package maps that onto widgets and
// validators so the form definition lives in the API contract instead of
// being duplicated by hand.
package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-htmlform/pkg/field"
	"github.com/goliatone/go-htmlform/pkg/form"
	"github.com/goliatone/go-htmlform/pkg/validate"
	"github.com/goliatone/go-htmlform/pkg/widget"
)

// ErrOperationNotFound reports that the document defines no operation with
// the requested id.
var ErrOperationNotFound = errors.New("schema: operation not found")

// Media types checked for a request body schema, most specific first.
var mediaTypePrecedence = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Textarea threshold: string fields allowed to grow past this many characters
// get a textarea instead of a single-line input.
const longTextThreshold = 255

// Load parses and validates an OpenAPI document from raw bytes.
func Load(ctx context.Context, data []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: true,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("schema: validate document: %w", err)
	}
	return doc, nil
}

// Build assembles a form for the operation's request body. Properties are
// walked in sorted name order so output is reproducible; fields named in the
// schema's required list get a rejecting validator and the starred label in
// layouts that render one.
func Build(doc *openapi3.T, operationID string, opts ...form.Option) (*form.Form, error) {
	operation, path, method := findOperation(doc, operationID)
	if operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	bodySchema := requestSchema(operation)
	if bodySchema == nil {
		return nil, fmt.Errorf("schema: operation %q has no request body schema", operationID)
	}

	base := []form.Option{
		form.WithMethod(method),
		form.WithAction(path),
	}
	f := form.New(append(base, opts...)...)

	required := make(map[string]bool, len(bodySchema.Required))
	for _, name := range bodySchema.Required {
		required[name] = true
	}

	for _, name := range sortedPropertyNames(bodySchema.Properties) {
		ref := bodySchema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		fld, err := buildField(name, ref.Value, required[name])
		if err != nil {
			return nil, fmt.Errorf("schema: property %q: %w", name, err)
		}
		f.Add(name, fld)
	}

	if f.Len() == 0 {
		return nil, fmt.Errorf("schema: operation %q request body has no properties", operationID)
	}
	return f, nil
}

func findOperation(doc *openapi3.T, operationID string) (*openapi3.Operation, string, string) {
	if doc == nil || doc.Paths == nil {
		return nil, "", ""
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range map[string]*openapi3.Operation{
			"GET":    item.Get,
			"PUT":    item.Put,
			"POST":   item.Post,
			"DELETE": item.Delete,
			"PATCH":  item.Patch,
		} {
			if operation != nil && operation.OperationID == operationID {
				return operation, path, method
			}
		}
	}
	return nil, "", ""
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range mediaTypePrecedence {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func sortedPropertyNames(properties openapi3.Schemas) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildField(name string, prop *openapi3.Schema, required bool) (field.Field, error) {
	var v validate.Validator
	if required {
		v = validate.Required()
	}

	label := prop.Title
	if label == "" {
		label = humanize(name)
	}

	opts := widgetOptions(prop)

	switch {
	case schemaType(prop) == "boolean":
		return field.Checkbox(v, label, opts...), nil
	case len(prop.Enum) > 0:
		return field.Select(v, label, enumChoices(prop.Enum), opts...)
	case prop.Format == "password":
		return field.Password(v, label, opts...), nil
	case prop.Format == "binary":
		return field.File(v, label, opts...), nil
	case schemaType(prop) == "string" && longText(prop):
		return field.Textarea(v, label, opts...), nil
	default:
		return field.Text(v, label, opts...), nil
	}
}

func widgetOptions(prop *openapi3.Schema) []widget.Option {
	var opts []widget.Option
	if prop.Description != "" {
		opts = append(opts, widget.WithDescription(prop.Description))
	}
	if prop.Default != nil {
		opts = append(opts, widget.WithDefault(stringify(prop.Default)))
	}
	if prop.MaxLength != nil && *prop.MaxLength <= longTextThreshold {
		opts = append(opts, widget.WithAttrs(map[string]string{
			"maxlength": strconv.FormatUint(*prop.MaxLength, 10),
		}))
	}
	return opts
}

func schemaType(prop *openapi3.Schema) string {
	if prop.Type == nil {
		return ""
	}
	values := prop.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func longText(prop *openapi3.Schema) bool {
	if prop.Format == "textarea" {
		return true
	}
	return prop.MaxLength != nil && *prop.MaxLength > longTextThreshold
}

func enumChoices(enum []any) []widget.Choice {
	choices := make([]widget.Choice, 0, len(enum))
	for _, value := range enum {
		s := stringify(value)
		choices = append(choices, widget.Choice{Label: humanize(s), Value: s})
	}
	return choices
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// humanize turns a property name like shipping_address or firstName into a
// label like "Shipping address" or "First name".
func humanize(name string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()
	if len(words) == 0 {
		return name
	}
	out := strings.Join(words, " ")
	return strings.ToUpper(out[:1]) + out[1:]
}
