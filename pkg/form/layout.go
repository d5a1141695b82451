package form

import "github.com/goliatone/go-htmlform/pkg/widget"

// Layout is the template set one render pass substitutes into. Every slot is
// pongo2 template content; the values the pipeline hands over are already
// escaped or rendered, so custom layouts stay purely structural.
//
// Layout variants replace subclass-based template overriding: the render
// algorithm is the same for every layout, only the templates differ.
type Layout struct {
	// Form wraps the whole output. Context: attrs, fields, footer, tableAttrs.
	Form string
	// Field wraps one labelled field. Context: label, widget, description, error.
	Field string
	// BareField wraps one bare field (hidden inputs). Context: widget.
	BareField string
	// Label renders the label slot. Context: label.
	Label string
	// RequiredLabel, when non-empty, replaces Label for fields whose validator
	// rejects absent values.
	RequiredLabel string
	// Description renders the help slot when both the layout and the widget
	// define one. Context: description.
	Description string
	// Error renders a present validation message. Absent errors produce an
	// empty string, never a placeholder. Context: error.
	Error string
	// Footer renders the submit row. Context: submit (escaped label).
	Footer string
	// FieldSeparator joins rendered fields.
	FieldSeparator string
	// TableAttrs feeds the tableAttrs slot for table-shaped layouts.
	TableAttrs widget.Attrs
}

// Simple returns the free-form layout: label, widget and error stacked per
// field, fields separated by blank lines.
func Simple() Layout {
	return Layout{
		Form:           "<form {{ attrs }}>\n{{ fields }}\n{{ footer }}\n</form>",
		Field:          "{{ label }}\n{{ widget }}\n{{ error }}",
		BareField:      "{{ widget }}",
		Label:          "<label>{{ label }}</label>",
		Error:          `<span class="error">{{ error }}</span>`,
		Footer:         `<input type="submit" value="{{ submit }}"/>`,
		FieldSeparator: "\n\n",
	}
}

// Table returns the 3-column table layout: label, widget and error cells per
// row, with the submit button in a trailing row.
func Table() Layout {
	return Layout{
		Form:           "<form {{ attrs }}>\n<table {{ tableAttrs }}>\n{{ fields }}\n{{ footer }}\n</table>\n</form>",
		Field:          `<tr><td class="label">{{ label }}</td><td>{{ widget }}</td><td class="error">{{ error }}</td></tr>`,
		BareField:      `<tr><td colspan="3">{{ widget }}</td></tr>`,
		Label:          "{{ label }}",
		Error:          "{{ error }}",
		Footer:         `<tr><td class="label"></td><td><input type="submit" value="{{ submit }}"/></td><td class="error"></td></tr>`,
		FieldSeparator: "\n",
		TableAttrs: widget.Attrs{
			"border":      "0",
			"cellpadding": "0",
			"cellspacing": "0",
			"class":       "formtable",
		},
	}
}

// Detailed extends the free-form layout with description slots and a
// required-label variant chosen by probing each field's validator.
func Detailed() Layout {
	layout := Simple()
	layout.Field = "{{ label }}\n{{ widget }}\n{{ description }}\n{{ error }}"
	layout.RequiredLabel = `<label class="required">{{ label }}<em title="required">*</em></label>`
	layout.Description = `<small class="description">{{ description }}</small>`
	return layout
}
