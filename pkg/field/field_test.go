package field_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-htmlform/pkg/field"
	"github.com/goliatone/go-htmlform/pkg/validate"
	"github.com/goliatone/go-htmlform/pkg/widget"
)

func TestNilValidatorBecomesInert(t *testing.T) {
	f := field.Text(nil, "Name")
	if f.Validator == nil {
		t.Fatal("expected inert validator substitution")
	}
	out, err := f.Validator.Validate("anything")
	if err != nil || out != "anything" {
		t.Fatalf("inert validator misbehaved: %v %v", out, err)
	}
}

func TestSharedValidatorBacksMultipleFields(t *testing.T) {
	required := validate.Required()
	a := field.Text(required, "A")
	b := field.Textarea(required, "B")

	if !validate.IsRequired(a.Validator) || !validate.IsRequired(b.Validator) {
		t.Fatal("shared validator must keep behaving for every field")
	}
	if _, err := required.Validate("still fine"); err != nil {
		t.Fatalf("original validator was disturbed: %v", err)
	}
}

func TestTransformerFlags(t *testing.T) {
	if meta := field.File(nil, "Avatar").Renderer.Meta(); !meta.Multipart {
		t.Fatal("file fields must request multipart encoding")
	}
	hidden := field.Hidden(nil)
	if meta := hidden.Renderer.Meta(); !meta.Bare || meta.Label != "" {
		t.Fatal("hidden fields must render bare without a label")
	}
}

func TestChoiceTransformersPropagateConfigErrors(t *testing.T) {
	if _, err := field.Radios(nil, "Color", nil); !errors.Is(err, widget.ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices from radios, got %v", err)
	}
	if _, err := field.Select(nil, "Color", nil); !errors.Is(err, widget.ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices from select, got %v", err)
	}
}

func TestLabelAndOptionsReachTheWidget(t *testing.T) {
	f := field.Password(nil, "Secret", widget.WithAttrs(map[string]string{"autocomplete": "off"}))
	if got := f.Renderer.Meta().Label; got != "Secret" {
		t.Fatalf("label lost in transformation: %q", got)
	}
	markup, err := f.Renderer.Render("pw", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(markup, `autocomplete="off"`) || !strings.Contains(markup, `type="password"`) {
		t.Fatalf("options not applied: %s", markup)
	}
}
