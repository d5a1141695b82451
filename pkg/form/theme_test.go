package form_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-htmlform/pkg/field"
	"github.com/goliatone/go-htmlform/pkg/form"
)

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":   "#123456",
			"spacing": "8px",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
			},
		},
	}
}

func TestWithThemeDerivesCSSVars(t *testing.T) {
	f := form.New(form.WithTheme(&theme.Selection{
		Theme:    "acme",
		Manifest: acmeManifest(),
	})).Add("name", field.Text(nil, "Name"))

	out, err := f.Render(nil, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `style="--brand:#123456;--spacing:8px"`) {
		t.Fatalf("theme tokens should become sorted CSS custom properties:\n%s", out)
	}
}

func TestWithThemeVariantOverlaysTokens(t *testing.T) {
	f := form.New(form.WithTheme(&theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: acmeManifest(),
	})).Add("name", field.Text(nil, "Name"))

	out, err := f.Render(nil, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "--brand:#654321") {
		t.Fatalf("variant tokens should override base tokens:\n%s", out)
	}
	if !strings.Contains(out, "--spacing:8px") {
		t.Fatalf("base tokens without a variant override must survive:\n%s", out)
	}
}

func TestWithThemeAppendsToExistingStyle(t *testing.T) {
	f := form.New(
		form.WithAttrs(map[string]string{"style": "margin:0"}),
		form.WithTheme(&theme.Selection{Theme: "acme", Manifest: acmeManifest()}),
	).Add("name", field.Text(nil, "Name"))

	out, err := f.Render(nil, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `style="margin:0;--brand:#123456;--spacing:8px"`) {
		t.Fatalf("theme vars should append to a caller style:\n%s", out)
	}
}

func TestWithThemeNilSelectionIsNoop(t *testing.T) {
	f := form.New(form.WithTheme(nil)).Add("name", field.Text(nil, "Name"))
	out, err := f.Render(nil, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "style=") {
		t.Fatalf("nil selection must not emit a style attribute:\n%s", out)
	}
}
