package tui_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlform/pkg/field"
	"github.com/goliatone/go-htmlform/pkg/form"
	"github.com/goliatone/go-htmlform/pkg/tui"
	"github.com/goliatone/go-htmlform/pkg/validate"
	"github.com/goliatone/go-htmlform/pkg/widget"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool
	selects   []int
	multis    [][]int
	textareas []string

	inputConfigs  []tui.InputConfig
	selectConfigs []tui.SelectConfig
	err           error
}

func (d *stubDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.inputConfigs = append(d.inputConfigs, cfg)
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *stubDriver) Password(_ context.Context, cfg tui.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	out := d.passwords[0]
	d.passwords = d.passwords[1:]
	return out, nil
}

func (d *stubDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *stubDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	d.selectConfigs = append(d.selectConfigs, cfg)
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *stubDriver) MultiSelect(_ context.Context, cfg tui.SelectConfig) ([]int, error) {
	d.selectConfigs = append(d.selectConfigs, cfg)
	out := d.multis[0]
	d.multis = d.multis[1:]
	return out, nil
}

func (d *stubDriver) TextArea(_ context.Context, cfg tui.TextAreaConfig) (string, error) {
	out := d.textareas[0]
	d.textareas = d.textareas[1:]
	return out, nil
}

func (d *stubDriver) Info(context.Context, string) error { return nil }

func signupForm(t *testing.T) *form.Form {
	t.Helper()
	plan, err := field.Select(nil, "Plan", widget.Values("free", "pro"))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	return form.New().
		Add("email", field.Text(validate.Required(), "Email")).
		Add("password", field.Password(nil, "Password")).
		Add("token", field.Hidden(nil, widget.WithDefault("csrf-1"))).
		Add("newsletter", field.Checkbox(nil, "Newsletter")).
		Add("plan", plan).
		Add("bio", field.Textarea(nil, "Bio"))
}

func TestFillCollectsAnswersInOrder(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"x@y.com"},
		passwords: []string{"hunter2"},
		confirms:  []bool{true},
		selects:   []int{1},
		textareas: []string{"hello\nworld"},
	}

	values, err := tui.Fill(context.Background(), signupForm(t), tui.WithDriver(driver))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := url.Values{
		"email":      {"x@y.com"},
		"password":   {"hunter2"},
		"token":      {"csrf-1"},
		"newsletter": {"on"},
		"plan":       {"pro"},
		"bio":        {"hello\nworld"},
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestFillOmitsUncheckedCheckboxes(t *testing.T) {
	driver := &stubDriver{confirms: []bool{false}}
	f := form.New().Add("newsletter", field.Checkbox(nil, "Newsletter"))

	values, err := tui.Fill(context.Background(), f, tui.WithDriver(driver))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if _, ok := values["newsletter"]; ok {
		t.Fatalf("unchecked boxes are omitted like a browser would: %v", values)
	}
}

func TestFillUsesLabelsAsPromptMessages(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Ada"}}
	f := form.New().Add("name", field.Text(nil, "Full name",
		widget.WithDescription("as shown on your passport"),
		widget.WithDefault("Anonymous"),
	))

	if _, err := tui.Fill(context.Background(), f, tui.WithDriver(driver)); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if len(driver.inputConfigs) != 1 {
		t.Fatalf("expected one prompt, got %d", len(driver.inputConfigs))
	}
	cfg := driver.inputConfigs[0]
	if cfg.Message != "Full name" || cfg.Help != "as shown on your passport" || cfg.Default != "Anonymous" {
		t.Fatalf("prompt config not derived from the widget: %+v", cfg)
	}
}

func TestFillWiresValidators(t *testing.T) {
	driver := &stubDriver{inputs: []string{"ok"}}
	f := form.New().Add("name", field.Text(validate.Required(), "Name"))

	if _, err := tui.Fill(context.Background(), f, tui.WithDriver(driver)); err != nil {
		t.Fatalf("fill: %v", err)
	}
	validator := driver.inputConfigs[0].Validator
	if validator == nil {
		t.Fatal("required fields must get an inline prompt validator")
	}
	if err := validator(""); err == nil {
		t.Fatal("blank answer must fail the inline validator")
	}
	if err := validator("fine"); err != nil {
		t.Fatalf("valid answer must pass: %v", err)
	}
}

func TestFillMultiSelect(t *testing.T) {
	driver := &stubDriver{multis: [][]int{{0, 2}}}
	langs, err := field.Select(nil, "Languages", widget.Values("go", "rust", "zig"),
		widget.WithAttrs(map[string]string{"multiple": "multiple"}),
	)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	f := form.New().Add("langs", langs)

	values, err := tui.Fill(context.Background(), f, tui.WithDriver(driver))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff([]string{"go", "zig"}, values["langs"]); diff != "" {
		t.Fatalf("multi-select values mismatch (-want +got):\n%s", diff)
	}
}

func TestFillRadioDefaultsSeedSelection(t *testing.T) {
	driver := &stubDriver{selects: []int{1}}
	color, err := field.Radios(nil, "Color", widget.Values("red", "green", "blue"),
		widget.WithDefault("green"),
	)
	if err != nil {
		t.Fatalf("radios: %v", err)
	}
	f := form.New().Add("color", color)

	values, err := tui.Fill(context.Background(), f, tui.WithDriver(driver))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if driver.selectConfigs[0].DefaultIndex != 1 {
		t.Fatalf("widget default should seed the menu, got index %d", driver.selectConfigs[0].DefaultIndex)
	}
	if diff := cmp.Diff([]string{"green"}, values["color"]); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestFillPropagatesDriverErrors(t *testing.T) {
	driver := &stubDriver{err: tui.ErrAborted}
	f := form.New().Add("name", field.Text(nil, "Name"))

	if _, err := tui.Fill(context.Background(), f, tui.WithDriver(driver)); !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
