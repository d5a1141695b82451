// Package tui fills form containers interactively from a terminal. Each field
// maps to the prompt kind closest to its widget: inputs become text prompts,
// checkboxes confirmations, choice widgets selection menus. The answers come
// back as url.Values, ready for Form.Render or validate.Apply.
package tui

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goliatone/go-htmlform/pkg/field"
	"github.com/goliatone/go-htmlform/pkg/form"
	"github.com/goliatone/go-htmlform/pkg/widget"
)

// FillOption configures a fill session.
type FillOption func(*fillConfig)

type fillConfig struct {
	driver   PromptDriver
	validate bool
}

// WithDriver swaps the prompt driver, primarily for tests.
func WithDriver(driver PromptDriver) FillOption {
	return func(cfg *fillConfig) {
		if driver != nil {
			cfg.driver = driver
		}
	}
}

// WithoutValidation disables inline validation on text prompts.
func WithoutValidation() FillOption {
	return func(cfg *fillConfig) {
		cfg.validate = false
	}
}

// Fill prompts for every field in display order and returns the collected
// values. Hidden fields are taken from their defaults without prompting;
// unchecked checkboxes are omitted from the result, matching what a browser
// submits.
func Fill(ctx context.Context, f *form.Form, opts ...FillOption) (url.Values, error) {
	cfg := fillConfig{
		driver:   NewSurveyDriver(),
		validate: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	values := make(url.Values, f.Len())
	for _, name := range f.Names() {
		fld, _ := f.Field(name)
		if fld.Renderer == nil {
			return nil, fmt.Errorf("tui: field %q has no renderer attached", name)
		}
		answer, skip, err := promptField(ctx, cfg, name, fld)
		if err != nil {
			return nil, fmt.Errorf("tui: field %q: %w", name, err)
		}
		if !skip {
			values[name] = answer
		}
	}
	return values, nil
}

func promptField(ctx context.Context, cfg fillConfig, name string, fld field.Field) ([]string, bool, error) {
	meta := fld.Renderer.Meta()
	message := meta.Label
	if message == "" {
		message = name
	}

	var validator func(string) error
	if cfg.validate && fld.Validator != nil {
		v := fld.Validator
		validator = func(value string) error {
			_, err := v.Validate(value)
			return err
		}
	}

	switch w := fld.Renderer.(type) {
	case *widget.Input:
		if w.Kind() == widget.InputHidden {
			return w.Defaults(), false, nil
		}
		if w.Kind() == widget.InputPassword {
			out, err := cfg.driver.Password(ctx, InputConfig{
				Message:   message,
				Help:      meta.Description,
				Validator: validator,
			})
			return []string{out}, false, err
		}
		out, err := cfg.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   firstDefault(w.Defaults()),
			Help:      meta.Description,
			Validator: validator,
		})
		return []string{out}, false, err

	case *widget.Textarea:
		out, err := cfg.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: firstDefault(w.Defaults()),
			Help:    meta.Description,
		})
		return []string{out}, false, err

	case *widget.Checkbox:
		checked, err := cfg.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Help:    meta.Description,
		})
		if err != nil {
			return nil, false, err
		}
		if !checked {
			return nil, true, nil
		}
		return []string{"on"}, false, nil

	case *widget.RadioGroup:
		return promptChoices(ctx, cfg, message, meta.Description, w.Choices(), w.Defaults(), false)

	case *widget.Select:
		return promptChoices(ctx, cfg, message, meta.Description, w.Choices(), w.Defaults(), w.Multiple())

	default:
		out, err := cfg.driver.Input(ctx, InputConfig{
			Message:   message,
			Help:      meta.Description,
			Validator: validator,
		})
		return []string{out}, false, err
	}
}

func promptChoices(ctx context.Context, cfg fillConfig, message, help string, choices []widget.Choice, defaults []string, multiple bool) ([]string, bool, error) {
	labels := make([]string, len(choices))
	for i, choice := range choices {
		labels[i] = choice.Label
	}

	if multiple {
		indices, err := cfg.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Options:  labels,
			Defaults: defaultIndices(choices, defaults),
			Help:     help,
		})
		if err != nil {
			return nil, false, err
		}
		out := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(choices) {
				out = append(out, choices[idx].Value)
			}
		}
		return out, false, nil
	}

	defaultIndex := 0
	if indices := defaultIndices(choices, defaults); len(indices) > 0 {
		defaultIndex = indices[0]
	}
	idx, err := cfg.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         help,
	})
	if err != nil {
		return nil, false, err
	}
	if idx < 0 || idx >= len(choices) {
		return nil, false, fmt.Errorf("selection out of range: %d", idx)
	}
	return []string{choices[idx].Value}, false, nil
}

func defaultIndices(choices []widget.Choice, defaults []string) []int {
	if len(defaults) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(defaults))
	for _, value := range defaults {
		seen[value] = struct{}{}
	}
	var out []int
	for i, choice := range choices {
		if _, ok := seen[choice.Value]; ok {
			out = append(out, i)
		}
	}
	return out
}

func firstDefault(defaults []string) string {
	if len(defaults) == 0 {
		return ""
	}
	return defaults[0]
}
