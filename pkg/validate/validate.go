package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Validator is the narrow seam this library needs from an external validation
// framework: convert a raw submitted value into its validated form, or fail.
// Everything else the framework does (schemas, chained validators, message
// catalogs) stays on the framework's side of this interface.
type Validator interface {
	Validate(value any) (any, error)
}

// Func adapts a plain function to the Validator interface.
type Func func(value any) (any, error)

// Validate implements Validator.
func (f Func) Validate(value any) (any, error) {
	return f(value)
}

// ErrRequired marks failures produced by validators that reject absent input.
var ErrRequired = errors.New("validate: value is required")

type inert struct{}

func (inert) Validate(value any) (any, error) {
	return value, nil
}

// Inert returns a validator that accepts every value unchanged. Field
// transformers substitute it when callers pass a nil validator so the
// rendering pipeline never has to nil-check.
func Inert() Validator {
	return inert{}
}

type required struct{}

func (required) Validate(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, ErrRequired
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, ErrRequired
		}
		return v, nil
	case []string:
		if len(v) == 0 {
			return nil, ErrRequired
		}
		return v, nil
	default:
		return value, nil
	}
}

// Required returns a validator that rejects nil and empty values with
// ErrRequired. It exists for callers who do not bring their own framework;
// anything richer belongs upstream.
func Required() Validator {
	return required{}
}

// Chain composes validators left to right, feeding each output into the next.
func Chain(validators ...Validator) Validator {
	return Func(func(value any) (any, error) {
		current := value
		for _, v := range validators {
			if v == nil {
				continue
			}
			out, err := v.Validate(current)
			if err != nil {
				return nil, err
			}
			current = out
		}
		return current, nil
	})
}

// IsRequired probes a validator with a nil input. A failure means the field
// cannot be omitted, which layouts use to pick the required-label template.
// The probe is a capability query against the external framework, not state
// this library owns.
func IsRequired(v Validator) bool {
	if v == nil {
		return false
	}
	_, err := v.Validate(nil)
	return err != nil
}

// Errors carries per-field validation messages into Form.Render. Absent
// entries mean "no error"; an empty string is treated the same way.
type Errors map[string]string

// Get returns the message for a field name, or "" when absent.
func (e Errors) Get(name string) string {
	if e == nil {
		return ""
	}
	return e[name]
}

// Apply runs every field validator in a form-shaped mapping against the
// supplied raw values and collects failures. It is a convenience for hosts
// without a full validation framework: raw values come in as the first
// submitted string per name, absent names validate as nil.
func Apply(validators map[string]Validator, values map[string][]string) Errors {
	if len(validators) == 0 {
		return nil
	}
	errs := make(Errors)
	for name, v := range validators {
		if v == nil {
			continue
		}
		var input any
		if raw, ok := values[name]; ok && len(raw) > 0 {
			input = raw[0]
		}
		if _, err := v.Validate(input); err != nil {
			errs[name] = errorMessage(err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func errorMessage(err error) string {
	if errors.Is(err, ErrRequired) {
		return "This field is required"
	}
	return fmt.Sprint(err)
}
