package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/goliatone/go-htmlform/pkg/form"
	"github.com/goliatone/go-htmlform/pkg/formdef"
	"github.com/goliatone/go-htmlform/pkg/schema"
	"github.com/goliatone/go-htmlform/pkg/tui"
	"github.com/goliatone/go-htmlform/pkg/validate"
)

type valuesFlag struct {
	values url.Values
}

func (v *valuesFlag) String() string {
	if v.values == nil {
		return ""
	}
	return v.values.Encode()
}

func (v *valuesFlag) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	if v.values == nil {
		v.values = url.Values{}
	}
	v.values.Add(key, value)
	return nil
}

func main() {
	definition := flag.String("definition", "", "YAML form definition path")
	document := flag.String("openapi", "", "OpenAPI document path")
	operation := flag.String("operation", "", "operation ID when using -openapi")
	layout := flag.String("layout", "", "layout override: simple, table or detailed")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "fill the form through terminal prompts")
	var values valuesFlag
	flag.Var(&values, "value", "submitted value as key=value (repeatable)")
	flag.Parse()

	ctx := context.Background()

	f, err := buildForm(ctx, *definition, *document, *operation, *layout)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	submitted := values.values
	if *interactive {
		submitted, err = tui.Fill(ctx, f)
		if err != nil {
			log.Fatalf("Failed to fill form: %v", err)
		}
	}

	var errs validate.Errors
	if len(submitted) > 0 {
		errs = validate.Apply(f.Validators(), submitted)
	}

	html, err := f.RenderSmart(submitted, errs)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(html)
	}
}

func buildForm(ctx context.Context, definition, document, operation, layout string) (*form.Form, error) {
	var opts []form.Option
	if layout != "" {
		l, err := layoutByName(layout)
		if err != nil {
			return nil, err
		}
		opts = append(opts, form.WithLayout(l))
	}

	switch {
	case definition != "":
		data, err := os.ReadFile(definition)
		if err != nil {
			return nil, err
		}
		def, err := formdef.ParseBytes(data)
		if err != nil {
			return nil, err
		}
		return def.Build(opts...)
	case document != "":
		if operation == "" {
			return nil, fmt.Errorf("-openapi requires -operation")
		}
		data, err := os.ReadFile(document)
		if err != nil {
			return nil, err
		}
		doc, err := schema.Load(ctx, data)
		if err != nil {
			return nil, err
		}
		return schema.Build(doc, operation, opts...)
	default:
		return nil, fmt.Errorf("either -definition or -openapi is required")
	}
}

func layoutByName(name string) (form.Layout, error) {
	switch name {
	case "simple":
		return form.Simple(), nil
	case "table":
		return form.Table(), nil
	case "detailed":
		return form.Detailed(), nil
	default:
		return form.Layout{}, fmt.Errorf("unknown layout %q", name)
	}
}
