// Package template wraps pongo2 behind the small rendering seam the form
// container depends on. Layout templates are plain pongo2 strings; values the
// form pipeline hands to them are already escaped, carried as HTML so the
// engine exempts them from autoescaping.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// HTML marks a string as pre-rendered, pre-escaped markup. The engine converts
// it to a pongo2 safe value so template substitution never escapes it again.
// It plays the same role html/template.HTML plays for the standard library.
type HTML string

// Renderer is the contract the form container renders layouts through.
type Renderer interface {
	RenderString(tpl string, data any) (string, error)
	RenderTemplate(name string, data any) (string, error)
}

// Option configures an Engine before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	baseDir   string
	extension string
}

// WithFS supplies a template bundle for RenderTemplate lookups.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithBaseDir loads named templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithExtension overrides the extension appended to template names that lack
// one. Defaults to ".tpl".
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// Engine renders pongo2 templates with a compiled-template cache. String
// templates are cached by content, named templates by path. The zero-config
// engine supports RenderString only; RenderTemplate needs WithFS or
// WithBaseDir.
type Engine struct {
	mu sync.RWMutex

	set      *pongo2.TemplateSet
	hasFiles bool
	byName   map[string]*pongo2.Template
	byBody   map[string]*pongo2.Template
	tplExt   string
}

var _ Renderer = (*Engine)(nil)

// New constructs an Engine applying the provided options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("template: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}
	if len(loaders) == 0 {
		// pongo2 requires at least one loader; string-only engines never use it.
		loaders = append(loaders, pongo2.MustNewLocalFileSystemLoader(""))
	}

	return &Engine{
		set:      pongo2.NewSet("htmlform", loaders...),
		hasFiles: cfg.baseDir != "" || cfg.templates != nil,
		byName:   make(map[string]*pongo2.Template),
		byBody:   make(map[string]*pongo2.Template),
		tplExt:   cfg.extension,
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns a process-wide string-only engine. It backs forms that were
// not given an explicit renderer.
func Default() *Engine {
	defaultOnce.Do(func() {
		engine, err := New()
		if err != nil {
			panic(fmt.Sprintf("template: default engine: %v", err))
		}
		defaultEngine = engine
	})
	return defaultEngine
}

// RenderString compiles (or reuses) the template content and executes it with
// the supplied data.
func (e *Engine) RenderString(tpl string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("template: engine is nil")
	}

	e.mu.RLock()
	compiled, ok := e.byBody[tpl]
	e.mu.RUnlock()

	if !ok {
		var err error
		compiled, err = e.set.FromString(tpl)
		if err != nil {
			return "", fmt.Errorf("template: parse string: %w", err)
		}
		e.mu.Lock()
		e.byBody[tpl] = compiled
		e.mu.Unlock()
	}

	return execute(compiled, data)
}

// RenderTemplate loads a named template from the configured file source and
// executes it with the supplied data.
func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("template: engine is nil")
	}
	if !e.hasFiles {
		return "", errors.New("template: no template source configured, use WithFS or WithBaseDir")
	}

	path := name
	if !strings.Contains(path, ".") {
		path += e.tplExt
	}

	e.mu.RLock()
	compiled, ok := e.byName[path]
	e.mu.RUnlock()

	if !ok {
		var err error
		compiled, err = e.set.FromFile(path)
		if err != nil {
			return "", fmt.Errorf("template: load %q: %w", path, err)
		}
		e.mu.Lock()
		e.byName[path] = compiled
		e.mu.Unlock()
	}

	return execute(compiled, data)
}

func execute(tpl *pongo2.Template, data any) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", err
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("template: execute: %w", err)
	}
	return out, nil
}

func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		ctx := make(pongo2.Context, len(v))
		for key, value := range v {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			ctx[key] = convertValue(value)
		}
		return ctx, nil
	default:
		return nil, fmt.Errorf("template: unsupported data type %T", data)
	}
}

func convertValue(value any) any {
	switch v := value.(type) {
	case HTML:
		return pongo2.AsSafeValue(string(v))
	case []HTML:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, pongo2.AsSafeValue(string(item)))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = convertValue(item)
		}
		return out
	default:
		return value
	}
}
