// Package pongo implements template.TemplateRenderer over
// github.com/flosch/pongo2/v6.
package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-intfmt/pkg/render/template"
)

// Engine renders named templates from one directory or fs.FS. Parsed
// templates are cached by the underlying pongo2 set.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	// guards set.Globals, which every execution reads
	mu sync.RWMutex
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. WithDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := config{ext: ".tpl"}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	var loader pongo2.TemplateLoader
	switch {
	case cfg.dir != "":
		local, err := pongo2.NewLocalFileSystemLoader(cfg.dir)
		if err != nil {
			return nil, fmt.Errorf("pongo: template dir %s: %w", cfg.dir, err)
		}
		loader = local
	case cfg.files != nil:
		loader = pongo2.NewFSLoader(cfg.files)
	default:
		return nil, errors.New("pongo: a template dir or fs.FS is required")
	}

	for name, fn := range cfg.filters {
		if pongo2.FilterExists(name) {
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return nil, fmt.Errorf("pongo: register filter %q: %w", name, err)
		}
	}

	return &Engine{
		set: pongo2.NewSet("intfmt", loader),
		ext: cfg.ext,
	}, nil
}

// Render treats name as template source when it contains tags and as a
// template name otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the named template. The configured extension is
// appended when name lacks it.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tpl, err := e.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("pongo: load %s: %w", name, err)
	}
	return e.execute(tpl, name, data, out)
}

// RenderString parses and executes src.
func (e *Engine) RenderString(src string, data any, out ...io.Writer) (string, error) {
	tpl, err := e.set.FromString(src)
	if err != nil {
		return "", fmt.Errorf("pongo: parse inline template: %w", err)
	}
	return e.execute(tpl, "inline", data, out)
}

func (e *Engine) execute(tpl *pongo2.Template, label string, data any, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: %s: %w", label, err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", label, err)
	}

	for _, w := range out {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// RegisterFilter adapts fn to a pongo2 filter. Registering a name twice
// returns template.ErrFilterExists.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("pongo: filter name and function are required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("%w: %q", template.ErrFilterExists, name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var p any
		if param != nil {
			p = param.Interface()
		}
		result, err := fn(in.Interface(), p)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	ctx, err := toContext(data)
	if err != nil {
		return fmt.Errorf("pongo: global context: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals.Update(ctx)
	return nil
}
