// Package gosource renders resolved requests as a Go source file. Each
// request becomes a [N]byte array holding its digits and terminator, with N
// equal to the exact size, plus a string constant with the digits alone.
package gosource

import (
	"context"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io/fs"
	"strings"

	"github.com/goliatone/go-intfmt/pkg/render"
	rendertemplate "github.com/goliatone/go-intfmt/pkg/render/template"
	"github.com/goliatone/go-intfmt/pkg/render/template/pongo"
	"github.com/goliatone/go-intfmt/pkg/request"
)

// Name is the registry name of this renderer.
const Name = "gosource"

const templateName = "gosource.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	skipFormat       bool
}

// WithTemplatesFS supplies an alternate template bundle containing
// gosource.tmpl at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads gosource.tmpl from a directory on disk instead of
// the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
// The renderer must provide the filters returned by Filters.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithoutFormat returns the template output as is instead of running it
// through go/format.
func WithoutFormat() Option {
	return func(cfg *config) {
		cfg.skipFormat = true
	}
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	skipFormat bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer over the embedded template unless options
// override it.
func New(options ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		source := pongo.WithFS(TemplatesFS())
		switch {
		case cfg.templateDir != "":
			source = pongo.WithDir(cfg.templateDir)
		case cfg.templateFS != nil:
			source = pongo.WithFS(cfg.templateFS)
		}
		engine, err := pongo.New(source, pongo.WithExtension(".tmpl"), pongo.WithFilters(Filters()))
		if err != nil {
			return nil, fmt.Errorf("gosource renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, skipFormat: cfg.skipFormat}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/x-go; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, batch render.Batch, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("gosource renderer: template renderer is nil")
	}
	pkg := strings.TrimSpace(batch.Package)
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("gosource renderer: invalid package name %q", batch.Package)
	}
	if err := checkIdentifiers(batch, options); err != nil {
		return nil, err
	}

	items := make([]any, 0, len(batch.Items))
	for _, item := range batch.Items {
		if err := checkItem(item); err != nil {
			return nil, err
		}
		items = append(items, map[string]any{
			"name":  item.Name,
			"type":  item.Kind.Name,
			"value": strings.TrimSpace(item.Value),
			"base":  int(item.EffectiveBase()),
			"size":  item.Size,
			"text":  item.Text,
		})
	}

	result, err := r.templates.RenderTemplate(templateName, map[string]any{
		"generator":    options.GeneratorName(),
		"source":       batch.Source,
		"build_tags":   strings.TrimSpace(options.BuildTags),
		"omit_strings": options.OmitStrings,
		"package":      pkg,
		"items":        items,
	})
	if err != nil {
		return nil, fmt.Errorf("gosource renderer: render template: %w", err)
	}
	if r.skipFormat {
		return []byte(result), nil
	}

	formatted, err := format.Source([]byte(result))
	if err != nil {
		return nil, fmt.Errorf("gosource renderer: format output: %w", err)
	}
	return formatted, nil
}

// checkItem rejects an item whose text, size or type no longer match its
// request, e.g. after a transformer edited the batch. Size must be exactly
// the text plus one terminator.
func checkItem(item request.Resolved) error {
	if item.Size != len(item.Text)+1 {
		return fmt.Errorf("gosource renderer: %s: size %d does not fit text %q plus terminator", item.Name, item.Size, item.Text)
	}
	fresh, err := item.Request.Resolve()
	if err != nil {
		return fmt.Errorf("gosource renderer: %w", err)
	}
	if fresh.Text != item.Text || fresh.Kind.Name != item.Kind.Name {
		return fmt.Errorf("gosource renderer: %s: text %q as %s does not match %s as %s in base %d (%q)",
			item.Name, item.Text, item.Kind.Name, strings.TrimSpace(item.Value), fresh.Kind.Name, fresh.EffectiveBase(), fresh.Text)
	}
	return nil
}

// checkIdentifiers rejects batches whose generated names would collide, such
// as a request named "FFString" next to one named "FF".
func checkIdentifiers(batch render.Batch, options render.RenderOptions) error {
	declared := make(map[string]string, len(batch.Items)*2)
	declare := func(ident, owner string) error {
		if prev, ok := declared[ident]; ok {
			return fmt.Errorf("gosource renderer: identifier %s declared by %s and %s", ident, prev, owner)
		}
		declared[ident] = owner
		return nil
	}
	for _, item := range batch.Items {
		if err := declare(item.Name, item.Name); err != nil {
			return err
		}
		if options.OmitStrings {
			continue
		}
		if err := declare(item.Name+"String", item.Name); err != nil {
			return err
		}
	}
	return nil
}
