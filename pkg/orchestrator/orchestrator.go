package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-intfmt/pkg/render"
	"github.com/goliatone/go-intfmt/pkg/renderers/gosource"
	"github.com/goliatone/go-intfmt/pkg/renderers/snapshot"
	"github.com/goliatone/go-intfmt/pkg/request"
)

const defaultRendererName = gosource.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom manifest loader.
func WithLoader(loader request.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry. The built-in renderers are only
// registered when no registry is supplied.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the structured logger. Nil keeps the discarding default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTransformer registers a Transformer that runs on the resolved batch
// before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates manifest → resolved batch → rendered output.
type Orchestrator struct {
	loader          request.Loader
	registry        *render.Registry
	defaultRenderer string
	logger          *slog.Logger
	transformer     Transformer
	initialiseErr   error
}

// New constructs an Orchestrator. Missing dependencies fall back to the
// built-in loader and a registry holding the gosource and snapshot renderers.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation run.
type Request struct {
	// Source identifies where the manifest lives. Optional when Manifest is
	// supplied.
	Source request.Source

	// Manifest lets callers bypass the loader.
	Manifest *request.Manifest

	// Package overrides the manifest's package name.
	Package string

	// Renderer names the renderer to use. Empty falls back to the default.
	Renderer string

	RenderOptions render.RenderOptions
}

// Generate loads and resolves the manifest, then renders it. The first
// request that fails to resolve aborts the run.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	manifest, err := o.resolveManifest(ctx, req)
	if err != nil {
		return nil, err
	}

	batch, err := o.Resolve(ctx, manifest)
	if err != nil {
		return nil, err
	}
	if pkg := strings.TrimSpace(req.Package); pkg != "" {
		batch.Package = pkg
	}
	if batch.Package == "" {
		return nil, errors.New("orchestrator: package name is required")
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &batch); err != nil {
			return nil, fmt.Errorf("orchestrator: transform batch: %w", err)
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, batch, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Info("generated",
		slog.String("renderer", renderer.Name()),
		slog.String("package", batch.Package),
		slog.Int("requests", len(batch.Items)),
		slog.Int("bytes", len(output)),
	)
	return output, nil
}

// Resolve turns a manifest into a render batch without rendering it.
func (o *Orchestrator) Resolve(ctx context.Context, manifest request.Manifest) (render.Batch, error) {
	if err := ctx.Err(); err != nil {
		return render.Batch{}, err
	}

	items, err := request.ResolveAll(manifest.Requests)
	if err != nil {
		o.logger.Error("resolve failed", slog.String("source", manifest.Source), slog.Any("error", err))
		return render.Batch{}, fmt.Errorf("orchestrator: %w", err)
	}

	for _, item := range items {
		o.logger.Debug("resolved",
			slog.String("name", item.Name),
			slog.String("type", item.Kind.Name),
			slog.Int("base", int(item.EffectiveBase())),
			slog.String("text", item.Text),
			slog.Int("size", item.Size),
		)
	}
	return render.Batch{
		Package: manifest.Package,
		Source:  manifest.Source,
		Items:   items,
	}, nil
}

func (o *Orchestrator) resolveManifest(ctx context.Context, req Request) (request.Manifest, error) {
	if req.Manifest != nil {
		return *req.Manifest, nil
	}
	if req.Source == nil {
		return request.Manifest{}, errors.New("orchestrator: source or manifest is required")
	}
	manifest, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return request.Manifest{}, fmt.Errorf("orchestrator: load manifest: %w", err)
	}
	return manifest, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = request.NewLoader()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry(snapshot.New())
		renderer, err := gosource.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
