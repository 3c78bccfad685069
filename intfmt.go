// Package intfmt formats fixed-width integers as exactly-sized NUL-terminated
// text in bases 2 through 16.
//
// Values known before the program runs belong in a manifest evaluated by
// cmd/intfmt-gen during go generate, which emits [N]byte arrays sized to the
// byte. Values computed at run time go through Format or New, which never
// touch the heap.
package intfmt

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-intfmt/pkg/integral"
	"github.com/goliatone/go-intfmt/pkg/orchestrator"
	"github.com/goliatone/go-intfmt/pkg/render"
	"github.com/goliatone/go-intfmt/pkg/renderers/gosource"
	"github.com/goliatone/go-intfmt/pkg/request"
)

// Integer aliases integral.Integer.
type Integer = integral.Integer

// Base aliases integral.Base.
type Base = integral.Base

// Text aliases integral.Text.
type Text = integral.Text

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

const (
	Binary  = integral.Binary
	Octal   = integral.Octal
	Decimal = integral.Decimal
	Hex     = integral.Hex
)

// New formats v in base. See integral.New.
func New[T Integer](v T, base Base) (Text, error) {
	return integral.New(v, base)
}

// Format returns v in base, panicking on an invalid base. See integral.Format.
func Format[T Integer](v T, base Base) string {
	return integral.Format(v, base)
}

// Size returns the bytes needed for v in base, terminator included.
func Size[T Integer](v T, base Base) int {
	return integral.Size(v, base)
}

// NewOrchestrator exposes the orchestrator constructor from the module root.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateGo reads the manifest at path and renders it as Go source for pkg.
// An empty pkg keeps the manifest's package name.
func GenerateGo(ctx context.Context, path, pkg string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   request.SourceFromFile(path),
		Package:  pkg,
		Renderer: gosource.Name,
	})
}

// GenerateGoFromManifest renders an in-memory manifest, bypassing the loader.
func GenerateGoFromManifest(ctx context.Context, manifest request.Manifest, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Manifest: &manifest,
		Renderer: gosource.Name,
	})
}

// EmbeddedTemplates exposes the built-in Go source templates.
func EmbeddedTemplates() fs.FS {
	return gosource.TemplatesFS()
}
