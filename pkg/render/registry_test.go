package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intfmt/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, render.Batch, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry(stubRenderer{name: "b"}, stubRenderer{name: "a"})

	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	got, err := registry.Get("a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "a" {
		t.Fatalf("got renderer %q", got.Name())
	}

	if _, err := registry.Get("missing"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("want ErrRendererNotFound, got %v", err)
	}
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{name: " "}); err == nil {
		t.Fatalf("expected error for blank name")
	}
	registry.MustRegister(stubRenderer{name: "x"})
	if err := registry.Register(stubRenderer{name: "x"}); !errors.Is(err, render.ErrDuplicateRenderer) {
		t.Fatalf("want ErrDuplicateRenderer, got %v", err)
	}
}

func TestRenderOptions_GeneratorName(t *testing.T) {
	if got := (render.RenderOptions{}).GeneratorName(); got != render.DefaultGenerator {
		t.Fatalf("default generator: got %q", got)
	}
	if got := (render.RenderOptions{Generator: "x"}).GeneratorName(); got != "x" {
		t.Fatalf("custom generator: got %q", got)
	}
}
