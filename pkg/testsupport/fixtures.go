package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intfmt/pkg/request"
)

// MustLoadManifest reads a JSON or YAML manifest fixture.
func MustLoadManifest(t *testing.T, path string) request.Manifest {
	t.Helper()

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	return m
}

// LoadManifest is MustLoadManifest for callers without a *testing.T.
func LoadManifest(path string) (request.Manifest, error) {
	if path == "" {
		return request.Manifest{}, errors.New("testsupport: manifest path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return request.Manifest{}, fmt.Errorf("testsupport: read manifest: %w", err)
	}
	return request.Parse(data, filepath.Base(path))
}

// MustResolve resolves every request of a manifest fixture.
func MustResolve(t *testing.T, m request.Manifest) []request.Resolved {
	t.Helper()

	resolved, err := request.ResolveAll(m.Requests)
	if err != nil {
		t.Fatalf("resolve manifest: %v", err)
	}
	return resolved
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs a render function that also writes to an
// io.Writer and returns both the result and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
