package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-intfmt/pkg/integral"
	"github.com/goliatone/go-intfmt/pkg/prompt"
	"github.com/goliatone/go-intfmt/pkg/request"
)

const manifestYAML = `package: limits
requests:
  - name: MinInt8Hex
    type: int8
    value: -128
    base: 16
  - name: Zero
    value: 0
`

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intfmt.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestRun_WritesOutput(t *testing.T) {
	manifest := writeManifest(t, manifestYAML)
	output := filepath.Join(filepath.Dir(manifest), "intfmt_gen.go")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-manifest", manifest, "-output", output, "-package", "limits"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\nstderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	src := string(data)
	for _, want := range []string{
		"package limits",
		"var MinInt8Hex = [4]byte{'-', '8', '0', 0}",
		"var Zero = [2]byte{'0', 0}",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("output missing %q:\n%s", want, src)
		}
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when -output is set, got %q", stdout.String())
	}
}

func TestRun_Stdout(t *testing.T) {
	manifest := writeManifest(t, manifestYAML)

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-manifest", manifest, "-package", "", "-renderer", "snapshot"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), `"text": "-80"`) {
		t.Fatalf("snapshot missing text:\n%s", stdout.String())
	}
}

func TestRun_InvalidBaseFails(t *testing.T) {
	manifest := writeManifest(t, "package: p\nrequests:\n  - name: Bad\n    value: 1\n    base: 17\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-manifest", manifest, "-package", "p"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), integral.ErrInvalidBase.Error()) {
		t.Fatalf("want invalid base error, got %v", err)
	}
}

func TestRun_NonIntegralTypeFails(t *testing.T) {
	manifest := writeManifest(t, "package: p\nrequests:\n  - name: Pi\n    type: float64\n    value: 3\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-manifest", manifest, "-package", "p"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), request.ErrNotIntegral.Error()) {
		t.Fatalf("want not integral error, got %v", err)
	}
}

func TestRun_RejectsExtraArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"extra"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected error for positional arguments")
	}
}

type fixedDriver struct {
	overwrite bool
}

func (fixedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if cfg.Message == "Identifier" {
		return "Eight", nil
	}
	return "8", nil
}

func (d fixedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	if strings.Contains(cfg.Message, "Overwrite") {
		return d.overwrite, nil
	}
	return false, nil
}

func (fixedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	want := "uint8"
	if cfg.Message == "Base" {
		want = "2"
	}
	for i, option := range cfg.Options {
		if option == want {
			return i, nil
		}
	}
	return -1, nil
}

func (fixedDriver) Info(context.Context, string) error { return nil }

func TestRun_Interactive(t *testing.T) {
	previous := newDriver
	newDriver = func() prompt.Driver { return fixedDriver{} }
	t.Cleanup(func() { newDriver = previous })

	manifest := filepath.Join(t.TempDir(), "intfmt.yaml")

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-interactive", "-manifest", manifest, "-package", "bits"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "var Eight = [5]byte{'1', '0', '0', '0', 0}") {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}

	saved, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("read saved manifest: %v", err)
	}
	m, err := request.Parse(saved, manifest)
	if err != nil {
		t.Fatalf("parse saved manifest: %v", err)
	}
	if m.Package != "bits" || len(m.Requests) != 1 || m.Requests[0].Name != "Eight" {
		t.Fatalf("unexpected saved manifest: %+v", m)
	}
}

func TestRun_InteractiveKeepsExistingManifest(t *testing.T) {
	previous := newDriver
	newDriver = func() prompt.Driver { return fixedDriver{overwrite: false} }
	t.Cleanup(func() { newDriver = previous })

	manifest := writeManifest(t, manifestYAML)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-interactive", "-manifest", manifest, "-package", "bits"}, &stdout, &stderr)
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("want ErrAborted, got %v", err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if string(data) != manifestYAML {
		t.Fatalf("manifest was modified:\n%s", data)
	}
}

func TestRun_InteractiveOverwritesWhenConfirmed(t *testing.T) {
	previous := newDriver
	newDriver = func() prompt.Driver { return fixedDriver{overwrite: true} }
	t.Cleanup(func() { newDriver = previous })

	manifest := writeManifest(t, manifestYAML)

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-interactive", "-manifest", manifest, "-package", "bits"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	saved, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	m, err := request.Parse(saved, manifest)
	if err != nil {
		t.Fatalf("parse saved manifest: %v", err)
	}
	if len(m.Requests) != 1 || m.Requests[0].Name != "Eight" {
		t.Fatalf("manifest not replaced: %+v", m)
	}
}

func TestRun_TemplatesDir(t *testing.T) {
	manifest := writeManifest(t, manifestYAML)
	dir := t.TempDir()
	tmpl := "{% autoescape off %}package {{ package }}\n{% for item in items %}var {{ item.name }} = {{ item.text|goquote }}\n{% endfor %}{% endautoescape %}"
	if err := os.WriteFile(filepath.Join(dir, "gosource.tmpl"), []byte(tmpl), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-manifest", manifest, "-package", "limits", "-templates", dir}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), `var MinInt8Hex = "-80"`) {
		t.Fatalf("custom template not used:\n%s", stdout.String())
	}

	err := run(context.Background(), []string{"-manifest", manifest, "-package", "limits", "-templates", filepath.Join(dir, "missing")}, &stdout, &stderr)
	if err == nil {
		t.Fatalf("expected error for missing templates dir")
	}
}
