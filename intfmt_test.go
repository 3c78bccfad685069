package intfmt_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	intfmt "github.com/goliatone/go-intfmt"
	"github.com/goliatone/go-intfmt/pkg/request"
)

func TestFormat(t *testing.T) {
	if got := intfmt.Format(uint8(255), intfmt.Hex); got != "FF" {
		t.Fatalf("got %q", got)
	}
	if got := intfmt.Size(-42, intfmt.Decimal); got != 4 {
		t.Fatalf("size: got %d", got)
	}
	text, err := intfmt.New(int8(-128), intfmt.Hex)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if text.String() != "-80" || text.Cap() != 4 {
		t.Fatalf("text: %q cap %d", text.String(), text.Cap())
	}
}

func TestGenerateGoFromManifest(t *testing.T) {
	out, err := intfmt.GenerateGoFromManifest(context.Background(), request.Manifest{
		Package:  "digits",
		Requests: []request.Request{{Name: "Eight", Type: "uint8", Value: "8", Base: 2}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "var Eight = [5]byte{'1', '0', '0', '0', 0}") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestGenerateGo(t *testing.T) {
	out, err := intfmt.GenerateGo(context.Background(), "examples/constants/intfmt.yaml", "renamed")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "package renamed") {
		t.Fatalf("package override missing:\n%s", out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(intfmt.EmbeddedTemplates(), "gosource.tmpl"); err != nil {
		t.Fatalf("embedded template missing: %v", err)
	}
}
