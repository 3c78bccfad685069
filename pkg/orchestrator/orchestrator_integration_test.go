package orchestrator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-intfmt/pkg/orchestrator"
	"github.com/goliatone/go-intfmt/pkg/renderers/snapshot"
	"github.com/goliatone/go-intfmt/pkg/request"
)

func TestOrchestrator_DefaultsRenderGoSource(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	orch := orchestrator.New(orchestrator.WithLogger(logger))
	out, err := orch.Generate(context.Background(), orchestrator.Request{
		Source: request.SourceFromFile(filepath.Join("testdata", "basic.yaml")),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	src := string(out)
	for _, want := range []string{
		"package constants",
		"var MaxUint8Hex = [3]byte{'F', 'F', 0}",
		"var MinInt8Hex = [4]byte{'-', '8', '0', 0}",
		"const AnswerString = \"-42\"",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("output missing %q:\n%s", want, src)
		}
	}

	var sawResolved bool
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		if entry["msg"] == "resolved" && entry["name"] == "MinInt8Hex" {
			sawResolved = true
			if entry["text"] != "-80" {
				t.Fatalf("logged text: got %v", entry["text"])
			}
		}
	}
	if !sawResolved {
		t.Fatalf("expected a debug log for MinInt8Hex:\n%s", logs.String())
	}
}

func TestOrchestrator_SnapshotFromFS(t *testing.T) {
	loader := request.NewLoader(request.WithFileSystem(os.DirFS("testdata")))
	orch := orchestrator.New(orchestrator.WithLoader(loader))

	out, err := orch.Generate(context.Background(), orchestrator.Request{
		Source:   request.SourceFromFS("."),
		Renderer: snapshot.Name,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var payload struct {
		Package string `json:"package"`
		Items   []struct {
			Name string `json:"name"`
			Size int    `json:"size"`
		} `json:"items"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Package != "constants" || len(payload.Items) != 3 {
		t.Fatalf("unexpected snapshot: %+v", payload)
	}
	if payload.Items[0].Name != "MaxUint8Hex" || payload.Items[0].Size != 3 {
		t.Fatalf("first item: %+v", payload.Items[0])
	}
}
