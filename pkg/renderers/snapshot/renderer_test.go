package snapshot_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intfmt/pkg/render"
	"github.com/goliatone/go-intfmt/pkg/renderers/snapshot"
	"github.com/goliatone/go-intfmt/pkg/request"
	"github.com/goliatone/go-intfmt/pkg/testsupport"
)

func TestRenderer_Render(t *testing.T) {
	items, err := request.ResolveAll([]request.Request{
		{Name: "MinInt8", Type: "int8", Value: "-128", Base: 16},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	out, err := snapshot.New().Render(testsupport.Context(), render.Batch{Package: "p", Items: items}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got struct {
		Generator string `json:"generator"`
		Package   string `json:"package"`
		Items     []struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Base     int    `json:"base"`
			Text     string `json:"text"`
			Size     int    `json:"size"`
			Negative bool   `json:"negative"`
		} `json:"items"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}

	if got.Generator != render.DefaultGenerator || got.Package != "p" {
		t.Fatalf("header: got %q %q", got.Generator, got.Package)
	}
	want := []struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Base     int    `json:"base"`
		Text     string `json:"text"`
		Size     int    `json:"size"`
		Negative bool   `json:"negative"`
	}{{Name: "MinInt8", Type: "int8", Base: 16, Text: "-80", Size: 4, Negative: true}}
	if diff := cmp.Diff(want, got.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}
