// Package snapshot renders a resolved batch as indented JSON. It is used to
// review what a manifest resolves to without generating code.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-intfmt/pkg/render"
)

// Name is the registry name of this renderer.
const Name = "snapshot"

type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the snapshot renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return Name
}

func (Renderer) ContentType() string {
	return "application/json"
}

func (Renderer) Render(ctx context.Context, batch render.Batch, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload := struct {
		Generator string `json:"generator"`
		render.Batch
	}{
		Generator: options.GeneratorName(),
		Batch:     batch,
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot renderer: marshal: %w", err)
	}
	return append(out, '\n'), nil
}
