package orchestrator

import (
	"context"

	"github.com/goliatone/go-intfmt/pkg/render"
)

// Transformer mutates a resolved batch before it is rendered, for example to
// sort items or add a prefix to every name.
type Transformer interface {
	Transform(ctx context.Context, batch *render.Batch) error
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(ctx context.Context, batch *render.Batch) error

// Transform calls f.
func (f TransformerFunc) Transform(ctx context.Context, batch *render.Batch) error {
	return f(ctx, batch)
}
