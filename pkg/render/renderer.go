package render

import (
	"context"

	"github.com/goliatone/go-intfmt/pkg/request"
)

// Renderer converts a resolved batch into bytes (Go source, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, batch Batch, options RenderOptions) ([]byte, error)
}

// Batch is the set of resolved requests generated together into one package.
type Batch struct {
	Package string             `json:"package"`
	Source  string             `json:"source,omitempty"`
	Items   []request.Resolved `json:"items"`
}
