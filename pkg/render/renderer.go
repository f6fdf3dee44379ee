package render

import (
	"context"

	"github.com/goliatone/go-layout/pkg/layout"
)

// Renderer turns a built page into an output representation (an HTML
// fragment, a full document, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page *layout.Page, options RenderOptions) ([]byte, error)
}
