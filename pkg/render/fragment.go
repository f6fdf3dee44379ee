package render

import (
	"context"
	"fmt"

	"github.com/goliatone/go-layout/pkg/layout"
)

// FragmentName is the registry name of the fragment renderer.
const FragmentName = "fragment"

// Fragment renders the page as a bare HTML fragment for embedding in an
// existing response.
type Fragment struct{}

var _ Renderer = Fragment{}

func (Fragment) Name() string { return FragmentName }

func (Fragment) ContentType() string { return "text/html; charset=utf-8" }

// Render applies the CSRF tag, if any, and renders the node tree.
func (Fragment) Render(ctx context.Context, page *layout.Page, options RenderOptions) ([]byte, error) {
	out, err := RenderPage(ctx, page, options)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RenderPage is the shared first step of every renderer: it honours
// cancellation, injects the CSRF tag and renders the node tree.
func RenderPage(ctx context.Context, page *layout.Page, options RenderOptions) (string, error) {
	if page == nil {
		return "", fmt.Errorf("render: page is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if options.CSRFTag != "" {
		page.AddCSRFTag(options.CSRFTag)
	}
	out, err := page.Render()
	if err != nil {
		return "", fmt.Errorf("render: page %q: %w", page.Config().Name, err)
	}
	return out, nil
}
