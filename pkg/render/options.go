package render

// RenderOptions carry per-request data applied when a page is rendered.
type RenderOptions struct {
	// CSRFTag is handed to every form in the page before rendering. It holds
	// pre-rendered markup, see layout.CSRFTag.
	CSRFTag string
	// Title, Stylesheets and Scripts are used by renderers producing a full
	// document and ignored by fragment renderers.
	Title       string
	Stylesheets []string
	Scripts     []string
	// Theme and ThemeVariant pick a theme for renderers configured with a
	// theme selector; empty values use the renderer defaults.
	Theme        string
	ThemeVariant string
}
