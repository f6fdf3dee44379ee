package layout

import (
	"fmt"
	"html"
	"html/template"
	"strings"
	"sync"

	"github.com/goliatone/go-layout/pkg/icon"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

const defaultToggleCaption = "Show/Hide Text"

// textWrappers maps wrapper names to the element they produce. "none" adds
// nothing.
var textWrappers = map[string]string{
	"none":   "",
	"p":      "p",
	"h1":     "h1",
	"h2":     "h2",
	"h3":     "h3",
	"h4":     "h4",
	"i":      "em",
	"em":     "em",
	"b":      "strong",
	"strong": "strong",
}

var (
	markdownPolicyOnce sync.Once
	markdownPolicy     *bluemonday.Policy
)

func markdownSanitizer() *bluemonday.Policy {
	markdownPolicyOnce.Do(func() {
		markdownPolicy = bluemonday.UGCPolicy()
		markdownPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
	return markdownPolicy
}

// TextOptions configures a Text block.
type TextOptions struct {
	// Wrapper lists elements from outermost to innermost, e.g. [p b i].
	Wrapper []string `json:"wrapper,omitempty" yaml:"wrapper,omitempty"`
	// WrapperClasses is applied to the outermost wrapper element.
	WrapperClasses string `json:"wrapper_classes,omitempty" yaml:"wrapper_classes,omitempty"`
	Preformatted   bool   `json:"preformatted,omitempty" yaml:"preformatted,omitempty"`
	// Markdown renders the text as markdown and sanitises the result.
	Markdown bool `json:"markdown,omitempty" yaml:"markdown,omitempty"`

	ToggleButton  bool   `json:"toggle_button,omitempty" yaml:"toggle_button,omitempty"`
	ToggleCaption string `json:"toggle_caption,omitempty" yaml:"toggle_caption,omitempty"`
	// ToggleElementID makes the button toggle an element inside the text
	// instead of the whole block. The id must occur in the text.
	ToggleElementID string `json:"toggle_element_id,omitempty" yaml:"toggle_element_id,omitempty"`

	HideOnLoad       bool  `json:"hide_on_load,omitempty" yaml:"hide_on_load,omitempty"`
	InitiallyVisible *bool `json:"initially_visible,omitempty" yaml:"initially_visible,omitempty"`
}

// Text is a block of text or markup, optionally wrapped, preformatted or
// toggled by a button.
type Text struct {
	text string
	opts TextOptions
	tags []string
}

var _ Node = (*Text)(nil)

// NewText validates opts and builds a text block.
func NewText(text string, opts TextOptions) (*Text, error) {
	tags := make([]string, 0, len(opts.Wrapper))
	for _, name := range opts.Wrapper {
		tag, ok := textWrappers[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: unknown text wrapper %q", ErrInvalidOption, name)
		}
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	if opts.ToggleCaption == "" {
		opts.ToggleCaption = defaultToggleCaption
	}
	if opts.ToggleElementID != "" && !strings.Contains(text, opts.ToggleElementID) {
		return nil, fmt.Errorf("%w: toggle element %q does not occur in the text", ErrInvalidOption, opts.ToggleElementID)
	}
	return &Text{text: text, opts: opts, tags: tags}, nil
}

func (t *Text) Invisible() bool { return false }

// Hidden reports whether the block starts hidden.
func (t *Text) Hidden() bool {
	if t.opts.HideOnLoad {
		return true
	}
	return t.opts.InitiallyVisible != nil && !*t.opts.InitiallyVisible
}

// Render produces the toggle button, if any, and the wrapped text.
func (t *Text) Render() (string, error) {
	body := t.text
	if t.opts.Markdown {
		body = renderMarkdown(body)
	}
	if t.opts.Preformatted {
		body = "<pre>\n" + body + "\n</pre>"
	}
	body = t.wrap(body)

	togglesBlock := t.opts.ToggleButton && t.opts.ToggleElementID == ""

	var builder strings.Builder
	if t.opts.ToggleButton {
		builder.WriteString(t.toggleButton())
		builder.WriteString("\n")
	}
	builder.WriteString(`<div class="crossbeams-field no-flex"`)
	if togglesBlock {
		builder.WriteString(` id='` + html.EscapeString(t.toggleTarget()) + `'`)
	}
	builder.WriteString(hiddenAttr(t.Hidden() || togglesBlock))
	builder.WriteString(">\n")
	builder.WriteString(body)
	builder.WriteString("\n</div>")
	return builder.String(), nil
}

func (t *Text) wrap(body string) string {
	for i := len(t.tags) - 1; i >= 0; i-- {
		open := "<" + t.tags[i]
		if i == 0 && t.opts.WrapperClasses != "" {
			open += ` class="` + html.EscapeString(t.opts.WrapperClasses) + `"`
		}
		body = open + ">" + body + "</" + t.tags[i] + ">"
	}
	return body
}

// toggleTarget is the id of the element the button shows and hides.
func (t *Text) toggleTarget() string {
	if t.opts.ToggleElementID != "" {
		return t.opts.ToggleElementID
	}
	return strings.ReplaceAll(strings.ToLower(t.opts.ToggleCaption), " ", "_")
}

func (t *Text) toggleButton() string {
	target := html.EscapeString(template.JSEscapeString(t.toggleTarget()))
	return `<a href="#" class="` + buttonClasses + ` bg-silver mb2" onclick="crossbeamsUtils.toggleVisibility('` + target + `', this);return false">` +
		icon.Render(icon.Info) + " " + t.opts.ToggleCaption + `</a>`
}

func renderMarkdown(text string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	doc := p.Parse([]byte(text))
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank})
	out := markdown.Render(doc, renderer)
	return strings.TrimSpace(string(markdownSanitizer().SanitizeBytes(out)))
}
