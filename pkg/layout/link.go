package layout

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/icon"
)

// LinkStyle selects how a link is drawn.
type LinkStyle string

const (
	LinkStylePlain      LinkStyle = "link"
	LinkStyleButton     LinkStyle = "button"
	LinkStyleBackButton LinkStyle = "back_button"
)

// LinkBehaviour selects what following the link does.
type LinkBehaviour string

const (
	LinkDirect        LinkBehaviour = "direct"
	LinkPopup         LinkBehaviour = "popup"
	LinkReplaceDialog LinkBehaviour = "replace_dialog"
)

const buttonClasses = "f6 link dim br2 ph3 pv2 dib white"

// LinkOptions configures a Link. Text and URL are required.
type LinkOptions struct {
	Text      string        `json:"text" yaml:"text"`
	URL       string        `json:"url" yaml:"url"`
	Style     LinkStyle     `json:"style,omitempty" yaml:"style,omitempty"`
	Behaviour LinkBehaviour `json:"behaviour,omitempty" yaml:"behaviour,omitempty"`
	CSSClass  string        `json:"css_class,omitempty" yaml:"css_class,omitempty"`
	GridID    string        `json:"grid_id,omitempty" yaml:"grid_id,omitempty"`
}

// Link is an anchor rendered outside a form.
type Link struct {
	opts LinkOptions
}

var _ Node = (*Link)(nil)

// NewLink validates opts and builds a link.
func NewLink(opts LinkOptions) (*Link, error) {
	if opts.Text == "" || opts.URL == "" {
		return nil, fmt.Errorf("%w: link requires text and url", ErrMissingOption)
	}
	switch opts.Style {
	case "":
		opts.Style = LinkStylePlain
	case LinkStylePlain, LinkStyleButton, LinkStyleBackButton:
	default:
		return nil, fmt.Errorf("%w: unknown link style %q", ErrInvalidOption, opts.Style)
	}
	switch opts.Behaviour {
	case "":
		opts.Behaviour = LinkDirect
	case LinkDirect, LinkPopup, LinkReplaceDialog:
	default:
		return nil, fmt.Errorf("%w: unknown link behaviour %q", ErrInvalidOption, opts.Behaviour)
	}
	return &Link{opts: opts}, nil
}

func (l *Link) Invisible() bool { return false }

func (l *Link) Hidden() bool { return false }

// Render produces the anchor.
func (l *Link) Render() (string, error) {
	var builder strings.Builder
	builder.WriteString(`<a href="` + html.EscapeString(l.opts.URL) + `"`)
	builder.WriteString(l.classAttr())
	switch l.opts.Behaviour {
	case LinkPopup:
		builder.WriteString(` data-popup-dialog="true"`)
	case LinkReplaceDialog:
		builder.WriteString(` data-replace-dialog="true"`)
	}
	if l.opts.GridID != "" {
		builder.WriteString(` data-grid-id="` + html.EscapeString(l.opts.GridID) + `"`)
	}
	builder.WriteString(`>`)
	if l.opts.Style == LinkStyleBackButton {
		builder.WriteString(icon.Render(icon.Back) + " ")
	}
	builder.WriteString(l.opts.Text)
	builder.WriteString(`</a>`)
	return builder.String(), nil
}

func (l *Link) classAttr() string {
	var classes string
	switch l.opts.Style {
	case LinkStyleButton:
		classes = buttonClasses + " bg-silver"
	case LinkStyleBackButton:
		classes = buttonClasses + " bg-dark-blue"
	}
	classes = strings.TrimSpace(classes + " " + l.opts.CSSClass)
	if classes == "" {
		return ""
	}
	return ` class="` + html.EscapeString(classes) + `"`
}
