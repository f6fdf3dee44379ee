package layout

import (
	"fmt"
	"strings"
)

// NoticeType selects the colour scheme of a notice.
type NoticeType string

const (
	NoticeInfo    NoticeType = "info"
	NoticeWarning NoticeType = "warning"
	NoticeError   NoticeType = "error"
	NoticeSuccess NoticeType = "success"
)

// NoticeOptions configures a Notice. Type defaults to info.
type NoticeOptions struct {
	Type    NoticeType `json:"notice_type,omitempty" yaml:"notice_type,omitempty"`
	Caption string     `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Notice is a coloured message block.
type Notice struct {
	text string
	opts NoticeOptions
}

var _ Node = (*Notice)(nil)

// NewNotice validates opts and builds a notice.
func NewNotice(text string, opts NoticeOptions) (*Notice, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: notice requires text", ErrMissingOption)
	}
	switch opts.Type {
	case "":
		opts.Type = NoticeInfo
	case NoticeInfo, NoticeWarning, NoticeError, NoticeSuccess:
	default:
		return nil, fmt.Errorf("%w: unknown notice type %q", ErrInvalidOption, opts.Type)
	}
	return &Notice{text: text, opts: opts}, nil
}

func (n *Notice) Invisible() bool { return false }

func (n *Notice) Hidden() bool { return false }

// Render produces the notice block.
func (n *Notice) Render() (string, error) {
	return renderNotice(n.opts.Type, n.opts.Caption, n.text), nil
}

func renderNotice(kind NoticeType, caption, body string) string {
	var builder strings.Builder
	builder.WriteString(`<div class="crossbeams-` + string(kind) + `-note">` + "\n")
	if caption != "" {
		builder.WriteString(`<p class="b">` + caption + "</p>\n")
	}
	builder.WriteString(`<p>` + body + "</p>\n</div>")
	return builder.String()
}
