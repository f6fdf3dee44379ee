package layout

import (
	"html"
	"strings"
)

// Section groups content under an optional <h2> caption.
type Section struct {
	content
	id          string
	caption     string
	hideCaption bool
}

var _ Node = (*Section)(nil)

func newSection(e *env) *Section {
	s := &Section{}
	s.env = e
	return s
}

// ID sets the DOM id of the section.
func (s *Section) ID(id string) { s.id = id }

// Caption sets the heading.
func (s *Section) Caption(caption string) { s.caption = caption }

// HideCaption suppresses the heading.
func (s *Section) HideCaption() { s.hideCaption = true }

// Form appends a form built by fn.
func (s *Section) Form(fn func(*Form) error) error {
	return build(&s.container, newForm(s.env), fn)
}

// Row appends a row built by fn.
func (s *Section) Row(fn func(*Row) error) error {
	return build(&s.container, newRow(s.env), fn)
}

// FoldUp appends a collapsible block built by fn.
func (s *Section) FoldUp(fn func(*FoldUp) error) error {
	return build(&s.container, newFoldUp(s.env), fn)
}

// Render produces the section element.
func (s *Section) Render() (string, error) {
	if s.Invisible() {
		return "", nil
	}
	body, err := s.renderChildren()
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<section class="crossbeams_layout"`)
	if s.id != "" {
		builder.WriteString(` id="` + html.EscapeString(s.id) + `"`)
	}
	builder.WriteString(">\n")
	if s.caption != "" && !s.hideCaption {
		builder.WriteString(`<h2>` + s.caption + "</h2>\n")
	}
	builder.WriteString(body)
	builder.WriteString("\n</section>")
	return builder.String(), nil
}
