package layout

import "strings"

const defaultFoldUpCaption = "Details"

// FoldUp wraps its content in a <details> element, folded up by default.
type FoldUp struct {
	content
	caption string
	open    bool
}

var _ Node = (*FoldUp)(nil)

func newFoldUp(e *env) *FoldUp {
	f := &FoldUp{caption: defaultFoldUpCaption}
	f.env = e
	return f
}

// Caption sets the summary text.
func (f *FoldUp) Caption(caption string) { f.caption = caption }

// Open renders the block unfolded.
func (f *FoldUp) Open() { f.open = true }

// Form appends a form built by fn.
func (f *FoldUp) Form(fn func(*Form) error) error {
	return build(&f.container, newForm(f.env), fn)
}

// Row appends a row built by fn.
func (f *FoldUp) Row(fn func(*Row) error) error {
	return build(&f.container, newRow(f.env), fn)
}

// Render produces the details element.
func (f *FoldUp) Render() (string, error) {
	if f.Invisible() {
		return "", nil
	}
	body, err := f.renderChildren()
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<details class="pv2"`)
	if f.open {
		builder.WriteString(` open`)
	}
	builder.WriteString(">\n")
	builder.WriteString(`<summary class="pointer b blue shadow-3 pa1 mr2">` + f.caption + "</summary>\n")
	builder.WriteString(body)
	builder.WriteString("\n</details>")
	return builder.String(), nil
}
