package layout

import (
	"fmt"
	"strings"
)

// ColumnWidth names the share of a row a column takes.
type ColumnWidth string

const (
	ColumnAuto      ColumnWidth = ""
	ColumnFull      ColumnWidth = "full"
	ColumnHalf      ColumnWidth = "half"
	ColumnThird     ColumnWidth = "third"
	ColumnTwoThirds ColumnWidth = "two_thirds"
	ColumnQuarter   ColumnWidth = "quarter"
)

var columnClasses = map[ColumnWidth]string{
	ColumnAuto:      "",
	ColumnFull:      "w-100",
	ColumnHalf:      "w-50",
	ColumnThird:     "w-third",
	ColumnTwoThirds: "w-two-thirds",
	ColumnQuarter:   "w-25",
}

// Valid reports whether w is a known width.
func (w ColumnWidth) Valid() bool {
	_, ok := columnClasses[w]
	return ok
}

// Row lays its columns out side by side.
type Row struct {
	container
}

var _ Node = (*Row)(nil)

func newRow(e *env) *Row {
	r := &Row{}
	r.env = e
	return r
}

// Column appends an auto-width column built by fn.
func (r *Row) Column(fn func(*Column) error) error {
	return build(&r.container, newColumn(r.env, ColumnAuto), fn)
}

// SizedColumn appends a column of the given width built by fn.
func (r *Row) SizedColumn(width ColumnWidth, fn func(*Column) error) error {
	if !width.Valid() {
		return fmt.Errorf("%w: unknown column width %q", ErrInvalidOption, width)
	}
	return build(&r.container, newColumn(r.env, width), fn)
}

// Render produces the row div.
func (r *Row) Render() (string, error) {
	if r.Invisible() {
		return "", nil
	}
	body, err := r.renderChildren()
	if err != nil {
		return "", err
	}
	return `<div class="crossbeams-row">` + "\n" + body + "\n</div>", nil
}

// Column stacks fields and other content vertically.
type Column struct {
	content
	width ColumnWidth
}

var _ Node = (*Column)(nil)

func newColumn(e *env, width ColumnWidth) *Column {
	c := &Column{width: width}
	c.env = e
	return c
}

// Render produces the column div.
func (c *Column) Render() (string, error) {
	if c.Invisible() {
		return "", nil
	}
	body, err := c.renderChildren()
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<div class="crossbeams-col`)
	if class := columnClasses[c.width]; class != "" {
		builder.WriteString(" " + class)
	}
	builder.WriteString(`">` + "\n")
	builder.WriteString(body)
	builder.WriteString("\n</div>")
	return builder.String(), nil
}
