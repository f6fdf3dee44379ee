package layout

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

const defaultGridHeight = 20

// GridOptions configures a Grid. Height is in rem and defaults to 20.
type GridOptions struct {
	Caption   string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Height    int    `json:"height,omitempty" yaml:"height,omitempty"`
	FitHeight bool   `json:"fit_height,omitempty" yaml:"fit_height,omitempty"`
}

// Grid is a placeholder the client-side grid script fills from URL.
type Grid struct {
	id   string
	url  string
	opts GridOptions
}

var _ Node = (*Grid)(nil)

// NewGrid builds a grid node. Both gridID and url are required.
func NewGrid(gridID, url string, opts GridOptions) (*Grid, error) {
	if strings.TrimSpace(gridID) == "" || strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: grid requires an id and a url", ErrMissingOption)
	}
	if opts.Height <= 0 {
		opts.Height = defaultGridHeight
	}
	return &Grid{id: gridID, url: url, opts: opts}, nil
}

func (g *Grid) Invisible() bool { return false }

func (g *Grid) Hidden() bool { return false }

// Render produces the grid wrapper.
func (g *Grid) Render() (string, error) {
	var builder strings.Builder
	builder.WriteString(`<div class="crossbeams-grid-wrapper">` + "\n")
	if g.opts.Caption != "" {
		builder.WriteString(`<div class="crossbeams-grid-caption">` + g.opts.Caption + "</div>\n")
	}
	builder.WriteString(`<div id="` + html.EscapeString(g.id) + `" class="crossbeams-grid" data-grid-url="` + html.EscapeString(g.url) + `"`)
	if g.opts.FitHeight {
		builder.WriteString(` data-grid-fit-height="true"`)
	} else {
		builder.WriteString(` style="height:` + strconv.Itoa(g.opts.Height) + `rem;"`)
	}
	builder.WriteString("></div>\n</div>")
	return builder.String(), nil
}
