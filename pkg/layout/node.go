package layout

import (
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

// Node is an element of the page tree.
type Node interface {
	// Invisible reports whether the node is left out of the output.
	Invisible() bool
	// Hidden reports whether the node is emitted but not shown on load.
	Hidden() bool
	Render() (string, error)
}

// Parent is implemented by nodes holding children.
type Parent interface {
	Children() []Node
}

// CSRFInjector is implemented by nodes that emit a CSRF field.
type CSRFInjector interface {
	AddCSRFTag(tag string)
}

// Walk visits node and its descendants depth first. Returning false from fn
// stops the descent below that node.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	parent, ok := node.(Parent)
	if !ok {
		return
	}
	for _, child := range parent.Children() {
		Walk(child, fn)
	}
}

// CSRFTag builds the hidden input carrying a CSRF token.
func CSRFTag(name, token string) string {
	return `<input type="hidden" name="` + html.EscapeString(name) + `" value="` + html.EscapeString(token) + `">`
}

// container holds the children shared by every structural node.
type container struct {
	env   *env
	nodes []Node
}

// Children returns the child nodes in insertion order.
func (c *container) Children() []Node {
	return c.nodes
}

// Add appends an already constructed node.
func (c *container) Add(node Node) {
	if node == nil {
		return
	}
	c.nodes = append(c.nodes, node)
}

// Invisible reports whether every child is invisible. An empty container is
// invisible.
func (c *container) Invisible() bool {
	for _, node := range c.nodes {
		if !node.Invisible() {
			return false
		}
	}
	return true
}

// Hidden reports whether every child is hidden.
func (c *container) Hidden() bool {
	for _, node := range c.nodes {
		if !node.Hidden() {
			return false
		}
	}
	return true
}

// renderChildren renders the visible children joined by newlines.
func (c *container) renderChildren() (string, error) {
	parts := make([]string, 0, len(c.nodes))
	for _, node := range c.nodes {
		if node.Invisible() {
			continue
		}
		out, err := node.Render()
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n"), nil
}

// content adds the leaf builders to a container.
type content struct {
	container
}

// AddField appends a field. A nil config falls back to the page-level field
// definition.
func (c *content) AddField(name string, config *model.FieldConfig) {
	c.Add(newField(c.env, name, config))
}

// AddText appends a text block.
func (c *content) AddText(text string, opts TextOptions) error {
	node, err := NewText(text, opts)
	if err != nil {
		return err
	}
	c.Add(node)
	return nil
}

// AddLink appends a link.
func (c *content) AddLink(opts LinkOptions) error {
	node, err := NewLink(opts)
	if err != nil {
		return err
	}
	c.Add(node)
	return nil
}

// AddGrid appends a data grid placeholder.
func (c *content) AddGrid(gridID, url string, opts GridOptions) error {
	node, err := NewGrid(gridID, url, opts)
	if err != nil {
		return err
	}
	c.Add(node)
	return nil
}

// AddNotice appends a notice block.
func (c *content) AddNotice(text string, opts NoticeOptions) error {
	node, err := NewNotice(text, opts)
	if err != nil {
		return err
	}
	c.Add(node)
	return nil
}

func hiddenAttr(hidden bool) string {
	if hidden {
		return " hidden"
	}
	return ""
}
