package layout

import (
	"github.com/goliatone/go-layout/pkg/model"
)

// Page is the root of a node tree.
type Page struct {
	content
}

var _ Node = (*Page)(nil)

// NewPage creates an empty page bound to cfg.
func NewPage(cfg *model.PageConfig, opts ...Option) *Page {
	p := &Page{}
	p.env = newEnv(cfg, opts...)
	return p
}

// Config returns the page configuration shared by every node.
func (p *Page) Config() *model.PageConfig {
	return p.env.page
}

// Section appends a section built by fn.
func (p *Page) Section(fn func(*Section) error) error {
	return build(&p.container, newSection(p.env), fn)
}

// Form appends a form built by fn.
func (p *Page) Form(fn func(*Form) error) error {
	return build(&p.container, newForm(p.env), fn)
}

// Row appends a row built by fn.
func (p *Page) Row(fn func(*Row) error) error {
	return build(&p.container, newRow(p.env), fn)
}

// FoldUp appends a collapsible block built by fn.
func (p *Page) FoldUp(fn func(*FoldUp) error) error {
	return build(&p.container, newFoldUp(p.env), fn)
}

// AddCSRFTag hands tag to every node in the tree that emits a CSRF field.
func (p *Page) AddCSRFTag(tag string) {
	Walk(p, func(node Node) bool {
		if injector, ok := node.(CSRFInjector); ok && node != Node(p) {
			injector.AddCSRFTag(tag)
		}
		return true
	})
}

// Render renders the visible children. An invisible page renders "".
func (p *Page) Render() (string, error) {
	if p.Invisible() {
		return "", nil
	}
	return p.renderChildren()
}

// build runs fn against node and appends node to parent when fn succeeds.
func build[N Node](parent *container, node N, fn func(N) error) error {
	if fn != nil {
		if err := fn(node); err != nil {
			return err
		}
	}
	parent.Add(node)
	return nil
}
