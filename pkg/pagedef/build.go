package pagedef

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goliatone/go-layout/pkg/layout"
	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/render"
)

// Data is the per-request input bound into a built page.
type Data struct {
	FormObject map[string]any
	FormValues map[string]any
	FormErrors map[string][]string
	// ErrorPayload holds raw framework validation errors keyed by JSON
	// pointer, dotted path or bracketed parameter. They are mapped onto the
	// page's field names and merged into FormErrors.
	ErrorPayload map[string][]string
	// Extras is exposed to visibility rules as extras.<key>.
	Extras map[string]any
}

// Build constructs the node tree of page id bound to data.
func (s *Store) Build(id string, data Data, opts ...layout.Option) (*layout.Page, error) {
	def, ok := s.Page(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPage, id)
	}
	return def.Build(data, opts...)
}

// Build constructs the node tree of the page bound to data.
func (d PageDef) Build(data Data, opts ...layout.Option) (*layout.Page, error) {
	cfg := &model.PageConfig{
		Name:       d.Name,
		FormObject: data.FormObject,
		FormValues: data.FormValues,
		FormErrors: d.formErrors(data),
		Options: model.PageOptions{
			Behaviours: slices.Clone(d.Behaviours),
			Fields:     maps.Clone(d.Fields),
		},
	}
	if data.Extras != nil {
		opts = append(opts, layout.WithExtras(data.Extras))
	}

	page := layout.NewPage(cfg, opts...)
	if err := buildNodes(page, d.Nodes, "nodes"); err != nil {
		return nil, fmt.Errorf("pagedef: page %q: %w", d.ID, err)
	}
	return page, nil
}

// FieldNames lists every field the page declares or places, sorted.
func (d PageDef) FieldNames() []string {
	seen := make(map[string]struct{}, len(d.Fields))
	for name := range d.Fields {
		seen[name] = struct{}{}
	}
	var walk func([]NodeDef)
	walk = func(nodes []NodeDef) {
		for _, node := range nodes {
			if node.Field != nil {
				seen[node.Field.Name] = struct{}{}
			}
			walk(node.children())
		}
	}
	walk(d.Nodes)

	names := slices.Collect(maps.Keys(seen))
	slices.Sort(names)
	return names
}

// FieldConfig returns the config a field renders with: the config given on
// its field node, else the page-level entry.
func (d PageDef) FieldConfig(name string) (model.FieldConfig, bool) {
	var found *model.FieldConfig
	var walk func([]NodeDef)
	walk = func(nodes []NodeDef) {
		for _, node := range nodes {
			if found != nil {
				return
			}
			if node.Field != nil && node.Field.Name == name && node.Field.Config != nil {
				found = node.Field.Config
				return
			}
			walk(node.children())
		}
	}
	walk(d.Nodes)
	if found != nil {
		return *found, true
	}
	cfg, ok := d.Fields[name]
	return cfg, ok
}

func (d PageDef) formErrors(data Data) map[string][]string {
	if len(data.ErrorPayload) == 0 {
		return data.FormErrors
	}
	mapped := render.MapErrorPayload(d.Name, d.FieldNames(), data.ErrorPayload)
	if len(data.FormErrors) == 0 {
		return mapped
	}
	out := make(map[string][]string, len(data.FormErrors)+len(mapped))
	for name, messages := range data.FormErrors {
		out[name] = slices.Clone(messages)
	}
	for name, messages := range mapped {
		out[name] = render.MergeMessages(out[name], messages...)
	}
	return out
}

func (n NodeDef) children() []NodeDef {
	switch {
	case n.Section != nil:
		return n.Section.Nodes
	case n.Form != nil:
		return n.Form.Nodes
	case n.Row != nil:
		return n.Row.Nodes
	case n.Column != nil:
		return n.Column.Nodes
	case n.FoldUp != nil:
		return n.FoldUp.Nodes
	default:
		return nil
	}
}

// leafTarget is met by every node embedding layout content: the page,
// sections, forms, fold-ups and columns.
type leafTarget interface {
	AddField(name string, config *model.FieldConfig)
	AddText(text string, opts layout.TextOptions) error
	AddLink(opts layout.LinkOptions) error
	AddGrid(gridID, url string, opts layout.GridOptions) error
	AddNotice(text string, opts layout.NoticeOptions) error
}

type sectionTarget interface {
	Section(fn func(*layout.Section) error) error
}

type formTarget interface {
	Form(fn func(*layout.Form) error) error
}

type rowTarget interface {
	Row(fn func(*layout.Row) error) error
}

type foldUpTarget interface {
	FoldUp(fn func(*layout.FoldUp) error) error
}

func buildNodes(target leafTarget, nodes []NodeDef, path string) error {
	for idx, node := range nodes {
		at := fmt.Sprintf("%s[%d]", path, idx)
		if err := buildNode(target, node, at); err != nil {
			return err
		}
	}
	return nil
}

func buildNode(target leafTarget, node NodeDef, at string) error {
	switch {
	case node.Field != nil:
		target.AddField(node.Field.Name, node.Field.Config)
		return nil
	case node.Text != nil:
		return wrap(at, target.AddText(node.Text.Text, node.Text.TextOptions))
	case node.Link != nil:
		return wrap(at, target.AddLink(*node.Link))
	case node.Grid != nil:
		return wrap(at, target.AddGrid(node.Grid.ID, node.Grid.URL, node.Grid.GridOptions))
	case node.Notice != nil:
		return wrap(at, target.AddNotice(node.Notice.Text, node.Notice.NoticeOptions))
	case node.Section != nil:
		parent, ok := target.(sectionTarget)
		if !ok {
			return notAllowed(at, "section")
		}
		def := node.Section
		return parent.Section(func(s *layout.Section) error {
			if def.ID != "" {
				s.ID(def.ID)
			}
			if def.Caption != "" {
				s.Caption(def.Caption)
			}
			if def.HideCaption {
				s.HideCaption()
			}
			return buildNodes(s, def.Nodes, at+".section.nodes")
		})
	case node.Form != nil:
		parent, ok := target.(formTarget)
		if !ok {
			return notAllowed(at, "form")
		}
		def := node.Form
		return parent.Form(func(f *layout.Form) error {
			f.Action(def.Action)
			if def.Method != "" {
				f.Method(def.Method)
			}
			if def.Remote {
				f.Remote()
			}
			if def.ViewOnly {
				f.ViewOnly()
			}
			if def.SubmitCaption != "" {
				f.SubmitCaption(def.SubmitCaption)
			}
			return buildNodes(f, def.Nodes, at+".form.nodes")
		})
	case node.FoldUp != nil:
		parent, ok := target.(foldUpTarget)
		if !ok {
			return notAllowed(at, "fold_up")
		}
		def := node.FoldUp
		return parent.FoldUp(func(f *layout.FoldUp) error {
			if def.Caption != "" {
				f.Caption(def.Caption)
			}
			if def.Open {
				f.Open()
			}
			return buildNodes(f, def.Nodes, at+".fold_up.nodes")
		})
	case node.Row != nil:
		parent, ok := target.(rowTarget)
		if !ok {
			return notAllowed(at, "row")
		}
		def := node.Row
		return parent.Row(func(r *layout.Row) error {
			for idx, col := range def.Nodes {
				colAt := fmt.Sprintf("%s.row.nodes[%d]", at, idx)
				if col.Column == nil {
					return notAllowed(colAt, col.Kind())
				}
				colDef := col.Column
				err := r.SizedColumn(colDef.Width, func(c *layout.Column) error {
					return buildNodes(c, colDef.Nodes, colAt+".column.nodes")
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	case node.Column != nil:
		return notAllowed(at, "column")
	default:
		return fmt.Errorf("%s: node declares no kind", at)
	}
}

func notAllowed(at, kind string) error {
	return fmt.Errorf("%s: %s is not allowed here", at, kind)
}

func wrap(at string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", at, err)
}
