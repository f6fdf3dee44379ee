package pagedef

import (
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-layout/pkg/layout"
	"github.com/goliatone/go-layout/pkg/model"
)

// ErrUnknownPage is returned by Store.Build for ids the store does not hold.
var ErrUnknownPage = errors.New("pagedef: unknown page")

// Store keeps the parsed page definitions keyed by id.
type Store struct {
	pages map[string]PageDef
}

// PageDef is a single page definition.
type PageDef struct {
	// ID is the key the page was declared under; Source the file it came from.
	ID     string `json:"-" yaml:"-"`
	Source string `json:"-" yaml:"-"`

	// Name is the DOM prefix of the page's fields. Defaults to ID.
	Name       string                       `json:"name,omitempty" yaml:"name,omitempty"`
	Title      string                       `json:"title,omitempty" yaml:"title,omitempty"`
	Fields     map[string]model.FieldConfig `json:"fields,omitempty" yaml:"fields,omitempty"`
	Behaviours []model.BehaviourRule        `json:"behaviours,omitempty" yaml:"behaviours,omitempty"`
	Nodes      []NodeDef                    `json:"nodes" yaml:"nodes"`
}

// NodeDef holds exactly one node kind.
type NodeDef struct {
	Section *SectionDef         `json:"section,omitempty" yaml:"section,omitempty"`
	Form    *FormDef            `json:"form,omitempty" yaml:"form,omitempty"`
	Row     *RowDef             `json:"row,omitempty" yaml:"row,omitempty"`
	Column  *ColumnDef          `json:"column,omitempty" yaml:"column,omitempty"`
	FoldUp  *FoldUpDef          `json:"fold_up,omitempty" yaml:"fold_up,omitempty"`
	Text    *TextDef            `json:"text,omitempty" yaml:"text,omitempty"`
	Link    *layout.LinkOptions `json:"link,omitempty" yaml:"link,omitempty"`
	Grid    *GridDef            `json:"grid,omitempty" yaml:"grid,omitempty"`
	Notice  *NoticeDef          `json:"notice,omitempty" yaml:"notice,omitempty"`
	Field   *FieldDef           `json:"field,omitempty" yaml:"field,omitempty"`
}

// Kind names the populated block, "" when none is and "ambiguous" when
// several are.
func (n NodeDef) Kind() string {
	kinds := make([]string, 0, 1)
	add := func(set bool, kind string) {
		if set {
			kinds = append(kinds, kind)
		}
	}
	add(n.Section != nil, "section")
	add(n.Form != nil, "form")
	add(n.Row != nil, "row")
	add(n.Column != nil, "column")
	add(n.FoldUp != nil, "fold_up")
	add(n.Text != nil, "text")
	add(n.Link != nil, "link")
	add(n.Grid != nil, "grid")
	add(n.Notice != nil, "notice")
	add(n.Field != nil, "field")

	switch len(kinds) {
	case 0:
		return ""
	case 1:
		return kinds[0]
	default:
		return "ambiguous (" + strings.Join(kinds, ", ") + ")"
	}
}

type SectionDef struct {
	ID          string    `json:"id,omitempty" yaml:"id,omitempty"`
	Caption     string    `json:"caption,omitempty" yaml:"caption,omitempty"`
	HideCaption bool      `json:"hide_caption,omitempty" yaml:"hide_caption,omitempty"`
	Nodes       []NodeDef `json:"nodes" yaml:"nodes"`
}

type FormDef struct {
	Action        string    `json:"action" yaml:"action"`
	Method        string    `json:"method,omitempty" yaml:"method,omitempty"`
	Remote        bool      `json:"remote,omitempty" yaml:"remote,omitempty"`
	ViewOnly      bool      `json:"view_only,omitempty" yaml:"view_only,omitempty"`
	SubmitCaption string    `json:"submit_caption,omitempty" yaml:"submit_caption,omitempty"`
	Nodes         []NodeDef `json:"nodes" yaml:"nodes"`
}

// RowDef lists column nodes only.
type RowDef struct {
	Nodes []NodeDef `json:"nodes" yaml:"nodes"`
}

type ColumnDef struct {
	Width layout.ColumnWidth `json:"width,omitempty" yaml:"width,omitempty"`
	Nodes []NodeDef          `json:"nodes" yaml:"nodes"`
}

type FoldUpDef struct {
	Caption string    `json:"caption,omitempty" yaml:"caption,omitempty"`
	Open    bool      `json:"open,omitempty" yaml:"open,omitempty"`
	Nodes   []NodeDef `json:"nodes" yaml:"nodes"`
}

type TextDef struct {
	Text               string `json:"text" yaml:"text"`
	layout.TextOptions `yaml:",inline"`
}

type GridDef struct {
	ID                 string `json:"id" yaml:"id"`
	URL                string `json:"url" yaml:"url"`
	layout.GridOptions `yaml:",inline"`
}

type NoticeDef struct {
	Text                 string `json:"text" yaml:"text"`
	layout.NoticeOptions `yaml:",inline"`
}

// FieldDef references a field by name. Config, when set, replaces the
// page-level config for that field. A bare string is accepted as the name.
type FieldDef struct {
	Name   string             `json:"name" yaml:"name"`
	Config *model.FieldConfig `json:"config,omitempty" yaml:"config,omitempty"`
}

func (d *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		d.Name = strings.TrimSpace(node.Value)
		return nil
	}
	type plain FieldDef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = FieldDef(p)
	return nil
}

func (d *FieldDef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		d.Name = strings.TrimSpace(name)
		return nil
	}
	type plain FieldDef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = FieldDef(p)
	return nil
}
