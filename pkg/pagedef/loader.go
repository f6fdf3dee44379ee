package pagedef

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks fsys and parses every JSON/YAML page definition file. Page
// ids must be unique across files. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{pages: make(map[string]PageDef)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("pagedef: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for pageID, raw := range doc.Pages {
			id := strings.TrimSpace(pageID)
			if id == "" {
				return fmt.Errorf("pagedef: file %s defines an empty page id", path)
			}
			if existing, exists := store.pages[id]; exists {
				return fmt.Errorf("pagedef: duplicate page %q (files %s and %s)", id, existing.Source, path)
			}

			page, err := normalisePage(raw, id, path)
			if err != nil {
				return err
			}
			store.pages[id] = page
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Page returns the definition stored under id.
func (s *Store) Page(id string) (PageDef, bool) {
	if s == nil {
		return PageDef{}, false
	}
	page, ok := s.pages[id]
	return page, ok
}

// IDs returns the page ids sorted alphabetically.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := slices.Collect(maps.Keys(s.pages))
	slices.Sort(ids)
	return ids
}

// Empty reports whether the store holds any pages.
func (s *Store) Empty() bool {
	return s == nil || len(s.pages) == 0
}

type documentFile struct {
	Pages map[string]PageDef `json:"pages" yaml:"pages"`
}

// parseDocument decodes strictly: unknown keys are reported instead of being
// silently dropped.
func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(bytes.TrimSpace(data)) == 0 {
		return documentFile{}, fmt.Errorf("pagedef: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return documentFile{}, fmt.Errorf("pagedef: parse %s: %w", source, err)
		}
		return doc, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return documentFile{}, fmt.Errorf("pagedef: parse %s: %w", source, err)
	}
	return doc, nil
}

func normalisePage(raw PageDef, id, source string) (PageDef, error) {
	page := raw
	page.ID = id
	page.Source = source
	page.Name = strings.TrimSpace(page.Name)
	if page.Name == "" {
		page.Name = id
	}
	if len(page.Nodes) == 0 {
		return PageDef{}, fmt.Errorf("pagedef: page %q (file %s) has no nodes", id, source)
	}
	for name := range page.Fields {
		if strings.TrimSpace(name) == "" {
			return PageDef{}, fmt.Errorf("pagedef: page %q (file %s) defines a field with an empty name", id, source)
		}
	}
	if err := validateNodes(page.Nodes, "nodes", false); err != nil {
		return PageDef{}, fmt.Errorf("pagedef: page %q (file %s): %w", id, source, err)
	}
	return page, nil
}

// validateNodes checks that every entry names one kind and that columns
// appear exactly inside rows.
func validateNodes(nodes []NodeDef, path string, inRow bool) error {
	for idx, node := range nodes {
		at := fmt.Sprintf("%s[%d]", path, idx)
		kind := node.Kind()
		switch {
		case kind == "":
			return fmt.Errorf("%s: node declares no kind", at)
		case strings.HasPrefix(kind, "ambiguous"):
			return fmt.Errorf("%s: node is %s", at, kind)
		case inRow && kind != "column":
			return fmt.Errorf("%s: rows may only hold columns, got %s", at, kind)
		case !inRow && kind == "column":
			return fmt.Errorf("%s: column outside a row", at)
		}

		var err error
		switch {
		case node.Section != nil:
			err = validateNodes(node.Section.Nodes, at+".section.nodes", false)
		case node.Form != nil:
			err = validateNodes(node.Form.Nodes, at+".form.nodes", false)
		case node.FoldUp != nil:
			err = validateNodes(node.FoldUp.Nodes, at+".fold_up.nodes", false)
		case node.Row != nil:
			err = validateNodes(node.Row.Nodes, at+".row.nodes", true)
		case node.Column != nil:
			if !node.Column.Width.Valid() {
				return fmt.Errorf("%s: unknown column width %q", at, node.Column.Width)
			}
			err = validateNodes(node.Column.Nodes, at+".column.nodes", false)
		case node.Field != nil && node.Field.Name == "":
			err = fmt.Errorf("%s: field requires a name", at)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
