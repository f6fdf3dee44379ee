package renderer

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

type observeChange struct {
	URL         string            `json:"url"`
	ParamKeys   []string          `json:"param_keys"`
	ParamValues map[string]string `json:"param_values"`
}

type observeSelected struct {
	Sortable string `json:"sortable"`
}

// behaviours renders one data-* attribute per behaviour rule targeting the
// field. Two rules of the same kind for one field are rejected.
func (b *base) behaviours() (string, error) {
	rules := b.page.Options.Behaviours
	if len(rules) == 0 {
		return "", nil
	}

	seen := make(map[model.BehaviourKind]struct{})
	var attrs []string
	for _, rule := range rules {
		if rule.Field != b.fieldName {
			continue
		}
		kind := rule.Kind()
		if kind == "" {
			return "", fmt.Errorf("%w: rule for field %q declares no effect", ErrInvalidBehaviour, b.fieldName)
		}
		if _, dup := seen[kind]; dup {
			return "", fmt.Errorf("%w: cannot have more than one of the same behaviour for field %q", ErrConflictingBehaviour, b.fieldName)
		}
		seen[kind] = struct{}{}

		attr, err := b.buildBehaviour(kind, rule)
		if err != nil {
			return "", err
		}
		attrs = append(attrs, attr)
	}
	return strings.Join(attrs, " "), nil
}

func (b *base) buildBehaviour(kind model.BehaviourKind, rule model.BehaviourRule) (string, error) {
	switch kind {
	case model.BehaviourChangeAffects:
		ids := make([]string, 0, len(rule.ChangeAffects))
		for _, target := range rule.ChangeAffects {
			ids = append(ids, b.page.Name+"_"+strings.TrimSpace(target))
		}
		return `data-change-values="` + html.EscapeString(strings.Join(ids, ",")) + `"`, nil
	case model.BehaviourEnableOnChange:
		return `data-enable-on-values="` + html.EscapeString(strings.Join(rule.EnableOnChange, ",")) + `"`, nil
	case model.BehaviourNotify:
		payload := make([]observeChange, 0, len(rule.Notify))
		for _, notify := range rule.Notify {
			entry := observeChange{
				URL:         notify.URL,
				ParamKeys:   notify.ParamKeys,
				ParamValues: notify.ParamValues,
			}
			if entry.ParamKeys == nil {
				entry.ParamKeys = []string{}
			}
			if entry.ParamValues == nil {
				entry.ParamValues = map[string]string{}
			}
			payload = append(payload, entry)
		}
		return jsonAttr("data-observe-change", payload)
	case model.BehaviourPopulateFromSelected:
		payload := make([]observeSelected, 0, len(rule.PopulateFromSelected))
		for _, selected := range rule.PopulateFromSelected {
			payload = append(payload, observeSelected{Sortable: selected.Sortable})
		}
		return jsonAttr("data-observe-selected", payload)
	default:
		return "", fmt.Errorf("%w: unsupported kind %q", ErrInvalidBehaviour, kind)
	}
}

// jsonAttr renders a single-quoted attribute holding a JSON payload.
func jsonAttr(name string, payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("renderer: encode %s: %w", name, err)
	}
	return name + `='` + strings.ReplaceAll(string(raw), "'", "&#39;") + `'`, nil
}
